package photo

import (
	"context"

	"github.com/sirupsen/logrus"
	"ravelpix.com/photo-download-gateway/app/domain/common"
	"ravelpix.com/photo-download-gateway/app/domain/rendition"
	"ravelpix.com/photo-download-gateway/app/infrastructure/secrets"
	"ravelpix.com/photo-download-gateway/app/utils/httpclients/photoapi"
	"ravelpix.com/photo-download-gateway/app/utils/logger"
	"ravelpix.com/photo-download-gateway/config/environment_variables"
)

// API is the photo metadata/authorization service surface the locator needs.
type API interface {
	DownloadFile(ctx context.Context, token, photoID, albumID, width string) (*photoapi.DownloadFileResponse, error)
}

// Service resolves a rendition request to its storage locations through the
// photo API.
type Service struct {
	secrets secrets.Store
	api     API
}

func NewService(secretsStore secrets.Store, api API) *Service {
	return &Service{
		secrets: secretsStore,
		api:     api,
	}
}

// Locate fetches a bearer token and asks the photo API for the download
// locations. The token is fetched on every call; the parameter store is the
// source of truth. Every service-side failure collapses to missing-photo, a
// missing credential is the one fatal exception.
func (s *Service) Locate(ctx context.Context, req rendition.Request) (*photoapi.DownloadFileResponse, error) {
	token, err := s.secrets.GetSecret(ctx, environment_variables.EnvironmentVariables.SSM_JWT_PARAM)
	if err != nil {
		return nil, common.ErrMissingJWT.WithCause(err)
	}
	if token == "" {
		return nil, common.ErrMissingJWT
	}

	info, err := s.api.DownloadFile(ctx, token, req.PhotoID, req.AlbumID, req.WidthParam())
	if err != nil {
		// No retries: one failed call is terminal for this request.
		logger.GetLogger().WithFields(logrus.Fields{
			"photo_id": req.PhotoID,
			"album_id": req.AlbumID,
		}).Warn("photo api call failed: " + err.Error())
		return nil, common.ErrMissingPhoto.WithCause(err)
	}
	if info == nil || info.Filename == "" || info.Errors == photoapi.MissingResourceError {
		return nil, common.ErrMissingPhoto
	}
	return info, nil
}
