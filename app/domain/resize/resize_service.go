package resize

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"ravelpix.com/photo-download-gateway/app/domain/common"
	"ravelpix.com/photo-download-gateway/app/domain/rendition"
	"ravelpix.com/photo-download-gateway/app/infrastructure/objectstore"
	"ravelpix.com/photo-download-gateway/app/utils/httpclients/photoapi"
	"ravelpix.com/photo-download-gateway/app/utils/logger"
	"ravelpix.com/photo-download-gateway/config/environment_variables"
)

// Notifier escalates a failed cache fill out of band.
type Notifier interface {
	NotifyResizeFailure(ctx context.Context, photoID, key string, cause error)
}

// Service fills the download bucket with the derived rendition of an
// original object, exactly once per cache miss.
type Service struct {
	store    objectstore.Store
	notifier Notifier
}

func NewService(store objectstore.Store, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
	}
}

// Fill streams the original through the transform into the download bucket.
// It returns only after the store has acknowledged the whole upload. On
// failure the notifier is kicked off detached and the error is returned for
// logging only; callers still proceed to the serving step.
func (s *Service) Fill(ctx context.Context, info *photoapi.DownloadFileResponse, req rendition.Request) error {
	if err := s.fill(ctx, info, req); err != nil {
		logger.GetLogger().WithFields(logrus.Fields{
			"photo_id": req.PhotoID,
			"s3_key":   info.S3Key,
		}).Error("resize pipeline failed: " + err.Error())
		// Fire and forget. The notifier owns its own error containment and
		// must never block or fail this request.
		go s.notifier.NotifyResizeFailure(context.Background(), req.PhotoID, info.S3Key, err)
		return common.ErrResizeFailure.WithCause(err)
	}
	return nil
}

func (s *Service) fill(ctx context.Context, info *photoapi.DownloadFileResponse, req rendition.Request) error {
	source, err := rendition.ClassifyKey(info.S3Key)
	if err != nil {
		return err
	}
	// Headers on the cached object come from the derived key.
	derived, err := rendition.ClassifyKey(info.Filename)
	if err != nil {
		return err
	}

	src, _, err := s.store.Get(ctx, info.S3Bucket, info.S3Key, info.S3Version)
	if err != nil {
		return err
	}
	defer src.Close()

	bucket := environment_variables.EnvironmentVariables.DOWNLOAD_BUCKET

	// PDFs cannot be resized, and the sentinel width means the caller wants
	// the untouched original. Both stream straight through.
	if source.Token == rendition.FormatPDF || req.Width == rendition.SentinelWidth {
		return s.store.Put(ctx, bucket, info.Filename, derived.ContentType, src)
	}

	img, err := decode(src, source.Token)
	if err != nil {
		return err
	}
	img = fitWithin(img, req.Width)

	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(encode(pw, img, source.Token))
	}()
	err = s.store.Put(ctx, bucket, info.Filename, derived.ContentType, pr)
	// Release the encoder if the upload stopped reading before EOF.
	pr.CloseWithError(err)
	return err
}
