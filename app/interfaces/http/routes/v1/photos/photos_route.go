package photos

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"ravelpix.com/photo-download-gateway/app/domain/common"
	"ravelpix.com/photo-download-gateway/app/domain/rendition"
	"ravelpix.com/photo-download-gateway/app/infrastructure/cache"
	"ravelpix.com/photo-download-gateway/app/infrastructure/objectstore"
	"ravelpix.com/photo-download-gateway/app/interfaces/http/responses"
	"ravelpix.com/photo-download-gateway/app/utils/httpclients/photoapi"
	"ravelpix.com/photo-download-gateway/app/utils/logger"
	"ravelpix.com/photo-download-gateway/config/environment_variables"
)

// Locator resolves a rendition request to its storage locations.
type Locator interface {
	Locate(ctx context.Context, req rendition.Request) (*photoapi.DownloadFileResponse, error)
}

// Filler produces the derived object in the download bucket on a cache miss.
type Filler interface {
	Fill(ctx context.Context, info *photoapi.DownloadFileResponse, req rendition.Request) error
}

type PhotosAPI struct {
	locator Locator
	filler  Filler
	store   objectstore.Store
	cache   cache.CacheService
}

func NewPhotosAPI(locator Locator, filler Filler, store objectstore.Store, cacheService cache.CacheService) *PhotosAPI {
	return &PhotosAPI{
		locator: locator,
		filler:  filler,
		store:   store,
		cache:   cacheService,
	}
}

func (api *PhotosAPI) RegisterRouter(router gin.IRouter) {
	photosRouter := router.Group("/photos")
	photosRouter.GET("/download", api.GetDownload)
}

// GetDownload godoc
// @Summary     Download a photo rendition
// @Description Serves the photo at the requested width, generating the rendition on first request and reusing it afterward. Width accepts a numeric value from the allowed set or the aliases "web" and "original".
// @Tags        photos
// @Produce     octet-stream
// @Produce     json
// @Param       width   query string true "target width, numeric or web/original"
// @Param       albumId query string true "album identifier"
// @Param       photoId query string true "photo identifier"
// @Success     200 {string} binary "photo payload, or an embedded-error JSON body"
// @Failure     400 {object} responses.ErrorListResponse "numeric error codes"
// @Router      /v1/photos/download [get]
func (api *PhotosAPI) GetDownload(c *gin.Context) {
	if !environment_variables.EnvironmentVariables.ENABLED {
		c.Status(http.StatusNoContent)
		return
	}

	req, err := rendition.ResolveRequest(c.Query("width"), c.Query("albumId"), c.Query("photoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorListResponse(common.CodeOf(err)))
		return
	}

	ctx := c.Request.Context()
	info, err := api.locator.Locate(ctx, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorListResponse(common.CodeOf(err)))
		return
	}

	if !api.renditionExists(ctx, info.Filename) {
		// A started fill runs to completion or failure on its own; a client
		// disconnect must not abort a half-written rendition. A fill failure
		// is deliberately not surfaced here: serving is still attempted and
		// degrades in serveRendition if the object is absent.
		fillCtx := context.WithoutCancel(ctx)
		if err := api.filler.Fill(fillCtx, info, req); err == nil {
			api.rememberRendition(ctx, info.Filename)
		}
	}

	api.serveRendition(c, info)
}

// renditionExists consults the memo cache, then the store. Any probe failure
// counts as absent; derived objects are immutable so a false negative only
// costs a redundant fill.
func (api *PhotosAPI) renditionExists(ctx context.Context, filename string) bool {
	key := fmt.Sprintf(cache.RenditionExistsKeyPattern, filename)
	if ok, err := api.cache.Exists(ctx, key); err == nil && ok {
		return true
	}
	bucket := environment_variables.EnvironmentVariables.DOWNLOAD_BUCKET
	if err := api.store.Head(ctx, bucket, filename); err != nil {
		return false
	}
	api.rememberRendition(ctx, filename)
	return true
}

func (api *PhotosAPI) rememberRendition(ctx context.Context, filename string) {
	key := fmt.Sprintf(cache.RenditionExistsKeyPattern, filename)
	if err := api.cache.Set(ctx, key, "1", cache.RenditionExistsTTL); err != nil {
		logger.GetLogger().Warn("rendition memo set failed: " + err.Error())
	}
}

func (api *PhotosAPI) serveRendition(c *gin.Context, info *photoapi.DownloadFileResponse) {
	format, err := rendition.ClassifyKey(info.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorListResponse(common.CodeOf(err)))
		return
	}

	bucket := environment_variables.EnvironmentVariables.DOWNLOAD_BUCKET
	rc, size, err := api.store.Get(c.Request.Context(), bucket, info.Filename, "")
	if err != nil {
		// Always 200 with the error in the body on this path.
		c.JSON(http.StatusOK, responses.DownloadFailedResponse{Error: responses.DownloadFailedMessage})
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, size, format.ContentType, rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%s", info.Filename),
	})
}
