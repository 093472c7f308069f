package photos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ravelpix.com/photo-download-gateway/app/domain/common"
	"ravelpix.com/photo-download-gateway/app/domain/rendition"
	"ravelpix.com/photo-download-gateway/app/infrastructure/cache"
	"ravelpix.com/photo-download-gateway/app/interfaces/http/responses"
	"ravelpix.com/photo-download-gateway/app/utils/httpclients/photoapi"
	"ravelpix.com/photo-download-gateway/config/environment_variables"
)

type fakeLocator struct {
	resp  *photoapi.DownloadFileResponse
	err   error
	calls int
}

func (f *fakeLocator) Locate(ctx context.Context, req rendition.Request) (*photoapi.DownloadFileResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeFiller struct {
	err    error
	calls  int
	gotCtx context.Context
	onFill func(info *photoapi.DownloadFileResponse)
}

func (f *fakeFiller) Fill(ctx context.Context, info *photoapi.DownloadFileResponse, req rendition.Request) error {
	f.calls++
	f.gotCtx = ctx
	if f.err != nil {
		return f.err
	}
	if f.onFill != nil {
		f.onFill(info)
	}
	return nil
}

type fakeStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	headErr   error
	getErr    error
	headCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) put(bucket, key string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[bucket+"/"+key] = data
}

func (f *fakeStore) Head(ctx context.Context, bucket, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.headCalls++
	if f.headErr != nil {
		return f.headErr
	}
	if _, ok := f.objects[bucket+"/"+key]; !ok {
		return errors.New("not found")
	}
	return nil
}

func (f *fakeStore) Get(ctx context.Context, bucket, key, versionID string) (io.ReadCloser, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, 0, f.getErr
	}
	data, ok := f.objects[bucket+"/"+key]
	if !ok {
		return nil, 0, fmt.Errorf("no object %s/%s", bucket, key)
	}
	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil
}

func (f *fakeStore) Put(ctx context.Context, bucket, key, contentType string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.put(bucket, key, data)
	return nil
}

func (f *fakeStore) HealthCheck(ctx context.Context) error { return nil }

func newTestRouter(api *PhotosAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api.RegisterRouter(router.Group("/v1"))
	return router
}

func doDownload(router *gin.Engine, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/photos/download?"+query, nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeErrorList(t *testing.T, w *httptest.ResponseRecorder) []int {
	t.Helper()
	var body responses.ErrorListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Errors
}

func TestGetDownloadKillSwitch(t *testing.T) {
	environment_variables.EnvironmentVariables.ENABLED = false
	defer func() { environment_variables.EnvironmentVariables.ENABLED = true }()

	locator := &fakeLocator{}
	filler := &fakeFiller{}
	api := NewPhotosAPI(locator, filler, newFakeStore(), cache.NewNoOpCacheService())

	w := doDownload(newTestRouter(api), "width=300&albumId=album-1&photoId=photo-1")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
	assert.Zero(t, locator.calls)
	assert.Zero(t, filler.calls)
}

func TestGetDownloadMissingParams(t *testing.T) {
	environment_variables.EnvironmentVariables.ENABLED = true

	cases := []struct {
		name  string
		query string
		code  int
	}{
		{"missing width", "albumId=album-1&photoId=photo-1", common.CodeMissingWidth},
		{"missing photo", "width=300&albumId=album-1", common.CodeMissingPhoto},
		{"missing album", "width=300&photoId=photo-1", common.CodeMissingAlbum},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			locator := &fakeLocator{}
			api := NewPhotosAPI(locator, &fakeFiller{}, newFakeStore(), cache.NewNoOpCacheService())

			w := doDownload(newTestRouter(api), tc.query)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, []int{tc.code}, decodeErrorList(t, w))
			assert.Zero(t, locator.calls, "validation failures must not reach the metadata api")
		})
	}
}

func TestGetDownloadLocateFailure(t *testing.T) {
	environment_variables.EnvironmentVariables.ENABLED = true

	locator := &fakeLocator{err: common.ErrMissingPhoto}
	filler := &fakeFiller{}
	store := newFakeStore()
	api := NewPhotosAPI(locator, filler, store, cache.NewNoOpCacheService())

	w := doDownload(newTestRouter(api), "width=300&albumId=album-1&photoId=photo-1")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []int{common.CodeMissingPhoto}, decodeErrorList(t, w))
	assert.Zero(t, filler.calls)
	assert.Zero(t, store.headCalls, "storage must not be probed for an unresolvable photo")
}

func TestGetDownloadColdMiss(t *testing.T) {
	environment_variables.EnvironmentVariables.ENABLED = true
	environment_variables.EnvironmentVariables.DOWNLOAD_BUCKET = "downloads"

	payload := []byte("jpeg-bytes")
	store := newFakeStore()
	locator := &fakeLocator{resp: &photoapi.DownloadFileResponse{
		S3Bucket: "originals",
		S3Key:    "photo-1.jpg",
		Filename: "photo-1-300.jpg",
	}}
	filler := &fakeFiller{onFill: func(info *photoapi.DownloadFileResponse) {
		store.put("downloads", info.Filename, payload)
	}}
	api := NewPhotosAPI(locator, filler, store, cache.NewNoOpCacheService())

	w := doDownload(newTestRouter(api), "width=300&albumId=album-1&photoId=photo-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, filler.calls)
	assert.Equal(t, payload, w.Body.Bytes())
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=photo-1-300.jpg", w.Header().Get("Content-Disposition"))
}

func TestGetDownloadFillOutlivesClientDisconnect(t *testing.T) {
	environment_variables.EnvironmentVariables.ENABLED = true
	environment_variables.EnvironmentVariables.DOWNLOAD_BUCKET = "downloads"

	store := newFakeStore()
	locator := &fakeLocator{resp: &photoapi.DownloadFileResponse{Filename: "photo-1-300.jpg"}}
	reqCtx, cancel := context.WithCancel(context.Background())
	filler := &fakeFiller{onFill: func(info *photoapi.DownloadFileResponse) {
		// The caller goes away mid-fill.
		cancel()
		store.put("downloads", info.Filename, []byte("jpeg-bytes"))
	}}
	api := NewPhotosAPI(locator, filler, store, cache.NewNoOpCacheService())

	router := newTestRouter(api)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/photos/download?width=300&albumId=album-1&photoId=photo-1", nil).
		WithContext(reqCtx)
	router.ServeHTTP(w, req)

	require.NotNil(t, filler.gotCtx)
	assert.NoError(t, filler.gotCtx.Err(), "a started fill must not observe the caller's cancellation")
}

func TestGetDownloadWarmHitSkipsFill(t *testing.T) {
	environment_variables.EnvironmentVariables.ENABLED = true
	environment_variables.EnvironmentVariables.DOWNLOAD_BUCKET = "downloads"

	payload := []byte("cached-jpeg-bytes")
	store := newFakeStore()
	store.put("downloads", "photo-1-300.jpg", payload)
	locator := &fakeLocator{resp: &photoapi.DownloadFileResponse{Filename: "photo-1-300.jpg"}}
	filler := &fakeFiller{}
	api := NewPhotosAPI(locator, filler, store, cache.NewNoOpCacheService())

	router := newTestRouter(api)
	for i := 0; i < 2; i++ {
		w := doDownload(router, "width=300&albumId=album-1&photoId=photo-1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, payload, w.Body.Bytes())
	}
	assert.Zero(t, filler.calls, "existing renditions are served as-is")
}

func TestGetDownloadPDFContentType(t *testing.T) {
	environment_variables.EnvironmentVariables.ENABLED = true
	environment_variables.EnvironmentVariables.DOWNLOAD_BUCKET = "downloads"

	store := newFakeStore()
	store.put("downloads", "scan-300.pdf", []byte("%PDF-1.4"))
	locator := &fakeLocator{resp: &photoapi.DownloadFileResponse{Filename: "scan-300.pdf"}}
	api := NewPhotosAPI(locator, &fakeFiller{}, store, cache.NewNoOpCacheService())

	w := doDownload(newTestRouter(api), "width=300&albumId=album-1&photoId=photo-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

func TestGetDownloadInvalidFormat(t *testing.T) {
	environment_variables.EnvironmentVariables.ENABLED = true
	environment_variables.EnvironmentVariables.DOWNLOAD_BUCKET = "downloads"

	store := newFakeStore()
	store.put("downloads", "photo-1-300.gif", []byte("GIF89a"))
	locator := &fakeLocator{resp: &photoapi.DownloadFileResponse{Filename: "photo-1-300.gif"}}
	api := NewPhotosAPI(locator, &fakeFiller{}, store, cache.NewNoOpCacheService())

	w := doDownload(newTestRouter(api), "width=300&albumId=album-1&photoId=photo-1")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []int{common.CodeInvalidFormat}, decodeErrorList(t, w))
}

func TestGetDownloadFillFailureDegradesToEmbeddedError(t *testing.T) {
	environment_variables.EnvironmentVariables.ENABLED = true
	environment_variables.EnvironmentVariables.DOWNLOAD_BUCKET = "downloads"

	store := newFakeStore()
	locator := &fakeLocator{resp: &photoapi.DownloadFileResponse{Filename: "photo-1-300.jpg"}}
	filler := &fakeFiller{err: errors.New("decode failed")}
	api := NewPhotosAPI(locator, filler, store, cache.NewNoOpCacheService())

	w := doDownload(newTestRouter(api), "width=300&albumId=album-1&photoId=photo-1")

	assert.Equal(t, http.StatusOK, w.Code)
	var body responses.DownloadFailedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, responses.DownloadFailedMessage, body.Error)
}

func TestGetDownloadWidthFallbackStillServed(t *testing.T) {
	environment_variables.EnvironmentVariables.ENABLED = true
	environment_variables.EnvironmentVariables.DOWNLOAD_BUCKET = "downloads"

	store := newFakeStore()
	store.put("downloads", "photo-1-1800.jpg", []byte("default-width-bytes"))
	locator := &fakeLocator{resp: &photoapi.DownloadFileResponse{Filename: "photo-1-1800.jpg"}}
	api := NewPhotosAPI(locator, &fakeFiller{}, store, cache.NewNoOpCacheService())

	// 9999 is not in the allowed set; the request coerces to the default width.
	w := doDownload(newTestRouter(api), "width=9999&albumId=album-1&photoId=photo-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []byte("default-width-bytes"), w.Body.Bytes())
}
