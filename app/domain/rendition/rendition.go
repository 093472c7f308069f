package rendition

import (
	"strconv"
	"strings"

	"ravelpix.com/photo-download-gateway/app/domain/common"
	"ravelpix.com/photo-download-gateway/config/environment_variables"
)

// Width aliases accepted in place of a numeric value. "web" resolves to the
// default width, "original" to the no-resize sentinel.
const (
	WidthAliasWeb      = "web"
	WidthAliasOriginal = "original"
)

// SentinelWidth means the photo is served without resizing.
const SentinelWidth = 0

// Request is the normalized rendition descriptor for a single download.
// RawWidth keeps the token exactly as the caller sent it; Width is always a
// member of the allowed-width set or the sentinel.
type Request struct {
	PhotoID  string
	AlbumID  string
	RawWidth string
	Width    int
}

// WidthParam is the width value forwarded to the photo API: the raw alias
// when the caller asked for "web" or "original", the coerced numeric width
// otherwise.
func (r Request) WidthParam() string {
	if strings.Contains(r.RawWidth, WidthAliasWeb) || strings.Contains(r.RawWidth, WidthAliasOriginal) {
		return r.RawWidth
	}
	return strconv.Itoa(r.Width)
}

// ResolveRequest validates the raw query parameters and normalizes the width.
// A width outside the allowed set never fails: it falls back to the default.
func ResolveRequest(width, albumID, photoID string) (Request, error) {
	if width == "" {
		return Request{}, common.ErrMissingWidth
	}
	if photoID == "" {
		return Request{}, common.ErrMissingPhoto
	}
	if albumID == "" {
		return Request{}, common.ErrMissingAlbum
	}
	return Request{
		PhotoID:  photoID,
		AlbumID:  albumID,
		RawWidth: width,
		Width:    normalizeWidth(width),
	}, nil
}

func normalizeWidth(raw string) int {
	envs := environment_variables.EnvironmentVariables
	switch raw {
	case WidthAliasWeb:
		return envs.DEFAULT_WIDTH
	case WidthAliasOriginal:
		return SentinelWidth
	}
	width, err := strconv.Atoi(raw)
	if err != nil {
		return envs.DEFAULT_WIDTH
	}
	for _, allowed := range envs.ALLOWED_WIDTHS {
		if width == allowed {
			return width
		}
	}
	return envs.DEFAULT_WIDTH
}
