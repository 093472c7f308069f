package rendition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ravelpix.com/photo-download-gateway/app/domain/common"
)

func TestResolveRequestAllowedWidths(t *testing.T) {
	for _, width := range []string{"0", "100", "300", "500", "750", "1000", "1500", "2500", "3360"} {
		req, err := ResolveRequest(width, "album-1", "photo-1")
		require.NoError(t, err, "width %s", width)
		assert.Equal(t, width, req.RawWidth)
		assert.Equal(t, req.RawWidth, req.WidthParam())
	}
}

func TestResolveRequestWidthFallback(t *testing.T) {
	// Out-of-allow-list widths never fail, they coerce to the default.
	for _, width := range []string{"9999", "301", "-5", "abc", "300px"} {
		req, err := ResolveRequest(width, "album-1", "photo-1")
		require.NoError(t, err, "width %s", width)
		assert.Equal(t, 1800, req.Width, "width %s", width)
		assert.Equal(t, "1800", req.WidthParam())
	}
}

func TestResolveRequestAliases(t *testing.T) {
	req, err := ResolveRequest("web", "album-1", "photo-1")
	require.NoError(t, err)
	assert.Equal(t, 1800, req.Width)
	assert.Equal(t, "web", req.WidthParam())

	req, err = ResolveRequest("original", "album-1", "photo-1")
	require.NoError(t, err)
	assert.Equal(t, SentinelWidth, req.Width)
	assert.Equal(t, "original", req.WidthParam())
}

func TestResolveRequestMissingParams(t *testing.T) {
	cases := []struct {
		name    string
		width   string
		albumID string
		photoID string
		code    int
	}{
		{"missing width", "", "album-1", "photo-1", common.CodeMissingWidth},
		{"missing photo", "300", "album-1", "", common.CodeMissingPhoto},
		{"missing album", "300", "", "photo-1", common.CodeMissingAlbum},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveRequest(tc.width, tc.albumID, tc.photoID)
			require.Error(t, err)
			assert.Equal(t, tc.code, common.CodeOf(err))
		})
	}
}
