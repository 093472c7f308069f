package rendition

import (
	"fmt"
	"strings"

	"ravelpix.com/photo-download-gateway/app/domain/common"
)

// FormatPDF is the only allowed format the pipeline cannot transform.
const FormatPDF = "pdf"

// Format pairs a canonical format token with its MIME content type.
type Format struct {
	Token       string
	ContentType string
}

var allowedFormats = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
	"pdf":  true,
}

// ClassifyKey derives the output format from a storage key's trailing
// extension. Extensions outside the allow-list are a hard failure, never a
// default. "jpg" canonicalizes to "jpeg".
func ClassifyKey(key string) (Format, error) {
	dot := strings.LastIndex(key, ".")
	if dot < 0 || dot == len(key)-1 {
		return Format{}, common.ErrInvalidFormat.WithCause(fmt.Errorf("no extension in %q", key))
	}
	token := strings.ToLower(key[dot+1:])
	if !allowedFormats[token] {
		return Format{}, common.ErrInvalidFormat.WithCause(fmt.Errorf("disallowed extension %q", token))
	}
	if token == "jpg" {
		token = "jpeg"
	}
	contentType := "image/" + token
	if token == FormatPDF {
		contentType = "application/pdf"
	}
	return Format{Token: token, ContentType: contentType}, nil
}
