package resize

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
)

// Provenance fields stamped into every resized jpeg.
const (
	provenanceArtist    = "Pangurbahn, Inc."
	provenanceCopyright = "Pangurbahn, Inc."
	provenanceSoftware  = "Adobe Photoshop"
	provenanceWebsite   = "https://www.ravelpix.com"
)

const jpegQuality = 90

func decode(r io.Reader, token string) (image.Image, error) {
	if token == "webp" {
		return webp.Decode(r)
	}
	return imaging.Decode(r)
}

// fitWithin constrains img to a width*width bounding box preserving aspect
// ratio. Images already inside the box are returned untouched, never
// upscaled.
func fitWithin(img image.Image, width int) image.Image {
	return imaging.Fit(img, width, width, imaging.Lanczos)
}

func encode(w io.Writer, img image.Image, token string) error {
	switch token {
	case "jpeg":
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
			return err
		}
		stamped, err := stampProvenance(buf.Bytes())
		if err != nil {
			return err
		}
		_, err = w.Write(stamped)
		return err
	case "png":
		return imaging.Encode(w, img, imaging.PNG)
	case "webp":
		return webp.Encode(w, img, &webp.Options{Quality: jpegQuality})
	default:
		return fmt.Errorf("unsupported transform format %q", token)
	}
}

// stampProvenance rewrites the jpeg's EXIF IFD0 block with the fixed
// author/copyright/software fields. png and webp output carries no EXIF
// container, so only jpeg is stamped.
func stampProvenance(data []byte) ([]byte, error) {
	parser := jpegstructure.NewJpegMediaParser()
	intfc, err := parser.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	segments := intfc.(*jpegstructure.SegmentList)

	rootIb, err := segments.ConstructExifBuilder()
	if err != nil {
		im, mapErr := exifcommon.NewIfdMappingWithStandard()
		if mapErr != nil {
			return nil, mapErr
		}
		rootIb = exif.NewIfdBuilder(im, exif.NewTagIndex(), exifcommon.IfdStandardIfdIdentity, exifcommon.EncodeDefaultByteOrder)
	}

	ifd0, err := exif.GetOrCreateIbFromRootIb(rootIb, "IFD0")
	if err != nil {
		return nil, err
	}
	fields := map[string]string{
		"Artist":           provenanceArtist,
		"Copyright":        provenanceCopyright,
		"Software":         provenanceSoftware,
		"ImageDescription": provenanceWebsite,
	}
	for name, value := range fields {
		if err := ifd0.SetStandardWithName(name, value); err != nil {
			return nil, err
		}
	}

	if err := segments.SetExif(rootIb); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := segments.Write(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
