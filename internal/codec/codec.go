// Package codec converts between encoded image bytes (JPEG, PNG, GIF,
// TIFF, WebP) and the engine's raster.Image. The engine itself never
// touches compressed byte streams.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/gabriel-vasile/mimetype"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/lmercado/raster-service/internal/raster"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

const DefaultQuality = 75

// Formats the codec can write. Decoding additionally accepts anything
// image.Decode recognizes through the registered formats.
var encodableFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"tiff": true,
	"webp": true,
}

// NormalizeFormat maps common aliases ("jpg", "tif") to canonical
// format names and reports whether the format can be encoded.
func NormalizeFormat(format string) (string, error) {
	switch format {
	case "jpg":
		format = "jpeg"
	case "tif":
		format = "tiff"
	}

	if !encodableFormats[format] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return format, nil
}

// DetectFormat sniffs the encoded buffer's format ("jpeg", "png", ...).
func DetectFormat(buf []byte) (string, error) {
	mtype := mimetype.Detect(buf)

	switch mtype.String() {
	case "image/jpeg":
		return "jpeg", nil
	case "image/png":
		return "png", nil
	case "image/gif":
		return "gif", nil
	case "image/tiff":
		return "tiff", nil
	case "image/webp":
		return "webp", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mtype.String())
	}
}

// Decode parses encoded bytes into a raster image, returning the
// detected format name alongside it.
func Decode(buf []byte) (*raster.Image, string, error) {
	src, format, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Normalize to straight-alpha RGBA, which is what the engine works on.
	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	img, err := raster.FromBytes(w, h, nrgba.Pix)
	if err != nil {
		return nil, "", err
	}

	return img, format, nil
}

// Encode serializes a raster image into the given format. Quality
// applies to lossy formats; pass 0 for the default.
func Encode(img *raster.Image, format string, quality int) ([]byte, error) {
	format, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}

	if quality <= 0 {
		quality = DefaultQuality
	}

	nrgba := &image.NRGBA{
		Pix:    img.Bytes,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}

	var buf bytes.Buffer

	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, nrgba, &jpeg.Options{Quality: quality})
	case "png":
		err = png.Encode(&buf, nrgba)
	case "gif":
		err = gif.Encode(&buf, nrgba, nil)
	case "tiff":
		err = tiff.Encode(&buf, nrgba, nil)
	case "webp":
		var opts *encoder.Options
		opts, err = encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(quality))
		if err == nil {
			err = webp.Encode(&buf, nrgba, opts)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", format, err)
	}

	return buf.Bytes(), nil
}
