package processor

import (
	"errors"
	"fmt"

	"github.com/lmercado/raster-service/internal/codec"
	"github.com/lmercado/raster-service/internal/raster"
)

var (
	ErrInvalidParam = errors.New("invalid param value")
)

type ImageTransformer struct {
	buf       []byte
	options   Transformer
	watermark []byte
}

type Transformer struct {
	Resize struct {
		Mode   string // fit, fill, exact, exact_width, exact_height
		Width  int
		Height int
	}
	Crop struct {
		Width   int
		Height  int
		Anchor  string
		OffsetX int
		OffsetY int
	}
	Watermark struct {
		Mode    string   // normal, difference, multiply, overlay, screen
		Opacity *float64 // nil means fully opaque; 0 is a valid invisible blend
		Anchor  string
		OffsetX int
		OffsetY int
	}
	Mirror  bool
	Flip    bool
	Rotate  int
	Quality int
	Format  string
	Filters struct {
		Grayscale  bool
		Sepia      bool
		Invert     bool
		Gamma      float64
		Brightness int
		Contrast   float64
		Saturation float64
		Hue        float64
		Blur       string // box or gaussian
		Sharpen    bool
		EdgeDetect bool
		Emboss     bool
	}
}

// Process applies every requested transformation in order: rotation
// and mirroring first, then resize, crop, watermark, filters, and
// finally re-encoding in the requested format and quality.
func (it *ImageTransformer) Process() ([]byte, error) {
	img, srcFormat, err := codec.Decode(it.buf)
	if err != nil {
		return nil, err
	}

	if it.options.Rotate != 0 {
		img = raster.Rotate(img, it.options.Rotate, raster.Transparent())
	}
	if it.options.Mirror {
		raster.FlipHorizontal(img)
	}
	if it.options.Flip {
		raster.FlipVertical(img)
	}

	// apply resize if necessary
	rOpts := it.options.Resize
	if rOpts.Width > 0 || rOpts.Height > 0 {
		img, err = it.resize(img)
		if err != nil {
			return nil, err
		}
	}

	// apply crop if necessary
	cOpts := it.options.Crop
	if cOpts.Width > 0 && cOpts.Height > 0 {
		img, err = it.crop(img)
		if err != nil {
			return nil, err
		}
	}

	// apply watermark if supplied
	if len(it.watermark) > 0 {
		if err := it.blendWatermark(img); err != nil {
			return nil, err
		}
	}

	// apply filters if necessary
	img, err = applyFilters(img, it.options)
	if err != nil {
		return nil, err
	}

	format := it.options.Format
	if format == "" {
		format = srcFormat
	}

	return codec.Encode(img, format, it.options.Quality)
}

func (it *ImageTransformer) resize(img *raster.Image) (*raster.Image, error) {
	opts := it.options.Resize

	modeName := opts.Mode
	if modeName == "" {
		modeName = "fit"
	}

	switch modeName {
	case "exact_width":
		return raster.ResizeExactWidth(img, opts.Width)
	case "exact_height":
		return raster.ResizeExactHeight(img, opts.Height)
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: resize mode %q needs both width and height", ErrInvalidParam, modeName)
	}

	mode, err := raster.ParseResizeMode(modeName)
	if err != nil {
		return nil, err
	}

	return raster.Resize(img, opts.Width, opts.Height, mode)
}

func (it *ImageTransformer) crop(img *raster.Image) (*raster.Image, error) {
	opts := it.options.Crop

	anchorName := opts.Anchor
	if anchorName == "" {
		anchorName = "center"
	}
	anchor, err := raster.ParseAnchor(anchorName)
	if err != nil {
		return nil, err
	}

	return raster.Crop(img, opts.Width, opts.Height, anchor, opts.OffsetX, opts.OffsetY)
}

func (it *ImageTransformer) blendWatermark(img *raster.Image) error {
	opts := it.options.Watermark

	mark, _, err := codec.Decode(it.watermark)
	if err != nil {
		return err
	}

	modeName := opts.Mode
	if modeName == "" {
		modeName = "normal"
	}
	mode, err := raster.ParseBlendMode(modeName)
	if err != nil {
		return err
	}

	anchorName := opts.Anchor
	if anchorName == "" {
		anchorName = "center"
	}
	anchor, err := raster.ParseAnchor(anchorName)
	if err != nil {
		return err
	}

	opacity := 1.0
	if opts.Opacity != nil {
		opacity = *opts.Opacity
	}

	return raster.Blend(img, mark, mode, opacity, anchor, opts.OffsetX, opts.OffsetY)
}

func (it *ImageTransformer) Resize(width, height int) ([]byte, error) {
	img, format, err := codec.Decode(it.buf)
	if err != nil {
		return nil, err
	}

	resized, err := raster.ResizeFit(img, width, height)
	if err != nil {
		return nil, err
	}

	return codec.Encode(resized, format, it.options.Quality)
}

func (it *ImageTransformer) Crop(width, height int) ([]byte, error) {
	img, format, err := codec.Decode(it.buf)
	if err != nil {
		return nil, err
	}

	cropped, err := raster.Crop(img, width, height, raster.Center, 0, 0)
	if err != nil {
		return nil, err
	}

	return codec.Encode(cropped, format, it.options.Quality)
}

func (it *ImageTransformer) Rotate(degrees int) ([]byte, error) {
	img, format, err := codec.Decode(it.buf)
	if err != nil {
		return nil, err
	}

	return codec.Encode(raster.Rotate(img, degrees, raster.Transparent()), format, it.options.Quality)
}

func (it *ImageTransformer) Flip() ([]byte, error) { // Reverse across horizontal axis
	img, format, err := codec.Decode(it.buf)
	if err != nil {
		return nil, err
	}

	raster.FlipVertical(img)

	return codec.Encode(img, format, it.options.Quality)
}

func (it *ImageTransformer) Mirror() ([]byte, error) { // Reverse across vertical axis
	img, format, err := codec.Decode(it.buf)
	if err != nil {
		return nil, err
	}

	raster.FlipHorizontal(img)

	return codec.Encode(img, format, it.options.Quality)
}

func (it *ImageTransformer) Compress(value int) ([]byte, error) {
	img, format, err := codec.Decode(it.buf)
	if err != nil {
		return nil, err
	}

	return codec.Encode(img, format, value)
}

func (it *ImageTransformer) Convert(t string) ([]byte, error) {
	target, err := codec.NormalizeFormat(t)
	if err != nil {
		return nil, err
	}

	img, srcFormat, err := codec.Decode(it.buf)
	if err != nil {
		return nil, err
	}

	if srcFormat == target {
		return it.buf, nil
	}

	return codec.Encode(img, target, it.options.Quality)
}

func applyFilters(img *raster.Image, options Transformer) (*raster.Image, error) {
	filters := options.Filters

	var err error

	if filters.Grayscale {
		img = raster.Grayscale(img)
	}
	if filters.Sepia {
		img = raster.Sepia(img)
	}
	if filters.Invert {
		img = raster.Invert(img)
	}
	if filters.Gamma > 0 {
		if img, err = raster.Gamma(img, filters.Gamma); err != nil {
			return nil, err
		}
	}
	if filters.Brightness != 0 {
		img = raster.Brightness(img, filters.Brightness)
	}
	if filters.Contrast > 0 {
		if img, err = raster.Contrast(img, filters.Contrast); err != nil {
			return nil, err
		}
	}
	if filters.Saturation > 0 {
		if img, err = raster.Saturation(img, filters.Saturation); err != nil {
			return nil, err
		}
	}
	if filters.Hue != 0 {
		img = raster.HueRotate(img, filters.Hue)
	}

	switch filters.Blur {
	case "":
	case "box":
		if img, err = raster.BlurBox(img); err != nil {
			return nil, err
		}
	case "gaussian":
		if img, err = raster.BlurGaussian(img); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown blur %q", ErrInvalidParam, filters.Blur)
	}

	if filters.Sharpen {
		if img, err = raster.Sharpen(img); err != nil {
			return nil, err
		}
	}
	if filters.EdgeDetect {
		if img, err = raster.EdgeDetect(img); err != nil {
			return nil, err
		}
	}
	if filters.Emboss {
		if img, err = raster.Emboss(img); err != nil {
			return nil, err
		}
	}

	return img, nil
}
