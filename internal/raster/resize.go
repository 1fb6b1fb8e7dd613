package raster

import (
	"fmt"
	"math"
)

// ResizeMode selects the sizing policy of Resize.
type ResizeMode int

const (
	// Fit scales the image, preserving aspect ratio, so it fits
	// entirely within the target box. Output never exceeds the target.
	Fit ResizeMode = iota
	// Fill scales the image, preserving aspect ratio, so it covers the
	// target box completely, then center-crops the excess. Output is
	// exactly the target size.
	Fill
	// Exact scales to the target width and height, ignoring aspect ratio.
	Exact
	// ExactWidth scales to the target width; height follows the aspect ratio.
	ExactWidth
	// ExactHeight scales to the target height; width follows the aspect ratio.
	ExactHeight
)

var resizeModeNames = map[string]ResizeMode{
	"fit":          Fit,
	"fill":         Fill,
	"exact":        Exact,
	"exact_width":  ExactWidth,
	"exact_height": ExactHeight,
}

// ParseResizeMode resolves mode names used in transformation payloads.
func ParseResizeMode(s string) (ResizeMode, error) {
	m, ok := resizeModeNames[s]
	if !ok {
		return Fit, fmt.Errorf("%w: unknown resize mode %q", ErrInvalidParameter, s)
	}

	return m, nil
}

// Interpolation selects the sampling algorithm used when resampling.
type Interpolation int

const (
	// Bilinear blends the four nearest source pixels by fractional
	// weight, rounding half up. Default quality level.
	Bilinear Interpolation = iota
	// Nearest picks the nearest source pixel. Fast and blocky.
	Nearest
)

// Resize resizes src to the target dimensions under the given mode,
// sampling with bilinear interpolation. Zero targets or a zero-area
// source yield a zero-area image; negative targets are an error.
func Resize(src *Image, w, h int, mode ResizeMode) (*Image, error) {
	switch mode {
	case Fit:
		return ResizeFit(src, w, h)
	case Fill:
		return ResizeFill(src, w, h)
	case Exact:
		return ResizeExact(src, w, h)
	case ExactWidth:
		return ResizeExactWidth(src, w)
	case ExactHeight:
		return ResizeExactHeight(src, h)
	default:
		return nil, fmt.Errorf("%w: unknown resize mode %d", ErrInvalidParameter, mode)
	}
}

// ResizeFit resizes to fit within w x h, preserving aspect ratio.
func ResizeFit(src *Image, w, h int) (*Image, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrInvalidDimension, w, h)
	}
	if src.Empty() || w == 0 || h == 0 {
		return New(0, 0)
	}

	ratio := float64(src.Width) / float64(src.Height)

	// Base the size on the target width first; fall back to the height
	// when that overflows the box.
	rw := w
	rh := int(math.Round(float64(w) / ratio))
	if rh > h {
		rh = h
		rw = int(math.Round(float64(h) * ratio))
	}

	return resample(src, rw, rh, Bilinear)
}

// ResizeFill resizes to cover w x h completely, preserving aspect
// ratio, and center-crops the excess.
func ResizeFill(src *Image, w, h int) (*Image, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrInvalidDimension, w, h)
	}
	if src.Empty() || w == 0 || h == 0 {
		return New(0, 0)
	}

	scale := math.Max(float64(w)/float64(src.Width), float64(h)/float64(src.Height))

	ow := int(math.Round(float64(src.Width) * scale))
	oh := int(math.Round(float64(src.Height) * scale))
	// Rounding must not leave the cover smaller than the box.
	if ow < w {
		ow = w
	}
	if oh < h {
		oh = h
	}

	cover, err := resample(src, ow, oh, Bilinear)
	if err != nil {
		return nil, err
	}

	return Crop(cover, w, h, Center, 0, 0)
}

// ResizeExact resizes to exactly w x h, ignoring aspect ratio.
func ResizeExact(src *Image, w, h int) (*Image, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrInvalidDimension, w, h)
	}
	if src.Empty() {
		return New(w, h)
	}

	return resample(src, w, h, Bilinear)
}

// ResizeExactWidth resizes to width w; the height follows the aspect ratio.
func ResizeExactWidth(src *Image, w int) (*Image, error) {
	if w < 0 {
		return nil, fmt.Errorf("%w: target width %d", ErrInvalidDimension, w)
	}
	if src.Empty() || w == 0 {
		return New(0, 0)
	}

	ratio := float64(src.Width) / float64(src.Height)
	h := int(math.Round(float64(w) / ratio))

	return resample(src, w, h, Bilinear)
}

// ResizeExactHeight resizes to height h; the width follows the aspect ratio.
func ResizeExactHeight(src *Image, h int) (*Image, error) {
	if h < 0 {
		return nil, fmt.Errorf("%w: target height %d", ErrInvalidDimension, h)
	}
	if src.Empty() || h == 0 {
		return New(0, 0)
	}

	ratio := float64(src.Width) / float64(src.Height)
	w := int(math.Round(float64(h) * ratio))

	return resample(src, w, h, Bilinear)
}

// Resample resizes src to exactly w x h with the given sampling
// algorithm. Exposed for callers that want nearest-neighbor output.
func Resample(src *Image, w, h int, interp Interpolation) (*Image, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrInvalidDimension, w, h)
	}

	return resample(src, w, h, interp)
}

func resample(src *Image, w, h int, interp Interpolation) (*Image, error) {
	dst, err := New(w, h)
	if err != nil {
		return nil, err
	}
	if dst.Empty() || src.Empty() {
		return dst, nil
	}

	if interp == Nearest {
		resampleNearest(src, dst)
	} else {
		resampleBilinear(src, dst)
	}

	return dst, nil
}

func resampleNearest(src, dst *Image) {
	xRatio := float64(src.Width) / float64(dst.Width)
	yRatio := float64(src.Height) / float64(dst.Height)

	for y := 0; y < dst.Height; y++ {
		sy := clampIndex(int(float64(y)*yRatio), src.Height)
		for x := 0; x < dst.Width; x++ {
			sx := clampIndex(int(float64(x)*xRatio), src.Width)

			si := src.offset(sx, sy)
			di := dst.offset(x, y)
			copy(dst.Bytes[di:di+channels], src.Bytes[si:si+channels])
		}
	}
}

func resampleBilinear(src, dst *Image) {
	xRatio := float64(src.Width) / float64(dst.Width)
	yRatio := float64(src.Height) / float64(dst.Height)

	for y := 0; y < dst.Height; y++ {
		fy := float64(y) * yRatio
		y0 := clampIndex(int(math.Floor(fy)), src.Height)
		y1 := clampIndex(y0+1, src.Height)
		ty := fy - float64(y0)

		for x := 0; x < dst.Width; x++ {
			fx := float64(x) * xRatio
			x0 := clampIndex(int(math.Floor(fx)), src.Width)
			x1 := clampIndex(x0+1, src.Width)
			tx := fx - float64(x0)

			i00 := src.offset(x0, y0)
			i10 := src.offset(x1, y0)
			i01 := src.offset(x0, y1)
			i11 := src.offset(x1, y1)
			di := dst.offset(x, y)

			for c := 0; c < channels; c++ {
				top := float64(src.Bytes[i00+c])*(1-tx) + float64(src.Bytes[i10+c])*tx
				bottom := float64(src.Bytes[i01+c])*(1-tx) + float64(src.Bytes[i11+c])*tx
				dst.Bytes[di+c] = uint8(math.Round(top*(1-ty) + bottom*ty))
			}
		}
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}

	return i
}
