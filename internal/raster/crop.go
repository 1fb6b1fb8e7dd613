package raster

import "fmt"

// Crop copies a w x h window of src, placed by anchor and pixel
// offsets, into a new image. The window is clamped to the source
// bounds; a window entirely outside the source yields a zero-area
// image.
func Crop(src *Image, w, h int, anchor Anchor, offsetX, offsetY int) (*Image, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: crop %dx%d", ErrInvalidDimension, w, h)
	}

	x, y := anchor.Resolve(src.Width, src.Height, w, h, offsetX, offsetY)

	return CropRect(src, x, y, w, h)
}

// CropRect copies the absolute region (x, y, w, h) of src into a new
// image, clamped to the source bounds.
func CropRect(src *Image, x, y, w, h int) (*Image, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: crop %dx%d", ErrInvalidDimension, w, h)
	}

	x0 := max(x, 0)
	y0 := max(y, 0)

	// x+w can overflow for huge windows; a wrapped sum clamps to the edge.
	x1 := x + w
	if x1 < x || x1 > src.Width {
		x1 = src.Width
	}
	y1 := y + h
	if y1 < y || y1 > src.Height {
		y1 = src.Height
	}

	if x1 <= x0 || y1 <= y0 {
		return New(0, 0)
	}

	dst, err := New(x1-x0, y1-y0)
	if err != nil {
		return nil, err
	}

	rowLen := dst.Width * channels
	for row := 0; row < dst.Height; row++ {
		si := src.offset(x0, y0+row)
		di := dst.offset(0, row)
		copy(dst.Bytes[di:di+rowLen], src.Bytes[si:si+rowLen])
	}

	return dst, nil
}
