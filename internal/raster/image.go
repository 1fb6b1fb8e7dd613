// Package raster implements an in-memory RGBA image and the pixel
// transforms the service applies to it: resizing, cropping, blending,
// convolution filters and image comparison. All operations work on
// decoded pixel buffers; encoding and decoding live in internal/codec.
package raster

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidDimension  = errors.New("invalid image dimension")
	ErrOutOfBounds       = errors.New("pixel out of bounds")
	ErrDimensionMismatch = errors.New("image dimensions do not match")
	ErrInvalidParameter  = errors.New("invalid parameter")
)

const channels = 4 // RGBA

// Image is a decoded raster image. Bytes holds width*height RGBA
// quadruplets in row-major order. A zero-area image is valid.
type Image struct {
	Width  int
	Height int
	Bytes  []byte
}

// New creates a zero-initialized (fully transparent black) image.
func New(w, h int) (*Image, error) {
	size, err := bufferSize(w, h)
	if err != nil {
		return nil, err
	}

	return &Image{
		Width:  w,
		Height: h,
		Bytes:  make([]byte, size),
	}, nil
}

// NewFilled creates an image with every pixel set to c.
func NewFilled(w, h int, c Color) (*Image, error) {
	img, err := New(w, h)
	if err != nil {
		return nil, err
	}
	img.Fill(c)

	return img, nil
}

// FromBytes wraps an existing RGBA buffer. The buffer is used as-is,
// not copied; its length must be exactly w*h*4.
func FromBytes(w, h int, bytes []byte) (*Image, error) {
	size, err := bufferSize(w, h)
	if err != nil {
		return nil, err
	}

	if len(bytes) != size {
		return nil, fmt.Errorf("%w: buffer length %d does not match %dx%d", ErrInvalidDimension, len(bytes), w, h)
	}

	return &Image{
		Width:  w,
		Height: h,
		Bytes:  bytes,
	}, nil
}

func bufferSize(w, h int) (int, error) {
	if w < 0 || h < 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}

	if w > 0 && h > math.MaxInt/channels/w {
		return 0, fmt.Errorf("%w: %dx%d overflows buffer size", ErrInvalidDimension, w, h)
	}

	return w * h * channels, nil
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	bytes := make([]byte, len(img.Bytes))
	copy(bytes, img.Bytes)

	return &Image{
		Width:  img.Width,
		Height: img.Height,
		Bytes:  bytes,
	}
}

// Empty reports whether the image has no pixels.
func (img *Image) Empty() bool {
	return img.Width == 0 || img.Height == 0
}

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.Width && y < img.Height
}

func (img *Image) offset(x, y int) int {
	return (y*img.Width + x) * channels
}

// GetPixel returns the color at (x, y).
func (img *Image) GetPixel(x, y int) (Color, error) {
	if !img.inBounds(x, y) {
		return Color{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, img.Width, img.Height)
	}

	i := img.offset(x, y)

	return Color{
		R: img.Bytes[i],
		G: img.Bytes[i+1],
		B: img.Bytes[i+2],
		A: img.Bytes[i+3],
	}, nil
}

// SetPixel sets the color at (x, y).
func (img *Image) SetPixel(x, y int, c Color) error {
	if !img.inBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, img.Width, img.Height)
	}

	i := img.offset(x, y)
	img.Bytes[i] = c.R
	img.Bytes[i+1] = c.G
	img.Bytes[i+2] = c.B
	img.Bytes[i+3] = c.A

	return nil
}

// Fill overwrites every pixel with c.
func (img *Image) Fill(c Color) {
	for i := 0; i < len(img.Bytes); i += channels {
		img.Bytes[i] = c.R
		img.Bytes[i+1] = c.G
		img.Bytes[i+2] = c.B
		img.Bytes[i+3] = c.A
	}
}
