package raster

import (
	"fmt"
	"math"
)

// Kernel-backed filters. Each returns a new image.

// BlurBox applies a 3x3 box blur.
func BlurBox(src *Image) (*Image, error) {
	return Convolve(src, KernelBoxBlur)
}

// BlurGaussian applies a 3x3 gaussian blur.
func BlurGaussian(src *Image) (*Image, error) {
	return Convolve(src, KernelGaussianBlur)
}

// Sharpen accentuates edges.
func Sharpen(src *Image) (*Image, error) {
	return Convolve(src, KernelSharpen)
}

// EdgeDetect keeps only the edges.
func EdgeDetect(src *Image) (*Image, error) {
	return Convolve(src, KernelEdgeDetect)
}

// Emboss gives a raised relief look.
func Emboss(src *Image) (*Image, error) {
	return Convolve(src, KernelEmboss)
}

// Pixel-wise filters. These have no neighborhood access and bypass the
// convolution path. Each returns a new image of the same dimensions;
// the alpha channel passes through untouched unless noted.

func mapPixels(src *Image, f func(r, g, b uint8) (uint8, uint8, uint8)) *Image {
	dst := src.Clone()
	for i := 0; i < len(dst.Bytes); i += channels {
		dst.Bytes[i], dst.Bytes[i+1], dst.Bytes[i+2] = f(dst.Bytes[i], dst.Bytes[i+1], dst.Bytes[i+2])
	}

	return dst
}

// Brightness adds offset to every color channel, clamping to [0, 255].
func Brightness(src *Image, offset int) *Image {
	return mapPixels(src, func(r, g, b uint8) (uint8, uint8, uint8) {
		return clampChannel(float64(int(r) + offset)),
			clampChannel(float64(int(g) + offset)),
			clampChannel(float64(int(b) + offset))
	})
}

// Contrast scales every color channel around the midpoint 128.
// A factor of 1 leaves the image unchanged, 0 flattens it to gray.
func Contrast(src *Image, factor float64) (*Image, error) {
	if factor < 0 || math.IsNaN(factor) {
		return nil, fmt.Errorf("%w: contrast factor %v must be non-negative", ErrInvalidParameter, factor)
	}

	return mapPixels(src, func(r, g, b uint8) (uint8, uint8, uint8) {
		return clampChannel((float64(r)-128)*factor + 128),
			clampChannel((float64(g)-128)*factor + 128),
			clampChannel((float64(b)-128)*factor + 128)
	}), nil
}

// Saturation blends every pixel toward its luminance gray. An amount
// of 1 leaves the image unchanged, 0 is full grayscale, values above 1
// push the colors apart.
func Saturation(src *Image, amount float64) (*Image, error) {
	if amount < 0 || math.IsNaN(amount) {
		return nil, fmt.Errorf("%w: saturation amount %v must be non-negative", ErrInvalidParameter, amount)
	}

	return mapPixels(src, func(r, g, b uint8) (uint8, uint8, uint8) {
		gray := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
		return clampChannel(gray + (float64(r)-gray)*amount),
			clampChannel(gray + (float64(g)-gray)*amount),
			clampChannel(gray + (float64(b)-gray)*amount)
	}), nil
}

// HueRotate remixes the color channels, rotating every pixel's hue by
// the given angle in degrees around the gray axis.
func HueRotate(src *Image, degrees float64) *Image {
	rad := degrees * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	// Luminance-preserving hue rotation matrix.
	m := [3][3]float64{
		{0.213 + cos*0.787 - sin*0.213, 0.715 - cos*0.715 - sin*0.715, 0.072 - cos*0.072 + sin*0.928},
		{0.213 - cos*0.213 + sin*0.143, 0.715 + cos*0.285 + sin*0.140, 0.072 - cos*0.072 - sin*0.283},
		{0.213 - cos*0.213 - sin*0.787, 0.715 - cos*0.715 + sin*0.715, 0.072 + cos*0.928 + sin*0.072},
	}

	return mapPixels(src, func(r, g, b uint8) (uint8, uint8, uint8) {
		rf, gf, bf := float64(r), float64(g), float64(b)
		return clampChannel(m[0][0]*rf + m[0][1]*gf + m[0][2]*bf),
			clampChannel(m[1][0]*rf + m[1][1]*gf + m[1][2]*bf),
			clampChannel(m[2][0]*rf + m[2][1]*gf + m[2][2]*bf)
	})
}

// Grayscale replaces the color channels with their luminance-weighted
// average. Applying it twice is a no-op.
func Grayscale(src *Image) *Image {
	return mapPixels(src, func(r, g, b uint8) (uint8, uint8, uint8) {
		// Integer weights keep gray inputs exactly fixed.
		lum := uint8((299*int(r) + 587*int(g) + 114*int(b) + 500) / 1000)
		return lum, lum, lum
	})
}

// Invert flips every color channel.
func Invert(src *Image) *Image {
	return mapPixels(src, func(r, g, b uint8) (uint8, uint8, uint8) {
		return 255 - r, 255 - g, 255 - b
	})
}

// Sepia applies the classic warm brown remix.
func Sepia(src *Image) *Image {
	return mapPixels(src, func(r, g, b uint8) (uint8, uint8, uint8) {
		rf, gf, bf := float64(r), float64(g), float64(b)
		return clampChannel(0.393*rf + 0.769*gf + 0.189*bf),
			clampChannel(0.349*rf + 0.686*gf + 0.168*bf),
			clampChannel(0.272*rf + 0.534*gf + 0.131*bf)
	})
}

// Gamma applies gamma correction to the color channels.
func Gamma(src *Image, gamma float64) (*Image, error) {
	if gamma <= 0 || math.IsNaN(gamma) {
		return nil, fmt.Errorf("%w: gamma %v must be positive", ErrInvalidParameter, gamma)
	}

	inv := 1 / gamma

	return mapPixels(src, func(r, g, b uint8) (uint8, uint8, uint8) {
		return clampChannel(math.Pow(float64(r)/255, inv) * 255),
			clampChannel(math.Pow(float64(g)/255, inv) * 255),
			clampChannel(math.Pow(float64(b)/255, inv) * 255)
	}), nil
}
