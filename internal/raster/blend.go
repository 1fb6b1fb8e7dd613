package raster

import (
	"fmt"
	"math"
)

// BlendMode is the per-channel combination rule applied when
// compositing a source image onto a destination.
type BlendMode int

const (
	// BlendNormal replaces the destination channel with the source channel.
	BlendNormal BlendMode = iota
	// BlendDifference takes the absolute channel difference.
	BlendDifference
	// BlendMultiply multiplies the channels (dst * src / 255).
	BlendMultiply
	// BlendOverlay multiplies dark destinations and screens light ones.
	BlendOverlay
	// BlendScreen inverts, multiplies and inverts again.
	BlendScreen
)

var blendModeNames = map[string]BlendMode{
	"normal":     BlendNormal,
	"difference": BlendDifference,
	"multiply":   BlendMultiply,
	"overlay":    BlendOverlay,
	"screen":     BlendScreen,
}

// ParseBlendMode resolves mode names used in transformation payloads.
func ParseBlendMode(s string) (BlendMode, error) {
	m, ok := blendModeNames[s]
	if !ok {
		return BlendNormal, fmt.Errorf("%w: unknown blend mode %q", ErrInvalidParameter, s)
	}

	return m, nil
}

// Blend composites src onto dst in place, placing src by anchor and
// pixel offsets against the destination canvas.
func Blend(dst, src *Image, mode BlendMode, opacity float64, anchor Anchor, offsetX, offsetY int) error {
	x, y := anchor.Resolve(dst.Width, dst.Height, src.Width, src.Height, offsetX, offsetY)

	return BlendAt(dst, src, mode, opacity, x, y)
}

// BlendAt composites src onto dst in place with src's top-left corner
// at (x, y). Source pixels falling outside the destination are
// skipped. Opacity must be within [0, 1] and is scaled per pixel by
// the source alpha; the destination alpha is combined with standard
// over-compositing.
func BlendAt(dst, src *Image, mode BlendMode, opacity float64, x, y int) error {
	if opacity < 0 || opacity > 1 || math.IsNaN(opacity) {
		return fmt.Errorf("%w: opacity %v outside [0, 1]", ErrInvalidParameter, opacity)
	}
	if _, ok := blendChannel(mode); !ok {
		return fmt.Errorf("%w: unknown blend mode %d", ErrInvalidParameter, mode)
	}

	// Overlapping region in source coordinates.
	sx0 := max(0, -x)
	sy0 := max(0, -y)
	sx1 := min(src.Width, dst.Width-x)
	sy1 := min(src.Height, dst.Height-y)
	if sx1 <= sx0 || sy1 <= sy0 {
		return nil
	}

	f, _ := blendChannel(mode)

	for sy := sy0; sy < sy1; sy++ {
		for sx := sx0; sx < sx1; sx++ {
			si := src.offset(sx, sy)
			di := dst.offset(x+sx, y+sy)

			srcA := float64(src.Bytes[si+3]) / 255
			dstA := float64(dst.Bytes[di+3]) / 255
			ea := srcA * opacity // effective per-pixel opacity

			for c := 0; c < 3; c++ {
				d := float64(dst.Bytes[di+c])
				s := float64(src.Bytes[si+c])
				blended := f(d, s)
				dst.Bytes[di+c] = clampChannel(d*(1-ea) + blended*ea)
			}

			outA := ea + dstA*(1-ea)
			dst.Bytes[di+3] = clampChannel(outA * 255)
		}
	}

	return nil
}

// blendChannel returns the per-channel rule for mode. Channel values
// are in the 0-255 range throughout.
func blendChannel(mode BlendMode) (func(dst, src float64) float64, bool) {
	switch mode {
	case BlendNormal:
		return func(_, src float64) float64 { return src }, true
	case BlendDifference:
		return func(dst, src float64) float64 { return math.Abs(dst - src) }, true
	case BlendMultiply:
		return func(dst, src float64) float64 { return dst * src / 255 }, true
	case BlendOverlay:
		return func(dst, src float64) float64 {
			if dst < 128 {
				return 2 * dst * src / 255
			}
			return 255 - 2*(255-dst)*(255-src)/255
		}, true
	case BlendScreen:
		return func(dst, src float64) float64 {
			return 255 - (255-dst)*(255-src)/255
		}, true
	default:
		return nil, false
	}
}
