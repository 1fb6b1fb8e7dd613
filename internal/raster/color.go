package raster

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is a single RGBA pixel value. Channels range 0-255.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex parses a "#RRGGBB" or "#RRGGBBAA" color string.
func Hex(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("%w: hex color %q must start with '#'", ErrInvalidParameter, s)
	}

	digits := s[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("%w: hex color %q must have 6 or 8 digits", ErrInvalidParameter, s)
	}

	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("%w: hex color %q: %v", ErrInvalidParameter, s, err)
	}

	if len(digits) == 6 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}

	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Black, White and Transparent are the colors the engine reaches for
// internally (borders, blank canvases).
func Black() Color       { return RGB(0, 0, 0) }
func White() Color       { return RGB(255, 255, 255) }
func Transparent() Color { return Color{} }

// ToHSV converts RGB channels to hue (0-360), saturation (0-100) and
// value (0-100).
func ToHSV(r, g, b uint8) (int, float64, float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	delta := max - min

	var h float64
	switch {
	case delta == 0:
		h = 0
	case max == rf:
		h = 60 * math.Mod((gf-bf)/delta, 6)
	case max == gf:
		h = 60 * ((bf-rf)/delta + 2)
	default:
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if max > 0 {
		s = delta / max * 100
	}

	return int(math.Round(h)), s, max * 100
}

// ToRGB converts hue (0-360), saturation (0-100) and value (0-100)
// back to RGB channels.
func ToRGB(h int, s, v float64) (uint8, uint8, uint8) {
	sf := s / 100
	vf := v / 100

	c := vf * sf
	hf := float64(h) / 60
	x := c * (1 - math.Abs(math.Mod(hf, 2)-1))
	m := vf - c

	var rf, gf, bf float64
	switch {
	case hf < 1:
		rf, gf, bf = c, x, 0
	case hf < 2:
		rf, gf, bf = x, c, 0
	case hf < 3:
		rf, gf, bf = 0, c, x
	case hf < 4:
		rf, gf, bf = 0, x, c
	case hf < 5:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	r := uint8(math.Round((rf + m) * 255))
	g := uint8(math.Round((gf + m) * 255))
	b := uint8(math.Round((bf + m) * 255))

	return r, g, b
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}

	return uint8(math.Round(v))
}
