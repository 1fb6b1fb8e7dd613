package raster

import (
	"errors"
	"testing"
)

func TestAnchorResolve(t *testing.T) {
	// 20x10 region on a 100x100 canvas.
	tests := []struct {
		anchor       Anchor
		wantX, wantY int
	}{
		{TopLeft, 0, 0},
		{TopCenter, 40, 0},
		{TopRight, 80, 0},
		{CenterLeft, 0, 45},
		{Center, 40, 45},
		{CenterRight, 80, 45},
		{BottomLeft, 0, 90},
		{BottomCenter, 40, 90},
		{BottomRight, 80, 90},
	}

	for _, tt := range tests {
		t.Run(tt.anchor.String(), func(t *testing.T) {
			x, y := tt.anchor.Resolve(100, 100, 20, 10, 0, 0)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Resolve = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestAnchorResolveOffsets(t *testing.T) {
	x, y := Center.Resolve(100, 100, 20, 10, -5, 7)
	if x != 35 || y != 52 {
		t.Errorf("Resolve with offsets = (%d, %d), want (35, 52)", x, y)
	}
}

func TestParseAnchor(t *testing.T) {
	a, err := ParseAnchor("bottom-center")
	if err != nil {
		t.Fatalf("ParseAnchor: %v", err)
	}
	if a != BottomCenter {
		t.Errorf("ParseAnchor = %v, want BottomCenter", a)
	}

	if _, err := ParseAnchor("middle"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("unknown anchor error = %v, want ErrInvalidParameter", err)
	}
}
