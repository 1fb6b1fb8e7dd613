package raster

import (
	"errors"
	"math"
	"testing"
)

func TestCropFullDimensions(t *testing.T) {
	src := testPattern(t, 8, 5)

	got, err := Crop(src, 8, 5, TopLeft, 0, 0)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if !Equal(got, src) {
		t.Error("cropping to the full dimensions should be pixel-equal to the source")
	}
}

func TestCropAnchors(t *testing.T) {
	src := testPattern(t, 4, 4)

	tests := []struct {
		name           string
		anchor         Anchor
		wantX, wantY   int // source coordinate of the crop's (0, 0)
	}{
		{name: "top-left", anchor: TopLeft, wantX: 0, wantY: 0},
		{name: "center", anchor: Center, wantX: 1, wantY: 1},
		{name: "bottom-right", anchor: BottomRight, wantX: 2, wantY: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Crop(src, 2, 2, tt.anchor, 0, 0)
			if err != nil {
				t.Fatalf("Crop: %v", err)
			}
			if got.Width != 2 || got.Height != 2 {
				t.Fatalf("dimensions = %dx%d, want 2x2", got.Width, got.Height)
			}

			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					want, err := src.GetPixel(tt.wantX+x, tt.wantY+y)
					if err != nil {
						t.Fatal(err)
					}
					have, err := got.GetPixel(x, y)
					if err != nil {
						t.Fatal(err)
					}
					if have != want {
						t.Fatalf("pixel (%d, %d) = %+v, want %+v", x, y, have, want)
					}
				}
			}
		})
	}
}

func TestCropClamped(t *testing.T) {
	src := testPattern(t, 4, 4)

	got, err := Crop(src, 10, 10, TopLeft, 0, 0)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if !Equal(got, src) {
		t.Error("an oversized crop window should clamp to the source")
	}

	offset, err := Crop(src, 10, 10, TopLeft, 2, 3)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if offset.Width != 2 || offset.Height != 1 {
		t.Errorf("offset crop = %dx%d, want 2x1", offset.Width, offset.Height)
	}
}

func TestCropHugeWindow(t *testing.T) {
	src := testPattern(t, 10, 10)

	// x+w overflows int; the window must still clamp to the source edge
	got, err := CropRect(src, 1, 1, math.MaxInt, math.MaxInt)
	if err != nil {
		t.Fatalf("CropRect: %v", err)
	}
	if got.Width != 9 || got.Height != 9 {
		t.Fatalf("huge crop window = %dx%d, want the clamped 9x9", got.Width, got.Height)
	}

	p, err := got.GetPixel(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	want, err := src.GetPixel(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if p != want {
		t.Errorf("clamped crop origin = %+v, want source pixel (1,1) %+v", p, want)
	}

	full, err := CropRect(src, -5, -5, math.MaxInt, math.MaxInt)
	if err != nil {
		t.Fatalf("CropRect: %v", err)
	}
	if !Equal(full, src) {
		t.Error("a huge window from a negative origin should clamp to the whole source")
	}
}

func TestCropOutside(t *testing.T) {
	src := testPattern(t, 4, 4)

	got, err := CropRect(src, 100, 100, 10, 10)
	if err != nil {
		t.Fatalf("CropRect: %v", err)
	}
	if !got.Empty() {
		t.Errorf("crop entirely outside the source = %dx%d, want zero-area", got.Width, got.Height)
	}

	negative, err := CropRect(src, -10, -10, 5, 5)
	if err != nil {
		t.Fatalf("CropRect: %v", err)
	}
	if !negative.Empty() {
		t.Errorf("crop entirely before the origin = %dx%d, want zero-area", negative.Width, negative.Height)
	}
}

func TestCropInvalid(t *testing.T) {
	src := testPattern(t, 4, 4)

	if _, err := Crop(src, -1, 2, TopLeft, 0, 0); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("negative crop width error = %v, want ErrInvalidDimension", err)
	}
}
