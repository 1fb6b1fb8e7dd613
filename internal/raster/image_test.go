package raster

import (
	"errors"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr error
	}{
		{name: "regular", w: 3, h: 2},
		{name: "zero area", w: 0, h: 0},
		{name: "zero width", w: 0, h: 5},
		{name: "negative width", w: -1, h: 5, wantErr: ErrInvalidDimension},
		{name: "negative height", w: 5, h: -1, wantErr: ErrInvalidDimension},
		{name: "overflow", w: math.MaxInt / 2, h: 3, wantErr: ErrInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := New(tt.w, tt.h)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New(%d, %d) error = %v, want %v", tt.w, tt.h, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d, %d) unexpected error: %v", tt.w, tt.h, err)
			}
			if len(img.Bytes) != tt.w*tt.h*4 {
				t.Errorf("buffer length = %d, want %d", len(img.Bytes), tt.w*tt.h*4)
			}
			for i, b := range img.Bytes {
				if b != 0 {
					t.Fatalf("byte %d = %d, want zero-initialized buffer", i, b)
				}
			}
		})
	}
}

func TestFromBytes(t *testing.T) {
	if _, err := FromBytes(2, 2, make([]byte, 16)); err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if _, err := FromBytes(2, 2, make([]byte, 15)); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("short buffer error = %v, want ErrInvalidDimension", err)
	}
}

func TestPixelAccess(t *testing.T) {
	img, err := New(2, 2)
	if err != nil {
		t.Fatal(err)
	}

	red := RGB(255, 0, 0)
	if err := img.SetPixel(1, 0, red); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}

	got, err := img.GetPixel(1, 0)
	if err != nil {
		t.Fatalf("GetPixel: %v", err)
	}
	if got != red {
		t.Errorf("GetPixel = %+v, want %+v", got, red)
	}

	outOfBounds := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, p := range outOfBounds {
		if _, err := img.GetPixel(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("GetPixel(%d, %d) error = %v, want ErrOutOfBounds", p[0], p[1], err)
		}
		if err := img.SetPixel(p[0], p[1], red); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetPixel(%d, %d) error = %v, want ErrOutOfBounds", p[0], p[1], err)
		}
	}
}

func TestFill(t *testing.T) {
	img, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}

	c := RGBA(10, 20, 30, 40)
	img.Fill(c)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			got, err := img.GetPixel(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if got != c {
				t.Fatalf("pixel (%d, %d) = %+v, want %+v", x, y, got, c)
			}
		}
	}
}

func TestClone(t *testing.T) {
	img, err := NewFilled(2, 2, RGB(1, 2, 3))
	if err != nil {
		t.Fatal(err)
	}

	clone := img.Clone()
	if !Equal(img, clone) {
		t.Fatal("clone differs from the original")
	}

	if err := clone.SetPixel(0, 0, RGB(9, 9, 9)); err != nil {
		t.Fatal(err)
	}
	if Equal(img, clone) {
		t.Error("mutating the clone changed the original")
	}
}
