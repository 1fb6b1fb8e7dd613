package raster

import (
	"errors"
	"testing"
)

func TestNewKernelValidation(t *testing.T) {
	tests := []struct {
		name   string
		matrix [][]float64
		ok     bool
	}{
		{name: "3x3", matrix: [][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}, ok: true},
		{name: "1x1", matrix: [][]float64{{1}}, ok: true},
		{name: "5x5", matrix: make5x5(), ok: true},
		{name: "empty", matrix: nil},
		{name: "even size", matrix: [][]float64{{1, 1}, {1, 1}}},
		{name: "ragged", matrix: [][]float64{{1, 1, 1}, {1, 1}, {1, 1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKernel(tt.matrix)
			if tt.ok && err != nil {
				t.Errorf("NewKernel: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("NewKernel error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func make5x5() [][]float64 {
	m := make([][]float64, 5)
	for i := range m {
		m[i] = make([]float64, 5)
	}
	m[2][2] = 1

	return m
}

func TestConvolveIdentity(t *testing.T) {
	src := testPattern(t, 5, 4)

	identity, err := NewKernel([][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}})
	if err != nil {
		t.Fatal(err)
	}

	got, err := Convolve(src, identity)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	if !Equal(got, src) {
		t.Error("the identity kernel should reproduce the source exactly")
	}
}

func TestConvolveUniform(t *testing.T) {
	src, err := NewFilled(5, 5, RGB(90, 120, 30))
	if err != nil {
		t.Fatal(err)
	}

	blurred, err := BlurBox(src)
	if err != nil {
		t.Fatalf("BlurBox: %v", err)
	}
	if !Equal(blurred, src) {
		t.Error("box blur of a uniform image should be unchanged")
	}

	sharpened, err := Sharpen(src)
	if err != nil {
		t.Fatalf("Sharpen: %v", err)
	}
	if !Equal(sharpened, src) {
		t.Error("sharpening a uniform image should be unchanged")
	}
}

func TestConvolveAverages(t *testing.T) {
	// 3x3 image, all black except a 90-value center: box blur spreads
	// the center into every pixel as 90/9 = 10.
	src, err := NewFilled(3, 3, RGBA(0, 0, 0, 255))
	if err != nil {
		t.Fatal(err)
	}
	if err := src.SetPixel(1, 1, RGBA(90, 90, 90, 255)); err != nil {
		t.Fatal(err)
	}

	got, err := BlurBox(src)
	if err != nil {
		t.Fatalf("BlurBox: %v", err)
	}

	center, err := got.GetPixel(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if center.R != 10 {
		t.Errorf("blurred center = %d, want 10", center.R)
	}
}

func TestConvolveBorderFill(t *testing.T) {
	src, err := NewFilled(1, 1, RGBA(255, 255, 255, 255))
	if err != nil {
		t.Fatal(err)
	}

	// Clamp-to-edge sees white everywhere.
	clamped, err := Convolve(src, KernelBoxBlur)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	p, err := clamped.GetPixel(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.R != 255 {
		t.Errorf("clamp border = %d, want 255", p.R)
	}

	// A black border leaves one white pixel out of nine: 255/9 = 28.
	filled, err := ConvolveBorder(src, KernelBoxBlur, BorderFill(Color{}))
	if err != nil {
		t.Fatalf("ConvolveBorder: %v", err)
	}
	p, err = filled.GetPixel(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.R != 28 {
		t.Errorf("filled border = %d, want 28", p.R)
	}
}

func TestConvolveEmpty(t *testing.T) {
	empty, err := New(0, 0)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Convolve(empty, KernelGaussianBlur)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	if !got.Empty() {
		t.Error("convolving a zero-area image should stay zero-area")
	}
}

func TestConvolveZeroSumDivisor(t *testing.T) {
	// Edge detection weights sum to zero; a uniform image must come out
	// flat zero rather than dividing by zero.
	src, err := NewFilled(4, 4, RGBA(77, 77, 77, 255))
	if err != nil {
		t.Fatal(err)
	}

	got, err := EdgeDetect(src)
	if err != nil {
		t.Fatalf("EdgeDetect: %v", err)
	}

	p, err := got.GetPixel(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if p.R != 0 || p.G != 0 || p.B != 0 {
		t.Errorf("edge-detected uniform interior = %+v, want black", p)
	}
}
