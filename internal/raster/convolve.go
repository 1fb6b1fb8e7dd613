package raster

import "fmt"

// Kernel is a square, odd-sized convolution weight matrix. The
// normalization divisor is the sum of the weights, or 1 when the
// weights cancel out.
type Kernel struct {
	size    int
	weights []float64
}

// NewKernel builds a kernel from a square matrix of odd size.
func NewKernel(matrix [][]float64) (Kernel, error) {
	n := len(matrix)
	if n == 0 || n%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: kernel size %d must be odd and non-zero", ErrInvalidParameter, n)
	}

	weights := make([]float64, 0, n*n)
	for _, row := range matrix {
		if len(row) != n {
			return Kernel{}, fmt.Errorf("%w: kernel rows must all have length %d", ErrInvalidParameter, n)
		}
		weights = append(weights, row...)
	}

	return Kernel{size: n, weights: weights}, nil
}

// Size returns the kernel's side length.
func (k Kernel) Size() int { return k.size }

func (k Kernel) divisor() float64 {
	var sum float64
	for _, w := range k.weights {
		sum += w
	}
	if sum == 0 {
		return 1
	}

	return sum
}

func mustKernel(matrix [][]float64) Kernel {
	k, err := NewKernel(matrix)
	if err != nil {
		panic(err)
	}

	return k
}

// Built-in kernels for the stock filters.
var (
	KernelBoxBlur = mustKernel([][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	KernelGaussianBlur = mustKernel([][]float64{
		{1, 2, 1},
		{2, 4, 2},
		{1, 2, 1},
	})
	KernelSharpen = mustKernel([][]float64{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	})
	KernelEdgeDetect = mustKernel([][]float64{
		{-1, -1, -1},
		{-1, 8, -1},
		{-1, -1, -1},
	})
	KernelEmboss = mustKernel([][]float64{
		{-2, -1, 0},
		{-1, 1, 1},
		{0, 1, 2},
	})
)

// Border controls how the convolution reads neighbors that fall
// outside the image. The zero value clamps to the edge pixel.
type Border struct {
	fill  Color
	fixed bool
}

// BorderClamp extends the edge pixels outward. This is the default.
var BorderClamp = Border{}

// BorderFill substitutes a fixed color for out-of-image neighbors.
func BorderFill(c Color) Border {
	return Border{fill: c, fixed: true}
}

// Convolve applies the kernel to every pixel of src with clamp-to-edge
// borders and returns a new image of the same dimensions.
func Convolve(src *Image, k Kernel) (*Image, error) {
	return ConvolveBorder(src, k, BorderClamp)
}

// ConvolveBorder applies the kernel with an explicit border policy.
// All four channels are convolved; the weighted sums are divided by
// the kernel divisor and clamped to [0, 255].
func ConvolveBorder(src *Image, k Kernel, border Border) (*Image, error) {
	if k.size == 0 {
		return nil, fmt.Errorf("%w: empty kernel", ErrInvalidParameter)
	}

	dst, err := New(src.Width, src.Height)
	if err != nil {
		return nil, err
	}
	if src.Empty() {
		return dst, nil
	}

	half := k.size / 2
	div := k.divisor()
	fill := [channels]float64{
		float64(border.fill.R),
		float64(border.fill.G),
		float64(border.fill.B),
		float64(border.fill.A),
	}

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			var acc [channels]float64

			for ky := 0; ky < k.size; ky++ {
				sy := y + ky - half
				for kx := 0; kx < k.size; kx++ {
					sx := x + kx - half
					weight := k.weights[ky*k.size+kx]

					if src.inBounds(sx, sy) {
						si := src.offset(sx, sy)
						for c := 0; c < channels; c++ {
							acc[c] += float64(src.Bytes[si+c]) * weight
						}
					} else if border.fixed {
						for c := 0; c < channels; c++ {
							acc[c] += fill[c] * weight
						}
					} else {
						si := src.offset(clampIndex(sx, src.Width), clampIndex(sy, src.Height))
						for c := 0; c < channels; c++ {
							acc[c] += float64(src.Bytes[si+c]) * weight
						}
					}
				}
			}

			di := dst.offset(x, y)
			for c := 0; c < channels; c++ {
				dst.Bytes[di+c] = clampChannel(acc[c] / div)
			}
		}
	}

	return dst, nil
}
