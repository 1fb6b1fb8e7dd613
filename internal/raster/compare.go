package raster

import "fmt"

// Equal reports whether both images have the same dimensions and every
// pixel matches on all four channels.
func Equal(a, b *Image) bool {
	if a.Width != b.Width || a.Height != b.Height {
		return false
	}

	for i := range a.Bytes {
		if a.Bytes[i] != b.Bytes[i] {
			return false
		}
	}

	return true
}

// Similarity scores how close two equally sized images are. The total
// per-channel absolute difference is normalized against the maximum
// possible difference: 1.0 means identical, 0.0 maximally different.
// Two zero-area images of equal dimensions score 1.0.
func Similarity(a, b *Image) (float64, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return 0, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, a.Width, a.Height, b.Width, b.Height)
	}

	if len(a.Bytes) == 0 {
		return 1, nil
	}

	var total int64
	for i := range a.Bytes {
		d := int64(a.Bytes[i]) - int64(b.Bytes[i])
		if d < 0 {
			d = -d
		}
		total += d
	}

	maxDiff := int64(255) * int64(len(a.Bytes))

	return 1 - float64(total)/float64(maxDiff), nil
}
