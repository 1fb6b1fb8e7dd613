package raster

import "math"

// FlipHorizontal mirrors the image across its vertical axis in place.
func FlipHorizontal(img *Image) {
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width/2; x++ {
			swapPixels(img, x, y, img.Width-1-x, y)
		}
	}
}

// FlipVertical mirrors the image across its horizontal axis in place.
func FlipVertical(img *Image) {
	for y := 0; y < img.Height/2; y++ {
		for x := 0; x < img.Width; x++ {
			swapPixels(img, x, y, x, img.Height-1-y)
		}
	}
}

func swapPixels(img *Image, x1, y1, x2, y2 int) {
	i := img.offset(x1, y1)
	j := img.offset(x2, y2)
	for c := 0; c < channels; c++ {
		img.Bytes[i+c], img.Bytes[j+c] = img.Bytes[j+c], img.Bytes[i+c]
	}
}

// Rotate rotates the image clockwise by the given degrees around its
// top-left corner, growing the canvas to hold the result. Uncovered
// canvas pixels take the background color. Negative degrees rotate
// counter-clockwise.
func Rotate(src *Image, degrees int, background Color) *Image {
	if src.Empty() {
		return src.Clone()
	}

	// Project the corners to find the bounding box of the rotated image.
	minX, maxX, minY, maxY := 0, 0, 0, 0
	for _, corner := range [3][2]int{{src.Width, 0}, {src.Width, src.Height}, {0, src.Height}} {
		x, y := rotatePoint(corner[0], corner[1], float64(degrees))
		minX = min(minX, x)
		maxX = max(maxX, x)
		minY = min(minY, y)
		maxY = max(maxY, y)
	}

	w := maxX - minX + 1
	h := maxY - minY + 1
	dst := &Image{Width: w, Height: h, Bytes: make([]byte, w*h*channels)}
	dst.Fill(background)

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			sx, sy := rotatePoint(dx+minX, dy+minY, float64(-degrees))
			if !src.inBounds(sx, sy) {
				continue
			}

			si := src.offset(sx, sy)
			di := dst.offset(dx, dy)
			copy(dst.Bytes[di:di+channels], src.Bytes[si:si+channels])
		}
	}

	return dst
}

func rotatePoint(x, y int, degrees float64) (int, int) {
	rad := degrees * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	rx := math.Round(float64(x)*cos - float64(y)*sin)
	ry := math.Round(float64(x)*sin + float64(y)*cos)

	return int(rx), int(ry)
}
