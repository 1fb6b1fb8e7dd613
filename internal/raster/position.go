package raster

import "fmt"

// Anchor is a symbolic reference point used to place a region (crop
// window, blended image) against a canvas.
type Anchor int

const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

var anchorNames = map[string]Anchor{
	"top-left":      TopLeft,
	"top-center":    TopCenter,
	"top-right":     TopRight,
	"center-left":   CenterLeft,
	"center":        Center,
	"center-right":  CenterRight,
	"bottom-left":   BottomLeft,
	"bottom-center": BottomCenter,
	"bottom-right":  BottomRight,
}

// ParseAnchor resolves names like "top-left" or "center" as used in
// transformation payloads.
func ParseAnchor(s string) (Anchor, error) {
	a, ok := anchorNames[s]
	if !ok {
		return TopLeft, fmt.Errorf("%w: unknown anchor %q", ErrInvalidParameter, s)
	}

	return a, nil
}

func (a Anchor) String() string {
	for name, anchor := range anchorNames {
		if anchor == a {
			return name
		}
	}

	return "top-left"
}

// Resolve computes the top-left (x, y) of a w x h region placed on a
// cw x ch canvas, with the pixel offsets added afterwards.
func (a Anchor) Resolve(cw, ch, w, h, offsetX, offsetY int) (int, int) {
	var x, y int

	switch a {
	case TopCenter:
		x = cw/2 - w/2
	case TopRight:
		x = cw - w
	case CenterLeft:
		y = ch/2 - h/2
	case Center:
		x = cw/2 - w/2
		y = ch/2 - h/2
	case CenterRight:
		x = cw - w
		y = ch/2 - h/2
	case BottomLeft:
		y = ch - h
	case BottomCenter:
		x = cw/2 - w/2
		y = ch - h
	case BottomRight:
		x = cw - w
		y = ch - h
	}

	return x + offsetX, y + offsetY
}
