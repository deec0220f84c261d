package gm

import (
	"fmt"
)

// Rect is an axis aligned rectangle. Min holds the smaller coordinates.
type Rect struct {
	Min, Max Vec
}

func RectWithCenterAndSize(center, size Vec) Rect {
	half := size.Mul(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// RectEnclosing returns the smallest rect containing all points.
// Without points it returns the zero rect.
func RectEnclosing(points ...Vec) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	bounds := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		bounds.Min = Vec{X: min(bounds.Min.X, p.X), Y: min(bounds.Min.Y, p.Y)}
		bounds.Max = Vec{X: max(bounds.Max.X, p.X), Y: max(bounds.Max.Y, p.Y)}
	}

	return bounds
}

// Intersects reports whether both rects overlap. Touching edges count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("rect(min=%s, max=%s)", r.Min, r.Max)
}
