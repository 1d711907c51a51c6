package entity

import (
	"image"
	"math"
)

// ID identifies a spawned entity. IDs are assigned monotonically by the
// spawner starting at 1; 0 is reserved for the round selector.
type ID uint16

// Point is a position in playfield space. The origin is the top-left corner
// and y grows downward.
type Point struct {
	X, Y float32
}

// NewPoint creates a point from integer pixel coordinates.
func NewPoint(x, y int) Point {
	return Point{X: float32(x), Y: float32(y)}
}

// Pixel floors the point to integer pixel coordinates.
func (p Point) Pixel() image.Point {
	return image.Point{
		X: int(math.Floor(float64(p.X))),
		Y: int(math.Floor(float64(p.Y))),
	}
}

// InRect reports whether p lies inside the rectangle anchored at corner.
// The height extends upward from the corner (toward smaller y); sprites are
// anchored at the top-left, so this matches the legacy hit-test convention
// rather than the draw rectangle.
func (p Point) InRect(corner Point, width, height uint8) bool {
	return p.X >= corner.X &&
		p.X <= corner.X+float32(width) &&
		p.Y <= corner.Y &&
		p.Y >= corner.Y-float32(height)
}

// Rect is an axis-aligned collision rectangle: top-left position plus size.
type Rect struct {
	Pos  Point
	Size Point
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{Pos: Point{X: x, Y: y}, Size: Point{X: w, Y: h}}
}

// Intersects reports whether r and o overlap. Rectangles that only share an
// edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	rRight := r.Pos.X + r.Size.X
	rBottom := r.Pos.Y + r.Size.Y
	oRight := o.Pos.X + o.Size.X
	oBottom := o.Pos.Y + o.Size.Y

	// Each far edge must lie strictly past the other rectangle's near edge.
	return rRight > o.Pos.X &&
		oRight > r.Pos.X &&
		rBottom > o.Pos.Y &&
		oBottom > r.Pos.Y
}
