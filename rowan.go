package rowan

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Empty reports whether the rectangle has no area (zero or negative width or
// height). Empty clip rectangles mean "no clipping", not an error.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns the rectangle moved by the given offset.
func (r Rect) Translate(offset Vec2) Rect {
	return Rect{r.X + offset.X, r.Y + offset.Y, r.Width, r.Height}
}

// Intersect returns the overlapping region of r and other. When the
// rectangles are disjoint the result has zero area and sits on the nearest
// edge of other, so callers always receive a finite, in-bounds rectangle.
func (r Rect) Intersect(other Rect) Rect {
	x1 := math.Max(r.X, other.X)
	y1 := math.Max(r.Y, other.Y)
	x2 := math.Min(r.X+r.Width, other.X+other.Width)
	y2 := math.Min(r.Y+r.Height, other.Y+other.Height)

	if x2 < x1 {
		x1 = clamp(x1, other.X, other.X+other.Width)
		x2 = x1
	}
	if y2 < y1 {
		y1 = clamp(y1, other.Y, other.Y+other.Height)
		y2 = y1
	}
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Encapsulate returns the smallest rectangle containing both r and other.
func (r Rect) Encapsulate(other Rect) Rect {
	x1 := math.Min(r.X, other.X)
	y1 := math.Min(r.Y, other.Y)
	x2 := math.Max(r.X+r.Width, other.X+other.Width)
	y2 := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Anchor selects a reference point on a 3x3 grid within a sprite's bounds.
// It determines how geometry is positioned relative to the sprite's origin.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorMiddleLeft
	AnchorMiddleCenter
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

// AnchorOffset returns the offset that moves geometry of the given size so
// that the anchor point lands on the origin. AnchorTopLeft returns (0, 0);
// AnchorBottomRight returns (-width, -height).
func AnchorOffset(anchor Anchor, width, height float64) Vec2 {
	var fx, fy float64
	switch anchor {
	case AnchorTopCenter, AnchorMiddleCenter, AnchorBottomCenter:
		fx = 0.5
	case AnchorTopRight, AnchorMiddleRight, AnchorBottomRight:
		fx = 1
	}
	switch anchor {
	case AnchorMiddleLeft, AnchorMiddleCenter, AnchorMiddleRight:
		fy = 0.5
	case AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight:
		fy = 1
	}
	return Vec2{-width * fx, -height * fy}
}
