package physics

import "math"

// Rect is an axis-aligned rectangle in cell space. (X, Y) is the top-left
// corner; Y grows downward. Width and height stay constant while the engine
// works on a pair — only positions move.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(v Vec) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, W: r.W, H: r.H}
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Intersection returns the overlapping region of two rectangles, or an
// empty Rect if they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x := math.Max(r.X, other.X)
	y := math.Max(r.Y, other.Y)
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

// CollisionFree reports whether the candidate rectangle overlaps none of the
// given rectangles. It is a plain static all-pairs test with no time
// stepping, used for spawn placement rather than per-tick resolution.
func CollisionFree(r Rect, others []Rect) bool {
	for _, other := range others {
		if r.Intersects(other) {
			return false
		}
	}
	return true
}

// OutOfBounds reports whether any edge of the rectangle extends past the
// window, which spans (0, 0) to (windowW, windowH) in cell space. A
// rectangle flush against a window edge is still inside.
func OutOfBounds(r Rect, windowW, windowH float64) bool {
	return r.X < 0 || r.Y < 0 || r.Right() > windowW || r.Bottom() > windowH
}
