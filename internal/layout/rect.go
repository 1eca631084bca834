package layout

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Rect is an axis-aligned rectangle. Pos is the top-left corner and Size
// holds width and height. Roll is a rotation around the view axis; layout
// math ignores it and renderers may read it.
type Rect struct {
	Pos  mgl32.Vec2
	Size mgl32.Vec2
	Roll float32
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return Rect{Pos: mgl32.Vec2{x, y}, Size: mgl32.Vec2{width, height}}
}

// RectFromSize creates a Rect of the given size at the origin, the usual
// root context built from a viewport.
func RectFromSize(size mgl32.Vec2) Rect {
	return Rect{Size: size}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.Pos[0] + r.Size[0]
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Pos[1] + r.Size[1]
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() mgl32.Vec2 {
	return r.Pos.Add(r.Size.Mul(0.5))
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Size[0] <= 0 || r.Size[1] <= 0
}

// Area returns the area of the rectangle.
func (r Rect) Area() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.Size[0] * r.Size[1]
}

// Contains returns true if p is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(p mgl32.Vec2) bool {
	return p[0] >= r.Pos[0] && p[0] < r.Right() && p[1] >= r.Pos[1] && p[1] < r.Bottom()
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.Pos[0] >= r.Pos[0] && other.Pos[1] >= r.Pos[1] &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Translate returns a new Rect moved by d.
func (r Rect) Translate(d mgl32.Vec2) Rect {
	r.Pos = r.Pos.Add(d)
	return r
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.Pos[0], other.Pos[0])
	y := max(r.Pos[1], other.Pos[1])
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	if right <= x || bottom <= y {
		return Rect{}
	}
	return NewRect(x, y, right-x, bottom-y)
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.Pos[0], other.Pos[0])
	y := min(r.Pos[1], other.Pos[1])
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())

	return NewRect(x, y, right-x, bottom-y)
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Extend lifts r into 3D at depth z with zero thickness.
func (r Rect) Extend(z float32) Rect3D {
	return Rect3D{
		Pos:  r.Pos.Vec3(z),
		Size: r.Size.Vec3(0),
		Roll: r.Roll,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.Pos[0], r.Pos[1], r.Size[0], r.Size[1])
}

// Rect3D is a Rect with depth and full orientation, used when a layout
// result is handed to a 3D scene.
type Rect3D struct {
	Pos  mgl32.Vec3
	Size mgl32.Vec3
	Roll float32
	Yaw  float32
	Tilt float32
}

// Flatten drops the depth axis, yaw and tilt.
func (r Rect3D) Flatten() Rect {
	return Rect{Pos: r.Pos.Vec2(), Size: r.Size.Vec2(), Roll: r.Roll}
}
