package layout

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/grindlemire/nodeui/internal/unit"
)

// Layout derives a node's rectangle from its parent's rectangle and the
// font size in effect. Implementations are Window and Solid.
type Layout interface {
	// Compute returns the rectangle for a node placed inside parent.
	// Only parent's size is read; the result's Pos is relative to the
	// parent's top-left corner.
	Compute(parent Rect, fontSize float32) Rect

	isLayout()
}

// Window places a node at a free-form offset from its parent's top-left
// corner with a free-form size.
type Window struct {
	Pos  unit.UnitValue[unit.Vec2]
	Size unit.UnitValue[unit.Vec2]
}

// DefaultLayout returns a Window that fills its parent exactly.
func DefaultLayout() Layout {
	return Window{
		Pos:  unit.Abs(unit.V2(0, 0)),
		Size: unit.Prc(unit.V2(100, 100)),
	}
}

func (Window) isLayout() {}

// Compute evaluates Pos and Size against the parent size. The result is
// relative to the parent's top-left corner.
func (w Window) Compute(parent Rect, fontSize float32) Rect {
	ps := unit.Vec2(parent.Size)
	pos := w.Pos.Evaluate(ps, fontSize)
	size := w.Size.Evaluate(ps, fontSize)
	return Rect{
		Pos:  mgl32.Vec2(pos),
		Size: mgl32.Vec2(size),
	}
}

func (w Window) String() string {
	return fmt.Sprintf("Window(pos: %v, size: %v)", w.Pos, w.Size)
}

// Solid keeps the aspect ratio of Size and scales it to the parent according
// to Scaling, then aligns the box inside the parent on each axis.
type Solid struct {
	Size    unit.UnitValue[unit.Vec2]
	AlignX  Align
	AlignY  Align
	Scaling Scaling
}

func (Solid) isLayout() {}

// Compute evaluates Size as the target box and places it inside parent.
func (s Solid) Compute(parent Rect, fontSize float32) Rect {
	box := s.Size.Evaluate(unit.Vec2(parent.Size), fontSize)
	return s.place(parent, mgl32.Vec2(box))
}

// place scales box into parent and aligns it. Pos is the offset from the
// parent's top-left corner.
func (s Solid) place(parent Rect, box mgl32.Vec2) Rect {
	size := fitBox(box, parent.Size, s.Scaling)
	free := parent.Size.Sub(size)
	return Rect{
		Pos:  mgl32.Vec2{s.AlignX.offset(free[0]), s.AlignY.offset(free[1])},
		Size: size,
	}
}

// fitBox scales box uniformly against bounds. A box without a positive
// width and height has no aspect ratio and is returned unscaled.
func fitBox(box, bounds mgl32.Vec2, mode Scaling) mgl32.Vec2 {
	if box[0] <= 0 || box[1] <= 0 {
		return box
	}
	sx := bounds[0] / box[0]
	sy := bounds[1] / box[1]
	scale := min(sx, sy)
	if mode == ScalingFill {
		scale = max(sx, sy)
	}
	return box.Mul(scale)
}

func (s Solid) String() string {
	return fmt.Sprintf("Solid(size: %v, align: %g/%g, %v)", s.Size, s.AlignX, s.AlignY, s.Scaling)
}
