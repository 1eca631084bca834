package layout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/grindlemire/nodeui/internal/unit"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func TestDefaultLayout_FillsParent(t *testing.T) {
	type tc struct {
		parent   Rect
		fontSize float32
	}

	tests := map[string]tc{
		"viewport 800x600": {parent: NewRect(0, 0, 800, 600), fontSize: 16},
		"offset parent":    {parent: NewRect(30, 40, 120, 90), fontSize: 12},
		"font independent": {parent: NewRect(0, 0, 800, 600), fontSize: 99},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := DefaultLayout().Compute(tt.parent, tt.fontSize)
			if diff := cmp.Diff(RectFromSize(tt.parent.Size), got, approx); diff != "" {
				t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWindow_Compute(t *testing.T) {
	type tc struct {
		window   Window
		parent   Rect
		fontSize float32
		want     Rect
	}

	tests := map[string]tc{
		"absolute": {
			window: Window{
				Pos:  unit.Abs(unit.V2(10, 20)),
				Size: unit.Abs(unit.V2(100, 50)),
			},
			parent: NewRect(0, 0, 800, 600),
			want:   NewRect(10, 20, 100, 50),
		},
		"mixed units ignore parent position": {
			window: Window{
				Pos:  unit.Abs(unit.V2(10, 20)).Add(unit.Rem(unit.V2(1, 0))),
				Size: unit.Prc(unit.V2(50, 50)).Sub(unit.Abs(unit.V2(0, 10))),
			},
			parent:   NewRect(100, 100, 200, 100),
			fontSize: 16,
			want:     NewRect(26, 20, 100, 40),
		},
		"empty values": {
			window: Window{},
			parent: NewRect(5, 5, 100, 100),
			want:   NewRect(0, 0, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.window.Compute(tt.parent, tt.fontSize)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSolid_Compute(t *testing.T) {
	parent := NewRect(0, 0, 800, 600)
	wide := unit.Abs(unit.V2(100, 50))

	type tc struct {
		solid Solid
		want  Rect
	}

	tests := map[string]tc{
		"fit centered": {
			solid: Solid{Size: wide},
			want:  NewRect(0, 100, 800, 400),
		},
		"fit start": {
			solid: Solid{Size: wide, AlignX: AlignStart, AlignY: AlignStart},
			want:  NewRect(0, 0, 800, 400),
		},
		"fit end": {
			solid: Solid{Size: wide, AlignY: AlignEnd},
			want:  NewRect(0, 200, 800, 400),
		},
		"fit partial align": {
			solid: Solid{Size: wide, AlignY: 0.5},
			want:  NewRect(0, 150, 800, 400),
		},
		"fill centered": {
			solid: Solid{Size: wide, Scaling: ScalingFill},
			want:  NewRect(-200, 0, 1200, 600),
		},
		"fill start": {
			solid: Solid{Size: wide, Scaling: ScalingFill, AlignX: AlignStart},
			want:  NewRect(0, 0, 1200, 600),
		},
		"alignment clamped": {
			solid: Solid{Size: wide, AlignY: 5},
			want:  NewRect(0, 200, 800, 400),
		},
		"percent box keeps parent aspect": {
			solid: Solid{Size: unit.Prc(unit.V2(10, 10))},
			want:  NewRect(0, 0, 800, 600),
		},
		"zero width is unscaled": {
			solid: Solid{Size: unit.Abs(unit.V2(0, 50))},
			want:  NewRect(400, 275, 0, 50),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.solid.Compute(parent, 16)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSolid_Compute_RelativeToParent(t *testing.T) {
	s := Solid{Size: unit.Rem(unit.V2(1, 1)), AlignX: AlignEnd}

	got := s.Compute(NewRect(50, 50, 400, 300), 16)
	want := NewRect(100, 0, 300, 300)
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

func TestFitBox(t *testing.T) {
	type tc struct {
		box, bounds mgl32.Vec2
		mode        Scaling
		want        mgl32.Vec2
	}

	tests := map[string]tc{
		"fit tall":      {box: mgl32.Vec2{1, 2}, bounds: mgl32.Vec2{100, 100}, want: mgl32.Vec2{50, 100}},
		"fill tall":     {box: mgl32.Vec2{1, 2}, bounds: mgl32.Vec2{100, 100}, mode: ScalingFill, want: mgl32.Vec2{100, 200}},
		"shrink":        {box: mgl32.Vec2{400, 400}, bounds: mgl32.Vec2{100, 50}, want: mgl32.Vec2{50, 50}},
		"negative box":  {box: mgl32.Vec2{-1, 2}, bounds: mgl32.Vec2{100, 100}, want: mgl32.Vec2{-1, 2}},
		"empty bounds":  {box: mgl32.Vec2{1, 1}, bounds: mgl32.Vec2{0, 0}, want: mgl32.Vec2{0, 0}},
		"matching size": {box: mgl32.Vec2{30, 20}, bounds: mgl32.Vec2{30, 20}, mode: ScalingFill, want: mgl32.Vec2{30, 20}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := fitBox(tt.box, tt.bounds, tt.mode)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("fitBox() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAlign_Clamp(t *testing.T) {
	type tc struct {
		in, want Align
	}

	tests := map[string]tc{
		"in range":  {in: 0.25, want: 0.25},
		"below":     {in: -3, want: AlignStart},
		"above":     {in: 2, want: AlignEnd},
		"exact end": {in: AlignEnd, want: AlignEnd},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.in.Clamp(); got != tt.want {
				t.Errorf("Clamp() = %v, want %v", got, tt.want)
			}
		})
	}
}
