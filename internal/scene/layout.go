package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/nodeui/internal/layout"
	"github.com/grindlemire/nodeui/internal/unit"
)

// LayoutSpec holds exactly one layout variant.
type LayoutSpec struct {
	Window *WindowSpec `yaml:"window,omitempty"`
	Solid  *SolidSpec  `yaml:"solid,omitempty"`
}

// WindowSpec describes a layout.Window.
type WindowSpec struct {
	Pos  UnitSpec `yaml:"pos,omitempty"`
	Size UnitSpec `yaml:"size,omitempty"`
}

// SolidSpec describes a layout.Solid. Scaling is "fit" (default) or "fill".
type SolidSpec struct {
	Size    UnitSpec  `yaml:"size,omitempty"`
	AlignX  AlignSpec `yaml:"align_x,omitempty"`
	AlignY  AlignSpec `yaml:"align_y,omitempty"`
	Scaling string    `yaml:"scaling,omitempty"`
}

// UnitSpec is a two-component unit value. Each present slot holds [x, y].
type UnitSpec struct {
	Abs []float32 `yaml:"abs,omitempty"`
	Prc []float32 `yaml:"prc,omitempty"`
	Rem []float32 `yaml:"rem,omitempty"`
}

// AlignSpec is an alignment written as a number in [-1, 1] or as one of
// start, center, end.
type AlignSpec float32

func (a *AlignSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "start":
		*a = AlignSpec(layout.AlignStart)
		return nil
	case "center":
		*a = AlignSpec(layout.AlignCenter)
		return nil
	case "end":
		*a = AlignSpec(layout.AlignEnd)
		return nil
	}

	var f float32
	if err := value.Decode(&f); err != nil {
		return fmt.Errorf("line %d: alignment must be a number or start, center, end; got %q", value.Line, value.Value)
	}
	*a = AlignSpec(f)
	return nil
}

func (u UnitSpec) problems(field string) []string {
	var out []string
	for _, slot := range []struct {
		name string
		v    []float32
	}{{"abs", u.Abs}, {"prc", u.Prc}, {"rem", u.Rem}} {
		if slot.v != nil && len(slot.v) != 2 {
			out = append(out, fmt.Sprintf("%s.%s needs 2 components, got %d", field, slot.name, len(slot.v)))
		}
	}
	return out
}

func (u UnitSpec) value() unit.UnitValue[unit.Vec2] {
	var v unit.UnitValue[unit.Vec2]
	if len(u.Abs) == 2 {
		v.SetAbs(unit.V2(u.Abs[0], u.Abs[1]))
	}
	if len(u.Prc) == 2 {
		v.SetPrc(unit.V2(u.Prc[0], u.Prc[1]))
	}
	if len(u.Rem) == 2 {
		v.SetRem(unit.V2(u.Rem[0], u.Rem[1]))
	}
	return v
}

func (l *LayoutSpec) problems() []string {
	switch {
	case l.Window != nil && l.Solid != nil:
		return []string{"layout sets both window and solid"}
	case l.Window != nil:
		return append(l.Window.Pos.problems("window.pos"), l.Window.Size.problems("window.size")...)
	case l.Solid != nil:
		out := l.Solid.Size.problems("solid.size")
		if _, err := parseScaling(l.Solid.Scaling); err != nil {
			out = append(out, err.Error())
		}
		return out
	default:
		return []string{"layout sets neither window nor solid"}
	}
}

// build assumes Validate accepted the layout.
func (l *LayoutSpec) build() layout.Layout {
	if l.Solid != nil {
		scaling, _ := parseScaling(l.Solid.Scaling)
		return layout.Solid{
			Size:    l.Solid.Size.value(),
			AlignX:  layout.Align(l.Solid.AlignX),
			AlignY:  layout.Align(l.Solid.AlignY),
			Scaling: scaling,
		}
	}
	if l.Window != nil {
		return layout.Window{
			Pos:  l.Window.Pos.value(),
			Size: l.Window.Size.value(),
		}
	}
	return layout.DefaultLayout()
}

func parseScaling(s string) (layout.Scaling, error) {
	switch s {
	case "", "fit":
		return layout.ScalingFit, nil
	case "fill":
		return layout.ScalingFill, nil
	default:
		return 0, fmt.Errorf("solid.scaling must be fit or fill, got %q", s)
	}
}
