// unit.go re-exports unit value types from internal/unit.
package nodeui

import "github.com/grindlemire/nodeui/internal/unit"

// Magnitude is the constraint satisfied by Scalar, Vec2, Vec3 and Vec4.
type Magnitude[T any] = unit.Magnitude[T]

// UnitValue is a sparse sum of absolute, percent and font-relative parts.
type UnitValue[T Magnitude[T]] = unit.UnitValue[T]

type (
	Scalar = unit.Scalar
	Vec2   = unit.Vec2
	Vec3   = unit.Vec3
	Vec4   = unit.Vec4
)

// Kind names a unit slot.
type Kind = unit.Kind

const (
	KindAbs = unit.KindAbs
	KindPrc = unit.KindPrc
	KindRem = unit.KindRem
)

// Axis selects a vector component.
type Axis = unit.Axis

const (
	AxisX = unit.AxisX
	AxisY = unit.AxisY
	AxisZ = unit.AxisZ
	AxisW = unit.AxisW
)

// V2 returns a Vec2.
func V2(x, y float32) Vec2 { return unit.V2(x, y) }

// V3 returns a Vec3.
func V3(x, y, z float32) Vec3 { return unit.V3(x, y, z) }

// V4 returns a Vec4.
func V4(x, y, z, w float32) Vec4 { return unit.V4(x, y, z, w) }

// Abs returns an absolute unit value.
func Abs[T Magnitude[T]](v T) UnitValue[T] { return unit.Abs(v) }

// Prc returns a percent-of-parent unit value.
func Prc[T Magnitude[T]](v T) UnitValue[T] { return unit.Prc(v) }

// Rem returns a font-relative unit value.
func Rem[T Magnitude[T]](v T) UnitValue[T] { return unit.Rem(v) }

// Of returns a unit value with only slot k set.
func Of[T Magnitude[T]](k Kind, v T) UnitValue[T] { return unit.Of(k, v) }
