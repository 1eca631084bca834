package unit

import "github.com/go-gl/mathgl/mgl32"

// Axis selects a single component of a magnitude.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisW
)

// String returns the lowercase axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisW:
		return "w"
	default:
		return "?"
	}
}

// Magnitude is the set of value types a UnitValue can carry.
// Implementations are plain values; every method returns a new value.
type Magnitude[T any] interface {
	comparable

	// Add returns the component-wise sum.
	Add(T) T
	// Sub returns the component-wise difference.
	Sub(T) T
	// Mul scales every component by c.
	Mul(c float32) T
	// MulElem returns the component-wise product.
	MulElem(T) T
	// Dim returns the number of components.
	Dim() int
	// Axis returns one component, or 0 for an axis past Dim.
	Axis(Axis) float32
	// WithAxis returns a copy with one component replaced.
	// Axes past Dim leave the value unchanged.
	WithAxis(Axis, float32) T
}

// Scalar is a one-component magnitude. Its only axis is AxisX.
type Scalar float32

func (s Scalar) Add(o Scalar) Scalar     { return s + o }
func (s Scalar) Sub(o Scalar) Scalar     { return s - o }
func (s Scalar) Mul(c float32) Scalar    { return Scalar(float32(s) * c) }
func (s Scalar) MulElem(o Scalar) Scalar { return s * o }
func (s Scalar) Dim() int                { return 1 }

func (s Scalar) Axis(a Axis) float32 {
	if a == AxisX {
		return float32(s)
	}
	return 0
}

func (s Scalar) WithAxis(a Axis, f float32) Scalar {
	if a == AxisX {
		return Scalar(f)
	}
	return s
}

// Vec2 is a two-component magnitude backed by mgl32.Vec2.
type Vec2 mgl32.Vec2

// V2 builds a Vec2.
func V2(x, y float32) Vec2 { return Vec2{x, y} }

func (v Vec2) Add(o Vec2) Vec2     { return Vec2(mgl32.Vec2(v).Add(mgl32.Vec2(o))) }
func (v Vec2) Sub(o Vec2) Vec2     { return Vec2(mgl32.Vec2(v).Sub(mgl32.Vec2(o))) }
func (v Vec2) Mul(c float32) Vec2  { return Vec2(mgl32.Vec2(v).Mul(c)) }
func (v Vec2) MulElem(o Vec2) Vec2 { return Vec2{v[0] * o[0], v[1] * o[1]} }
func (v Vec2) Dim() int            { return 2 }

func (v Vec2) Axis(a Axis) float32 {
	if int(a) < len(v) {
		return v[a]
	}
	return 0
}

func (v Vec2) WithAxis(a Axis, f float32) Vec2 {
	if int(a) < len(v) {
		v[a] = f
	}
	return v
}

// Vec3 is a three-component magnitude backed by mgl32.Vec3.
type Vec3 mgl32.Vec3

// V3 builds a Vec3.
func V3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

func (v Vec3) Add(o Vec3) Vec3     { return Vec3(mgl32.Vec3(v).Add(mgl32.Vec3(o))) }
func (v Vec3) Sub(o Vec3) Vec3     { return Vec3(mgl32.Vec3(v).Sub(mgl32.Vec3(o))) }
func (v Vec3) Mul(c float32) Vec3  { return Vec3(mgl32.Vec3(v).Mul(c)) }
func (v Vec3) MulElem(o Vec3) Vec3 { return Vec3{v[0] * o[0], v[1] * o[1], v[2] * o[2]} }
func (v Vec3) Dim() int            { return 3 }

func (v Vec3) Axis(a Axis) float32 {
	if int(a) < len(v) {
		return v[a]
	}
	return 0
}

func (v Vec3) WithAxis(a Axis, f float32) Vec3 {
	if int(a) < len(v) {
		v[a] = f
	}
	return v
}

// Vec4 is a four-component magnitude backed by mgl32.Vec4.
type Vec4 mgl32.Vec4

// V4 builds a Vec4.
func V4(x, y, z, w float32) Vec4 { return Vec4{x, y, z, w} }

func (v Vec4) Add(o Vec4) Vec4    { return Vec4(mgl32.Vec4(v).Add(mgl32.Vec4(o))) }
func (v Vec4) Sub(o Vec4) Vec4    { return Vec4(mgl32.Vec4(v).Sub(mgl32.Vec4(o))) }
func (v Vec4) Mul(c float32) Vec4 { return Vec4(mgl32.Vec4(v).Mul(c)) }

func (v Vec4) MulElem(o Vec4) Vec4 {
	return Vec4{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]}
}

func (v Vec4) Dim() int { return 4 }

func (v Vec4) Axis(a Axis) float32 {
	if int(a) < len(v) {
		return v[a]
	}
	return 0
}

func (v Vec4) WithAxis(a Axis, f float32) Vec4 {
	if int(a) < len(v) {
		v[a] = f
	}
	return v
}
