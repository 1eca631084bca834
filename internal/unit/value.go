package unit

import (
	"fmt"
	"strings"
)

// Kind identifies one unit slot of a UnitValue.
type Kind uint8

const (
	KindAbs Kind = iota // Absolute units
	KindPrc             // Percent of the parent size (0-100 scale)
	KindRem             // Multiples of the font size
)

// kinds lists every slot in evaluation and display order.
var kinds = [...]Kind{KindAbs, KindPrc, KindRem}

// String returns the short slot name.
func (k Kind) String() string {
	switch k {
	case KindAbs:
		return "Abs"
	case KindPrc:
		return "Prc"
	case KindRem:
		return "Rem"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// UnitValue is a sparse measurement with at most one magnitude per Kind.
//
// A nil slot means "not contributing": Add and With leave it alone when it
// is nil on the right-hand side, and Evaluate treats it as zero. Slots are
// never written through; every operation stores freshly allocated values,
// so copies of a UnitValue can share pointers safely.
type UnitValue[T Magnitude[T]] struct {
	Abs *T
	Prc *T
	Rem *T
}

// Of returns a UnitValue with only the k slot set to v.
func Of[T Magnitude[T]](k Kind, v T) UnitValue[T] {
	var u UnitValue[T]
	*u.slot(k) = &v
	return u
}

// Abs returns a UnitValue holding v absolute units.
func Abs[T Magnitude[T]](v T) UnitValue[T] { return Of(KindAbs, v) }

// Prc returns a UnitValue holding v percent of the parent size.
func Prc[T Magnitude[T]](v T) UnitValue[T] { return Of(KindPrc, v) }

// Rem returns a UnitValue holding v multiples of the font size.
func Rem[T Magnitude[T]](v T) UnitValue[T] { return Of(KindRem, v) }

func (u *UnitValue[T]) slot(k Kind) **T {
	switch k {
	case KindPrc:
		return &u.Prc
	case KindRem:
		return &u.Rem
	default:
		return &u.Abs
	}
}

func (u UnitValue[T]) get(k Kind) *T {
	return *u.slot(k)
}

func (u *UnitValue[T]) put(k Kind, v T) {
	*u.slot(k) = &v
}

// Get returns a copy of the k slot, or nil if it is not set.
func (u UnitValue[T]) Get(k Kind) *T {
	v := u.get(k)
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func (u UnitValue[T]) GetAbs() *T { return u.Get(KindAbs) }
func (u UnitValue[T]) GetPrc() *T { return u.Get(KindPrc) }
func (u UnitValue[T]) GetRem() *T { return u.Get(KindRem) }

// IsZero reports whether no slot is set.
func (u UnitValue[T]) IsZero() bool {
	return u.Abs == nil && u.Prc == nil && u.Rem == nil
}

// Equal reports whether both values have the same slots set to equal magnitudes.
func (u UnitValue[T]) Equal(o UnitValue[T]) bool {
	for _, k := range kinds {
		a, b := u.get(k), o.get(k)
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && *a != *b {
			return false
		}
	}
	return true
}

// Add combines two values slot by slot. Slots set on both sides are summed,
// slots set on one side are kept as they are.
func (u UnitValue[T]) Add(o UnitValue[T]) UnitValue[T] {
	for _, k := range kinds {
		b := o.get(k)
		if b == nil {
			continue
		}
		if a := u.get(k); a != nil {
			u.put(k, (*a).Add(*b))
		} else {
			u.put(k, *b)
		}
	}
	return u
}

// Sub subtracts o slot by slot. A slot set only on o is negated.
func (u UnitValue[T]) Sub(o UnitValue[T]) UnitValue[T] {
	return u.Add(o.Neg())
}

// Mul scales every set slot by c.
func (u UnitValue[T]) Mul(c float32) UnitValue[T] {
	for _, k := range kinds {
		if a := u.get(k); a != nil {
			u.put(k, (*a).Mul(c))
		}
	}
	return u
}

// Neg returns the value with every set slot negated.
func (u UnitValue[T]) Neg() UnitValue[T] {
	return u.Mul(-1)
}

// AddAssign is the in-place form of Add.
func (u *UnitValue[T]) AddAssign(o UnitValue[T]) { *u = u.Add(o) }

// SubAssign is the in-place form of Sub.
func (u *UnitValue[T]) SubAssign(o UnitValue[T]) { *u = u.Sub(o) }

// MulAssign is the in-place form of Mul.
func (u *UnitValue[T]) MulAssign(c float32) { *u = u.Mul(c) }

// With returns a copy where every slot set on o overwrites the same slot.
// Slots not set on o are left untouched.
func (u UnitValue[T]) With(o UnitValue[T]) UnitValue[T] {
	for _, k := range kinds {
		if b := o.get(k); b != nil {
			u.put(k, *b)
		}
	}
	return u
}

// WithKind returns a copy with the k slot overwritten by v.
func (u UnitValue[T]) WithKind(k Kind, v T) UnitValue[T] {
	u.put(k, v)
	return u
}

func (u UnitValue[T]) WithAbs(v T) UnitValue[T] { return u.WithKind(KindAbs, v) }
func (u UnitValue[T]) WithPrc(v T) UnitValue[T] { return u.WithKind(KindPrc, v) }
func (u UnitValue[T]) WithRem(v T) UnitValue[T] { return u.WithKind(KindRem, v) }

// Set is the in-place form of With.
func (u *UnitValue[T]) Set(o UnitValue[T]) { *u = u.With(o) }

func (u *UnitValue[T]) SetAbs(v T) { u.put(KindAbs, v) }
func (u *UnitValue[T]) SetPrc(v T) { u.put(KindPrc, v) }
func (u *UnitValue[T]) SetRem(v T) { u.put(KindRem, v) }

// Evaluate resolves the value against a parent size and a font size.
//
//	Abs contributes its magnitude as is
//	Prc contributes magnitude * parentSize / 100, per component
//	Rem contributes magnitude * fontSize
//
// Unset slots contribute zero.
func (u UnitValue[T]) Evaluate(parentSize T, fontSize float32) T {
	var out T
	if u.Abs != nil {
		out = out.Add(*u.Abs)
	}
	if u.Prc != nil {
		out = out.Add((*u.Prc).MulElem(parentSize).Mul(0.01))
	}
	if u.Rem != nil {
		out = out.Add((*u.Rem).Mul(fontSize))
	}
	return out
}

// String renders the set slots, e.g. "Abs(5) + Prc([50 50])".
func (u UnitValue[T]) String() string {
	var parts []string
	for _, k := range kinds {
		if v := u.get(k); v != nil {
			parts = append(parts, fmt.Sprintf("%s(%v)", k, *v))
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, " + ")
}
