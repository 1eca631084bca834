package unit

// GetAxis extracts one component of every set slot as a scalar value.
func (u UnitValue[T]) GetAxis(a Axis) UnitValue[Scalar] {
	var out UnitValue[Scalar]
	for _, k := range kinds {
		if v := u.get(k); v != nil {
			out.put(k, Scalar((*v).Axis(a)))
		}
	}
	return out
}

// WithAxis returns a copy where, for every slot set on v, the a component of
// that slot is replaced by v's magnitude. A slot that was unset is created
// with its other components at zero. Slots not set on v keep their a
// component. Axes past the magnitude's dimension leave u unchanged.
func (u UnitValue[T]) WithAxis(a Axis, v UnitValue[Scalar]) UnitValue[T] {
	var zero T
	if int(a) >= zero.Dim() {
		return u
	}
	for _, k := range kinds {
		s := v.get(k)
		if s == nil {
			continue
		}
		cur := zero
		if c := u.get(k); c != nil {
			cur = *c
		}
		u.put(k, cur.WithAxis(a, float32(*s)))
	}
	return u
}

// SetAxis is the in-place form of WithAxis.
func (u *UnitValue[T]) SetAxis(a Axis, v UnitValue[Scalar]) { *u = u.WithAxis(a, v) }

func (u UnitValue[T]) WithX(v UnitValue[Scalar]) UnitValue[T] { return u.WithAxis(AxisX, v) }
func (u UnitValue[T]) WithY(v UnitValue[Scalar]) UnitValue[T] { return u.WithAxis(AxisY, v) }
func (u UnitValue[T]) WithZ(v UnitValue[Scalar]) UnitValue[T] { return u.WithAxis(AxisZ, v) }
func (u UnitValue[T]) WithW(v UnitValue[Scalar]) UnitValue[T] { return u.WithAxis(AxisW, v) }

func (u *UnitValue[T]) SetX(v UnitValue[Scalar]) { u.SetAxis(AxisX, v) }
func (u *UnitValue[T]) SetY(v UnitValue[Scalar]) { u.SetAxis(AxisY, v) }
func (u *UnitValue[T]) SetZ(v UnitValue[Scalar]) { u.SetAxis(AxisZ, v) }
func (u *UnitValue[T]) SetW(v UnitValue[Scalar]) { u.SetAxis(AxisW, v) }

func (u UnitValue[T]) GetX() UnitValue[Scalar] { return u.GetAxis(AxisX) }
func (u UnitValue[T]) GetY() UnitValue[Scalar] { return u.GetAxis(AxisY) }
func (u UnitValue[T]) GetZ() UnitValue[Scalar] { return u.GetAxis(AxisZ) }
func (u UnitValue[T]) GetW() UnitValue[Scalar] { return u.GetAxis(AxisW) }
