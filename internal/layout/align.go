package layout

// Align positions a box inside a larger one along one axis. It interpolates
// between touching the start edge (-1) and touching the end edge (1).
type Align float32

const (
	AlignStart  Align = -1 // Touch the start edge
	AlignCenter Align = 0  // Center in the free space
	AlignEnd    Align = 1  // Touch the end edge
)

// Clamp restricts a to [AlignStart, AlignEnd].
func (a Align) Clamp() Align {
	return min(max(a, AlignStart), AlignEnd)
}

// offset returns the start offset of a box given the free space around it.
func (a Align) offset(free float32) float32 {
	return free * (float32(a.Clamp()) + 1) / 2
}

// Scaling chooses how a Solid box is resized to its parent.
type Scaling uint8

const (
	ScalingFit  Scaling = iota // Largest size that fits inside the parent
	ScalingFill                // Smallest size that covers the parent
)

func (s Scaling) String() string {
	switch s {
	case ScalingFit:
		return "fit"
	case ScalingFill:
		return "fill"
	default:
		return "Scaling(?)"
	}
}
