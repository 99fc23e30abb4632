package physics

// Side identifies which edge of the reference rectangle was struck in a
// collision. The reference is always the second body passed to Resolve.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// axis identifies the velocity component a reflection acts on.
type axis int

const (
	axisX axis = iota
	axisY
)

// component returns the vector component along the axis.
func (a axis) component(v Vec) float64 {
	if a == axisX {
		return v.X
	}
	return v.Y
}

// flip returns the vector with the component along the axis negated.
func (a axis) flip(v Vec) Vec {
	if a == axisX {
		v.X = -v.X
		return v
	}
	v.Y = -v.Y
	return v
}
