package physics

// bounceRule is one row of the reflection decision table: which velocity
// axis the side reflects, and the sign both components share when the first
// body is catching up to the reference from behind.
type bounceRule struct {
	axis     axis
	approach float64
}

// bounceRules is indexed by Side. Top and Bottom act on Y, Left and Right
// on X; the approach sign is positive for Top and Left (the first body
// closing downward or rightward onto the reference) and negative for their
// opposites.
var bounceRules = [...]bounceRule{
	SideTop:    {axis: axisY, approach: 1},
	SideBottom: {axis: axisY, approach: -1},
	SideLeft:   {axis: axisX, approach: 1},
	SideRight:  {axis: axisX, approach: -1},
}

// reflectVelocities computes post-collision velocities for the first body
// and the reference (second) body given the struck side. Only the component
// perpendicular to the struck edge ever changes, and only by sign flip, so
// each body's speed is preserved exactly.
//
// When both components point in the approach direction the first body has
// run into the back of the reference (the catch-up case): only the trailing
// first body reflects and the leader keeps its velocity. In every other
// arrangement the pair met head-on and both reflect.
func reflectVelocities(first, second Vec, side Side) (Vec, Vec) {
	if side == SideNone {
		return first, second
	}
	rule := bounceRules[side]
	f := rule.axis.component(first)
	s := rule.axis.component(second)
	if f*rule.approach > 0 && s*rule.approach > 0 {
		return rule.axis.flip(first), second
	}
	return rule.axis.flip(first), rule.axis.flip(second)
}
