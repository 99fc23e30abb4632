package physics

import "math"

// classifySide determines which edge of the reference rectangle was struck,
// given both rectangles at the contact instant. An edge is a candidate when
// the overlap region reaches it, which happens exactly when the other
// rectangle extends at least as far as that edge of the reference.
//
// One candidate answers directly. Two candidates on perpendicular axes form
// the corner case broken by relative velocity. Three candidates occur when a
// larger body strikes a smaller one broadside and span one full axis; the
// perpendicular candidate is the true impact edge. Zero or four candidates
// mean one rectangle contains the other, where only the approach direction
// carries any information.
func classifySide(ref, other Rect, refVel, otherVel Vec) Side {
	top := other.Y <= ref.Y
	bottom := other.Bottom() >= ref.Bottom()
	left := other.X <= ref.X
	right := other.Right() >= ref.Right()

	rel := refVel.Sub(otherVel)

	count := 0
	for _, hit := range []bool{top, bottom, left, right} {
		if hit {
			count++
		}
	}

	switch count {
	case 1:
		switch {
		case top:
			return SideTop
		case bottom:
			return SideBottom
		case left:
			return SideLeft
		}
		return SideRight

	case 2:
		// Opposite edges without a perpendicular one: the other body spans
		// the reference's full extent on one axis. Stay within the
		// candidate pair and pick by approach direction.
		if top && bottom {
			return verticalFromApproach(rel)
		}
		if left && right {
			return horizontalFromApproach(rel)
		}
		vert := SideTop
		if bottom {
			vert = SideBottom
		}
		horiz := SideLeft
		if right {
			horiz = SideRight
		}
		return resolveCorner(ref, other, rel, vert, horiz)

	case 3:
		if top && bottom {
			if left {
				return SideLeft
			}
			return SideRight
		}
		if top {
			return SideTop
		}
		return SideBottom

	default:
		if rel.X != 0 {
			return horizontalFromApproach(rel)
		}
		if rel.Y != 0 {
			return verticalFromApproach(rel)
		}
		return SideTop
	}
}

// resolveCorner breaks the tie between one vertical and one horizontal
// candidate. A candidate whose axis shows the pair separating rather than
// approaching is physically impossible and yields to the other. Otherwise
// the axis whose gap closed fastest wins: the smaller of overlap.W/|rel.X|
// and overlap.H/|rel.Y| picks the side on its axis, the vertical candidate
// taking exact ties. Zero relative velocity on an axis makes that axis's
// time infinite, so it never wins.
func resolveCorner(ref, other Rect, rel Vec, vert, horiz Side) Side {
	vertOK := approaching(vert, rel)
	horizOK := approaching(horiz, rel)
	if vertOK && !horizOK {
		return vert
	}
	if horizOK && !vertOK {
		return horiz
	}

	overlap := ref.Intersection(other)
	if closingTime(overlap.W, rel.X) < closingTime(overlap.H, rel.Y) {
		return horiz
	}
	return vert
}

// approaching reports whether the relative velocity (reference minus other)
// is consistent with the other rectangle striking the given edge of the
// reference. A zero component counts as consistent; the ratio comparison
// settles it.
func approaching(side Side, rel Vec) bool {
	switch side {
	case SideTop:
		return rel.Y <= 0
	case SideBottom:
		return rel.Y >= 0
	case SideLeft:
		return rel.X <= 0
	case SideRight:
		return rel.X >= 0
	}
	return false
}

// closingTime returns how long the pair needed to close a gap of the given
// size at the given relative speed along one axis.
func closingTime(gap, relVel float64) float64 {
	if relVel == 0 {
		return math.Inf(1)
	}
	return gap / math.Abs(relVel)
}

// verticalFromApproach picks Top or Bottom from the approach direction:
// the other body descending onto the reference strikes its top.
func verticalFromApproach(rel Vec) Side {
	if rel.Y > 0 {
		return SideBottom
	}
	return SideTop
}

// horizontalFromApproach picks Left or Right from the approach direction:
// the other body moving rightward relative to the reference strikes its
// left edge.
func horizontalFromApproach(rel Vec) Side {
	if rel.X > 0 {
		return SideRight
	}
	return SideLeft
}
