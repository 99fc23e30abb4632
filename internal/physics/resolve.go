// Package physics implements the swept collision engine the arcade's games
// are built on: time-of-impact search over a discrete step, struck-side
// classification, velocity reflection with catch-up handling, and positional
// separation of bodies left overlapping after the bounce. Everything here is
// pure arithmetic over caller-owned values — no state, no I/O, and no
// external dependencies, so game logic stays deterministic and testable.
package physics

// Body is one participant in a pairwise resolution: its velocity and its
// draw rectangle as already advanced to the end of the current step.
type Body struct {
	Vel  Vec
	Rect Rect
}

// ResolvedBody is one participant's share of a resolution result. The
// caller applies Vel and Rect to its own entity; OutOfBounds reports
// whether the entity's original end-of-step rectangle had left the window,
// and what to do about that is the caller's policy.
type ResolvedBody struct {
	Vel         Vec
	Rect        Rect
	OutOfBounds bool
}

// Resolution is the outcome of a resolved collision. Side names the edge of
// the reference body B that A struck; ContactMs is the estimated elapsed
// time of first contact within the step.
type Resolution struct {
	A, B      ResolvedBody
	Side      Side
	ContactMs int
}

// Resolve runs the full pipeline for one pair of moving rectangles within
// one simulation step: sweep for the contact instant, classify the struck
// side, reflect velocities, advance both bodies to the step boundary, and
// separate them if they still overlap. The second body b is the reference:
// the returned Side names the edge of b that a struck.
//
// The bodies carry end-of-step rectangles and velocities in cells per
// millisecond; stepMs is the whole-millisecond step duration and may be 0,
// in which case contact is taken at the full step. The window extent only
// feeds the OutOfBounds flags, which are computed from the original
// end-of-step rectangles, not the resolved ones.
//
// The false return means the pair does not collide during the step. Resolve
// never mutates its inputs; callers apply the returned values themselves.
func Resolve(stepMs int, windowW, windowH float64, a, b Body) (Resolution, bool) {
	c, ok := sweepContact(stepMs, a, b)
	if !ok {
		return Resolution{}, false
	}

	side := classifySide(c.b, c.a, b.Vel, a.Vel)
	velA, velB := reflectVelocities(a.Vel, b.Vel, side)

	// Advance from start-of-step positions: contact-1 ms at the old
	// velocity, then the remainder plus 1 ms at the new one. The pad pushes
	// the pair past the contact instant instead of leaving them touching.
	pre := float64(c.ms - 1)
	post := float64(stepMs - c.ms + 1)
	rectA := a.Rect.Translate(a.Vel.Scale(float64(-stepMs))).
		Translate(a.Vel.Scale(pre)).
		Translate(velA.Scale(post))
	rectB := b.Rect.Translate(b.Vel.Scale(float64(-stepMs))).
		Translate(b.Vel.Scale(pre)).
		Translate(velB.Scale(post))

	if rectA.Intersects(rectB) {
		rectA, rectB = separate(rectA, rectB, velA, velB)
	}

	return Resolution{
		A: ResolvedBody{
			Vel:         velA,
			Rect:        rectA,
			OutOfBounds: OutOfBounds(a.Rect, windowW, windowH),
		},
		B: ResolvedBody{
			Vel:         velB,
			Rect:        rectB,
			OutOfBounds: OutOfBounds(b.Rect, windowW, windowH),
		},
		Side:      side,
		ContactMs: c.ms,
	}, true
}

// separate displaces two still-overlapping rectangles apart along their own
// post-collision velocities. The total displacement is the overlap's width
// plus height — an upper bound on the penetration, so the pair ends up
// clearly apart — and each body's share of it is proportional to its share
// of the pair's kinetic energy: the faster body moves farther. Two
// motionless bodies cannot be separated along their velocities and are
// returned unchanged.
func separate(ra, rb Rect, va, vb Vec) (Rect, Rect) {
	overlap := ra.Intersection(rb)
	distance := overlap.W + overlap.H

	ea := va.LengthSquared()
	eb := vb.LengthSquared()
	total := ea + eb
	if total == 0 {
		return ra, rb
	}

	ra = ra.Translate(va.Normalize().Scale(distance * ea / total))
	rb = rb.Translate(vb.Normalize().Scale(distance * eb / total))
	return ra, rb
}
