package physics

// contact is the outcome of a successful sweep: the elapsed milliseconds
// from the start of the step at which first contact is taken to occur, and
// both rectangles' positions at that instant.
type contact struct {
	ms   int
	a, b Rect
}

// sweepContact determines whether two moving rectangles collide during a
// step of stepMs milliseconds and estimates the instant of first contact.
// The bodies carry their end-of-step rectangles; start positions are
// reconstructed by rewinding each velocity over the full step.
//
// The search bisects elapsed time: it probes dt = stepMs/2 first, then moves
// earlier after a hit and later after a miss, halving the increment each
// round until it reaches zero. That converges in ceil(log2(stepMs)) rounds
// and is exact for power-of-two steps (a 16 ms step probes with increments
// 8, 4, 2, 1); for other step sizes the result can be late by at most the
// final increment. If no probe intersects — including steps of 0 or 1 ms,
// which run zero rounds — contact defaults to the full step.
func sweepContact(stepMs int, a, b Body) (contact, bool) {
	// Broad check on end-of-step positions. A pair fast enough to pass
	// entirely through each other within one step is not detected.
	if !a.Rect.Intersects(b.Rect) {
		return contact{}, false
	}

	startA := a.Rect.Translate(a.Vel.Scale(float64(-stepMs)))
	startB := b.Rect.Translate(b.Vel.Scale(float64(-stepMs)))

	best := stepMs
	dt := stepMs / 2
	for inc := stepMs / 2; inc > 0; {
		posA := startA.Translate(a.Vel.Scale(float64(dt)))
		posB := startB.Translate(b.Vel.Scale(float64(dt)))
		inc /= 2
		if posA.Intersects(posB) {
			best = dt
			dt -= inc
		} else {
			dt += inc
		}
	}

	return contact{
		ms: best,
		a:  startA.Translate(a.Vel.Scale(float64(best))),
		b:  startB.Translate(b.Vel.Scale(float64(best))),
	}, true
}
