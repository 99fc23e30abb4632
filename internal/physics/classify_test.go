package physics

import "testing"

func TestClassifySide(t *testing.T) {
	tests := []struct {
		name     string
		ref      Rect
		other    Rect
		refVel   Vec
		otherVel Vec
		want     Side
	}{
		// One candidate edge: the overlap reaches exactly one edge of the
		// reference and the answer is direct.
		{
			name:  "single candidate top",
			ref:   NewRect(10, 10, 6, 6),
			other: NewRect(11, 7, 4, 4),
			want:  SideTop,
		},
		{
			name:  "single candidate bottom",
			ref:   NewRect(10, 10, 6, 6),
			other: NewRect(11, 15, 4, 4),
			want:  SideBottom,
		},
		{
			name:  "single candidate left",
			ref:   NewRect(10, 10, 6, 6),
			other: NewRect(7, 11, 4, 4),
			want:  SideLeft,
		},
		{
			name:  "single candidate right",
			ref:   NewRect(10, 10, 6, 6),
			other: NewRect(15, 11, 4, 4),
			want:  SideRight,
		},

		// Corner hits: two perpendicular candidates, broken by whichever
		// axis closed its overlap faster.
		{
			name:     "corner faster horizontal closing",
			ref:      NewRect(10, 10, 6, 6),
			other:    NewRect(7, 7, 4, 4),
			otherVel: Vec{X: 2, Y: 1},
			want:     SideLeft,
		},
		{
			name:     "corner faster vertical closing",
			ref:      NewRect(10, 10, 6, 6),
			other:    NewRect(7, 7, 4, 4),
			otherVel: Vec{X: 1, Y: 2},
			want:     SideTop,
		},
		{
			name:     "corner exact tie keeps vertical",
			ref:      NewRect(10, 10, 6, 6),
			other:    NewRect(7, 7, 4, 4),
			otherVel: Vec{X: 1, Y: 1},
			want:     SideTop,
		},
		{
			name:     "corner ruled out vertical",
			ref:      NewRect(10, 10, 6, 6),
			other:    NewRect(7, 7, 4, 4),
			otherVel: Vec{X: 1, Y: -2},
			want:     SideLeft,
		},
		{
			name:     "corner ruled out horizontal",
			ref:      NewRect(10, 10, 6, 6),
			other:    NewRect(15, 7, 4, 4),
			otherVel: Vec{X: 3, Y: 1},
			want:     SideTop,
		},
		{
			name:     "corner zero horizontal closing speed",
			ref:      NewRect(10, 10, 6, 6),
			other:    NewRect(7, 7, 4, 4),
			otherVel: Vec{X: 0, Y: 2},
			want:     SideTop,
		},
		{
			name:     "corner uses relative velocity",
			ref:      NewRect(10, 10, 6, 6),
			other:    NewRect(7, 7, 4, 4),
			refVel:   Vec{X: 2, Y: 1},
			otherVel: Vec{X: 4, Y: 2},
			want:     SideLeft,
		},

		// Opposite-pair candidates: the other body spans the reference's
		// full extent on one axis, so the pair is kept and the approach
		// direction picks within it.
		{
			name:     "spanning pair descending hits top",
			ref:      NewRect(10, 10, 6, 6),
			other:    NewRect(12, 8, 2, 10),
			otherVel: Vec{Y: 1},
			want:     SideTop,
		},
		{
			name:     "spanning pair ascending hits bottom",
			ref:      NewRect(10, 10, 6, 6),
			other:    NewRect(12, 8, 2, 10),
			otherVel: Vec{Y: -1},
			want:     SideBottom,
		},
		{
			name:     "spanning pair rightward hits left",
			ref:      NewRect(10, 10, 6, 6),
			other:    NewRect(8, 12, 10, 2),
			otherVel: Vec{X: 1},
			want:     SideLeft,
		},
		{
			name:     "spanning pair leftward hits right",
			ref:      NewRect(10, 10, 6, 6),
			other:    NewRect(8, 12, 10, 2),
			otherVel: Vec{X: -1},
			want:     SideRight,
		},

		// Three candidates: a larger body strikes broadside and the lone
		// perpendicular edge is the impact edge.
		{
			name:  "broadside from the left",
			ref:   NewRect(10, 10, 4, 4),
			other: NewRect(7, 8, 4, 8),
			want:  SideLeft,
		},
		{
			name:  "broadside from the right",
			ref:   NewRect(10, 10, 4, 4),
			other: NewRect(13, 8, 4, 8),
			want:  SideRight,
		},
		{
			name:  "broadside from above",
			ref:   NewRect(10, 10, 4, 4),
			other: NewRect(8, 9, 8, 2),
			want:  SideTop,
		},
		{
			name:  "broadside from below",
			ref:   NewRect(10, 10, 4, 4),
			other: NewRect(8, 13, 8, 2),
			want:  SideBottom,
		},

		// Containment: no candidate edges (or all four), only the approach
		// direction is left to go on.
		{
			name:     "contained moving horizontally",
			ref:      NewRect(10, 10, 8, 8),
			other:    NewRect(12, 12, 2, 2),
			otherVel: Vec{X: 3},
			want:     SideLeft,
		},
		{
			name:     "contained moving vertically",
			ref:      NewRect(10, 10, 8, 8),
			other:    NewRect(12, 12, 2, 2),
			otherVel: Vec{Y: -2},
			want:     SideBottom,
		},
		{
			name:     "engulfing body",
			ref:      NewRect(12, 12, 2, 2),
			other:    NewRect(10, 10, 8, 8),
			otherVel: Vec{X: -1},
			want:     SideRight,
		},
		{
			name:  "contained at rest",
			ref:   NewRect(10, 10, 8, 8),
			other: NewRect(12, 12, 2, 2),
			want:  SideTop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifySide(tt.ref, tt.other, tt.refVel, tt.otherVel)
			if got != tt.want {
				t.Errorf("classifySide() = %v, want %v", got, tt.want)
			}
		})
	}
}
