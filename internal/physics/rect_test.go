package physics

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if got := r.Right(); got != 6 {
		t.Errorf("Right() = %v, want 6", got)
	}
	if got := r.Bottom(); got != 8 {
		t.Errorf("Bottom() = %v, want 8", got)
	}
	if r.Empty() {
		t.Error("Empty() = true for a 4x5 rect")
	}
	if !(Rect{}).Empty() {
		t.Error("Empty() = false for the zero rect")
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(10, 10, 4, 4)
	got := r.Translate(Vec{X: -2.5, Y: 1})
	want := NewRect(7.5, 11, 4, 4)
	if got != want {
		t.Errorf("Translate() = %+v, want %+v", got, want)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 4, 4), NewRect(2, 2, 4, 4), true},
		{"contained", NewRect(0, 0, 10, 10), NewRect(3, 3, 2, 2), true},
		{"touching right edge", NewRect(0, 0, 4, 4), NewRect(4, 0, 4, 4), false},
		{"touching bottom edge", NewRect(0, 0, 4, 4), NewRect(0, 4, 4, 4), false},
		{"touching corner", NewRect(0, 0, 4, 4), NewRect(4, 4, 4, 4), false},
		{"apart horizontally", NewRect(0, 0, 4, 4), NewRect(10, 0, 4, 4), false},
		{"apart vertically", NewRect(0, 0, 4, 4), NewRect(0, 10, 4, 4), false},
		{"fractional overlap", NewRect(0, 0, 4, 4), NewRect(3.5, 0, 4, 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reversed Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"corner overlap", NewRect(0, 0, 4, 4), NewRect(2, 3, 4, 4), NewRect(2, 3, 2, 1)},
		{"contained", NewRect(0, 0, 10, 10), NewRect(3, 3, 2, 2), NewRect(3, 3, 2, 2)},
		{"touching", NewRect(0, 0, 4, 4), NewRect(4, 0, 4, 4), Rect{}},
		{"apart", NewRect(0, 0, 4, 4), NewRect(10, 10, 4, 4), Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersection(tt.b); got != tt.want {
				t.Errorf("Intersection() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCollisionFree(t *testing.T) {
	obstacles := []Rect{
		NewRect(0, 0, 4, 4),
		NewRect(10, 10, 4, 4),
	}

	tests := []struct {
		name      string
		candidate Rect
		want      bool
	}{
		{"clear spot", NewRect(20, 20, 4, 4), true},
		{"overlaps first", NewRect(2, 2, 4, 4), false},
		{"overlaps second", NewRect(9, 9, 4, 4), false},
		{"touching is free", NewRect(4, 0, 4, 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollisionFree(tt.candidate, obstacles); got != tt.want {
				t.Errorf("CollisionFree() = %v, want %v", got, tt.want)
			}
		})
	}

	if !CollisionFree(NewRect(0, 0, 4, 4), nil) {
		t.Error("CollisionFree() = false with no obstacles")
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", NewRect(10, 10, 4, 4), false},
		{"flush with edges", NewRect(0, 0, 80, 24), false},
		{"past left", NewRect(-0.5, 10, 4, 4), true},
		{"past top", NewRect(10, -0.5, 4, 4), true},
		{"past right", NewRect(77, 10, 4, 4), true},
		{"past bottom", NewRect(10, 21, 4, 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutOfBounds(tt.r, 80, 24); got != tt.want {
				t.Errorf("OutOfBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}
