package physics

import "testing"

func TestSweepContactMiss(t *testing.T) {
	a := Body{Vel: Vec{X: 0.5}, Rect: NewRect(0, 0, 4, 4)}
	b := Body{Rect: NewRect(20, 0, 4, 4)}

	if _, ok := sweepContact(16, a, b); ok {
		t.Error("sweepContact() reported contact for separated bodies")
	}
}

func TestSweepContactBisection(t *testing.T) {
	// A moving right at 0.5 cells/ms first overlaps the static obstacle
	// between 14 ms (touching) and 15 ms into the step. The probe sequence
	// for a 16 ms step is 8, 12, 14, 15, all misses until the last.
	a := Body{Vel: Vec{X: 0.5}, Rect: NewRect(9, 0, 4, 4)}
	b := Body{Rect: NewRect(12, 0, 4, 4)}

	c, ok := sweepContact(16, a, b)
	if !ok {
		t.Fatal("sweepContact() found no contact")
	}
	if c.ms != 15 {
		t.Errorf("contact at %d ms, want 15", c.ms)
	}
	if want := NewRect(8.5, 0, 4, 4); c.a != want {
		t.Errorf("contact position a = %+v, want %+v", c.a, want)
	}
	if want := NewRect(12, 0, 4, 4); c.b != want {
		t.Errorf("contact position b = %+v, want %+v", c.b, want)
	}
}

func TestSweepContactBothMoving(t *testing.T) {
	// A chases b down the same column at twice its speed and reaches it
	// 13 ms into the step.
	a := Body{Vel: Vec{Y: 0.5}, Rect: NewRect(0, 7, 4, 4)}
	b := Body{Vel: Vec{Y: 0.25}, Rect: NewRect(0, 10, 4, 4)}

	c, ok := sweepContact(16, a, b)
	if !ok {
		t.Fatal("sweepContact() found no contact")
	}
	if c.ms != 13 {
		t.Errorf("contact at %d ms, want 13", c.ms)
	}
	if want := NewRect(0, 5.5, 4, 4); c.a != want {
		t.Errorf("contact position a = %+v, want %+v", c.a, want)
	}
	if want := NewRect(0, 9.25, 4, 4); c.b != want {
		t.Errorf("contact position b = %+v, want %+v", c.b, want)
	}
}

func TestSweepContactAlreadyOverlapping(t *testing.T) {
	// A pair that overlaps for the whole step bisects down to the earliest
	// probed instant, 1 ms.
	a := Body{Vel: Vec{X: 0.0078125}, Rect: NewRect(10, 0, 4, 4)}
	b := Body{Vel: Vec{X: -0.0078125}, Rect: NewRect(10.5, 0, 4, 4)}

	c, ok := sweepContact(16, a, b)
	if !ok {
		t.Fatal("sweepContact() found no contact")
	}
	if c.ms != 1 {
		t.Errorf("contact at %d ms, want 1", c.ms)
	}
}

func TestSweepContactDegenerateSteps(t *testing.T) {
	// Steps of 0 and 1 ms leave no room to bisect: contact is taken at the
	// full step, at the end-of-step positions.
	a := Body{Vel: Vec{X: 0.5}, Rect: NewRect(10, 0, 4, 4)}
	b := Body{Rect: NewRect(12, 0, 4, 4)}

	for _, stepMs := range []int{0, 1} {
		c, ok := sweepContact(stepMs, a, b)
		if !ok {
			t.Fatalf("sweepContact(%d) found no contact", stepMs)
		}
		if c.ms != stepMs {
			t.Errorf("sweepContact(%d) contact at %d ms, want %d", stepMs, c.ms, stepMs)
		}
		if c.a != a.Rect || c.b != b.Rect {
			t.Errorf("sweepContact(%d) positions = %+v, %+v, want end-of-step rects", stepMs, c.a, c.b)
		}
	}
}
