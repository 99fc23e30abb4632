package physics

import "testing"

func TestVecArithmetic(t *testing.T) {
	a := Vec{X: 1, Y: -2}
	b := Vec{X: 0.5, Y: 4}

	if got := a.Add(b); got != (Vec{X: 1.5, Y: 2}) {
		t.Errorf("Add() = %+v, want {1.5 2}", got)
	}
	if got := a.Sub(b); got != (Vec{X: 0.5, Y: -6}) {
		t.Errorf("Sub() = %+v, want {0.5 -6}", got)
	}
	if got := a.Scale(-2); got != (Vec{X: -2, Y: 4}) {
		t.Errorf("Scale(-2) = %+v, want {-2 4}", got)
	}
}

func TestVecLength(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := v.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared() = %v, want 25", got)
	}
	if got := (Vec{}).Length(); got != 0 {
		t.Errorf("zero Length() = %v, want 0", got)
	}
}

func TestVecNormalize(t *testing.T) {
	if got := (Vec{X: 0, Y: -8}).Normalize(); got != (Vec{X: 0, Y: -1}) {
		t.Errorf("Normalize() = %+v, want {0 -1}", got)
	}
	if got := (Vec{X: 3, Y: 4}).Normalize(); got != (Vec{X: 0.6, Y: 0.8}) {
		t.Errorf("Normalize() = %+v, want {0.6 0.8}", got)
	}
	if got := (Vec{}).Normalize(); got != (Vec{}) {
		t.Errorf("zero Normalize() = %+v, want zero vector", got)
	}
}
