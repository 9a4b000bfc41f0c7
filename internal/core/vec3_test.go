package core

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %v, want {5 7 9}", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, -3, -3}) {
		t.Errorf("Sub = %v, want {-3 -3 -3}", got)
	}
	if got := a.Mul(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Mul = %v, want {2 4 6}", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := a.Cross(b); got != (Vec3{-3, 6, -3}) {
		t.Errorf("Cross = %v, want {-3 6 -3}", got)
	}
}

func TestVec3Unit(t *testing.T) {
	v := NewVec3(3, 0, 4)
	u := v.Unit()
	if math.Abs(u.Length()-1) > 1e-9 {
		t.Errorf("Unit() length = %v, want 1", u.Length())
	}
}

func TestVec3NearZero(t *testing.T) {
	if !(Vec3{1e-9, -1e-9, 0}).NearZero() {
		t.Error("expected near-zero vector to report NearZero")
	}
	if (Vec3{0.1, 0, 0}).NearZero() {
		t.Error("expected non-zero vector to not report NearZero")
	}
}

func TestVec3ClampAndHasNaN(t *testing.T) {
	c := NewVec3(-1, 0.5, 2).Clamp(0, 0.999)
	if c != (Vec3{0, 0.5, 0.999}) {
		t.Errorf("Clamp = %v, want {0 0.5 0.999}", c)
	}

	nanVec := NewVec3(math.NaN(), 0, 0)
	if !nanVec.HasNaN() {
		t.Error("expected HasNaN to detect a NaN component")
	}
	if c.HasNaN() {
		t.Error("expected clamped vector to not report NaN")
	}
}

func TestComponentAndWithComponent(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, want := range []float64{1, 2, 3} {
		if got := Component(v, axis); got != want {
			t.Errorf("Component(v, %d) = %v, want %v", axis, got, want)
		}
	}

	updated := WithComponent(v, 1, 99)
	if updated.Y != 99 || updated.X != 1 || updated.Z != 3 {
		t.Errorf("WithComponent = %v, want {1 99 3}", updated)
	}
}
