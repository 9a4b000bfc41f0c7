package core

import (
	"math"
	"testing"
)

func TestONBOrthonormal(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(1, 1, 1).Unit(),
		NewVec3(0.577, 0.577, 0.577),
	}

	for _, n := range normals {
		onb := NewONB(n)
		u, v, w := onb.U(), onb.V(), onb.W()

		for _, axis := range []Vec3{u, v, w} {
			if math.Abs(axis.Length()-1) > 1e-5 {
				t.Errorf("axis %v not unit length, got %v", axis, axis.Length())
			}
		}

		for _, pair := range [][2]Vec3{{u, v}, {v, w}, {u, w}} {
			if math.Abs(pair[0].Dot(pair[1])) > 1e-5 {
				t.Errorf("axes %v, %v not orthogonal, dot=%v", pair[0], pair[1], pair[0].Dot(pair[1]))
			}
		}

		nUnit := n.Unit()
		if math.Abs(w.Dot(nUnit)-1) > 1e-5 {
			t.Errorf("w=%v not parallel to normal=%v", w, nUnit)
		}
	}
}

func TestONBLocal(t *testing.T) {
	onb := NewONB(NewVec3(0, 0, 1))
	// Local(+Z) should reproduce w for the canonical frame.
	got := onb.Local(NewVec3(0, 0, 1))
	want := onb.W()
	if got.Sub(want).Length() > 1e-9 {
		t.Errorf("Local((0,0,1)) = %v, want %v", got, want)
	}
}
