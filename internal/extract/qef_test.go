package extract

import "testing"

func approxEq(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

func TestQEFSinglePointReturnsMassPointAsOrigin(t *testing.T) {
	var q qef
	q.add([3]float64{0.3, 0.3, 0.3}, [3]float64{1, 0, 0})
	massPoint, x := q.solve()
	if massPoint != [3]float64{0.3, 0.3, 0.3} {
		t.Fatalf("massPoint = %v, want (0.3,0.3,0.3)", massPoint)
	}
	// Only one constrained direction (x); y and z are free (singular,
	// thresholded to zero displacement from the mass point).
	if !approxEq(x[1], 0, 1e-9) || !approxEq(x[2], 0, 1e-9) {
		t.Errorf("expected unconstrained directions to stay at the mass point, got x=%v", x)
	}
}

func TestQEFThreeOrthogonalPlanesIntersectExactly(t *testing.T) {
	var q qef
	q.add([3]float64{0.5, 0, 0}, [3]float64{1, 0, 0})
	q.add([3]float64{0, 0.5, 0}, [3]float64{0, 1, 0})
	q.add([3]float64{0, 0, 0.5}, [3]float64{0, 0, 1})

	massPoint, x := q.solve()
	got := [3]float64{massPoint[0] + x[0], massPoint[1] + x[1], massPoint[2] + x[2]}
	want := [3]float64{0.5, 0.5, 0.5}
	for i := range got {
		if !approxEq(got[i], want[i], 1e-6) {
			t.Errorf("solved position[%d] = %v, want %v (full got=%v)", i, got[i], want[i], got)
		}
	}
}

func TestQEFNoConstraintsIsZero(t *testing.T) {
	var q qef
	massPoint, x := q.solve()
	if massPoint != ([3]float64{}) || x != ([3]float64{}) {
		t.Errorf("expected empty QEF to solve to the zero vector, got massPoint=%v x=%v", massPoint, x)
	}
}
