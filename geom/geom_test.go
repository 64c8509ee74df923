package geom

import (
	"testing"
)

func TestBound(t *testing.T) {
	table := []struct {
		x, out float64
	}{
		{0, 0},
		{0.75, 0.75},
		{1, 0},
		{1.25, 0.25},
		{-0.25, 0.75},
		{-1.75, 0.25},
		{3.5, 0.5},
	}

	for i, test := range table {
		out := Bound(test.x)
		if out != test.out {
			t.Errorf("%d) Expected Bound(%g) = %g, got %g.",
				i, test.x, test.out, out)
		}
		if out < 0 || out >= 1 {
			t.Errorf("%d) Bound(%g) = %g is out of [0, 1).", i, test.x, out)
		}
	}
}

func TestBoundTinyNegative(t *testing.T) {
	// x - Floor(x) rounds to exactly 1 here.
	out := Bound(-1e-18)
	if out < 0 || out >= 1 {
		t.Errorf("Bound(-1e-18) = %g is out of [0, 1).", out)
	}
}

func TestDistance(t *testing.T) {
	table := []struct {
		v1, v2 Vec
		r      float64
	}{
		{Vec{0, 0, 0}, Vec{0, 0, 0}, 0},
		{Vec{0.1, 0, 0}, Vec{0.4, 0, 0}, 0.3},
		{Vec{0.1, 0, 0}, Vec{0.9, 0, 0}, 0.2},
		{Vec{0, 0.05, 0}, Vec{0, 0.95, 0}, 0.1},
		{Vec{0.9, 0.9, 0.9}, Vec{0.1, 0.1, 0.1}, 0.2 * sqrt3},
	}

	for i, test := range table {
		r := Distance(&test.v1, &test.v2)
		if !almostEq(r, test.r) {
			t.Errorf("%d) Expected Distance(%v, %v) = %g, got %g.",
				i, test.v1, test.v2, test.r, r)
		}

		rSym := Distance(&test.v2, &test.v1)
		if r != rSym {
			t.Errorf("%d) Distance is asymmetric: %g != %g.", i, r, rSym)
		}
	}
}

const sqrt3 = 1.7320508075688772

func almostEq(x, y float64) bool {
	d := x - y
	return d < 1e-12 && d > -1e-12
}
