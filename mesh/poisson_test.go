package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleGreensZeroesDC(t *testing.T) {
	m, err := New(4)
	if err != nil {
		t.Fatal(err.Error())
	}

	for idx := range m.K {
		m.K[idx] = complex(1, 1)
	}
	m.ScaleGreens(10.0, 0, m.Volume)

	assert.Equal(t, complex128(0), m.K[0], "DC bin")
}

func TestScaleGreensFactor(t *testing.T) {
	cells, width := 4, 10.0
	m, err := New(cells)
	if err != nil {
		t.Fatal(err.Error())
	}

	for idx := range m.K {
		m.K[idx] = 1
	}
	m.ScaleGreens(width, 0, m.Volume)

	table := []struct {
		i, j, k int
	}{
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
		{1, 1, 1},
		{2, 0, 0},
		// Above the Nyquist row the raw coordinate is still used: the
		// mode (3, 0, 0) divides by 9, not by 1.
		{3, 0, 0},
		{3, 3, 3},
	}

	for n, test := range table {
		kSq := float64(test.i*test.i + test.j*test.j + test.k*test.k)
		want := -4.0 * math.Pi * width * width / kSq /
			(8.0 * float64(m.Volume))

		got := m.K[m.Idx(test.i, test.j, test.k)]
		assert.InDelta(t, want, real(got), math.Abs(want)*1e-12,
			"case %d real part", n)
		assert.Equal(t, 0.0, imag(got), "case %d imaginary part", n)
	}
}

func TestScaleGreensPartialRange(t *testing.T) {
	// Worker ranges that do not start at zero must leave the DC bin to
	// the worker that owns index 0.
	m, err := New(4)
	if err != nil {
		t.Fatal(err.Error())
	}

	for idx := range m.K {
		m.K[idx] = 1
	}
	half := m.Volume / 2
	m.ScaleGreens(10.0, half, m.Volume)
	m.ScaleGreens(10.0, 0, half)

	assert.Equal(t, complex128(0), m.K[0])
	for idx := 1; idx < m.Volume; idx++ {
		if real(m.K[idx]) >= 0 {
			t.Fatalf("Mode %d was not scaled.", idx)
		}
	}
}
