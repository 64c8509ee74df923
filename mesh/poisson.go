package mesh

import (
	"math"
)

// ScaleGreens converts the forward transform of the density into the
// Fourier coefficients of the potential by multiplying each mode over
// [low, high) with the Green's function factor
//     G(i, j, k) = -4 pi W^2 / (i^2 + j^2 + k^2) / (8 cells^3)
// where (i, j, k) are the raw cell coordinates of the mode and the
// 1/(8 cells^3) term folds in the unnormalized round-trip scaling of the
// transforms. The DC mode is zeroed instead of scaled.
//
// The raw coordinate triple is used as the wavenumber, not the aliased
// form with i - cells for i > cells/2.
func (m *Mesh) ScaleGreens(width float64, low, high int) {
	norm := 1.0 / (8.0 * float64(m.Volume))
	amp := -4.0 * math.Pi * width * width * norm

	if low == 0 {
		m.K[0] = 0
		low = 1
	}

	for idx := low; idx < high; idx++ {
		i, j, k := m.Coords(idx)
		kSq := float64(i*i + j*j + k*k)
		m.K[idx] *= complex(amp/kSq, 0)
	}
}
