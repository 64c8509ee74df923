package mesh

import (
	"github.com/Georgesaba/Universe-Simulation/geom"
)

// Gradient writes the central-difference gradient of the real part of the
// potential into grad for every cell index in [low, high). Neighbour
// lookups wrap periodically, so the low x neighbour of cell (0, j, k) is
// (cells-1, j, k). cellWidth is the physical width of one cell.
func (m *Mesh) Gradient(grad []geom.Vec, cellWidth float64, low, high int) {
	inv := 1.0 / (2.0 * cellWidth)

	for idx := low; idx < high; idx++ {
		i, j, k := m.Coords(idx)

		iLo, iHi := wrap(i-1, m.Cells), wrap(i+1, m.Cells)
		jLo, jHi := wrap(j-1, m.Cells), wrap(j+1, m.Cells)
		kLo, kHi := wrap(k-1, m.Cells), wrap(k+1, m.Cells)

		grad[idx][0] = (real(m.Phi[m.Idx(iHi, j, k)]) -
			real(m.Phi[m.Idx(iLo, j, k)])) * inv
		grad[idx][1] = (real(m.Phi[m.Idx(i, jHi, k)]) -
			real(m.Phi[m.Idx(i, jLo, k)])) * inv
		grad[idx][2] = (real(m.Phi[m.Idx(i, j, kHi)]) -
			real(m.Phi[m.Idx(i, j, kLo)])) * inv
	}
}

func wrap(x, cells int) int {
	if x < 0 {
		return x + cells
	} else if x >= cells {
		return x - cells
	}
	return x
}
