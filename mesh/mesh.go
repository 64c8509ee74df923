/*package mesh maintains the three complex scalar fields of the
particle-mesh solver and the passes which read and write them: nearest
grid point mass deposition, the Poisson scaling in k-space, and the
central-difference gradient of the potential.

All three buffers are flat row-major arrays with the index convention
idx(i, j, k) = k + cells*(j + cells*i), so the z axis is contiguous.
*/
package mesh

import (
	"fmt"
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/Georgesaba/Universe-Simulation/geom"
)

// Mesh holds the density, k-space, and potential buffers of a cubic grid
// with the given side length. The buffers are allocated once and reused
// every step.
type Mesh struct {
	Cells int
	// Strides for the index convention above.
	Length, Area, Volume int

	Rho, K, Phi []complex128
}

// New allocates a Mesh with cells^3 entries per buffer.
func New(cells int) (*Mesh, error) {
	if cells <= 0 {
		return nil, fmt.Errorf("Cell count must be positive, but is %d.", cells)
	}

	m := &Mesh{
		Cells:  cells,
		Length: cells,
		Area:   cells * cells,
		Volume: cells * cells * cells,
	}

	m.Rho = make([]complex128, m.Volume)
	m.K = make([]complex128, m.Volume)
	m.Phi = make([]complex128, m.Volume)

	return m, nil
}

// Idx returns the buffer index of the cell (i, j, k).
func (m *Mesh) Idx(i, j, k int) int {
	return k + m.Length*(j+m.Length*i)
}

// Coords returns the cell coordinates of a buffer index.
func (m *Mesh) Coords(idx int) (i, j, k int) {
	i = idx / m.Area
	j = (idx % m.Area) / m.Length
	k = idx % m.Length
	return i, j, k
}

// CellIndex returns the buffer index of the cell containing the unit-box
// position v.
func (m *Mesh) CellIndex(v *geom.Vec) int {
	i := cellCoord(v[0], m.Cells)
	j := cellCoord(v[1], m.Cells)
	k := cellCoord(v[2], m.Cells)
	return m.Idx(i, j, k)
}

// cellCoord maps a unit-box coordinate to a cell coordinate. Positions sit
// in [0, 1), but rounding in x*cells can still land exactly on cells.
func cellCoord(x float64, cells int) int {
	c := int(x * float64(cells))
	if c >= cells {
		c = cells - 1
	}
	return c
}

// ClearDensity zeroes the density buffer over [low, high).
func (m *Mesh) ClearDensity(low, high int) {
	for idx := low; idx < high; idx++ {
		m.Rho[idx] = 0
	}
}

// Deposit adds ptVal to the real part of the density cell containing each
// of the positions xs[low: high]. Cells can collect mass from particles
// owned by different workers, so the increments go through an atomic
// read-modify-write on the cell's real component. Imaginary parts are
// never touched.
func (m *Mesh) Deposit(xs []geom.Vec, ptVal float64, low, high int) {
	for idx := low; idx < high; idx++ {
		addReal(&m.Rho[m.CellIndex(&xs[idx])], ptVal)
	}
}

// addReal atomically adds x to the real component of c. The real part is
// the first word of a complex128.
func addReal(c *complex128, x float64) {
	addr := (*uint64)(unsafe.Pointer(c))
	for {
		oldBits := atomic.LoadUint64(addr)
		newBits := math.Float64bits(math.Float64frombits(oldBits) + x)
		if atomic.CompareAndSwapUint64(addr, oldBits, newBits) {
			return
		}
	}
}

// DensitySum returns the total deposited density, real and imaginary
// parts summed separately.
func (m *Mesh) DensitySum() (re, im float64) {
	for _, c := range m.Rho {
		re += real(c)
		im += imag(c)
	}
	return re, im
}
