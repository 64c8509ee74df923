/*package fourier wraps gonum's complex FFT in 3-D transform plans. A
plan binds a direction and a pair of cells^3 buffers at construction, the
same discipline FFTW imposes: the factor tables and pencil scratch space
are built once, and Execute may be called every step without allocating.

Transforms are unnormalized in both directions. A forward transform
followed by a backward one scales the input by cells^3; callers fold the
round-trip factor into whatever k-space scaling they apply in between.
*/
package fourier

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

type Direction int

const (
	Forward Direction = iota
	Backward
)

// Plan is a 3-D DFT bound to fixed source and destination buffers. The
// buffers must not be reallocated or resliced for the lifetime of the
// plan.
type Plan struct {
	cells int
	dir   Direction

	src, dst []complex128

	fft           *fourier.CmplxFFT
	line, lineOut []complex128
}

// NewPlan creates a plan transforming src into dst, both flat row-major
// cells^3 buffers. The transform runs out of place into dst and then
// in place along the remaining axes.
func NewPlan(src, dst []complex128, cells int, dir Direction) (*Plan, error) {
	if cells <= 0 {
		return nil, fmt.Errorf("Cell count must be positive, but is %d.", cells)
	}

	n := cells * cells * cells
	if len(src) != n || len(dst) != n {
		return nil, fmt.Errorf(
			"Plan buffers must have length %d, but have %d and %d.",
			n, len(src), len(dst),
		)
	}

	return &Plan{
		cells:   cells,
		dir:     dir,
		src:     src,
		dst:     dst,
		fft:     fourier.NewCmplxFFT(cells),
		line:    make([]complex128, cells),
		lineOut: make([]complex128, cells),
	}, nil
}

// Execute runs the planned transform. It blocks until the full 3-D
// transform is in the destination buffer.
func (p *Plan) Execute() {
	copy(p.dst, p.src)

	c := p.cells

	// z pencils are contiguous, y pencils stride by cells, x pencils by
	// cells^2.
	for i := 0; i < c; i++ {
		for j := 0; j < c; j++ {
			p.pencil(c*(j+c*i), 1)
		}
	}
	for i := 0; i < c; i++ {
		for k := 0; k < c; k++ {
			p.pencil(k+c*c*i, c)
		}
	}
	for j := 0; j < c; j++ {
		for k := 0; k < c; k++ {
			p.pencil(k+c*j, c*c)
		}
	}
}

func (p *Plan) pencil(base, stride int) {
	for n := 0; n < p.cells; n++ {
		p.line[n] = p.dst[base+n*stride]
	}

	var out []complex128
	if p.dir == Forward {
		out = p.fft.Coefficients(p.lineOut, p.line)
	} else {
		out = p.fft.Sequence(p.lineOut, p.line)
	}

	for n := 0; n < p.cells; n++ {
		p.dst[base+n*stride] = out[n]
	}
}
