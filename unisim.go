/*package unisim evolves a self-gravitating particle cloud inside a
periodic cubic box whose physical width expands over time.

Each step deposits particle mass onto a mesh, solves Poisson's equation
for the potential in Fourier space, differentiates the potential into a
force field, kicks and drifts the particles, and rescales the box. The
mesh buffers and transform plans are allocated once at construction and
reused for every step.
*/
package unisim

import (
	"fmt"
	"log"
	"math"
	"path/filepath"
	"runtime"

	"github.com/Georgesaba/Universe-Simulation/fourier"
	"github.com/Georgesaba/Universe-Simulation/geom"
	"github.com/Georgesaba/Universe-Simulation/io"
	"github.com/Georgesaba/Universe-Simulation/mesh"
)

const (
	// Grids this large are almost certainly a configuration mistake.
	cellWarningLimit = 400
	// Snapshot cadence when an output directory is given.
	snapshotEvery = 10
)

// Simulation owns one particle group, one mesh, and the transform plans
// tied to the mesh buffers. It is not safe for concurrent use; the
// internal worker pool is the only concurrency inside a step.
type Simulation struct {
	tMax, dt  float64
	width     float64
	expansion float64
	cells     int

	group *ParticleGroup

	mesh              *mesh.Mesh
	forward, backward *fourier.Plan
	grad              []geom.Vec

	workers int
	steps   int
	log     bool
}

// NewSimulation validates the configuration and allocates the mesh, the
// gradient field, and the transform plans. Invalid values are fatal and
// reported as errors; suspicious but legal ones are warned about once.
func NewSimulation(
	tMax, dt float64, group *ParticleGroup,
	width float64, cells int, expansion float64,
) (*Simulation, error) {
	if tMax <= 0 {
		return nil, fmt.Errorf("Maximum time must be positive, but is %g.", tMax)
	} else if dt <= 0 {
		return nil, fmt.Errorf("Time step must be positive, but is %g.", dt)
	} else if width <= 0 {
		return nil, fmt.Errorf("Box width must be positive, but is %g.", width)
	} else if cells < 1 || cells > math.MaxInt32 {
		return nil, fmt.Errorf(
			"Cell count must be in [1, %d], but is %d.", math.MaxInt32, cells,
		)
	} else if expansion <= 0 {
		return nil, fmt.Errorf(
			"Expansion factor must be positive, but is %g.", expansion,
		)
	} else if group == nil {
		return nil, fmt.Errorf("Simulation requires a particle group.")
	}

	if expansion < 1 {
		log.Printf(
			"Expansion factor %g is below 1: the box will contract.", expansion,
		)
	}
	if cells > cellWarningLimit {
		log.Printf(
			"Cell count %d is above %d: the mesh will be very large.",
			cells, cellWarningLimit,
		)
	}

	m, err := mesh.New(cells)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		tMax: tMax, dt: dt,
		width:     width,
		expansion: expansion,
		cells:     cells,
		group:     group,
		mesh:      m,
		grad:      make([]geom.Vec, m.Volume),
		workers:   runtime.NumCPU(),
	}

	// The plans are pinned to the mesh buffers for the life of the
	// simulation: density -> k-space forward, k-space -> potential
	// backward.
	s.forward, err = fourier.NewPlan(m.Rho, m.K, cells, fourier.Forward)
	if err != nil {
		return nil, err
	}
	s.backward, err = fourier.NewPlan(m.K, m.Phi, cells, fourier.Backward)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// SetWorkers sets the size of the worker pool used by the per-step
// passes. One worker makes runs bitwise reproducible.
func (s *Simulation) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	s.workers = n
}

// Log turns progress logging on or off.
func (s *Simulation) Log(flag bool) { s.log = flag }

// Width returns the current physical box width.
func (s *Simulation) Width() float64 { return s.width }

// Group returns the simulation's particle group.
func (s *Simulation) Group() *ParticleGroup { return s.group }

// Steps returns the number of completed time steps.
func (s *Simulation) Steps() int { return s.steps }

// Run evolves the simulation to its maximum time. If outDir is non-empty
// a density snapshot is written every tenth step; snapshots never alter
// simulation state.
func (s *Simulation) Run(outDir string) error {
	for t := 0.0; t < s.tMax; t += s.dt {
		s.depositDensity()
		s.solvePotential()
		s.applyForces()
		s.expand()

		s.steps++
		if outDir != "" && s.steps%snapshotEvery == 0 {
			path := filepath.Join(
				outDir, fmt.Sprintf("density_%04d.dat", s.steps),
			)
			if err := io.WriteDensity(s.mesh.Rho, s.cells, path); err != nil {
				return err
			}
		}

		if s.log && s.steps%25 == 0 {
			log.Printf("Completed %d steps, width %g.", s.steps, s.width)
		}
	}

	return nil
}

// depositDensity zeroes the density buffer and deposits every particle
// into its nearest grid point.
func (s *Simulation) depositDensity() {
	s.fanOut(s.mesh.Volume, func(low, high int) {
		s.mesh.ClearDensity(low, high)
	})

	cellWidth := s.width / float64(s.cells)
	ptVal := s.group.Mass / (cellWidth * cellWidth * cellWidth)

	s.fanOut(s.group.Count(), func(low, high int) {
		s.mesh.Deposit(s.group.Xs, ptVal, low, high)
	})
}

// solvePotential runs the forward transform, applies the Green's
// function in k-space, and transforms back into the potential buffer.
func (s *Simulation) solvePotential() {
	s.forward.Execute()

	s.fanOut(s.mesh.Volume, func(low, high int) {
		s.mesh.ScaleGreens(s.width, low, high)
	})

	s.backward.Execute()
}

// applyForces differentiates the potential and advances every particle
// by one kick-drift step using the gradient of its current cell.
func (s *Simulation) applyForces() {
	cellWidth := s.width / float64(s.cells)

	s.fanOut(s.mesh.Volume, func(low, high int) {
		s.mesh.Gradient(s.grad, cellWidth, low, high)
	})

	s.fanOut(s.group.Count(), func(low, high int) {
		s.integrate(low, high)
	})
}

func (s *Simulation) integrate(low, high int) {
	xs, vs := s.group.Xs, s.group.Vs

	for p := low; p < high; p++ {
		g := &s.grad[s.mesh.CellIndex(&xs[p])]

		for d := 0; d < 3; d++ {
			vs[p][d] -= g[d] * s.dt
			xs[p][d] += vs[p][d] * s.dt
		}
		xs[p].BoundSelf()
	}
}

// expand grows the box width by the expansion factor and damps every
// velocity by the same factor. Unit-box positions are unchanged.
func (s *Simulation) expand() {
	s.width *= s.expansion

	inv := 1.0 / s.expansion
	s.fanOut(s.group.Count(), func(low, high int) {
		vs := s.group.Vs
		for p := low; p < high; p++ {
			vs[p][0] *= inv
			vs[p][1] *= inv
			vs[p][2] *= inv
		}
	})
}

// fanOut splits [0, n) into contiguous chunks, one per worker. The last
// chunk runs on the calling goroutine. Exactly one pass is in flight at
// a time; fanOut returns only after every worker has finished.
func (s *Simulation) fanOut(n int, pass func(low, high int)) {
	workers := s.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		pass(0, n)
		return
	}

	out := make(chan int, workers)
	chunk := n / workers

	for id := 0; id < workers-1; id++ {
		go func(low, high int) {
			pass(low, high)
			out <- 1
		}(id*chunk, (id+1)*chunk)
	}
	pass((workers-1)*chunk, n)

	for i := 0; i < workers-1; i++ {
		<-out
	}
}
