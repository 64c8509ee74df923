/*package sweep runs one simulation per expansion factor across a group
of shared-nothing workers and gathers their correlation functions.

Worker 0 is the coordinator. It hands every peer the minimum expansion
factor and the factor step over point-to-point links, runs its own
simulation at the minimum factor, and then collects one correlation
vector from each peer. Workers never share memory; each owns its mesh
and particles outright.

The links carry tagged packets:

	tag 0: coordinator -> peer, minimum expansion factor
	tag 1: coordinator -> peer, expansion factor step
	tag 2: peer -> coordinator, correlation vector size
	tag 3: peer -> coordinator, correlation vector values

A packet arriving with the wrong tag is a transport failure and brings
the whole group down.
*/
package sweep

import (
	"fmt"
	"runtime"

	unisim "github.com/Georgesaba/Universe-Simulation"
	"github.com/Georgesaba/Universe-Simulation/correlate"
	"github.com/Georgesaba/Universe-Simulation/io"
)

const (
	tagMinExpansion = iota
	tagExpansionStep
	tagVectorSize
	tagVector
)

type packet struct {
	tag  int
	vals []float64
	size uint32
}

// comm is one worker's endpoint in a fully connected group. Sends
// precede their matching receives; no other ordering is assumed.
type comm struct {
	rank  int
	links [][]chan packet
}

func newGroup(n int) []*comm {
	links := make([][]chan packet, n)
	for i := range links {
		links[i] = make([]chan packet, n)
		for j := range links[i] {
			links[i][j] = make(chan packet, 4)
		}
	}

	comms := make([]*comm, n)
	for rank := range comms {
		comms[rank] = &comm{rank, links}
	}
	return comms
}

func (c *comm) send(to int, p packet) {
	c.links[c.rank][to] <- p
}

func (c *comm) recv(from, tag int) packet {
	p := <-c.links[from][c.rank]
	if p.tag != tag {
		panic(fmt.Sprintf(
			"Worker %d expected tag %d from worker %d, but got tag %d.",
			c.rank, tag, from, p.tag,
		))
	}
	return p
}

// Result is one worker's contribution to the sweep.
type Result struct {
	Factor float64
	Corr   []float64
}

// Run sweeps con.Workers expansion factors from MinExpansion to
// MaxExpansion and returns the results ordered by worker rank. Only the
// coordinator's simulation writes density snapshots. The configuration
// is validated up front so that no worker can fail after the group has
// been spawned.
func Run(con *io.SweepConfig) ([]Result, error) {
	if err := check(con); err != nil {
		return nil, err
	}

	step := (con.MaxExpansion - con.MinExpansion) / float64(con.Workers-1)

	comms := newGroup(con.Workers)
	for rank := 1; rank < con.Workers; rank++ {
		go peerMain(comms[rank], con)
	}

	c := comms[0]
	for rank := 1; rank < con.Workers; rank++ {
		c.send(rank, packet{
			tag: tagMinExpansion, vals: []float64{con.MinExpansion},
		})
		c.send(rank, packet{
			tag: tagExpansionStep, vals: []float64{step},
		})
	}

	corr, err := runOne(con, con.MinExpansion, con.Output)
	if err != nil {
		return nil, err
	}

	results := make([]Result, con.Workers)
	results[0] = Result{con.MinExpansion, corr}

	for rank := 1; rank < con.Workers; rank++ {
		size := c.recv(rank, tagVectorSize).size
		vals := c.recv(rank, tagVector).vals
		if uint32(len(vals)) != size {
			panic(fmt.Sprintf(
				"Worker %d announced %d correlation values, but sent %d.",
				rank, size, len(vals),
			))
		}
		results[rank] = Result{con.MinExpansion + float64(rank)*step, vals}
	}

	return results, nil
}

func peerMain(c *comm, con *io.SweepConfig) {
	min := c.recv(0, tagMinExpansion).vals[0]
	step := c.recv(0, tagExpansionStep).vals[0]
	factor := min + float64(c.rank)*step

	corr, err := runOne(con, factor, "")
	if err != nil {
		// check already vetted everything a peer does, so this is an
		// internal failure and takes the group down with it.
		panic(err.Error())
	}

	c.send(0, packet{tag: tagVectorSize, size: uint32(len(corr))})
	c.send(0, packet{tag: tagVector, vals: corr})
}

func runOne(con *io.SweepConfig, factor float64, outDir string) ([]float64, error) {
	n := con.Cells * con.Cells * con.Cells * con.ParticlesPerCell
	group := unisim.NewParticleGroup(
		con.TotalMass/float64(n), n, uint64(con.Seed),
	)

	sim, err := unisim.NewSimulation(
		con.TMax, con.TimeStep, group, con.Width, con.Cells, factor,
	)
	if err != nil {
		return nil, err
	}

	if err := sim.Run(outDir); err != nil {
		return nil, err
	}

	return correlate.Function(sim.Group().Xs, con.Bins, runtime.NumCPU()), nil
}

func check(con *io.SweepConfig) error {
	if !con.ValidWorkers() {
		return fmt.Errorf(
			"A sweep needs at least two workers, but got %d.", con.Workers,
		)
	} else if !con.ValidMinExpansion() {
		return fmt.Errorf(
			"Minimum expansion factor must be positive, but is %g.",
			con.MinExpansion,
		)
	} else if !con.ValidMaxExpansion() {
		return fmt.Errorf(
			"Maximum expansion factor %g is below the minimum %g.",
			con.MaxExpansion, con.MinExpansion,
		)
	} else if !con.ValidCells() {
		return fmt.Errorf("Cell count must be positive, but is %d.", con.Cells)
	} else if !con.ValidParticlesPerCell() {
		return fmt.Errorf(
			"Particles per cell must be positive, but is %d.",
			con.ParticlesPerCell,
		)
	} else if !con.ValidWidth() {
		return fmt.Errorf("Box width must be positive, but is %g.", con.Width)
	} else if !con.ValidTotalMass() {
		return fmt.Errorf(
			"Total mass must be positive, but is %g.", con.TotalMass,
		)
	} else if !con.ValidTMax() {
		return fmt.Errorf(
			"Maximum time must be positive, but is %g.", con.TMax,
		)
	} else if !con.ValidTimeStep() {
		return fmt.Errorf(
			"Time step must be positive, but is %g.", con.TimeStep,
		)
	} else if !con.ValidBins() {
		return fmt.Errorf("Bin count must be positive, but is %d.", con.Bins)
	}
	return nil
}
