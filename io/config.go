package io

import (
	"gopkg.in/gcfg.v1"
)

const ExampleSweepFile = `[Sweep]

#######################
# Required Parameters #
#######################

# Smallest and largest per-step expansion factors of the sweep. Each
# worker runs one simulation; worker r uses
# MinExpansion + r * (MaxExpansion - MinExpansion) / (Workers - 1).
MinExpansion = 1.00
MaxExpansion = 1.06

# Number of simulations run in parallel. Must be at least two, since the
# factor step divides by Workers - 1.
Workers = 4

# Directory the correlation CSV and any density snapshots are written to.
Output = path/to/output/dir

#######################
# Optional Parameters #
#######################

# Side length of the mesh, in cells.
# Cells = 101

# Average number of particles per mesh cell. The particle count is
# ParticlesPerCell * Cells^3.
# ParticlesPerCell = 13

# Initial physical box width.
# Width = 100.0

# Total mass of the cloud, split evenly over the particles.
# TotalMass = 100000.0

# Simulated time span and step.
# TMax = 1.5
# TimeStep = 0.01

# Seed of the initial particle positions.
# Seed = 42

# Number of correlation function bins.
# Bins = 101`

type SweepConfig struct {
	// Required
	MinExpansion, MaxExpansion float64
	Workers                    int
	Output                     string

	// Optional
	Cells            int
	ParticlesPerCell int
	Width            float64
	TotalMass        float64
	TMax             float64
	TimeStep         float64
	Seed             int64
	Bins             int
}

type SweepWrapper struct {
	Sweep SweepConfig
}

// DefaultSweepWrapper returns a wrapper whose optional fields hold the
// reference experiment: a 101^3 mesh with 13 particles per cell in a
// box of width 100 and total mass 1e5, run to t = 1.5 in steps of 0.01.
func DefaultSweepWrapper() *SweepWrapper {
	con := SweepConfig{}
	con.Cells = 101
	con.ParticlesPerCell = 13
	con.Width = 100.0
	con.TotalMass = 1e5
	con.TMax = 1.5
	con.TimeStep = 0.01
	con.Seed = 42
	con.Bins = 101
	return &SweepWrapper{con}
}

// ReadSweepConfig reads a [Sweep] section into wrap, on top of whatever
// defaults wrap already holds.
func ReadSweepConfig(wrap *SweepWrapper, fname string) error {
	return gcfg.ReadFileInto(wrap, fname)
}

func (con *SweepConfig) ValidMinExpansion() bool {
	return con.MinExpansion > 0
}
func (con *SweepConfig) ValidMaxExpansion() bool {
	return con.MaxExpansion >= con.MinExpansion
}
func (con *SweepConfig) ValidWorkers() bool {
	return con.Workers >= 2
}
func (con *SweepConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SweepConfig) ValidCells() bool {
	return con.Cells > 0
}
func (con *SweepConfig) ValidParticlesPerCell() bool {
	return con.ParticlesPerCell > 0
}
func (con *SweepConfig) ValidWidth() bool {
	return con.Width > 0
}
func (con *SweepConfig) ValidTotalMass() bool {
	return con.TotalMass > 0
}
func (con *SweepConfig) ValidTMax() bool {
	return con.TMax > 0
}
func (con *SweepConfig) ValidTimeStep() bool {
	return con.TimeStep > 0
}
func (con *SweepConfig) ValidBins() bool {
	return con.Bins > 0
}
