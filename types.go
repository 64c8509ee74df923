package unisim

import (
	"golang.org/x/exp/rand"

	"github.com/Georgesaba/Universe-Simulation/geom"
)

// ParticleGroup is a fixed-size collection of particles. Every particle
// carries a position in unit-box coordinates and a velocity; all of them
// share one mass. The ordering of the arrays is arbitrary but never
// changes over the lifetime of the group.
type ParticleGroup struct {
	Mass   float64
	Xs, Vs []geom.Vec
}

// NewParticleGroup creates n particles with positions drawn uniformly
// from [0, 1)^3 by a generator seeded with seed, and velocities at zero.
// The same seed always produces the same cloud.
func NewParticleGroup(mass float64, n int, seed uint64) *ParticleGroup {
	gen := rand.New(rand.NewSource(seed))

	g := &ParticleGroup{
		Mass: mass,
		Xs:   make([]geom.Vec, n),
		Vs:   make([]geom.Vec, n),
	}

	for i := range g.Xs {
		for d := 0; d < 3; d++ {
			g.Xs[i][d] = gen.Float64()
		}
	}

	return g
}

// Count returns the number of particles in the group.
func (g *ParticleGroup) Count() int { return len(g.Xs) }
