package sweep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Georgesaba/Universe-Simulation/io"
)

func testConfig() *io.SweepConfig {
	con := &io.DefaultSweepWrapper().Sweep
	con.MinExpansion = 1.00
	con.MaxExpansion = 1.06
	con.Workers = 4
	con.Cells = 4
	con.ParticlesPerCell = 1
	con.Width = 10.0
	con.TMax = 0.03
	con.TimeStep = 0.01
	con.Bins = 11
	return con
}

func TestRunGathersEveryWorker(t *testing.T) {
	con := testConfig()

	results, err := Run(con)
	if err != nil {
		t.Fatal(err.Error())
	}

	assert.Equal(t, con.Workers, len(results))

	step := (con.MaxExpansion - con.MinExpansion) / float64(con.Workers-1)
	for rank, res := range results {
		want := con.MinExpansion + float64(rank)*step
		assert.InDelta(t, want, res.Factor, 1e-14, "factor of worker %d", rank)

		assert.Equal(t, con.Bins, len(res.Corr), "vector of worker %d", rank)
		for b, xi := range res.Corr {
			if math.IsNaN(xi) || math.IsInf(xi, 0) {
				t.Fatalf("Worker %d bin %d is %g.", rank, b, xi)
			}
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	r1, err := Run(testConfig())
	if err != nil {
		t.Fatal(err.Error())
	}
	r2, err := Run(testConfig())
	if err != nil {
		t.Fatal(err.Error())
	}

	for rank := range r1 {
		assert.Equal(t, r1[rank].Factor, r2[rank].Factor)
	}
}

func TestRunRejectsSmallGroups(t *testing.T) {
	for _, workers := range []int{-1, 0, 1} {
		con := testConfig()
		con.Workers = workers
		_, err := Run(con)
		assert.Error(t, err, "%d workers", workers)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	breakers := []func(*io.SweepConfig){
		func(c *io.SweepConfig) { c.MinExpansion = 0 },
		func(c *io.SweepConfig) { c.MaxExpansion = c.MinExpansion - 0.5 },
		func(c *io.SweepConfig) { c.Cells = 0 },
		func(c *io.SweepConfig) { c.ParticlesPerCell = -1 },
		func(c *io.SweepConfig) { c.Width = 0 },
		func(c *io.SweepConfig) { c.TotalMass = -1 },
		func(c *io.SweepConfig) { c.TMax = 0 },
		func(c *io.SweepConfig) { c.TimeStep = -0.01 },
		func(c *io.SweepConfig) { c.Bins = 0 },
	}

	for i, breaker := range breakers {
		con := testConfig()
		breaker(con)
		_, err := Run(con)
		assert.Error(t, err, "case %d", i)
	}
}
