package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/Georgesaba/Universe-Simulation/io"
	"github.com/Georgesaba/Universe-Simulation/sweep"
)

func main() {
	var (
		config        string
		output        string
		emin, emax    float64
		workers       int
		exampleConfig bool
	)

	flag.StringVar(
		&config, "Config", "",
		"Optional configuration file with a [Sweep] section.",
	)
	flag.StringVar(
		&output, "o", "",
		"Directory the correlation CSV and density snapshots are written to.",
	)
	flag.Float64Var(
		&emin, "emin", 0, "Minimum per-step expansion factor of the sweep.",
	)
	flag.Float64Var(
		&emax, "emax", 0, "Maximum per-step expansion factor of the sweep.",
	)
	flag.IntVar(
		&workers, "np", 0, "Number of simulations run in parallel.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleSweepFile)
		return
	}

	wrap := io.DefaultSweepWrapper()
	if config != "" {
		if err := io.ReadSweepConfig(wrap, config); err != nil {
			log.Fatal(err.Error())
		}
	}
	con := &wrap.Sweep

	// Explicit flags win over the configuration file.
	if output != "" {
		con.Output = output
	}
	if emin != 0 {
		con.MinExpansion = emin
	}
	if emax != 0 {
		con.MaxExpansion = emax
	}
	if workers != 0 {
		con.Workers = workers
	}

	if !con.ValidOutput() {
		log.Fatal("Invalid/non-existent 'Output' value.")
	}

	if err := os.MkdirAll(con.Output, 0777); err != nil {
		log.Fatal(err.Error())
	}

	results, err := sweep.Run(con)
	if err != nil {
		log.Fatal(err.Error())
	}

	factors := make([]string, len(results))
	corrs := make([][]float64, len(results))
	for i, res := range results {
		factors[i] = io.SigFig(res.Factor)
		corrs[i] = res.Corr
	}

	out := path.Join(con.Output, fmt.Sprintf(
		"Comparison_%d_%s_%s.csv",
		con.Workers, io.SigFig(con.MinExpansion), io.SigFig(con.MaxExpansion),
	))

	log.Printf("Writing correlation functions to %s", out)
	if err := io.WriteCorrelations(out, factors, corrs); err != nil {
		log.Fatal(err.Error())
	}
}
