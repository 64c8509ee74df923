/*plot_density plots a density profile along the x axis of a snapshot
slice written by the simulation driver.

	$ plot_density density_0010.dat rho.png
*/
package main

import (
	"bufio"
	"log"
	"os"
	"strings"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Required file use: $ %s snapshot_file out_file", os.Args[0])
	}
	snapFile, outFile := os.Args[1], os.Args[2]

	cells := countColumns(snapFile)

	// The mid column of the slice gives rho(x) at fixed y, z.
	cols, err := table.ReadTable(snapFile, []int{cells / 2}, nil)
	if err != nil {
		log.Fatal(err.Error())
	}
	rhos := cols[0]

	xs := make([]float64, len(rhos))
	for i := range xs {
		xs[i] = (float64(i) + 0.5) / float64(len(rhos))
	}

	plt.Figure()
	plt.Plot(xs, rhos, "k", plt.LW(2))
	plt.XLabel(`$x$ (unit box)`, plt.FontSize(16))
	plt.YLabel(`$\rho$`, plt.FontSize(16))
	plt.SaveFig(outFile)
	plt.Execute()
}

func countColumns(fname string) int {
	f, err := os.Open(fname)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer f.Close()

	scan := bufio.NewScanner(f)
	scan.Buffer(make([]byte, 1<<20), 1<<20)
	if !scan.Scan() {
		log.Fatalf("%s is empty.", fname)
	}

	return len(strings.Fields(scan.Text()))
}
