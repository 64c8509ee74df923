/*plot_correlations renders the correlation functions of a sweep CSV as
a single comparison figure, one curve per expansion factor.

	$ plot_correlations Comparison_4_1_1.06.csv corr.png
*/
package main

import (
	"encoding/csv"
	"log"
	"math"
	"os"
	"strconv"

	plt "github.com/phil-mansfield/pyplot"
)

var colors = []string{"b", "g", "r", "c", "m", "y", "k"}

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("Required file use: $ %s csv_file out_file", os.Args[0])
	}
	csvFile, outFile := os.Args[1], os.Args[2]

	factors, corrs := readCorrelations(csvFile)

	bins := len(corrs[0])
	rMax := math.Sqrt(3) / 2
	rs := make([]float64, bins)
	for b := range rs {
		rs[b] = (float64(b) + 0.5) * rMax / float64(bins)
	}

	plt.Figure()
	for i, corr := range corrs {
		plt.Plot(rs, corr, plt.C(colors[i%len(colors)]), plt.LW(2))
	}
	plt.Title("Two-point correlation, a = " + rangeString(factors))
	plt.XLabel(`$r$ (unit box)`, plt.FontSize(16))
	plt.YLabel(`$\xi(r)$`, plt.FontSize(16))
	plt.SaveFig(outFile)
	plt.Execute()
}

func rangeString(factors []string) string {
	if len(factors) == 1 {
		return factors[0]
	}
	return factors[0] + " .. " + factors[len(factors)-1]
}

func readCorrelations(fname string) (factors []string, corrs [][]float64) {
	f, err := os.Open(fname)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		log.Fatal(err.Error())
	}
	if len(rows) < 2 {
		log.Fatalf("%s contains no correlation bins.", fname)
	}

	factors = rows[0]
	corrs = make([][]float64, len(factors))

	for _, row := range rows[1:] {
		for c := range factors {
			x, err := strconv.ParseFloat(row[c], 64)
			if err != nil {
				log.Fatal(err.Error())
			}
			corrs[c] = append(corrs[c], x)
		}
	}

	return factors, corrs
}
