/*package correlate estimates the two-point correlation function of a
particle configuration under unit-box periodic boundaries.

Pair separations are minimum-image distances, histogrammed into bins of
equal width covering [0, sqrt(3)/2), and normalized against the pair
count a uniform Poisson field of the same density would put in each
shell. The estimator is O(n^2) and is meant to run once at the end of a
simulation.
*/
package correlate

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Georgesaba/Universe-Simulation/geom"
)

// RMax is the largest histogrammed separation, half the diagonal of the
// unit box.
var RMax = math.Sqrt(3) / 2

// Function returns the correlation function of the positions xs over
// the given number of bins, computed with the given number of workers.
// Pair counting parallelizes over the outer index with per-worker bin
// arrays that are reduced at the end.
func Function(xs []geom.Vec, bins, workers int) []float64 {
	if workers < 1 {
		workers = 1
	}

	dd := pairCounts(xs, bins, workers)

	edges := make([]float64, bins+1)
	floats.Span(edges, 0, RMax)

	n := float64(len(xs))
	pairs := n * (n - 1) / 2

	xi := make([]float64, bins)
	for b := range xi {
		shell := 4.0 * math.Pi / 3.0 *
			(math.Pow(edges[b+1], 3) - math.Pow(edges[b], 3))
		ideal := pairs * shell

		if ideal == 0 {
			// Fewer than two particles: no pairs anywhere.
			xi[b] = -1
			continue
		}
		xi[b] = dd[b]/ideal - 1
	}

	return xi
}

func pairCounts(xs []geom.Vec, bins, workers int) []float64 {
	dr := RMax / float64(bins)

	counts := make([][]float64, workers)
	out := make(chan int, workers)

	for id := 0; id < workers-1; id++ {
		go countPairs(xs, bins, dr, id, workers, counts, out)
	}
	countPairs(xs, bins, dr, workers-1, workers, counts, out)

	for i := 0; i < workers; i++ {
		<-out
	}

	dd := counts[0]
	for id := 1; id < workers; id++ {
		floats.Add(dd, counts[id])
	}
	return dd
}

// countPairs histograms the pairs (a, b) with a < b for every outer index
// a owned by this worker. Outer indices are strided across workers so no
// worker ends up with only the short tails of the pair triangle.
func countPairs(
	xs []geom.Vec, bins int, dr float64,
	id, jump int, counts [][]float64, out chan<- int,
) {
	dd := make([]float64, bins)

	for a := id; a < len(xs); a += jump {
		for b := a + 1; b < len(xs); b++ {
			r := geom.Distance(&xs[a], &xs[b])
			if r < RMax {
				bin := int(r / dr)
				// r/dr can round up to bins for r just below RMax.
				if bin == bins {
					bin--
				}
				dd[bin]++
			}
		}
	}

	counts[id] = dd
	out <- id
}
