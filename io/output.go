package io

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WriteDensity writes the mid-plane slice of the real part of a cells^3
// density field to path as a whitespace-separated table, one row of the
// slice per line. field is flat row-major with idx = k + cells*(j +
// cells*i); the slice holds k = cells/2 fixed.
func WriteDensity(field []complex128, cells int, path string) error {
	if len(field) != cells*cells*cells {
		return fmt.Errorf(
			"Density field has length %d, but the cell count %d requires %d.",
			len(field), cells, cells*cells*cells,
		)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	k := cells / 2
	for i := 0; i < cells; i++ {
		row := make([]string, cells)
		for j := 0; j < cells; j++ {
			idx := k + cells*(j+cells*i)
			row[j] = strconv.FormatFloat(real(field[idx]), 'g', -1, 64)
		}
		if _, err := fmt.Fprintln(f, strings.Join(row, " ")); err != nil {
			return err
		}
	}

	return nil
}

// WriteCorrelations writes one correlation function per column to a CSV
// file. The header row holds the expansion factor of each column; every
// value is formatted with enough precision to round-trip.
func WriteCorrelations(path string, factors []string, corrs [][]float64) error {
	if len(factors) != len(corrs) {
		return fmt.Errorf(
			"Got %d column headers for %d correlation functions.",
			len(factors), len(corrs),
		)
	}

	bins := 0
	for _, corr := range corrs {
		if len(corr) > bins {
			bins = len(corr)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, strings.Join(factors, ",")); err != nil {
		return err
	}

	row := make([]string, len(corrs))
	for b := 0; b < bins; b++ {
		for c, corr := range corrs {
			if b < len(corr) {
				row[c] = strconv.FormatFloat(corr[b], 'g', -1, 64)
			} else {
				row[c] = ""
			}
		}
		if _, err := fmt.Fprintln(f, strings.Join(row, ",")); err != nil {
			return err
		}
	}

	return nil
}

// SigFig formats x with four significant figures, the convention used
// for expansion factors in output file names and CSV headers.
func SigFig(x float64) string {
	return strconv.FormatFloat(x, 'g', 4, 64)
}
