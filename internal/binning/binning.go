// Package binning assigns chord segments to colour buckets by length.
//
// Cutoffs are nearest-rank quantiles of the sorted magnitudes: with C
// buckets, cutoff j is the magnitude at index floor(len/C * j). A segment
// falls into the highest bucket whose cutoff does not exceed its length.
package binning

import (
	"sort"

	"github.com/san-kum/vortex/internal/geom"
)

// MinMagnitude is the first cutoff of every palette.
const MinMagnitude = 0.0

type ColoredSegment struct {
	geom.Segment
	Bucket int `json:"bucket"`
}

// Cutoffs returns paletteSize cutoffs from magnitudes sorted ascending.
func Cutoffs(sorted []float64, paletteSize int) []float64 {
	if paletteSize < 1 {
		return nil
	}
	cutoffs := make([]float64, paletteSize)
	cutoffs[0] = MinMagnitude
	if len(sorted) == 0 {
		return cutoffs
	}

	step := float64(len(sorted)) / float64(paletteSize)
	for j := 1; j < paletteSize; j++ {
		cutoffs[j] = sorted[int(step*float64(j))]
	}
	return cutoffs
}

// Bucket returns the largest j with cutoffs[j] <= magnitude, or 0.
func Bucket(magnitude float64, cutoffs []float64) int {
	bucket := 0
	for j, c := range cutoffs {
		if magnitude >= c {
			bucket = j
		}
	}
	return bucket
}

// Sorted returns a sorted copy of magnitudes.
func Sorted(magnitudes []float64) []float64 {
	s := make([]float64, len(magnitudes))
	copy(s, magnitudes)
	sort.Float64s(s)
	return s
}

// Assign buckets every segment, preserving input order. It also returns the
// cutoffs used.
func Assign(segments []geom.Segment, paletteSize int) ([]ColoredSegment, []float64) {
	mags := geom.Magnitudes(segments)
	cutoffs := Cutoffs(Sorted(mags), paletteSize)

	out := make([]ColoredSegment, len(segments))
	for i, s := range segments {
		out[i] = ColoredSegment{Segment: s, Bucket: Bucket(mags[i], cutoffs)}
	}
	return out, cutoffs
}

// Counts returns how many segments fell into each of paletteSize buckets.
func Counts(segments []ColoredSegment, paletteSize int) []int {
	counts := make([]int, paletteSize)
	for _, s := range segments {
		if s.Bucket >= 0 && s.Bucket < paletteSize {
			counts[s.Bucket]++
		}
	}
	return counts
}
