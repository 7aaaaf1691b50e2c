package analysis

import (
	"github.com/san-kum/vortex/internal/binning"
	"github.com/san-kum/vortex/internal/diagram"
	"github.com/san-kum/vortex/internal/geom"
)

type Summary struct {
	Multiplier    int
	Modulus       int
	Orbits        int
	LongestOrbit  int
	FixedPoints   int
	Segments      int
	BucketCounts  []int
	Cutoffs       []float64
	MinMagnitude  float64
	MaxMagnitude  float64
	MeanMagnitude float64
}

// Summarize collects orbit and chord statistics for d.
func Summarize(d *diagram.Diagram) Summary {
	s := Summary{
		Multiplier:   d.Config.Multiplier,
		Modulus:      d.Config.Modulus,
		Orbits:       len(d.Orbits),
		Segments:     len(d.Segments),
		BucketCounts: binning.Counts(d.Segments, d.PaletteSize()),
		Cutoffs:      d.Cutoffs,
	}

	for _, o := range d.Orbits {
		if len(o) > s.LongestOrbit {
			s.LongestOrbit = len(o)
		}
		if len(o) == 1 {
			s.FixedPoints++
		}
	}

	mags := SortedMagnitudes(d)
	if len(mags) == 0 {
		return s
	}
	sum := 0.0
	for _, m := range mags {
		sum += m
	}
	s.MinMagnitude = mags[0]
	s.MaxMagnitude = mags[len(mags)-1]
	s.MeanMagnitude = sum / float64(len(mags))
	return s
}

// SortedMagnitudes returns chord lengths in ascending order, the sequence
// the cutoffs are read from.
func SortedMagnitudes(d *diagram.Diagram) []float64 {
	segments := make([]geom.Segment, len(d.Segments))
	for i, s := range d.Segments {
		segments[i] = s.Segment
	}
	return binning.Sorted(geom.Magnitudes(segments))
}

// OrbitLengths returns the length of each orbit in diagram order.
func OrbitLengths(d *diagram.Diagram) []float64 {
	lengths := make([]float64, len(d.Orbits))
	for i, o := range d.Orbits {
		lengths[i] = float64(len(o))
	}
	return lengths
}

// LengthHistogram counts orbits by length.
func LengthHistogram(d *diagram.Diagram) map[int]int {
	h := make(map[int]int)
	for _, o := range d.Orbits {
		h[len(o)]++
	}
	return h
}
