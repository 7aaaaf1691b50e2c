// Package diagram builds multiplication-cycle line diagrams.
//
// A diagram is defined by a modulus N, a multiplier k and a palette of C
// colours. Building one runs three stages:
//
//   - [orbit.Enumerate]: residues 1..N-1 grouped into cycles of x -> k*x mod N
//   - [geom.BuildSegments]: each cycle closed into chords of the unit circle
//   - [binning.Assign]: chords bucketed by length into C nearest-rank quantiles
//
// # Example
//
//	d, err := diagram.Build(diagram.Config{
//	    Multiplier: 2,
//	    Modulus:    9,
//	    Palette:    []string{"#264653", "#2a9d8f", "#e9c46a", "#e76f51"},
//	})
//	for _, s := range d.Segments {
//	    draw(s.Start, s.End, d.Color(s))
//	}
//
// # Thread Safety
//
// Build is a pure function of its Config; concurrent calls share no state.
// [Sweep] builds many diagrams in parallel.
package diagram
