// Package orbit enumerates multiplicative orbits of residues modulo N.
//
// Starting from every residue 1..N-1 not already seen, an orbit is built by
// repeatedly multiplying by k mod N until the next value is one the orbit
// already holds:
//
//	orbits, _ := orbit.Enumerate(2, 9)
//	// [[1 2 4 8 7 5] [3 6]]
//
// When gcd(k, N) = 1 the orbits partition {1..N-1}. For other multipliers
// orbits run into shared tails (0 included) and may overlap.
//
// The package also carries the digit helpers [DigitalSum] and
// [DigitalRoot] used alongside mod 9 diagrams.
package orbit
