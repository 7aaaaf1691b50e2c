// Package geom places residues on the unit circle and joins orbits into
// chord segments.
package geom
