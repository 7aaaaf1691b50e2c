package geom

import (
	"math"

	"github.com/san-kum/vortex/internal/orbit"
)

// Point is a position on the plane; diagram points lie on the unit circle.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Angle returns the polar angle of residue on a circle divided into modulus
// steps. Residue 0 sits at the top.
func Angle(residue, modulus int) float64 {
	return float64(residue)/float64(modulus)*2*math.Pi + 0.5*math.Pi
}

// ToPoint maps residue to its point on the unit circle.
func ToPoint(residue, modulus int) Point {
	angle := Angle(residue, modulus)
	return Point{X: math.Cos(angle), Y: math.Sin(angle)}
}

type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Magnitude is the Euclidean length of the segment.
func (s Segment) Magnitude() float64 {
	return s.End.Sub(s.Start).Norm()
}

func (s Segment) IsDegenerate() bool {
	return s.Start == s.End
}

// BuildSegments closes every orbit and joins consecutive residues, keeping
// orbit order and traversal order.
func BuildSegments(orbits []orbit.Orbit, modulus int) []Segment {
	segments := make([]Segment, 0, orbit.Count(orbits))
	for _, o := range orbits {
		if len(o) == 0 {
			continue
		}
		closed := o.Closed()
		prev := ToPoint(closed[0], modulus)
		for _, r := range closed[1:] {
			p := ToPoint(r, modulus)
			segments = append(segments, Segment{Start: prev, End: p})
			prev = p
		}
	}
	return segments
}

// Magnitudes returns the length of each segment in input order.
func Magnitudes(segments []Segment) []float64 {
	mags := make([]float64, len(segments))
	for i, s := range segments {
		mags[i] = s.Magnitude()
	}
	return mags
}
