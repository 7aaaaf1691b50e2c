package geom

import (
	"math"
	"testing"

	"github.com/san-kum/vortex/internal/orbit"
)

const tol = 1e-12

func TestToPointOnUnitCircle(t *testing.T) {
	for _, modulus := range []int{2, 3, 9, 100, 997} {
		for r := 0; r < modulus; r++ {
			p := ToPoint(r, modulus)
			if math.Abs(p.X*p.X+p.Y*p.Y-1) > tol {
				t.Fatalf("residue %d mod %d: point (%f, %f) off the unit circle", r, modulus, p.X, p.Y)
			}
		}
	}
}

func TestToPointOrientation(t *testing.T) {
	tests := []struct {
		residue, modulus int
		x, y             float64
	}{
		{0, 4, 0, 1},
		{1, 4, -1, 0},
		{2, 4, 0, -1},
		{3, 4, 1, 0},
	}

	for _, tt := range tests {
		p := ToPoint(tt.residue, tt.modulus)
		if math.Abs(p.X-tt.x) > tol || math.Abs(p.Y-tt.y) > tol {
			t.Errorf("residue %d mod %d: expected (%f, %f), got (%f, %f)",
				tt.residue, tt.modulus, tt.x, tt.y, p.X, p.Y)
		}
	}
}

func TestBuildSegmentsClosesOrbits(t *testing.T) {
	orbits := []orbit.Orbit{{1, 2, 4, 3}}
	segments := BuildSegments(orbits, 5)

	if len(segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segments))
	}
	for i := 1; i < len(segments); i++ {
		if segments[i].Start != segments[i-1].End {
			t.Errorf("segment %d does not continue from segment %d", i, i-1)
		}
	}
	if segments[3].End != ToPoint(1, 5) {
		t.Error("last segment should close back to residue 1")
	}
	if segments[0].Start != ToPoint(1, 5) || segments[0].End != ToPoint(2, 5) {
		t.Error("first segment should join residues 1 and 2")
	}
}

func TestBuildSegmentsSingletons(t *testing.T) {
	orbits, err := orbit.Enumerate(1, 4)
	if err != nil {
		t.Fatalf("enumerate failed: %v", err)
	}
	segments := BuildSegments(orbits, 4)

	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}
	for i, s := range segments {
		if !s.IsDegenerate() {
			t.Errorf("segment %d should be zero length", i)
		}
		if s.Magnitude() != 0 {
			t.Errorf("segment %d: expected magnitude 0, got %f", i, s.Magnitude())
		}
	}
}

func TestSegmentCountMatchesResidues(t *testing.T) {
	for _, tt := range []struct{ k, n int }{{2, 9}, {3, 100}, {7, 1000}, {1, 2}} {
		orbits, err := orbit.Enumerate(tt.k, tt.n)
		if err != nil {
			t.Fatalf("enumerate failed: %v", err)
		}
		segments := BuildSegments(orbits, tt.n)
		if len(segments) != orbit.Count(orbits) {
			t.Errorf("k=%d n=%d: expected %d segments, got %d", tt.k, tt.n, orbit.Count(orbits), len(segments))
		}
	}
}

func TestMagnitudeRange(t *testing.T) {
	orbits, _ := orbit.Enumerate(7, 360)
	for _, m := range Magnitudes(BuildSegments(orbits, 360)) {
		if m < 0 || m > 2+tol {
			t.Errorf("magnitude %f outside [0, 2]", m)
		}
	}

	diameter := Segment{Start: ToPoint(0, 2), End: ToPoint(1, 2)}
	if math.Abs(diameter.Magnitude()-2) > tol {
		t.Errorf("expected diameter 2, got %f", diameter.Magnitude())
	}
}
