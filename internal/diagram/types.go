package diagram

import (
	"github.com/san-kum/vortex/internal/binning"
	"github.com/san-kum/vortex/internal/orbit"
)

type Config struct {
	Multiplier int
	Modulus    int
	// Palette is ordered from shortest to longest chords. Entries are opaque.
	Palette    []string
	DrawCircle bool
}

// Validate checks the Config, returning a *Error on the first problem.
func (c Config) Validate() error {
	if c.Modulus < 2 {
		return newError(InvalidModulus, c.Modulus)
	}
	if c.Multiplier < 0 {
		return newError(InvalidMultiplier, c.Multiplier)
	}
	if len(c.Palette) == 0 {
		return newError(EmptyPalette, 0)
	}
	return nil
}

type Diagram struct {
	Config   Config
	Orbits   []orbit.Orbit
	Segments []binning.ColoredSegment
	Cutoffs  []float64
}

// Color returns the palette entry for the segment's bucket.
func (d *Diagram) Color(s binning.ColoredSegment) string {
	return d.Config.Palette[s.Bucket]
}

// CircleColor is the colour used for the outline circle.
func (d *Diagram) CircleColor() string {
	return d.Config.Palette[len(d.Config.Palette)-1]
}

func (d *Diagram) PaletteSize() int {
	return len(d.Config.Palette)
}
