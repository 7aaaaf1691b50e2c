package diagram

import (
	"github.com/san-kum/vortex/internal/binning"
	"github.com/san-kum/vortex/internal/geom"
	"github.com/san-kum/vortex/internal/orbit"
)

// Build validates cfg and computes the coloured segments of its diagram.
func Build(cfg Config) (*Diagram, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	orbits, err := orbit.Enumerate(cfg.Multiplier, cfg.Modulus)
	if err != nil {
		return nil, err
	}

	segments := geom.BuildSegments(orbits, cfg.Modulus)
	colored, cutoffs := binning.Assign(segments, len(cfg.Palette))

	palette := make([]string, len(cfg.Palette))
	copy(palette, cfg.Palette)
	cfg.Palette = palette

	return &Diagram{
		Config:   cfg,
		Orbits:   orbits,
		Segments: colored,
		Cutoffs:  cutoffs,
	}, nil
}
