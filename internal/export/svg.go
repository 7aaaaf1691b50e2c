package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/san-kum/vortex/internal/diagram"
)

// Extent is the half-width of the square view around the unit circle.
const Extent = 1.01

const background = "#000000"

type Options struct {
	// LineWidth is in points.
	LineWidth float64
	DPI       int
	// Sizes are square figure sizes in inches, one file each.
	Sizes []float64
}

func DefaultOptions() Options {
	return Options{
		LineWidth: 0.01,
		DPI:       300,
		Sizes:     []float64{4, 6, 8, 11},
	}
}

// Pixels returns the edge length of a figure of size inches.
func (o Options) Pixels(size float64) int {
	return int(size * float64(o.DPI))
}

func (o Options) strokePixels() float64 {
	return o.LineWidth * float64(o.DPI) / 72
}

// SVG draws the diagram as a square image of size inches. Segments are
// written in diagram order.
func SVG(d *diagram.Diagram, size float64, opts Options) string {
	if d == nil {
		return ""
	}

	px := opts.Pixels(size)
	stroke := opts.strokePixels()

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%g %g %g %g">
<rect x="%g" y="%g" width="100%%" height="100%%" fill="%s"/>
`, px, px, -Extent, -Extent, 2*Extent, 2*Extent, -Extent, -Extent, background))

	if d.Config.DrawCircle {
		sb.WriteString(fmt.Sprintf(`<circle cx="0" cy="0" r="1" fill="none" stroke="%s" stroke-width="%.4f" vector-effect="non-scaling-stroke"/>
`, d.CircleColor(), stroke))
	}

	sb.WriteString(fmt.Sprintf(`<g fill="none" stroke-width="%.4f" stroke-linecap="round">
`, stroke))

	// SVG y grows downward.
	for _, s := range d.Segments {
		sb.WriteString(fmt.Sprintf(`<line x1="%.6f" y1="%.6f" x2="%.6f" y2="%.6f" stroke="%s" vector-effect="non-scaling-stroke"/>
`, s.Start.X, -s.Start.Y, s.End.X, -s.End.Y, d.Color(s)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// FileName returns the file name of the index-th figure (1-based).
func FileName(multiplier, modulus, index int) string {
	return fmt.Sprintf("multiplier=%s modulus=%s %d.svg",
		humanize.Comma(int64(multiplier)), humanize.Comma(int64(modulus)), index)
}

// WriteSizes writes one SVG per configured size into dir and returns the
// paths written.
func WriteSizes(dir string, d *diagram.Diagram, opts Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(opts.Sizes))
	for i, size := range opts.Sizes {
		path := filepath.Join(dir, FileName(d.Config.Multiplier, d.Config.Modulus, i+1))
		if err := os.WriteFile(path, []byte(SVG(d, size, opts)), 0644); err != nil {
			return paths, err
		}
		slog.Debug("wrote figure", "path", path, "pixels", opts.Pixels(size))
		paths = append(paths, path)
	}
	return paths, nil
}
