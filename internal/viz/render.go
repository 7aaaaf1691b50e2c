package viz

import (
	"math"

	"github.com/san-kum/vortex/internal/diagram"
	"github.com/san-kum/vortex/internal/export"
	"github.com/san-kum/vortex/internal/geom"
)

// Render draws d onto a w x h cell canvas, centred and square in
// sub-pixels.
func Render(d *diagram.Diagram, w, h int) *Canvas {
	c := NewCanvas(w, h)
	side := w * 2
	if h*4 < side {
		side = h * 4
	}
	if side < 2 {
		return c
	}
	offX := (w*2 - side) / 2
	offY := (h*4 - side) / 2

	scale := float64(side-1) / (2 * export.Extent)
	project := func(p geom.Point) (int, int) {
		x := int(math.Round((p.X + export.Extent) * scale))
		y := int(math.Round((export.Extent - p.Y) * scale))
		return x + offX, y + offY
	}

	if d.Config.DrawCircle {
		last := d.PaletteSize() - 1
		steps := side * 4
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			x, y := project(geom.Point{X: math.Cos(a), Y: math.Sin(a)})
			c.Set(x, y, last)
		}
	}

	for _, s := range d.Segments {
		x0, y0 := project(s.Start)
		x1, y1 := project(s.End)
		c.DrawLine(x0, y0, x1, y1, s.Bucket)
	}
	return c
}
