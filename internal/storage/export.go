package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/vortex/internal/binning"
	"github.com/san-kum/vortex/internal/diagram"
	"github.com/san-kum/vortex/internal/orbit"
)

type ExportData struct {
	Multiplier int                      `json:"multiplier"`
	Modulus    int                      `json:"modulus"`
	Palette    []string                 `json:"palette"`
	DrawCircle bool                     `json:"draw_circle"`
	Orbits     []orbit.Orbit            `json:"orbits"`
	Cutoffs    []float64                `json:"cutoffs"`
	Segments   []binning.ColoredSegment `json:"segments"`
}

// ExportJSON writes the full diagram as indented JSON.
func ExportJSON(w io.Writer, d *diagram.Diagram) error {
	data := ExportData{
		Multiplier: d.Config.Multiplier,
		Modulus:    d.Config.Modulus,
		Palette:    d.Config.Palette,
		DrawCircle: d.Config.DrawCircle,
		Orbits:     d.Orbits,
		Cutoffs:    d.Cutoffs,
		Segments:   d.Segments,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes one row per segment in diagram order.
func WriteCSV(w io.Writer, d *diagram.Diagram) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(segmentsHeader); err != nil {
		return err
	}

	for _, s := range d.Segments {
		row := []string{
			formatFloat(s.Start.X),
			formatFloat(s.Start.Y),
			formatFloat(s.End.X),
			formatFloat(s.End.Y),
			formatFloat(s.Magnitude()),
			strconv.Itoa(s.Bucket),
			d.Color(s),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
