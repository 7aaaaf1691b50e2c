// Package palette provides named and generated colour palettes for
// diagrams. Colours are ordered from the shortest chords to the longest.
package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrUnknownPalette = errors.New("palette: unknown palette")
	ErrInvalidColor   = errors.New("palette: invalid color")
	ErrInvalidSpec    = errors.New("palette: invalid gradient spec")
)

const gradientPrefix = "gradient:"

type Palette struct {
	Name   string
	Colors []string
}

func (p Palette) Len() int {
	return len(p.Colors)
}

// Available palettes
var (
	Vortex = Palette{
		Name:   "vortex",
		Colors: []string{"#1b1b3a", "#693668", "#a74482", "#f84aa7"},
	}

	Ember = Palette{
		Name:   "ember",
		Colors: []string{"#3b0f70", "#8c2981", "#de4968", "#fe9f6d"},
	}

	Ocean = Palette{
		Name:   "ocean",
		Colors: []string{"#001a33", "#0077be", "#00a8cc", "#e0f0ff"},
	}

	Phosphor = Palette{
		Name:   "phosphor",
		Colors: []string{"#003300", "#005500", "#00cc00", "#88ff88"},
	}

	Sunset = Palette{
		Name:   "sunset",
		Colors: []string{"#2d1b2e", "#8b6b8c", "#ff6b6b", "#feca57", "#fff5f5"},
	}

	Mono = Palette{
		Name:   "mono",
		Colors: []string{"#ffffff"},
	}

	Default = Vortex

	Palettes = []Palette{Vortex, Ember, Ocean, Phosphor, Sunset, Mono}
)

// Get returns a registered palette by name.
func Get(name string) (Palette, error) {
	for _, p := range Palettes {
		if p.Name == name {
			return p, nil
		}
	}
	return Palette{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPalette, name, Names())
}

func Names() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}

// Parse resolves a palette spec. Accepted forms:
//
//	ember                        registered name
//	#000000,#ff8800,#ffffff      explicit colours
//	gradient:#000080:#ffff00:6   n colours blended in Luv space
func Parse(spec string) (Palette, error) {
	spec = strings.TrimSpace(spec)
	switch {
	case spec == "":
		return Default, nil
	case strings.HasPrefix(spec, gradientPrefix):
		return parseGradient(spec)
	case strings.Contains(spec, "#"):
		colors, err := Normalize(strings.Split(spec, ","))
		if err != nil {
			return Palette{}, err
		}
		return Palette{Name: "custom", Colors: colors}, nil
	default:
		return Get(spec)
	}
}

func parseGradient(spec string) (Palette, error) {
	parts := strings.Split(strings.TrimPrefix(spec, gradientPrefix), ":")
	if len(parts) != 3 {
		return Palette{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil || n < 1 {
		return Palette{}, fmt.Errorf("%w: bad count in %q", ErrInvalidSpec, spec)
	}
	colors, err := Gradient(parts[0], parts[1], n)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Name: "gradient", Colors: colors}, nil
}

// Gradient returns n colours from 'from' to 'to' inclusive.
func Gradient(from, to string, n int) ([]string, error) {
	c1, err := parse(from)
	if err != nil {
		return nil, err
	}
	c2, err := parse(to)
	if err != nil {
		return nil, err
	}

	colors := make([]string, n)
	if n == 1 {
		colors[0] = c2.Hex()
		return colors, nil
	}
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		colors[i] = c1.BlendLuv(c2, t).Clamped().Hex()
	}
	return colors, nil
}

// Normalize validates hex colours and rewrites them as lowercase #rrggbb.
func Normalize(colors []string) ([]string, error) {
	out := make([]string, 0, len(colors))
	for _, s := range colors {
		c, err := parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c.Hex())
	}
	return out, nil
}

func parse(s string) (colorful.Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// Swatch renders one block per colour for terminal display.
func Swatch(colors []string) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("██"))
	}
	return b.String()
}
