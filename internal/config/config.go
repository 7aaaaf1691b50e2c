package config

import (
	"os"

	"github.com/san-kum/vortex/internal/diagram"
	"github.com/san-kum/vortex/internal/palette"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMultiplier = 2
	DefaultModulus    = 9
	DefaultPalette    = "vortex"
	DefaultLineWidth  = 0.01
	DefaultDPI        = 300
	DefaultOutputDir  = "svg"
)

// DefaultSizes are the square figure sizes, in inches, written per render.
var DefaultSizes = []float64{4, 6, 8, 11}

type Config struct {
	Multiplier int       `yaml:"multiplier"`
	Modulus    int       `yaml:"modulus"`
	Palette    string    `yaml:"palette"`
	Colors     []string  `yaml:"colors,omitempty"`
	DrawCircle bool      `yaml:"draw_circle"`
	Render     RenderCfg `yaml:"render"`
}

type RenderCfg struct {
	LineWidth float64   `yaml:"line_width"`
	Sizes     []float64 `yaml:"sizes"`
	DPI       int       `yaml:"dpi"`
	OutputDir string    `yaml:"output_dir"`
}

func DefaultConfig() *Config {
	sizes := make([]float64, len(DefaultSizes))
	copy(sizes, DefaultSizes)
	return &Config{
		Multiplier: DefaultMultiplier,
		Modulus:    DefaultModulus,
		Palette:    DefaultPalette,
		Render: RenderCfg{
			LineWidth: DefaultLineWidth,
			Sizes:     sizes,
			DPI:       DefaultDPI,
			OutputDir: DefaultOutputDir,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolvePalette returns the explicit colours when set, otherwise the
// palette spec.
func (c *Config) ResolvePalette() (palette.Palette, error) {
	if len(c.Colors) > 0 {
		colors, err := palette.Normalize(c.Colors)
		if err != nil {
			return palette.Palette{}, err
		}
		return palette.Palette{Name: "custom", Colors: colors}, nil
	}
	return palette.Parse(c.Palette)
}

// Diagram converts the file config into a diagram.Config.
func (c *Config) Diagram() (diagram.Config, error) {
	p, err := c.ResolvePalette()
	if err != nil {
		return diagram.Config{}, err
	}
	return diagram.Config{
		Multiplier: c.Multiplier,
		Modulus:    c.Modulus,
		Palette:    p.Colors,
		DrawCircle: c.DrawCircle,
	}, nil
}
