package config

import "sort"

// Presets are well known diagrams. Multiplier 2 traces a cardioid, 3 a
// nephroid; 2 mod 9 is the 1-2-4-8-7-5 doubling circuit.
var Presets = map[string]*Config{
	"doubling": {
		Multiplier: 2, Modulus: 9, Palette: "vortex", DrawCircle: true,
	},
	"tripling": {
		Multiplier: 3, Modulus: 9, Palette: "vortex", DrawCircle: true,
	},
	"cardioid": {
		Multiplier: 2, Modulus: 200, Palette: "ember",
	},
	"nephroid": {
		Multiplier: 3, Modulus: 200, Palette: "ember",
	},
	"epicycloid": {
		Multiplier: 5, Modulus: 400, Palette: "ocean",
	},
	"tens": {
		Multiplier: 10, Modulus: 99, Palette: "phosphor", DrawCircle: true,
	},
	"starburst": {
		Multiplier: 34, Modulus: 1001, Palette: "sunset",
	},
	"mandala": {
		Multiplier: 200, Modulus: 4001, Palette: "gradient:#0b0033:#ffd166:8",
	},
}

// GetPreset returns a copy of the named preset with default render
// settings, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Multiplier = p.Multiplier
	cfg.Modulus = p.Modulus
	cfg.Palette = p.Palette
	cfg.DrawCircle = p.DrawCircle
	return cfg
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
