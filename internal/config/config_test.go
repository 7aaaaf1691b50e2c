package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/san-kum/vortex/internal/diagram"
	"github.com/san-kum/vortex/internal/palette"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Modulus < 2 {
		t.Errorf("expected modulus >= 2, got %d", cfg.Modulus)
	}
	if cfg.Render.LineWidth <= 0 {
		t.Error("line width should be positive")
	}
	if !reflect.DeepEqual(cfg.Render.Sizes, []float64{4, 6, 8, 11}) {
		t.Errorf("unexpected sizes %v", cfg.Render.Sizes)
	}

	cfg.Render.Sizes[0] = 99
	if DefaultSizes[0] != 4 {
		t.Error("DefaultConfig must not share DefaultSizes")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.yaml")

	cfg := DefaultConfig()
	cfg.Multiplier = 7
	cfg.Modulus = 360
	cfg.Colors = []string{"#000000", "#ffffff"}
	cfg.DrawCircle = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, loaded) {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("multiplier: 3\nmodulus: 50\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Multiplier != 3 || cfg.Modulus != 50 {
		t.Errorf("unexpected values %d mod %d", cfg.Multiplier, cfg.Modulus)
	}
	if cfg.Render.DPI != DefaultDPI {
		t.Errorf("expected default dpi, got %d", cfg.Render.DPI)
	}
	if cfg.Palette != DefaultPalette {
		t.Errorf("expected default palette, got %s", cfg.Palette)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDiagram(t *testing.T) {
	cfg := DefaultConfig()
	dc, err := cfg.Diagram()
	if err != nil {
		t.Fatalf("diagram config failed: %v", err)
	}
	if !reflect.DeepEqual(dc.Palette, palette.Vortex.Colors) {
		t.Errorf("expected vortex palette, got %v", dc.Palette)
	}

	cfg.Colors = []string{"#FFF"}
	dc, err = cfg.Diagram()
	if err != nil {
		t.Fatalf("diagram config failed: %v", err)
	}
	if !reflect.DeepEqual(dc.Palette, []string{"#ffffff"}) {
		t.Errorf("explicit colors should win, got %v", dc.Palette)
	}

	cfg.Colors = nil
	cfg.Palette = "plaid"
	if _, err := cfg.Diagram(); !errors.Is(err, palette.ErrUnknownPalette) {
		t.Errorf("expected ErrUnknownPalette, got %v", err)
	}
}

func TestPresetsBuild(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s missing", name)
		}
		dc, err := cfg.Diagram()
		if err != nil {
			t.Errorf("preset %s: %v", name, err)
			continue
		}
		if _, err := diagram.Build(dc); err != nil {
			t.Errorf("preset %s does not build: %v", name, err)
		}
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("doubling")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Multiplier != 2 || cfg.Modulus != 9 {
		t.Errorf("expected 2 mod 9, got %d mod %d", cfg.Multiplier, cfg.Modulus)
	}
	if cfg.Render.DPI != DefaultDPI {
		t.Error("preset should carry default render settings")
	}

	cfg.Modulus = 10
	if Presets["doubling"].Modulus != 9 {
		t.Error("GetPreset must return a copy")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}
