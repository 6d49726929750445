package portal

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 || cfg.EdgeGap != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	wantFOVY := 2 * math.Atan(0.75)
	if got := float64(cfg.FOVY()); math.Abs(got-wantFOVY) > 1e-5 {
		t.Fatalf("FOVY = %v, want %v", got, wantFOVY)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero fov", func(c *Config) { c.FOVX = 0 }},
		{"fov too wide", func(c *Config) { c.FOVX = math.Pi }},
		{"zero near", func(c *Config) { c.Near = 0 }},
		{"near beyond far", func(c *Config) { c.Near = 60 }},
		{"negative gap", func(c *Config) { c.EdgeGap = -1 }},
		{"gap eats screen", func(c *Config) { c.EdgeGap = 120 }},
		{"zero depth limit", func(c *Config) { c.MaxPortalDepth = 0 }},
		{"zero item limit", func(c *Config) { c.MaxWorkItems = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
			if _, err := NewRenderer(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("NewRenderer err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestBrightness(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		distance float32
		want     float32
	}{
		{0, 1},
		{0.05, 1},
		{0.1, 1},
		{5, 0.9},
		{25.05, 0.5},
		{50, 0},
		{1000, 0},
	}
	for _, tt := range tests {
		if got := cfg.brightness(tt.distance); got != tt.want {
			t.Errorf("brightness(%v) = %v, want %v", tt.distance, got, tt.want)
		}
	}
}

func TestShade(t *testing.T) {
	if got := Blue.Shade(1); got != Blue {
		t.Fatalf("full brightness blue = %v", got)
	}
	if got := Orange.Shade(0); got != Black {
		t.Fatalf("zero brightness = %v, want black", got)
	}
	if got := Red.Shade(2); got != Red {
		t.Fatalf("brightness above 1 should clamp, got %v", got)
	}
	half := Red.Shade(0.5)
	if half.G != 0 || half.B != 0 || half.R < 127 || half.R > 128 {
		t.Fatalf("half red = %v", half)
	}
	// Value is replaced, not scaled: a dark green still reaches full value.
	if got := Green.Shade(1); got.G != 0xFF || got.R != 0 || got.B != 0 {
		t.Fatalf("green at full value = %v", got)
	}
}
