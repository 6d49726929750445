package portal

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("portal: invalid config")

// Palette holds the fixed colors the renderer and minimap draw with.
type Palette struct {
	Background  Color
	Ceiling     Color
	Floor       Color
	MissingWall Color
	WallClipped Color
	Frustum     Color
	Player      Color
}

// Config is the immutable render configuration. Build it once and pass it by value.
type Config struct {
	Width  int
	Height int

	// FOVX is the horizontal field of view in radians. The vertical one follows
	// from the aspect ratio.
	FOVX float32
	Near float32
	Far  float32

	BrightnessNear float32
	BrightnessFar  float32

	// EdgeGap is the pixel seam left at span boundaries and screen edges.
	EdgeGap int

	// MaxPortalDepth bounds how many portals deep traversal may go.
	MaxPortalDepth int
	// MaxWorkItems bounds how many queued sectors one frame may process.
	MaxWorkItems int

	// MinimapScale is pixels per world unit in the minimap.
	MinimapScale float32

	Palette Palette
}

// DefaultPalette returns the stock colors.
func DefaultPalette() Palette {
	return Palette{
		Background:  Black,
		Ceiling:     Silver,
		Floor:       Gray,
		MissingWall: DefaultMissingWallColor,
		WallClipped: White,
		Frustum:     DarkGray,
		Player:      Red,
	}
}

// DefaultConfig returns a 320×240 configuration with a 90° horizontal field of view.
func DefaultConfig() Config {
	return Config{
		Width:          320,
		Height:         240,
		FOVX:           math.Pi / 2,
		Near:           0.1,
		Far:            50,
		BrightnessNear: 1,
		BrightnessFar:  0,
		EdgeGap:        1,
		MaxPortalDepth: 64,
		MaxWorkItems:   1024,
		MinimapScale:   8,
		Palette:        DefaultPalette(),
	}
}

func (c Config) Aspect() float32 {
	return float32(c.Width) / float32(c.Height)
}

// FOVY is the vertical field of view derived from FOVX and the aspect ratio.
func (c Config) FOVY() float32 {
	return float32(2 * math.Atan(math.Tan(float64(c.FOVX)/2)/float64(c.Aspect())))
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("size %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	case !(c.FOVX > 0 && c.FOVX < math.Pi):
		return fmt.Errorf("fov %v: %w", c.FOVX, ErrInvalidConfig)
	case !(c.Near > 0 && c.Near < c.Far):
		return fmt.Errorf("near %v far %v: %w", c.Near, c.Far, ErrInvalidConfig)
	case c.EdgeGap < 0 || 2*c.EdgeGap >= min(c.Width, c.Height):
		return fmt.Errorf("edge gap %d: %w", c.EdgeGap, ErrInvalidConfig)
	case c.MaxPortalDepth <= 0 || c.MaxWorkItems <= 0:
		return fmt.Errorf("traversal limits depth=%d items=%d: %w", c.MaxPortalDepth, c.MaxWorkItems, ErrInvalidConfig)
	}
	return nil
}

// brightness maps a camera distance to a brightness rounded to two decimals.
func (c Config) brightness(distance float32) float32 {
	var b float32
	switch {
	case distance > c.Far:
		b = c.BrightnessFar
	case distance < c.Near:
		b = c.BrightnessNear
	default:
		t := (distance - c.Near) / (c.Far - c.Near)
		b = Lerp(c.BrightnessNear, c.BrightnessFar, t)
	}
	return float32(math.Round(float64(b)*100) / 100)
}
