package portal

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 8-bit sRGB color.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

func (c Color) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF} }

// Named colors used by the default palette and level.
var (
	Black    = RGB(0x00, 0x00, 0x00)
	White    = RGB(0xFF, 0xFF, 0xFF)
	Silver   = RGB(0xC0, 0xC0, 0xC0)
	Gray     = RGB(0x80, 0x80, 0x80)
	DarkGray = RGB(0xA9, 0xA9, 0xA9)
	Red      = RGB(0xFF, 0x00, 0x00)
	Green    = RGB(0x00, 0x80, 0x00)
	Blue     = RGB(0x00, 0x00, 0xFF)
	Yellow   = RGB(0xFF, 0xFF, 0x00)
	Orange   = RGB(0xFF, 0xA5, 0x00)
	Fuchsia  = RGB(0xFF, 0x00, 0xFF)
)

// DefaultMissingWallColor fills walls whose sector has fewer colors than edges.
var DefaultMissingWallColor = Red

// hsv is a wall color decomposed once so shading only replaces the value channel.
type hsv struct {
	h, s float64
}

func (c Color) hsv() hsv {
	h, s, _ := c.colorful().Hsv()
	return hsv{h: h, s: s}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Shade returns c with its HSV value replaced by brightness (clamped to 0..1).
func (c Color) Shade(brightness float32) Color {
	return c.hsv().shade(brightness)
}

func (v hsv) shade(brightness float32) Color {
	b := float64(brightness)
	if b < 0 {
		b = 0
	}
	if b > 1 {
		b = 1
	}
	r, g, bl := colorful.Hsv(v.h, v.s, b).Clamped().RGB255()
	return Color{R: r, G: g, B: bl}
}
