package app

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"sector/portal"
)

var (
	colorHUD    = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	colorHUDDim = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
)

// targetDisplay lets tinyfont draw into a portal.Target.
type targetDisplay struct {
	t portal.Target
}

var _ drivers.Displayer = targetDisplay{}

func (d targetDisplay) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d targetDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), portal.RGB(c.R, c.G, c.B))
}

func (d targetDisplay) Display() error { return nil }

// hud draws status lines in the top-left corner.
type hud struct {
	font       tinyfont.Fonter
	fontHeight int16
}

func newHUD() *hud {
	return &hud{font: &proggy.TinySZ8pt7b, fontHeight: int16(proggy.TinySZ8pt7b.YAdvance)}
}

func (h *hud) drawText(t portal.Target, x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(targetDisplay{t: t}, h.font, int16(x), int16(y)+h.fontHeight, s, c)
}

// draw writes the status line and, on its own row, the controls hint.
func (h *hud) draw(t portal.Target, status, hint string) {
	h.drawText(t, 4, 2, status, colorHUD)
	if hint != "" {
		h.drawText(t, 4, 4+int(h.fontHeight), hint, colorHUDDim)
	}
}
