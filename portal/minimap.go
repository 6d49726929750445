package portal

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// MinimapMode selects the overhead debug projection.
type MinimapMode uint8

const (
	MinimapOff MinimapMode = iota
	// MinimapFirstPerson draws camera space: the player stays centred facing up.
	MinimapFirstPerson
	// MinimapAbsolute draws world space around the world origin.
	MinimapAbsolute
)

// Next cycles Off → FirstPerson → Absolute → Off.
func (m MinimapMode) Next() MinimapMode {
	switch m {
	case MinimapOff:
		return MinimapFirstPerson
	case MinimapFirstPerson:
		return MinimapAbsolute
	default:
		return MinimapOff
	}
}

func (m MinimapMode) String() string {
	switch m {
	case MinimapOff:
		return "off"
	case MinimapFirstPerson:
		return "first-person"
	case MinimapAbsolute:
		return "absolute"
	default:
		return "unknown"
	}
}

// ParseMinimapMode is the inverse of MinimapMode.String.
func ParseMinimapMode(s string) (MinimapMode, bool) {
	for _, m := range []MinimapMode{MinimapOff, MinimapFirstPerson, MinimapAbsolute} {
		if m.String() == s {
			return m, true
		}
	}
	return MinimapOff, false
}

// DrawMinimap draws every wall of g as seen from cam, marking the parts the
// frustum clips away, then the frustum outline and the player.
func (r *Renderer) DrawMinimap(t Target, g *Graph, cam Camera, mode MinimapMode) {
	if r == nil || t == nil || mode == MinimapOff {
		return
	}
	pal := r.cfg.Palette
	view := NewView(cam)

	// place maps a camera-space point into the selected minimap space.
	place := func(p mgl32.Vec2) image.Point {
		if mode == MinimapAbsolute {
			p = view.ToWorld(p)
		}
		return r.proj.MinimapPixel(p)
	}

	sectors := g.Sectors()
	for i := range sectors {
		r.walls = sectors[i].AppendWalls(r.walls[:0], pal.MissingWall)
		for _, w := range r.walls {
			viewLeft := view.ToCamera(w.Left)
			viewRight := view.ToCamera(w.Right)

			left, right := place(viewLeft), place(viewRight)
			if mode == MinimapAbsolute {
				left, right = r.proj.MinimapPixel(w.Left), r.proj.MinimapPixel(w.Right)
			}

			clippedLeft, clippedRight, ok := r.frustum.Clip(viewLeft, viewRight)
			if !ok {
				line(t, left, right, pal.WallClipped)
				continue
			}

			afterLeft, afterRight := place(clippedLeft), place(clippedRight)
			if afterLeft != left {
				line(t, left, afterLeft, pal.WallClipped)
			}
			if afterRight != right {
				line(t, afterRight, right, pal.WallClipped)
			}
			line(t, afterLeft, afterRight, w.Color)
		}
	}

	nearLeft, nearRight, farLeft, farRight := r.frustum.Corners()
	line(t, place(nearLeft), place(farLeft), pal.Frustum)
	line(t, place(nearRight), place(farRight), pal.Frustum)
	line(t, place(nearLeft), place(nearRight), pal.Frustum)

	player := place(mgl32.Vec2{})
	if mode == MinimapAbsolute {
		player = r.proj.MinimapPixel(cam.Position.Vec2())
	}
	t.SetPixel(player.X, player.Y, pal.Player)
}
