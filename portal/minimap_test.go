package portal

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMinimapModeCycle(t *testing.T) {
	m := MinimapOff
	want := []MinimapMode{MinimapFirstPerson, MinimapAbsolute, MinimapOff}
	for _, w := range want {
		m = m.Next()
		if m != w {
			t.Fatalf("Next = %v, want %v", m, w)
		}
	}
	for _, w := range want {
		got, ok := ParseMinimapMode(w.String())
		if !ok || got != w {
			t.Fatalf("ParseMinimapMode(%q) = %v, %v", w.String(), got, ok)
		}
	}
	if _, ok := ParseMinimapMode("sideways"); ok {
		t.Fatal("unknown mode parsed")
	}
}

func TestMinimapFirstPerson(t *testing.T) {
	cfg := DefaultConfig()
	r := newTestRenderer(t, cfg)
	f := NewFrame(cfg.Width, cfg.Height)
	r.DrawMinimap(f, hexLevel(t), Camera{Position: mgl32.Vec3{0, 0, 2}}, MinimapFirstPerson)

	if c := f.At(160, 120); c != Red {
		t.Fatalf("player = %v", c)
	}
	// Sector 1's far wall at y=15 is fully in view.
	if c := f.At(160, 0); c != Green {
		t.Fatalf("visible wall = %v, want green", c)
	}
	// The wall at y=-8 is behind the camera.
	if c := f.At(200, 184); c != White {
		t.Fatalf("clipped wall = %v, want white", c)
	}
	// Left frustum edge runs diagonally up from the near plane.
	if c := f.At(150, 110); c != DarkGray {
		t.Fatalf("frustum edge = %v", c)
	}
}

func TestMinimapAbsolute(t *testing.T) {
	cfg := DefaultConfig()
	r := newTestRenderer(t, cfg)
	f := NewFrame(cfg.Width, cfg.Height)
	cam := Camera{Position: mgl32.Vec3{2, 1, 2}, Yaw: 0.4}
	r.DrawMinimap(f, hexLevel(t), cam, MinimapAbsolute)

	if c := f.At(176, 112); c != Red {
		t.Fatalf("player = %v, want red at its world position", c)
	}
	// v2→v3 lies behind the camera and stays put in world space.
	if c := f.At(200, 184); c != White {
		t.Fatalf("clipped wall = %v, want white", c)
	}
}

func TestMinimapOffDrawsNothing(t *testing.T) {
	cfg := DefaultConfig()
	r := newTestRenderer(t, cfg)
	f := NewFrame(cfg.Width, cfg.Height)
	r.DrawMinimap(f, hexLevel(t), Camera{}, MinimapOff)
	for i, b := range f.Pix {
		if b != 0 {
			t.Fatalf("byte %d written", i)
		}
	}
}
