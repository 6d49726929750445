package app

import (
	"math"

	"sector/hal"
	"sector/portal"
)

// Controls is the set of movement keys held during a tick.
type Controls struct {
	Forward, Back           bool
	StrafeLeft, StrafeRight bool
	TurnLeft, TurnRight     bool
	Rise, Fall              bool
}

// set applies a key transition to the held-key set.
func (c *Controls) set(code hal.KeyCode, down bool) {
	switch code {
	case hal.KeyUp, hal.KeyW:
		c.Forward = down
	case hal.KeyDown, hal.KeyS:
		c.Back = down
	case hal.KeyA:
		c.StrafeLeft = down
	case hal.KeyD:
		c.StrafeRight = down
	case hal.KeyLeft, hal.KeyQ:
		c.TurnLeft = down
	case hal.KeyRight, hal.KeyE:
		c.TurnRight = down
	case hal.KeySpace:
		c.Rise = down
	case hal.KeyCtrl:
		c.Fall = down
	}
}

// Player moves a camera through a level one tick at a time.
type Player struct {
	Camera portal.Camera

	// Speed is world units per tick along each held direction.
	Speed float32
	// TurnSpeed is radians per tick while a turn key is held.
	TurnSpeed float32
}

// Turn rotates the view; positive turns left.
func (p *Player) Turn(delta float32) {
	p.Camera.Yaw += delta
}

// Step advances one tick. Directions add up unnormalized, so diagonals move faster.
func (p *Player) Step(c Controls) {
	if c.TurnLeft {
		p.Turn(p.TurnSpeed)
	}
	if c.TurnRight {
		p.Turn(-p.TurnSpeed)
	}

	s, co := math.Sincos(float64(p.Camera.Yaw))
	sin, cos := float32(s), float32(co)

	var vx, vy, vz float32
	if c.Forward {
		vx -= sin
		vy += cos
	}
	if c.Back {
		vx += sin
		vy -= cos
	}
	if c.StrafeLeft {
		vx -= cos
		vy -= sin
	}
	if c.StrafeRight {
		vx += cos
		vy += sin
	}
	if c.Rise {
		vz++
	}
	if c.Fall {
		vz--
	}

	pos := &p.Camera.Position
	pos[0] += p.Speed * vx
	pos[1] += p.Speed * vy
	pos[2] += p.Speed * vz
}

// Relocate updates the camera's sector after a move. Outside every sector the
// previous sector is kept. It reports whether the sector changed.
func (p *Player) Relocate(g *portal.Graph) bool {
	id, ok := g.Locate(p.Camera.Position.Vec2(), p.Camera.Sector)
	if !ok || id == p.Camera.Sector {
		return false
	}
	p.Camera.Sector = id
	return true
}
