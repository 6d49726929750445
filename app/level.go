package app

import (
	"github.com/go-gl/mathgl/mgl32"

	"sector/portal"
)

// DefaultLevel is the stock three-sector scene: a hexagonal room with a raised
// alcove ahead and a sunken one to the lower left.
func DefaultLevel() (*portal.Graph, error) {
	v := []mgl32.Vec2{
		{2, 10}, {4, 10}, {11, -8}, {-4, -8}, {-4, 1}, {-2, 5},
		{-4, 15}, {4, 15}, {-7, -9}, {-10, -5},
	}
	none := portal.NoSector
	return portal.NewGraph(0,
		portal.Sector{
			ID:       0,
			Vertices: []mgl32.Vec2{v[0], v[1], v[2], v[3], v[4], v[5]},
			Portals:  []portal.SectorID{none, none, none, 2, none, 1},
			Colors:   []portal.Color{portal.Blue, portal.Green, portal.Orange, portal.Fuchsia, portal.Yellow, portal.Red},
			Floor:    0,
			Ceiling:  4,
		},
		portal.Sector{
			ID:       1,
			Vertices: []mgl32.Vec2{v[0], v[5], v[6], v[7]},
			Portals:  []portal.SectorID{0, none, none, none},
			Colors:   []portal.Color{portal.Red, portal.Fuchsia, portal.Green, portal.Yellow},
			Floor:    0.25,
			Ceiling:  3.75,
		},
		portal.Sector{
			ID:       2,
			Vertices: []mgl32.Vec2{v[4], v[3], v[8], v[9]},
			Portals:  []portal.SectorID{0, none, none, none},
			Colors:   []portal.Color{portal.Red, portal.Fuchsia, portal.Green, portal.Blue},
			Floor:    -0.5,
			Ceiling:  4.5,
		},
	)
}

// StartCamera is where the default level puts the player.
func StartCamera(g *portal.Graph) portal.Camera {
	return portal.Camera{Position: mgl32.Vec3{0, 0, 2}, Sector: g.Initial()}
}
