package portal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrDuplicateSector is returned when two sectors in a graph share an ID.
var ErrDuplicateSector = errors.New("portal: duplicate sector id")

// SectorID identifies a sector within a Graph.
type SectorID uint32

// NoSector marks an edge without a portal.
const NoSector SectorID = ^SectorID(0)

// Sector is one convex room. Edge i runs from Vertices[i] to Vertices[(i+1)%N];
// Portals[i] and Colors[i] describe the same edge.
type Sector struct {
	ID       SectorID
	Vertices []mgl32.Vec2
	Portals  []SectorID
	Colors   []Color
	Floor    float32
	Ceiling  float32
}

// Wall is one edge of a sector, materialized on demand.
type Wall struct {
	Left   mgl32.Vec2
	Right  mgl32.Vec2
	Portal SectorID
	Color  Color

	hsv hsv
}

// IsPortal reports whether the wall opens onto another sector.
func (w Wall) IsPortal() bool { return w.Portal != NoSector }

// Walls returns the sector's walls in winding order.
//
// Missing portal entries mean "no portal" and missing colors fall back to
// DefaultMissingWallColor. Fewer than two vertices yield no walls.
func (s *Sector) Walls() []Wall {
	return s.AppendWalls(nil, DefaultMissingWallColor)
}

// AppendWalls appends the sector's walls to dst, using fallback for missing colors.
func (s *Sector) AppendWalls(dst []Wall, fallback Color) []Wall {
	n := len(s.Vertices)
	if n < 2 {
		return dst
	}
	for i := 0; i < n; i++ {
		portal := NoSector
		if i < len(s.Portals) {
			portal = s.Portals[i]
		}
		c := fallback
		if i < len(s.Colors) {
			c = s.Colors[i]
		}
		dst = append(dst, Wall{
			Left:   s.Vertices[i],
			Right:  s.Vertices[(i+1)%n],
			Portal: portal,
			Color:  c,
			hsv:    c.hsv(),
		})
	}
	return dst
}

// Contains reports whether p lies inside or on the boundary of the convex sector.
// Both windings are accepted.
func (s *Sector) Contains(p mgl32.Vec2) bool {
	n := len(s.Vertices)
	if n < 3 {
		return false
	}
	var pos, neg bool
	for i := 0; i < n; i++ {
		a := s.Vertices[i]
		b := s.Vertices[(i+1)%n]
		d := perpDot(b.Sub(a), p.Sub(a))
		if d > 0 {
			pos = true
		} else if d < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// Graph is a table of sectors keyed by ID.
//
// Portals refer to neighbours by ID and are resolved on every lookup, so sectors
// can be replaced between frames without fixing up references.
type Graph struct {
	sectors []Sector
	index   map[SectorID]int
	initial SectorID
}

// NewGraph builds a graph. initial is the sector the camera starts in.
func NewGraph(initial SectorID, sectors ...Sector) (*Graph, error) {
	g := &Graph{
		sectors: make([]Sector, 0, len(sectors)),
		index:   make(map[SectorID]int, len(sectors)),
		initial: initial,
	}
	for _, s := range sectors {
		if _, dup := g.index[s.ID]; dup {
			return nil, fmt.Errorf("sector %d: %w", s.ID, ErrDuplicateSector)
		}
		g.index[s.ID] = len(g.sectors)
		g.sectors = append(g.sectors, s)
	}
	g.sortByID()
	return g, nil
}

func (g *Graph) sortByID() {
	sort.Slice(g.sectors, func(i, j int) bool { return g.sectors[i].ID < g.sectors[j].ID })
	for i := range g.sectors {
		g.index[g.sectors[i].ID] = i
	}
}

func (g *Graph) Initial() SectorID { return g.initial }

func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.sectors)
}

// Sector resolves id. The returned pointer stays valid until the next Put.
func (g *Graph) Sector(id SectorID) (*Sector, bool) {
	if g == nil || id == NoSector {
		return nil, false
	}
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return &g.sectors[i], true
}

// Sectors returns all sectors in ID order. Callers must not modify the slice.
func (g *Graph) Sectors() []Sector {
	if g == nil {
		return nil
	}
	return g.sectors
}

// Put inserts s or replaces the sector with the same ID.
// It must not be called while a frame is being rendered.
func (g *Graph) Put(s Sector) {
	if i, ok := g.index[s.ID]; ok {
		g.sectors[i] = s
		return
	}
	g.index[s.ID] = len(g.sectors)
	g.sectors = append(g.sectors, s)
	g.sortByID()
}

// Locate finds the sector containing p, trying hint and its portal neighbours first.
func (g *Graph) Locate(p mgl32.Vec2, hint SectorID) (SectorID, bool) {
	if g == nil {
		return NoSector, false
	}
	if s, ok := g.Sector(hint); ok {
		if s.Contains(p) {
			return s.ID, true
		}
		for _, id := range s.Portals {
			if n, ok := g.Sector(id); ok && n.Contains(p) {
				return n.ID, true
			}
		}
	}
	for i := range g.sectors {
		if g.sectors[i].Contains(p) {
			return g.sectors[i].ID, true
		}
	}
	return NoSector, false
}
