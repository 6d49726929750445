package portal

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Stats summarizes one rendered frame.
type Stats struct {
	// Items is the number of queued sectors processed, including the camera's own.
	Items int
	// Walls counts walls that reached the column rasterizer.
	Walls int
	// Culled counts clipped-in walls skipped as backfacing.
	Culled int
	// Queued counts portals pushed onto the traversal queue.
	Queued int
	// Truncated is set when a traversal limit stopped the frame early.
	Truncated bool
	// Visited lists processed sectors in traversal order. It is reused by the
	// next Render call.
	Visited []SectorID
}

// workItem is a sector waiting to be drawn into columns [xMin, xMax).
type workItem struct {
	sector SectorID
	xMin   int
	xMax   int
	depth  int
}

// Renderer draws sector graphs with portal traversal.
//
// Create it once per Config and reuse it; it is not safe for concurrent use.
type Renderer struct {
	cfg     Config
	frustum Frustum
	proj    Projection

	yMin  []int
	yMax  []int
	queue []workItem
	walls []Wall
	stats Stats

	// afterWall, when set, runs after each wall is rasterized.
	afterWall func()
}

func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		cfg:     cfg,
		frustum: NewFrustum(cfg),
		proj:    NewProjection(cfg),
		yMin:    make([]int, cfg.Width),
		yMax:    make([]int, cfg.Width),
	}, nil
}

func (r *Renderer) Config() Config         { return r.cfg }
func (r *Renderer) Frustum() Frustum       { return r.frustum }
func (r *Renderer) Projection() Projection { return r.proj }

// Render draws the view from cam into t. The background is left as the caller
// cleared it. If cam.Sector is not in g nothing is drawn.
func (r *Renderer) Render(t Target, g *Graph, cam Camera) Stats {
	if r == nil || t == nil {
		return Stats{}
	}
	r.stats = Stats{Visited: r.stats.Visited[:0]}

	gap := r.cfg.EdgeGap
	for x := range r.yMin {
		r.yMin[x] = gap
		r.yMax[x] = r.cfg.Height - gap
	}

	if _, ok := g.Sector(cam.Sector); !ok {
		Logger().Debug("portal: current sector not found", "sector", cam.Sector)
		return r.stats
	}

	view := NewView(cam)
	r.queue = append(r.queue[:0], workItem{sector: cam.Sector, xMin: gap, xMax: r.cfg.Width - gap})

	for head := 0; head < len(r.queue); head++ {
		if r.stats.Items >= r.cfg.MaxWorkItems {
			r.stats.Truncated = true
			break
		}
		item := r.queue[head]
		s, ok := g.Sector(item.sector)
		if !ok {
			continue
		}
		r.stats.Items++
		r.stats.Visited = append(r.stats.Visited, s.ID)
		r.drawSector(t, g, view, cam, s, item)
	}
	if r.stats.Truncated {
		Logger().Warn("portal: traversal truncated", "items", r.stats.Items, "queued", r.stats.Queued)
	}
	return r.stats
}

func (r *Renderer) drawSector(t Target, g *Graph, view View, cam Camera, s *Sector, item workItem) {
	eye := cam.Position.Z()
	viewFloor := s.Floor - eye
	viewCeil := s.Ceiling - eye

	r.walls = s.AppendWalls(r.walls[:0], r.cfg.Palette.MissingWall)
	for _, w := range r.walls {
		left, right, ok := r.frustum.Clip(view.ToCamera(w.Left), view.ToCamera(w.Right))
		if !ok {
			continue
		}

		span := wallSpan{
			left:     left,
			right:    right,
			leftTop:  r.proj.Pixel(left, viewCeil),
			leftBot:  r.proj.Pixel(left, viewFloor),
			rightTop: r.proj.Pixel(right, viewCeil),
			rightBot: r.proj.Pixel(right, viewFloor),
			hsv:      w.hsv,
		}
		if span.rightTop.X-span.leftTop.X <= 0 {
			r.stats.Culled++
			continue
		}

		span.xLeft = clampInt(span.leftTop.X, item.xMin, item.xMax)
		span.xRight = clampInt(span.rightTop.X, item.xMin, item.xMax)
		span.xMax = item.xMax

		if w.IsPortal() {
			if next, ok := g.Sector(w.Portal); ok {
				span.portal = true
				r.resolveKickers(&span, viewFloor, viewCeil, next.Floor-eye, next.Ceiling-eye)
				r.enqueue(workItem{sector: next.ID, xMin: span.xLeft, xMax: span.xRight, depth: item.depth + 1})
			}
		}

		r.stats.Walls++
		r.rasterize(t, &span)
		if r.afterWall != nil {
			r.afterWall()
		}
	}
}

// resolveKickers works out the wall bands above and below a portal opening where
// the neighbour's ceiling is lower or its floor is higher.
func (r *Renderer) resolveKickers(span *wallSpan, viewFloor, viewCeil, nextFloor, nextCeil float32) {
	height := viewFloor - viewCeil
	if height == 0 {
		height = 1
	}
	if nextCeil < viewCeil {
		t := (nextCeil - viewCeil) / height
		span.upper = true
		span.upperLeft = LerpInt(span.leftTop.Y, span.leftBot.Y, t)
		span.upperRight = LerpInt(span.rightTop.Y, span.rightBot.Y, t)
	}
	if nextFloor > viewFloor {
		t := (nextFloor - viewCeil) / height
		span.lower = true
		span.lowerLeft = LerpInt(span.leftTop.Y, span.leftBot.Y, t)
		span.lowerRight = LerpInt(span.rightTop.Y, span.rightBot.Y, t)
	}
}

func (r *Renderer) enqueue(it workItem) {
	if it.xMin >= it.xMax {
		return
	}
	if it.depth > r.cfg.MaxPortalDepth {
		r.stats.Truncated = true
		return
	}
	r.queue = append(r.queue, it)
	r.stats.Queued++
}

// wallSpan is a clipped, projected wall ready for the column rasterizer.
type wallSpan struct {
	left, right mgl32.Vec2

	leftTop, leftBot   image.Point
	rightTop, rightBot image.Point

	xLeft, xRight int
	// xMax is the parent portal's right edge.
	xMax int

	hsv hsv

	portal                bool
	upper                 bool
	upperLeft, upperRight int
	lower                 bool
	lowerLeft, lowerRight int
}
