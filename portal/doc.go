// Package portal is a software portal renderer for sector-based levels.
//
// A level is a Graph of convex floor-plan polygons (sectors) with per-sector floor
// and ceiling heights. Edges that open onto a neighbouring sector are portals. The
// renderer draws a first-person view by walking visible portals breadth-first and
// filling one screen column at a time, so a farther sector can only ever draw into
// the vertical span its nearer neighbours left open.
//
// Pipeline (fixed, single-threaded, once per frame):
//
//	Camera + Graph → View transform → Frustum clip → Portal traversal → Column raster → Target.
//
// The minimap projector is a second consumer of the same view transform and clipper
// and draws a top-down debug overlay.
//
// There is no pitch or roll: heights are only combined with camera-space positions
// at projection time. All drawing goes through a caller-provided Target that drops
// out-of-bounds writes. A Renderer keeps its span and queue buffers between frames.
package portal
