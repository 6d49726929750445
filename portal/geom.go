package portal

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// betweenTolerance widens range checks so axis-aligned segments survive rounding.
const betweenTolerance = 1e-4

func perpDot(a, b mgl32.Vec2) float32 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// Intersect intersects the line through a1, a2 with the line through b1, b2.
//
// ok is false for parallel or degenerate lines, and when the intersection lies
// outside the extent of segment a (the b line is treated as infinite).
func Intersect(a1, a2, b1, b2 mgl32.Vec2) (p mgl32.Vec2, ok bool) {
	ax1, ay1 := float64(a1.X()), float64(a1.Y())
	ax2, ay2 := float64(a2.X()), float64(a2.Y())
	bx1, by1 := float64(b1.X()), float64(b1.Y())
	bx2, by2 := float64(b2.X()), float64(b2.Y())

	adx, ady := ax1-ax2, ay1-ay2
	bdx, bdy := bx1-bx2, by1-by2

	div := adx*bdy - ady*bdx
	if div == 0 || math.IsNaN(div) {
		return mgl32.Vec2{}, false
	}

	aCross := ax1*ay2 - ay1*ax2
	bCross := bx1*by2 - by1*bx2

	x := float32((aCross*bdx - adx*bCross) / div)
	y := float32((aCross*bdy - ady*bCross) / div)

	if !Between(x, a1.X(), a2.X()) || !Between(y, a1.Y(), a2.Y()) {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{x, y}, true
}

// Between reports whether v lies in the closed range spanned by a and b.
func Between(v, a, b float32) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	eps := betweenTolerance * (1 + max(abs32(lo), abs32(hi)))
	return v >= lo-eps && v <= hi+eps
}

// PointBehind reports whether p lies on the outer side of the directed line a→b.
func PointBehind(p, a, b mgl32.Vec2) bool {
	return perpDot(b.Sub(a), p.Sub(a)) > 0
}

func Lerp(start, end, t float32) float32 {
	return start*(1-t) + end*t
}

// LerpInt interpolates between two pixel coordinates and rounds to the nearest pixel.
func LerpInt(start, end int, t float32) int {
	return roundInt(float32(start)*(1-t) + float32(end)*t)
}

func roundInt(v float32) int {
	return int(math.Round(float64(v)))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
