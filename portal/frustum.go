package portal

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Frustum is the 2D view volume in camera space: a near (back) line and two side
// lines meeting at the camera. Each line is directed so that PointBehind means
// "outside".
type Frustum struct {
	near  float32
	xNear float32

	back1, back2   mgl32.Vec2
	left1, left2   mgl32.Vec2
	right1, right2 mgl32.Vec2
}

func NewFrustum(cfg Config) Frustum {
	tanHalf := float32(math.Tan(float64(cfg.FOVX) / 2))
	xNear := cfg.Near * tanHalf
	xFar := cfg.Far * tanHalf

	f := Frustum{near: cfg.Near, xNear: xNear}
	f.back1 = mgl32.Vec2{xNear, cfg.Near}
	f.back2 = mgl32.Vec2{-xNear, cfg.Near}
	f.left1 = f.back2
	f.left2 = mgl32.Vec2{-xFar, cfg.Far}
	f.right1 = mgl32.Vec2{xFar, cfg.Far}
	f.right2 = f.back1
	return f
}

// Corners returns the frustum's near-left, near-right, far-left and far-right points.
func (f Frustum) Corners() (nearLeft, nearRight, farLeft, farRight mgl32.Vec2) {
	return f.left1, f.right2, f.left2, f.right1
}

// Clip trims the camera-space segment left→right to the frustum.
//
// ok is false when nothing of the segment is in view. Degenerate intersections
// skip their clip step and leave the end point as it was.
func (f Frustum) Clip(left, right mgl32.Vec2) (mgl32.Vec2, mgl32.Vec2, bool) {
	if left.Y() < f.near && right.Y() < f.near {
		return left, right, false
	}

	if p, ok := Intersect(left, right, f.left1, f.left2); ok && p.X() < -f.xNear {
		if PointBehind(left, f.left1, f.left2) {
			left = p
		} else {
			right = p
		}
	}

	if p, ok := Intersect(left, right, f.right1, f.right2); ok && p.X() > f.xNear {
		if PointBehind(left, f.right1, f.right2) {
			left = p
		} else {
			right = p
		}
	}

	if left.Y() < f.near || right.Y() < f.near {
		if p, ok := Intersect(left, right, f.back1, f.back2); ok {
			if PointBehind(left, f.back1, f.back2) {
				left = p
			} else {
				right = p
			}
		}
	}

	if PointBehind(right, f.left1, f.left2) {
		return left, right, false
	}
	if PointBehind(left, f.right1, f.right2) {
		return left, right, false
	}
	return left, right, true
}
