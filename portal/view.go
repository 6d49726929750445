package portal

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the viewer pose for one frame.
//
// Position X/Y is the floor plane and Z is eye height. Yaw turns right-handed
// about +Z; zero looks down +Y. Sector is the sector the camera stands in.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Sector   SectorID
}

// Forward is the unit look direction on the floor plane.
func (c Camera) Forward() mgl32.Vec2 {
	s, co := math.Sincos(float64(c.Yaw))
	return mgl32.Vec2{float32(-s), float32(co)}
}

// View maps world XY to camera XY, where camera +Y is depth and +X is right.
type View struct {
	toCamera mgl32.Mat3
	toWorld  mgl32.Mat3
}

// NewView builds Rotate(-yaw)·Translate(-position) and its inverse.
func NewView(c Camera) View {
	x, y := c.Position.X(), c.Position.Y()
	return View{
		toCamera: mgl32.HomogRotate2D(-c.Yaw).Mul3(mgl32.Translate2D(-x, -y)),
		toWorld:  mgl32.Translate2D(x, y).Mul3(mgl32.HomogRotate2D(c.Yaw)),
	}
}

func (v View) ToCamera(p mgl32.Vec2) mgl32.Vec2 {
	return v.toCamera.Mul3x1(p.Vec3(1)).Vec2()
}

func (v View) ToWorld(p mgl32.Vec2) mgl32.Vec2 {
	return v.toWorld.Mul3x1(p.Vec3(1)).Vec2()
}

// Projection turns camera-space points into pixels.
type Projection struct {
	m            mgl32.Mat4
	halfW        int
	halfH        int
	minimapScale float32
}

// NewProjection builds the infinite reverse-Z perspective for cfg.
func NewProjection(cfg Config) Projection {
	f := 1 / float32(math.Tan(float64(cfg.FOVY())/2))
	aspect := cfg.Aspect()
	return Projection{
		m: mgl32.Mat4{
			f / aspect, 0, 0, 0,
			0, f, 0, 0,
			0, 0, 0, -1,
			0, 0, cfg.Near, 0,
		},
		halfW:        cfg.Width / 2,
		halfH:        cfg.Height / 2,
		minimapScale: cfg.MinimapScale,
	}
}

// NDC projects camera-space p (x, depth) at height h to normalized device coordinates.
// A point at zero depth maps to the origin.
func (p Projection) NDC(v mgl32.Vec2, h float32) mgl32.Vec3 {
	if v.Y() == 0 {
		return mgl32.Vec3{}
	}
	return mgl32.TransformCoordinate(mgl32.Vec3{v.X(), h, -v.Y()}, p.m)
}

// Pixel projects camera-space p at height h to a pixel; Y grows downward.
func (p Projection) Pixel(v mgl32.Vec2, h float32) image.Point {
	ndc := p.NDC(v, h)
	return image.Point{
		X: p.halfW + roundInt(float32(p.halfW)*ndc.X()),
		Y: p.halfH - roundInt(float32(p.halfH)*ndc.Y()),
	}
}

// MinimapPixel maps a plane point orthographically around the screen centre.
func (p Projection) MinimapPixel(v mgl32.Vec2) image.Point {
	return image.Point{
		X: p.halfW + roundInt(p.minimapScale*v.X()),
		Y: p.halfH - roundInt(p.minimapScale*v.Y()),
	}
}
