package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking down -Z at the origin.
type Camera struct {
	Position mgl32.Vec3
	FOV      float32 // vertical, degrees
	Near     float32
	Far      float32
}

func DefaultCamera() Camera {
	return Camera{
		Position: mgl32.Vec3{0, 0, 2},
		FOV:      45,
		Near:     0.1,
		Far:      2000,
	}
}

func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

func (c Camera) View() mgl32.Mat4 {
	target := c.Position.Sub(mgl32.Vec3{0, 0, 1})
	return mgl32.LookAtV(c.Position, target, mgl32.Vec3{0, 1, 0})
}

// Project maps a world position to logical window pixels (top-left origin)
// inside viewport vp.
func (c Camera) Project(world mgl32.Vec3, vp Viewport) (x, y float64) {
	proj := c.Projection(vp.Aspect())
	// mgl32.Project uses a bottom-left origin
	win := mgl32.Project(world, c.View(), proj, 0, 0, int(vp.W), int(vp.H))
	return vp.X + float64(win.X()), vp.Y + vp.H - float64(win.Y())
}
