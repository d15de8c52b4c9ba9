package scene

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target point at a fixed radius, driven by
// right-drag and the scroll wheel.
type OrbitCamera struct {
	Target    rl.Vector3
	Azimuth   float32 // degrees around Y
	Elevation float32 // degrees above the ground plane
	Radius    float32
}

func NewOrbitCamera() OrbitCamera {
	return OrbitCamera{
		Azimuth:   45,
		Elevation: 35,
		Radius:    25,
	}
}

// Update applies mouse orbit and zoom input for this frame.
func (c *OrbitCamera) Update() {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		c.Azimuth += delta.X * 0.3
		c.Elevation += delta.Y * 0.3
		if c.Elevation > 89 {
			c.Elevation = 89
		}
		if c.Elevation < 5 {
			c.Elevation = 5
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Radius -= wheel * 2
		if c.Radius < 3 {
			c.Radius = 3
		}
		if c.Radius > 150 {
			c.Radius = 150
		}
	}
}

// Camera3D builds the raylib camera for the current orbit state.
func (c *OrbitCamera) Camera3D() rl.Camera3D {
	azRad := float64(c.Azimuth) * math.Pi / 180
	elRad := float64(c.Elevation) * math.Pi / 180

	offset := rl.Vector3{
		X: float32(math.Cos(azRad)*math.Cos(elRad)) * c.Radius,
		Y: float32(math.Sin(elRad)) * c.Radius,
		Z: float32(math.Sin(azRad)*math.Cos(elRad)) * c.Radius,
	}

	return rl.Camera3D{
		Position:   rl.Vector3Add(c.Target, offset),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

// LookAt re-targets the orbit, used to center on a selected entity.
func (c *OrbitCamera) LookAt(target rl.Vector3) {
	c.Target = target
}
