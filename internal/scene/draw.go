package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shared style materials. Resolved from a mesh's Style at draw time so
// every mesh of a given state renders identically.
var (
	styleColors = [3]rl.Color{
		rl.NewColor(110, 160, 220, 255), // default: muted blue
		rl.NewColor(255, 161, 0, 255),   // selected: orange
		rl.NewColor(253, 249, 0, 255),   // hovered: yellow
	}
	styleWireColors = [3]rl.Color{
		rl.NewColor(60, 90, 130, 255),
		rl.NewColor(160, 100, 0, 255),
		rl.NewColor(160, 155, 0, 255),
	}
)

const gridSlices = 40

// lightDir shades each mesh by a fixed lambert term so cubes read as lit
// from above without a shader pass.
var lightDir = rl.Vector3Normalize(rl.Vector3{X: 0.35, Y: -1.0, Z: -0.35})

// Draw renders the ground grid and every enabled mesh inside an active
// 3D mode block.
func (c *Controller) Draw() {
	rl.DrawGrid(gridSlices, 1.0)

	shade := 0.35 + 0.65*-lightDir.Y // ambient + directional on the top face

	for _, m := range c.meshes {
		if !m.Enabled {
			continue
		}
		color := scaleColor(styleColors[m.Style], shade)
		rl.DrawCubeV(m.Position, m.Size, color)
		rl.DrawCubeWiresV(m.Position, m.Size, styleWireColors[m.Style])
	}
}

func scaleColor(c rl.Color, f float32) rl.Color {
	if f > 1 {
		f = 1
	}
	return rl.NewColor(
		uint8(float32(c.R)*f),
		uint8(float32(c.G)*f),
		uint8(float32(c.B)*f),
		c.A,
	)
}
