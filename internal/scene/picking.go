package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// pick tests the ray against every enabled pickable mesh and returns the
// nearest hit. Each mesh is a box around its position.
func (c *Controller) pick(ray rl.Ray) (*EntityMesh, bool) {
	const maxDistance = 1000.0

	dir := rl.Vector3Normalize(ray.Direction)
	var closest *EntityMesh
	closestDist := float32(maxDistance)

	for _, m := range c.meshes {
		if !m.Enabled || !m.Pickable {
			continue
		}
		if t, ok := rayBoxDistance(ray.Position, dir, m.Position, m.Size); ok && t < closestDist {
			closest = m
			closestDist = t
		}
	}

	return closest, closest != nil
}

// rayBoxDistance is a slab test against the axis-aligned box centered at
// center with the given full size. Returns the entry distance along the
// ray.
func rayBoxDistance(origin, dir, center, size rl.Vector3) (float32, bool) {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	min := rl.Vector3Subtract(center, half)
	max := rl.Vector3Add(center, half)

	tmin := float32(-1e30)
	tmax := float32(1e30)

	// X slab
	if dir.X != 0 {
		t1 := (min.X - origin.X) / dir.X
		t2 := (max.X - origin.X) / dir.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return 0, false
	}

	// Y slab
	if dir.Y != 0 {
		t1 := (min.Y - origin.Y) / dir.Y
		t2 := (max.Y - origin.Y) / dir.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return 0, false
	}

	// Z slab
	if dir.Z != 0 {
		t1 := (min.Z - origin.Z) / dir.Z
		t2 := (max.Z - origin.Z) / dir.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < min.Z || origin.Z > max.Z {
		return 0, false
	}

	if tmin > tmax || tmax < 0 {
		return 0, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	return t, true
}
