package physics

import (
	"math"
	"sort"

	"bench3d/internal/components"
	"bench3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// RaycastAll returns every hit within maxDistance, ordered by increasing
// distance. Same-distance hits keep object registration order (stable sort),
// so callers must not expect any further tie-break. Disabled colliders are
// skipped; trigger colliders ARE hit — attached parts stay ray-detectable
// even when their physics is trigger-only.
func (p *PhysicsWorld) RaycastAll(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) []RaycastHit {
	direction = rl.Vector3Normalize(direction)
	var hits []RaycastHit

	for _, obj := range p.AllObjects() {
		if !mask.Contains(obj.Layer) {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil && box.Enabled {
			if hit, ok := raycastBox(origin, direction, box, maxDistance); ok {
				hit.GameObject = obj
				hits = append(hits, hit)
				continue
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil && sphere.Enabled {
			if hit, ok := raycastSphere(origin, direction, sphere, maxDistance); ok {
				hit.GameObject = obj
				hits = append(hits, hit)
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// Raycast returns the closest hit, if any.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (RaycastHit, bool) {
	hits := p.RaycastAll(origin, direction, maxDistance, mask)
	if len(hits) == 0 {
		return RaycastHit{}, false
	}
	return hits[0], true
}

// Overlap returns every object whose enabled collider intersects the sphere
// at point with the given radius.
func (p *PhysicsWorld) Overlap(point rl.Vector3, radius float32, mask engine.LayerMask) []*engine.GameObject {
	var result []*engine.GameObject
	for _, obj := range p.AllObjects() {
		if !mask.Contains(obj.Layer) {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil && box.Enabled {
			closest := box.GetAABB().ClosestPoint(point)
			if rl.Vector3Length(rl.Vector3Subtract(point, closest)) <= radius {
				result = append(result, obj)
				continue
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil && sphere.Enabled {
			dist := rl.Vector3Length(rl.Vector3Subtract(point, sphere.GetCenter()))
			if dist <= radius+sphere.Radius {
				result = append(result, obj)
			}
		}
	}
	return result
}

func raycastBox(origin, direction rl.Vector3, box *components.BoxCollider, maxDistance float32) (RaycastHit, bool) {
	center := box.GetCenter()
	// Use world-scaled size with absolute values to handle negative sizes
	worldSize := box.GetWorldSize()
	halfSize := rl.Vector3{X: abs(worldSize.X) / 2, Y: abs(worldSize.Y) / 2, Z: abs(worldSize.Z) / 2}

	min := rl.Vector3{X: center.X - halfSize.X, Y: center.Y - halfSize.Y, Z: center.Z - halfSize.Z}
	max := rl.Vector3{X: center.X + halfSize.X, Y: center.Y + halfSize.Y, Z: center.Z + halfSize.Z}

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return RaycastHit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
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
		return RaycastHit{}, false
	}

	if tmin > tmax {
		return RaycastHit{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (min.Z - origin.Z) / direction.Z
		t2 := (max.Z - origin.Z) / direction.Z
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
		return RaycastHit{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	// Zero-distance edge case: origin inside the box hits at t=0
	t := tmin
	if t < 0 {
		t = 0
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	if abs(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1, Y: 0, Z: 0}
	} else if abs(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1, Y: 0, Z: 0}
	} else if abs(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: -1, Z: 0}
	} else if abs(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: 1, Z: 0}
	} else if abs(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{X: 0, Y: 0, Z: -1}
	} else {
		normal = rl.Vector3{X: 0, Y: 0, Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction rl.Vector3, sphere *components.SphereCollider, maxDistance float32) (RaycastHit, bool) {
	center := sphere.GetCenter()
	radius := sphere.Radius

	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
