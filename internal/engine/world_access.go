package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a single raycast hit.
// Defined here to avoid circular imports with the physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess provides components with access to world-level queries
// without creating circular import dependencies. RaycastAll returns every
// hit within maxDistance ordered by increasing distance; same-distance
// hits keep registration order.
type WorldAccess interface {
	RaycastAll(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) []RaycastResult
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastResult, bool)
	Overlap(point rl.Vector3, radius float32, mask LayerMask) []*GameObject
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
}
