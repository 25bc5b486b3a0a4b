package world

import (
	"bench3d/internal/components"
	"bench3d/internal/engine"
	"bench3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World ties the scene to the physics world and implements the WorldAccess
// queries components probe through.
type World struct {
	Scene   *engine.Scene
	Physics *physics.PhysicsWorld
}

func NewWorld(name string) *World {
	w := &World{
		Scene:   engine.NewScene(name),
		Physics: physics.NewPhysicsWorld(),
	}
	w.Scene.World = w
	return w
}

// SpawnObject registers an object and all of its children with the scene and
// the physics world.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
	for _, child := range g.Children {
		w.SpawnObject(child)
	}
}

// Destroy removes an object and all of its children from both sides.
func (w *World) Destroy(g *engine.GameObject) {
	for _, child := range g.Children {
		w.Destroy(child)
	}
	w.Scene.RemoveGameObject(g)
	w.Physics.RemoveObject(g)
}

func (w *World) RaycastAll(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) []engine.RaycastResult {
	hits := w.Physics.RaycastAll(origin, direction, maxDistance, mask)
	results := make([]engine.RaycastResult, len(hits))
	for i, h := range hits {
		results[i] = engine.RaycastResult{
			GameObject: h.GameObject,
			Point:      h.Point,
			Normal:     h.Normal,
			Distance:   h.Distance,
		}
	}
	return results
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	h, ok := w.Physics.Raycast(origin, direction, maxDistance, mask)
	if !ok {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{
		GameObject: h.GameObject,
		Point:      h.Point,
		Normal:     h.Normal,
		Distance:   h.Distance,
	}, true
}

func (w *World) Overlap(point rl.Vector3, radius float32, mask engine.LayerMask) []*engine.GameObject {
	return w.Physics.Overlap(point, radius, mask)
}

func (w *World) Start() {
	w.Scene.Start()
}

// Update steps physics, then components. Interaction runs before this in the
// game loop so physical-state intents land before integration.
func (w *World) Update(deltaTime float32) {
	w.Physics.Update(deltaTime)
	w.Scene.Update(deltaTime)
}

// DrawDebug renders collider wireframes. Call between BeginMode3D/EndMode3D.
func (w *World) DrawDebug() {
	for _, g := range w.Physics.AllObjects() {
		if box := engine.GetComponent[*components.BoxCollider](g); box != nil && box.Enabled {
			color := rl.Green
			if box.IsTrigger {
				color = rl.Yellow
			}
			rl.DrawCubeWiresV(box.GetCenter(), box.GetWorldSize(), color)
		}
		if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil && sphere.Enabled {
			rl.DrawSphereWires(sphere.GetCenter(), sphere.Radius, 8, 8, rl.Green)
		}
	}
}
