package interaction

import (
	"bench3d/internal/components"
	"bench3d/internal/engine"
)

// ComponentAdapter applies physical-state intents to the rigidbody and
// collider components of an object. Resync, when set, re-buckets the object
// in the physics world after its kinematic flag changed.
type ComponentAdapter struct {
	Resync func(g *engine.GameObject)
}

func (a *ComponentAdapter) Apply(g *engine.GameObject, s PhysState) {
	if g == nil {
		return
	}

	if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil {
		rb.IsKinematic = s.Kinematic
		rb.UseGravity = !s.Kinematic
	}

	// Colliders stay enabled in every state: an attached part must remain
	// ray-detectable even while its physics is kinematic.
	if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
		box.SetEnabled(true)
		box.SetTrigger(s.TriggerOnly)
	}
	if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
		sphere.SetEnabled(true)
		sphere.SetTrigger(s.TriggerOnly)
	}

	g.Layer = s.Layer

	if a.Resync != nil {
		a.Resync(g)
	}
}

func (a *ComponentAdapter) ResetMotion(g *engine.GameObject) {
	if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil {
		rb.ResetMotion()
	}
}

func hasAnyCollider(g *engine.GameObject) bool {
	if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
		return true
	}
	if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
		return true
	}
	return false
}
