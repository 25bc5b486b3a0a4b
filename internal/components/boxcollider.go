package components

import (
	"bench3d/internal/engine"
	"bench3d/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size      rl.Vector3
	Offset    rl.Vector3
	Enabled   bool
	IsTrigger bool // trigger colliders are ray-detectable but never push bodies
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:    size,
		Offset:  rl.Vector3{},
		Enabled: true,
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns the collider size scaled by the object's world scale
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	g := b.GetGameObject()
	s := g.WorldScale()
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

func (b *BoxCollider) GetAABB() geom.AABB {
	return geom.NewAABBFromCenter(b.GetCenter(), b.GetWorldSize())
}

// SetEnabled implements interaction's collider control contract
func (b *BoxCollider) SetEnabled(on bool) { b.Enabled = on }

// SetTrigger implements interaction's collider control contract
func (b *BoxCollider) SetTrigger(on bool) { b.IsTrigger = on }
