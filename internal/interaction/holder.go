package interaction

import (
	"math"

	"bench3d/internal/components"
	"bench3d/internal/engine"
	"bench3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HolderTuning are the carry-behavior knobs, loadable from config.
type HolderTuning struct {
	MinDistance      float32
	MaxDistance      float32
	DefaultDistance  float32
	ZoomSpeed        float32 // hold distance change per scroll unit
	FollowRate       float32 // exponential smoothing rate for the carry pose
	RotateSpeed      float32 // degrees per look unit while in rotate mode
	DropProbeRadius  float32
	DropPushStep     float32 // extra distance along the look ray when a drop spot is occluded
	MaxPlaceDistance float32
}

func DefaultHolderTuning() HolderTuning {
	return HolderTuning{
		MinDistance:      0.5,
		MaxDistance:      3.0,
		DefaultDistance:  1.5,
		ZoomSpeed:        0.5,
		FollowRate:       12,
		RotateSpeed:      0.25,
		DropProbeRadius:  0.2,
		DropPushStep:     0.25,
		MaxPlaceDistance: 3.0,
	}
}

// ObjectHolder carries one entity in front of the viewer. The carried pose
// chases a point along the look direction with exponential smoothing; scroll
// adjusts the hold distance within tuned bounds, and rotate mode turns the
// part with look input instead of the camera.
type ObjectHolder struct {
	engine.BaseComponent
	Tuning HolderTuning

	world engine.WorldAccess
	look  engine.LookProvider

	held      *Interactable
	distance  float32
	targetRot rl.Vector3
}

func NewObjectHolder(world engine.WorldAccess, tuning HolderTuning) *ObjectHolder {
	return &ObjectHolder{
		Tuning:   tuning,
		world:    world,
		distance: tuning.DefaultDistance,
	}
}

// SetLookProvider overrides the provider found at Start.
func (h *ObjectHolder) SetLookProvider(lp engine.LookProvider) {
	h.look = lp
}

func (h *ObjectHolder) Start() {
	if h.look != nil {
		return
	}
	for g := h.GetGameObject(); g != nil; g = g.Parent {
		if lp := engine.FindComponent[engine.LookProvider](g); lp != nil {
			h.look = lp
			return
		}
	}
}

func (h *ObjectHolder) Held() *Interactable {
	return h.held
}

func (h *ObjectHolder) IsHolding() bool {
	return h.held != nil
}

// HoldDistance returns the current hold distance.
func (h *ObjectHolder) HoldDistance() float32 {
	return h.distance
}

// Pickup takes the entity into the carry slot. A currently held entity is
// dropped first; an attached one detaches toward the viewer before pickup.
// The carry pose is applied immediately on the pickup tick, the smoothing
// only governs subsequent frames.
func (h *ObjectHolder) Pickup(e *Interactable) {
	if e == nil {
		return
	}
	if h.held != nil && h.held != e {
		h.Drop()
	}
	if e.State() == StateAttached {
		e.Detach(h.eyePosition())
	}
	e.Pickup()
	h.held = e
	h.distance = h.Tuning.DefaultDistance
	if g := e.GetGameObject(); g != nil {
		g.Transform.Position = h.carryTarget()
		h.targetRot = g.Transform.Rotation
	}
}

// Step advances the carry pose for one tick. The coordinator drives this;
// the component Update does nothing on its own.
func (h *ObjectHolder) Step(deltaTime float32, frame input.Frame) {
	if h.held == nil {
		return
	}
	g := h.held.GetGameObject()
	if g == nil {
		return
	}

	h.distance -= frame.Scroll * h.Tuning.ZoomSpeed
	h.distance = clamp(h.distance, h.Tuning.MinDistance, h.Tuning.MaxDistance)

	if frame.RotateHeld {
		// Rotate mode turns the part directly, with smoothing suspended, so
		// none of the commanded rotation is lost to an un-converged lerp.
		g.Transform.Rotation.Y += frame.Look.X * h.Tuning.RotateSpeed
		g.Transform.Rotation.X += frame.Look.Y * h.Tuning.RotateSpeed
		h.targetRot = g.Transform.Rotation
	}
	if frame.RotateStop {
		// Re-anchor so leaving rotate mode causes no residual drift.
		h.targetRot = g.Transform.Rotation
	}

	// Frame-rate independent smoothing toward the carry target.
	t := 1 - float32(math.Exp(float64(-h.Tuning.FollowRate*deltaTime)))
	g.Transform.Position = rl.Vector3Lerp(g.Transform.Position, h.carryTarget(), t)
	if !frame.RotateHeld {
		g.Transform.Rotation = rl.Vector3Lerp(g.Transform.Rotation, h.targetRot, t)
	}
}

// Drop releases the held entity at the carry point on the look ray. When
// another interactable occupies that spot, the drop position is pushed one
// step further along the ray so the released part doesn't overlap it.
func (h *ObjectHolder) Drop() bool {
	if h.held == nil {
		return false
	}
	e := h.held
	if g := e.GetGameObject(); g != nil {
		pos := h.carryTarget()
		if h.world != nil && h.occluded(pos) {
			pos = rl.Vector3Add(pos, rl.Vector3Scale(h.lookDir(), h.Tuning.DropPushStep))
		}
		g.Transform.Position = pos
	}
	e.Drop()
	h.held = nil
	return true
}

// PlaceOnSurface sets the held entity down on a probed surface, base flush
// with it, keeping the part's yaw but tilting its up axis onto the surface
// normal. Fails without side effects when nothing was hit or the surface is
// out of reach.
func (h *ObjectHolder) PlaceOnSurface(hit ProbeHit) bool {
	if h.held == nil || hit.Kind == HitNothing {
		return false
	}
	if hit.Distance > h.Tuning.MaxPlaceDistance {
		return false
	}
	e := h.held
	g := e.GetGameObject()
	if g == nil {
		return false
	}

	lift := float32(0)
	if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
		lift = box.GetWorldSize().Y / 2
	} else if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
		lift = sphere.Radius
	}

	g.Transform.Position = rl.Vector3Add(hit.Point, rl.Vector3Scale(hit.Normal, lift))
	g.Transform.Rotation = alignUpToNormal(g.WorldRotation().Y, hit.Normal)
	e.Drop()
	h.held = nil
	return true
}

// AttachToSlot fastens the held entity to the point. The carry slot empties
// only when the attach actually happened.
func (h *ObjectHolder) AttachToSlot(p *AttachPoint) bool {
	if h.held == nil || p == nil {
		return false
	}
	if !p.Attach(h.held) {
		return false
	}
	h.held = nil
	return true
}

func (h *ObjectHolder) carryTarget() rl.Vector3 {
	return rl.Vector3Add(h.eyePosition(), rl.Vector3Scale(h.lookDir(), h.distance))
}

func (h *ObjectHolder) lookDir() rl.Vector3 {
	if h.look == nil {
		return rl.Vector3{}
	}
	lx, ly, lz := h.look.GetLookDirection()
	return rl.Vector3{X: lx, Y: ly, Z: lz}
}

func (h *ObjectHolder) eyePosition() rl.Vector3 {
	pos := rl.Vector3{}
	if g := h.GetGameObject(); g != nil {
		pos = g.WorldPosition()
	}
	if h.look != nil {
		pos.Y += h.look.GetEyeHeight()
	}
	return pos
}

// occluded reports whether another interactable already sits at the drop
// spot. The held part is still on the held layer here, so it never blocks
// its own drop.
func (h *ObjectHolder) occluded(pos rl.Vector3) bool {
	return len(h.world.Overlap(pos, h.Tuning.DropProbeRadius, engine.MaskOf(engine.LayerInteractable))) > 0
}

// alignUpToNormal builds euler angles (degrees) for a part that keeps its yaw
// but has its up axis tilted onto the given surface normal.
func alignUpToNormal(yawDeg float32, normal rl.Vector3) rl.Vector3 {
	up := rl.Vector3{Y: 1}
	n := rl.Vector3Normalize(normal)

	yaw := rl.MatrixRotateY(yawDeg * rl.Pi / 180)

	d := rl.Vector3DotProduct(up, n)
	var tilt rl.Matrix
	switch {
	case d > 0.9999:
		tilt = rl.MatrixIdentity()
	case d < -0.9999:
		tilt = rl.MatrixRotateX(rl.Pi)
	default:
		axis := rl.Vector3Normalize(rl.Vector3CrossProduct(up, n))
		tilt = rl.MatrixRotate(axis, float32(math.Acos(float64(d))))
	}

	return matrixToEuler(rl.MatrixMultiply(yaw, tilt))
}

// matrixToEuler recovers X-then-Y-then-Z euler angles in degrees from a
// rotation matrix built by rotationMatrix's convention.
func matrixToEuler(m rl.Matrix) rl.Vector3 {
	sy := -m.M2
	sy = clamp(sy, -1, 1)
	x := float32(math.Atan2(float64(m.M6), float64(m.M10)))
	y := float32(math.Asin(float64(sy)))
	z := float32(math.Atan2(float64(m.M1), float64(m.M0)))
	const toDeg = 180 / rl.Pi
	return rl.Vector3{X: x * toDeg, Y: y * toDeg, Z: z * toDeg}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
