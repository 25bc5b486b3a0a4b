package interaction

import (
	"bench3d/internal/engine"
	"bench3d/pkg/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HitKind classifies the outcome of one perception probe.
type HitKind int

const (
	HitNothing HitKind = iota
	HitSurface
	HitInteractable
)

// ProbeHit is the full result of one probe: what kind of thing the viewer is
// looking at, where the ray landed, and the resolved entity if any.
type ProbeHit struct {
	Kind     HitKind
	Object   *engine.GameObject
	Entity   *Interactable
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// TargetDetector probes along the viewer's look direction every tick and
// resolves the hit to an interactable entity. Objects on the held layer are
// masked out so the carried part never blocks its own placement ray.
//
// Resolution walks the ordered hit list and takes the first hit that resolves
// to an entity; a nearer non-resolving hit never shadows a farther resolving
// one, but if nothing resolves the nearest hit is reported as a plain surface.
type TargetDetector struct {
	engine.BaseComponent
	MaxDistance float32

	world   engine.WorldAccess
	look    engine.LookProvider
	outline OutlineSink

	disabled bool
	current  *Interactable
	lastHit  ProbeHit

	TargetAcquired engine.Event[*Interactable]
	TargetLost     engine.Event[*Interactable]
}

func NewTargetDetector(world engine.WorldAccess, outline OutlineSink) *TargetDetector {
	return &TargetDetector{
		MaxDistance: 3.0,
		world:       world,
		outline:     outline,
	}
}

// SetLookProvider overrides the provider found at Start. Tests use this to
// aim the probe without a camera rig.
func (d *TargetDetector) SetLookProvider(lp engine.LookProvider) {
	d.look = lp
	d.disabled = lp == nil
}

func (d *TargetDetector) Start() {
	if d.look != nil {
		return
	}
	for g := d.GetGameObject(); g != nil; g = g.Parent {
		if lp := engine.FindComponent[engine.LookProvider](g); lp != nil {
			d.look = lp
			return
		}
	}
	d.disabled = true
	logger.L().Warn("target detector found no look provider; probing disabled")
}

// Current returns the entity under the crosshair, or nil.
func (d *TargetDetector) Current() *Interactable {
	return d.current
}

// CurrentHit returns the full result of the last probe.
func (d *TargetDetector) CurrentHit() ProbeHit {
	return d.lastHit
}

// Tick runs one perception probe and fires acquired/lost events on target
// changes. Events fire only on change, never every tick.
func (d *TargetDetector) Tick() ProbeHit {
	if d.disabled || d.world == nil || d.look == nil {
		d.lastHit = ProbeHit{}
		d.setCurrent(nil)
		return d.lastHit
	}

	origin := d.eyePosition()
	lx, ly, lz := d.look.GetLookDirection()
	dir := rl.Vector3{X: lx, Y: ly, Z: lz}

	hits := d.world.RaycastAll(origin, dir, d.MaxDistance, engine.MaskAll.Without(engine.LayerHeld))

	var result ProbeHit
	for _, h := range hits {
		if e := resolveHit(h.GameObject); e != nil {
			result = ProbeHit{
				Kind:     HitInteractable,
				Object:   h.GameObject,
				Entity:   e,
				Point:    h.Point,
				Normal:   h.Normal,
				Distance: h.Distance,
			}
			break
		}
	}
	if result.Kind == HitNothing && len(hits) > 0 {
		h := hits[0]
		result = ProbeHit{
			Kind:     HitSurface,
			Object:   h.GameObject,
			Point:    h.Point,
			Normal:   h.Normal,
			Distance: h.Distance,
		}
	}

	d.lastHit = result
	d.setCurrent(result.Entity)
	return result
}

func (d *TargetDetector) eyePosition() rl.Vector3 {
	pos := rl.Vector3{}
	if g := d.GetGameObject(); g != nil {
		pos = g.WorldPosition()
	}
	pos.Y += d.look.GetEyeHeight()
	return pos
}

func (d *TargetDetector) setCurrent(e *Interactable) {
	if e == d.current {
		return
	}
	if d.current != nil {
		if d.outline != nil {
			d.outline.SetOutline(d.current.GetGameObject(), false)
		}
		d.TargetLost.Invoke(d.current)
	}
	d.current = e
	if e != nil {
		if d.outline != nil {
			d.outline.SetOutline(e.GetGameObject(), true)
		}
		d.TargetAcquired.Invoke(e)
	}
}

// resolveHit maps a hit object to the entity it stands for:
//  1. an occupied attach point resolves to its occupant — aiming at the
//     socket of an assembled part targets the part;
//  2. an entity on the object itself;
//  3. a structural search for compound objects whose collider lives on a
//     different node than the entity component: ancestors first, then each
//     ancestor's direct children, then the hit object's own descendants
//     breadth-first.
func resolveHit(g *engine.GameObject) *Interactable {
	if g == nil {
		return nil
	}
	if p := engine.GetComponent[*AttachPoint](g); p != nil && p.IsOccupied() {
		return p.Occupant()
	}
	if e := engine.GetComponent[*Interactable](g); e != nil {
		return e
	}
	for a := g.Parent; a != nil; a = a.Parent {
		if e := engine.GetComponent[*Interactable](a); e != nil {
			return e
		}
		for _, sib := range a.Children {
			if sib == g {
				continue
			}
			if e := engine.GetComponent[*Interactable](sib); e != nil {
				return e
			}
		}
	}
	queue := append([]*engine.GameObject(nil), g.Children...)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if e := engine.GetComponent[*Interactable](node); e != nil {
			return e
		}
		queue = append(queue, node.Children...)
	}
	return nil
}
