package interaction

import (
	"bench3d/internal/engine"
	"bench3d/pkg/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is the lifecycle state of an interactable part.
// Exactly one holds at any time. Allowed transitions:
// Free -> Held, Held -> Free, Held -> Attached, Attached -> Held.
type State int

const (
	StateFree State = iota
	StateHeld
	StateAttached
)

func (s State) String() string {
	switch s {
	case StateHeld:
		return "Held"
	case StateAttached:
		return "Attached"
	default:
		return "Free"
	}
}

// PhysState is the declarative physical configuration implied by a state.
// The state machine emits it; a PhysicsAdapter applies it to whatever
// physics backend is in use, keeping the machine engine-independent.
type PhysState struct {
	Kinematic   bool
	TriggerOnly bool
	Layer       engine.Layer
}

// PhysicsAdapter applies physical-state intents to an object.
type PhysicsAdapter interface {
	Apply(g *engine.GameObject, s PhysState)
	ResetMotion(g *engine.GameObject)
}

// StateChange is emitted whenever an entity enters or leaves Attached.
type StateChange struct {
	Entity   *Interactable
	Attached bool
}

// Interactable is the runtime state of any pickable part.
type Interactable struct {
	engine.BaseComponent
	DisplayName string
	Tag         string
	CanAttach   bool

	// TriggerWhileAttached keeps the collider trigger-only after attaching.
	// The part stays ray-detectable either way; raycasts hit triggers.
	TriggerWhileAttached bool

	// Post-detach placement, relative to the vacated point's frame. The
	// offsets keep the detached part clear of the point's origin so the
	// next perception probe doesn't hit both at the same spot.
	DetachForward    float32
	DetachUp         float32
	DetachViewerBias float32

	state          State
	attachedTo     *AttachPoint
	attachLocalPos rl.Vector3
	attachLocalRot rl.Vector3
	detachViewer   rl.Vector3

	// Pose at the moment of the last pickup, kept for a potential restore.
	PrePickupPosition rl.Vector3
	PrePickupRotation rl.Vector3

	adapter PhysicsAdapter

	PickedUp     engine.Signal
	Dropped      engine.Signal
	StateChanged engine.Event[StateChange]
}

func NewInteractable(displayName, tag string, canAttach bool) *Interactable {
	return &Interactable{
		DisplayName:      displayName,
		Tag:              tag,
		CanAttach:        canAttach,
		DetachForward:    0.25,
		DetachUp:         0.15,
		DetachViewerBias: 0.3,
		adapter:          &ComponentAdapter{},
	}
}

// SetPhysicsAdapter swaps the adapter; tests use a recording one.
func (e *Interactable) SetPhysicsAdapter(a PhysicsAdapter) {
	if a != nil {
		e.adapter = a
	}
}

func (e *Interactable) Start() {
	g := e.GetGameObject()
	if g == nil {
		return
	}
	if !hasAnyCollider(g) {
		logger.L().Warnf("interactable %q has no collider and will not be ray-detectable", e.DisplayName)
	}
	e.applyState(e.state)
}

func (e *Interactable) State() State {
	return e.state
}

func (e *Interactable) AttachedTo() *AttachPoint {
	return e.attachedTo
}

// physStateFor maps a lifecycle state onto physical-state intents:
// kinematic whenever not Free, trigger-only while carried (so the part
// doesn't shove other bodies around), and the Held layer only while carried
// so the perception probe can see past the carried part.
func (e *Interactable) physStateFor(s State) PhysState {
	switch s {
	case StateHeld:
		return PhysState{Kinematic: true, TriggerOnly: true, Layer: engine.LayerHeld}
	case StateAttached:
		return PhysState{Kinematic: true, TriggerOnly: e.TriggerWhileAttached, Layer: engine.LayerInteractable}
	default:
		return PhysState{Kinematic: false, TriggerOnly: false, Layer: engine.LayerInteractable}
	}
}

func (e *Interactable) applyState(s State) {
	e.state = s
	if g := e.GetGameObject(); g != nil {
		e.adapter.Apply(g, e.physStateFor(s))
	}
}

// Pickup puts the entity into Held. No precondition: an Attached entity is
// detached first, a Held entity just re-applies carry semantics.
func (e *Interactable) Pickup() {
	if e.state == StateAttached {
		e.Detach(e.detachViewer)
	}
	if g := e.GetGameObject(); g != nil {
		e.PrePickupPosition = g.Transform.Position
		e.PrePickupRotation = g.Transform.Rotation
	}
	e.applyState(StateHeld)
	e.PickedUp.Invoke()
}

// Drop releases a Held entity back to Free. Returns false when not Held.
func (e *Interactable) Drop() bool {
	if e.state != StateHeld {
		return false
	}
	if g := e.GetGameObject(); g != nil {
		e.adapter.ResetMotion(g)
	}
	e.applyState(StateFree)
	e.Dropped.Invoke()
	return true
}

// Attach fastens a Held entity to the given point. Both the point's
// occupancy and the entity's state change together or not at all.
// Returns false on an ineligible entity, a wrong state, or a point that
// rejects the candidate — routine outcomes, never an error.
func (e *Interactable) Attach(p *AttachPoint) bool {
	if p == nil {
		return false
	}
	return p.Attach(e)
}

// attachTo is the entity-side half of AttachPoint.Attach.
func (e *Interactable) attachTo(p *AttachPoint) bool {
	if !e.CanAttach || e.state != StateHeld || p == nil {
		return false
	}
	e.attachedTo = p
	e.attachLocalPos = p.AttachOffset
	e.attachLocalRot = p.AttachRotation
	e.applyState(StateAttached)
	e.resolveAttachedPose()
	e.StateChanged.Invoke(StateChange{Entity: e, Attached: true})
	return true
}

// Detach releases an Attached entity back to Held. The owning point is
// vacated first, then the entity is placed clear of the point's origin with
// a small bias toward viewerPos. Returns false (and changes nothing) when
// not Attached, so a second call in a row is a no-op.
func (e *Interactable) Detach(viewerPos rl.Vector3) bool {
	if e.state != StateAttached {
		return false
	}
	e.detachViewer = viewerPos
	if p := e.attachedTo; p != nil && p.Occupant() == e {
		p.Detach() // calls back into onPointVacated
	} else {
		e.finishDetach(e.attachedTo)
	}
	return true
}

// onPointVacated completes the entity side after the point cleared its
// occupancy. Also reached when AttachPoint.Detach is called directly, so the
// point is never left Empty while the entity still believes it is Attached.
func (e *Interactable) onPointVacated(p *AttachPoint) {
	if e.state == StateAttached && e.attachedTo == p {
		e.finishDetach(p)
	}
}

func (e *Interactable) finishDetach(p *AttachPoint) {
	g := e.GetGameObject()
	if g != nil && p != nil {
		if host := p.GetGameObject(); host != nil {
			origin := host.WorldPosition()
			pos := rl.Vector3Add(origin, rl.Vector3Scale(host.Forward(), e.DetachForward))
			pos = rl.Vector3Add(pos, rl.Vector3Scale(host.Up(), e.DetachUp))
			toViewer := rl.Vector3Subtract(e.detachViewer, origin)
			if rl.Vector3Length(toViewer) > 0.0001 {
				pos = rl.Vector3Add(pos, rl.Vector3Scale(rl.Vector3Normalize(toViewer), e.DetachViewerBias))
			}
			g.Transform.Position = pos
		}
	}
	e.attachedTo = nil
	e.applyState(StateHeld)
	e.StateChanged.Invoke(StateChange{Entity: e, Attached: false})
}

// Update resolves the world pose of an attached entity from its point's
// frame every tick. There is no scene-graph reparenting; the attached-to
// relation plus this resolution step is the whole ownership transfer.
func (e *Interactable) Update(deltaTime float32) {
	if e.state == StateAttached {
		e.resolveAttachedPose()
	}
}

func (e *Interactable) resolveAttachedPose() {
	g := e.GetGameObject()
	p := e.attachedTo
	if g == nil || p == nil {
		return
	}
	host := p.GetGameObject()
	if host == nil {
		return
	}
	rot := host.WorldRotation()
	g.Transform.Position = rl.Vector3Add(host.WorldPosition(), engine.RotateVector(e.attachLocalPos, rot))
	g.Transform.Rotation = rl.Vector3Add(rot, e.attachLocalRot)
}
