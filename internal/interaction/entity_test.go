package interaction

import (
	"testing"

	"bench3d/internal/components"
	"bench3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// recordingAdapter captures physical-state intents instead of applying them.
type recordingAdapter struct {
	states []PhysState
	resets int
}

func (a *recordingAdapter) Apply(g *engine.GameObject, s PhysState) {
	a.states = append(a.states, s)
}

func (a *recordingAdapter) ResetMotion(g *engine.GameObject) {
	a.resets++
}

func (a *recordingAdapter) last() PhysState {
	return a.states[len(a.states)-1]
}

// newPart builds a pickable part with a collider and rigidbody.
func newPart(name, tag string, canAttach bool) (*Interactable, *engine.GameObject) {
	g := engine.NewGameObject(name)
	g.Layer = engine.LayerInteractable
	g.AddComponent(&components.BoxCollider{Size: rl.Vector3{X: 0.2, Y: 0.2, Z: 0.2}, Enabled: true})
	g.AddComponent(components.NewRigidbody())
	e := NewInteractable(name, tag, canAttach)
	g.AddComponent(e)
	return e, g
}

// newHost builds a host object carrying one attach point.
func newHost(name, acceptedTag string) (*AttachPoint, *engine.GameObject) {
	g := engine.NewGameObject(name)
	p := NewAttachPoint(name+"-slot", acceptedTag)
	g.AddComponent(p)
	return p, g
}

func TestLifecycleTransitions(t *testing.T) {
	e, _ := newPart("pcb", "PCB", true)

	if e.State() != StateFree {
		t.Fatalf("initial state = %v, want Free", e.State())
	}
	if e.Drop() {
		t.Error("Drop succeeded on a Free entity")
	}

	e.Pickup()
	if e.State() != StateHeld {
		t.Errorf("state after Pickup = %v, want Held", e.State())
	}

	if !e.Drop() {
		t.Error("Drop failed on a Held entity")
	}
	if e.State() != StateFree {
		t.Errorf("state after Drop = %v, want Free", e.State())
	}
}

func TestNoFreeToAttached(t *testing.T) {
	e, _ := newPart("pcb", "PCB", true)
	p, _ := newHost("tray", "PCB")

	if p.Attach(e) {
		t.Error("Attach succeeded on a Free entity")
	}
	if e.State() != StateFree {
		t.Errorf("state = %v, want Free", e.State())
	}
	if p.IsOccupied() {
		t.Error("point reports occupied after a rejected attach")
	}
}

func TestAttachDetachRoundTrip(t *testing.T) {
	e, _ := newPart("pcb", "PCB", true)
	p, _ := newHost("tray", "PCB")

	e.Pickup()
	if !p.Attach(e) {
		t.Fatal("Attach failed for a held, eligible, tag-matched entity")
	}
	if e.State() != StateAttached || e.AttachedTo() != p {
		t.Fatalf("after attach: state=%v attachedTo=%v", e.State(), e.AttachedTo())
	}
	if p.Occupant() != e {
		t.Fatal("point occupant mismatch after attach")
	}

	if !e.Detach(rl.Vector3{Z: -1}) {
		t.Fatal("Detach failed on an attached entity")
	}
	if e.State() != StateHeld {
		t.Errorf("state after Detach = %v, want Held", e.State())
	}
	if p.IsOccupied() {
		t.Error("point still occupied after detach")
	}
	if e.AttachedTo() != nil {
		t.Error("entity still references the vacated point")
	}
}

func TestDetachIsIdempotent(t *testing.T) {
	e, _ := newPart("pcb", "PCB", true)
	p, _ := newHost("tray", "PCB")

	e.Pickup()
	p.Attach(e)

	if !e.Detach(rl.Vector3{}) {
		t.Fatal("first Detach failed")
	}
	if e.Detach(rl.Vector3{}) {
		t.Error("second Detach reported success")
	}
	if e.State() != StateHeld {
		t.Errorf("state = %v, want Held", e.State())
	}
}

func TestDirectPointDetachSyncsEntity(t *testing.T) {
	e, _ := newPart("pcb", "PCB", true)
	p, _ := newHost("tray", "PCB")

	e.Pickup()
	p.Attach(e)

	got := p.Detach()
	if got != e {
		t.Fatalf("Detach returned %v, want the occupant", got)
	}
	if e.State() != StateHeld {
		t.Errorf("entity state after point-side detach = %v, want Held", e.State())
	}
	if e.AttachedTo() != nil {
		t.Error("entity still believes it is attached")
	}
	if p.Detach() != nil {
		t.Error("second point-side Detach returned an occupant")
	}
}

func TestPhysicalStateIntents(t *testing.T) {
	e, _ := newPart("pcb", "PCB", true)
	rec := &recordingAdapter{}
	e.SetPhysicsAdapter(rec)
	p, _ := newHost("tray", "PCB")

	e.Pickup()
	held := rec.last()
	if !held.Kinematic || !held.TriggerOnly || held.Layer != engine.LayerHeld {
		t.Errorf("held intent = %+v, want kinematic trigger-only on held layer", held)
	}

	p.Attach(e)
	attached := rec.last()
	if !attached.Kinematic || attached.TriggerOnly || attached.Layer != engine.LayerInteractable {
		t.Errorf("attached intent = %+v, want kinematic solid on interactable layer", attached)
	}

	e.Detach(rl.Vector3{})
	e.Drop()
	free := rec.last()
	if free.Kinematic || free.TriggerOnly || free.Layer != engine.LayerInteractable {
		t.Errorf("free intent = %+v, want dynamic solid on interactable layer", free)
	}
	if rec.resets != 1 {
		t.Errorf("ResetMotion calls = %d, want 1 (on drop)", rec.resets)
	}
}

func TestTriggerWhileAttached(t *testing.T) {
	e, _ := newPart("pcb", "PCB", true)
	e.TriggerWhileAttached = true
	rec := &recordingAdapter{}
	e.SetPhysicsAdapter(rec)
	p, _ := newHost("tray", "PCB")

	e.Pickup()
	p.Attach(e)
	if got := rec.last(); !got.TriggerOnly {
		t.Errorf("attached intent = %+v, want trigger-only", got)
	}
}

func TestDetachPlacement(t *testing.T) {
	e, g := newPart("pcb", "PCB", true)
	p, host := newHost("tray", "PCB")
	host.Transform.Position = rl.Vector3{} // facing +Z, up +Y

	e.Pickup()
	if !p.Attach(e) {
		t.Fatal("attach failed")
	}
	viewer := rl.Vector3{Z: -1}
	e.Detach(viewer)

	// forward*0.25 + up*0.15 + toward-viewer*0.3
	want := rl.Vector3{X: 0, Y: 0.15, Z: 0.25 - 0.3}
	got := g.Transform.Position
	if !vecNear(got, want, 1e-4) {
		t.Errorf("detach position = %v, want %v", got, want)
	}
}

func TestAttachedPoseFollowsHost(t *testing.T) {
	e, g := newPart("pcb", "PCB", true)
	p, host := newHost("tray", "PCB")
	p.AttachOffset = rl.Vector3{Y: 0.05}

	e.Pickup()
	p.Attach(e)

	host.Transform.Position = rl.Vector3{X: 2, Z: 3}
	e.Update(0.016)

	want := rl.Vector3{X: 2, Y: 0.05, Z: 3}
	if !vecNear(g.Transform.Position, want, 1e-4) {
		t.Errorf("attached pose = %v, want %v", g.Transform.Position, want)
	}
}

func vecNear(a, b rl.Vector3, eps float32) bool {
	return abs32(a.X-b.X) < eps && abs32(a.Y-b.Y) < eps && abs32(a.Z-b.Z) < eps
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
