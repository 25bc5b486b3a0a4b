package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type testComponent struct {
	BaseComponent
	started bool
	updates int
}

func (c *testComponent) Start()            { c.started = true }
func (c *testComponent) Update(dt float32) { c.updates++ }

func TestGameObjectComponents(t *testing.T) {
	obj := NewGameObject("Thing")
	comp := &testComponent{}

	obj.AddComponent(comp)

	if comp.GetGameObject() != obj {
		t.Error("AddComponent did not back-reference the GameObject")
	}

	found := GetComponent[*testComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}

	obj.Start()
	if !comp.started {
		t.Error("Start not propagated to components")
	}

	obj.Update(0.016)
	if comp.updates != 1 {
		t.Errorf("Expected 1 update, got %d", comp.updates)
	}

	obj.Active = false
	obj.Update(0.016)
	if comp.updates != 1 {
		t.Error("Inactive GameObject still updated components")
	}
}

func TestGameObjectTags(t *testing.T) {
	obj := NewGameObject("Board")
	obj.Tags = []string{"PCB"}

	if !obj.HasTag("PCB") {
		t.Error("HasTag failed for present tag")
	}
	if obj.HasTag("Screw") {
		t.Error("HasTag matched absent tag")
	}
}

func TestGameObjectChildWorldPosition(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 10, Y: 0, Z: 0}

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 0, Y: 2, Z: 0}
	parent.AddChild(child)

	pos := child.WorldPosition()
	if pos.X != 10 || pos.Y != 2 || pos.Z != 0 {
		t.Errorf("Unexpected child world position: %+v", pos)
	}
}

func TestGameObjectForwardRotatesWithYaw(t *testing.T) {
	obj := NewGameObject("Slot")

	fwd := obj.Forward()
	if fwd.Z < 0.999 {
		t.Errorf("Identity rotation forward should be +Z, got %+v", fwd)
	}

	obj.Transform.Rotation = rl.Vector3{Y: 90}
	fwd = obj.Forward()
	if fwd.X < 0.999 || abs32(fwd.Z) > 0.001 {
		t.Errorf("90 degree yaw forward should be +X, got %+v", fwd)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
