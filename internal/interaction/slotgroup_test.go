package interaction

import (
	"testing"

	"bench3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// newBench builds a host with a group and one point per given position.
func newBench(name string, acceptedTag string, positions ...rl.Vector3) (*AttachPointGroup, []*AttachPoint, *engine.GameObject) {
	bench := engine.NewGameObject(name)
	group := NewAttachPointGroup()
	bench.AddComponent(group)

	points := make([]*AttachPoint, 0, len(positions))
	for _, pos := range positions {
		mount := engine.NewGameObject(name + "-mount")
		mount.Transform.Position = pos
		bench.AddChild(mount)
		p := NewAttachPoint(name+"-slot", acceptedTag)
		mount.AddComponent(p)
		group.AddPoint(p)
		points = append(points, p)
	}
	return group, points, bench
}

func TestAvailableSlotsFiltersTagAndOccupancy(t *testing.T) {
	group, points, _ := newBench("tray", "PCB",
		rl.Vector3{X: -1}, rl.Vector3{X: 0}, rl.Vector3{X: 1})

	if got := group.AvailableSlots("PCB"); len(got) != 3 {
		t.Fatalf("available = %d, want 3", len(got))
	}
	if got := group.AvailableSlots("Screw"); len(got) != 0 {
		t.Errorf("available for wrong tag = %d, want 0", len(got))
	}

	pcb, _ := newPart("pcb", "PCB", true)
	pcb.Pickup()
	points[1].Attach(pcb)

	got := group.AvailableSlots("PCB")
	if len(got) != 2 {
		t.Fatalf("available after attach = %d, want 2", len(got))
	}
	for _, p := range got {
		if p == points[1] {
			t.Error("occupied point listed as available")
		}
	}
}

func TestAvailableSlotsCacheInvalidation(t *testing.T) {
	group, points, _ := newBench("tray", "PCB", rl.Vector3{X: 0}, rl.Vector3{X: 1})

	before := group.AvailableSlots("PCB")
	if len(before) != 2 {
		t.Fatalf("available = %d, want 2", len(before))
	}

	pcb, _ := newPart("pcb", "PCB", true)
	pcb.Pickup()
	points[0].Attach(pcb)
	if got := group.AvailableSlots("PCB"); len(got) != 1 {
		t.Errorf("available after attach = %d, want 1 (stale cache?)", len(got))
	}

	points[0].Detach()
	if got := group.AvailableSlots("PCB"); len(got) != 2 {
		t.Errorf("available after detach = %d, want 2", len(got))
	}
}

func TestNearestValidSlot(t *testing.T) {
	group, points, _ := newBench("tray", "PCB",
		rl.Vector3{X: -2}, rl.Vector3{X: 0.5}, rl.Vector3{X: 3})

	pcb, _ := newPart("pcb", "PCB", true)
	pcb.Pickup()

	got := group.NearestValidSlot(pcb, rl.Vector3{X: 0.4})
	if got != points[1] {
		t.Errorf("nearest = %v, want the middle point", got)
	}

	// Occupy the nearest; the query falls through to the next closest.
	other, _ := newPart("pcb-b", "PCB", true)
	other.Pickup()
	points[1].Attach(other)
	if got := group.NearestValidSlot(pcb, rl.Vector3{X: 0.4}); got != points[0] {
		t.Errorf("nearest with middle occupied = %v, want the left point", got)
	}
}

func TestNearestValidSlotTieBreak(t *testing.T) {
	group, points, _ := newBench("tray", "PCB",
		rl.Vector3{X: -1}, rl.Vector3{X: 1}) // equidistant from origin

	pcb, _ := newPart("pcb", "PCB", true)
	pcb.Pickup()

	if got := group.NearestValidSlot(pcb, rl.Vector3{}); got != points[0] {
		t.Errorf("tie resolved to %v, want the first point in traversal order", got)
	}
}

func TestNearestValidSlotNoneAccepting(t *testing.T) {
	group, _, _ := newBench("tray", "PCB", rl.Vector3{X: 0})
	screw, _ := newPart("screw", "Screw", true)
	screw.Pickup()

	if got := group.NearestValidSlot(screw, rl.Vector3{}); got != nil {
		t.Errorf("nearest = %v, want nil when no point accepts", got)
	}
}

func TestNestedGroupForest(t *testing.T) {
	trayGroup, trayPoints, _ := newBench("tray", "PCB", rl.Vector3{X: 0})

	// A PCB that itself carries screw sockets.
	pcb, pcbObj := newPart("pcb", "PCB", true)
	pcbGroup, _, _ := newBench("pcb-sockets", "Screw",
		rl.Vector3{X: 0.1}, rl.Vector3{X: -0.1})
	// Move the socket group onto the PCB object itself.
	pcbObj.AddComponent(pcbGroup)

	pcb.Pickup()
	if !trayPoints[0].Attach(pcb) {
		t.Fatal("attach failed")
	}

	// The PCB's screw sockets are now reachable through the tray group.
	if got := trayGroup.AvailableSlots("Screw"); len(got) != 2 {
		t.Fatalf("screw slots through tray = %d, want 2", len(got))
	}
	if len(trayGroup.Children()) != 1 {
		t.Fatalf("child groups = %d, want 1", len(trayGroup.Children()))
	}

	screw, _ := newPart("screw", "Screw", true)
	screw.Pickup()
	if p := trayGroup.NearestValidSlot(screw, rl.Vector3{}); p == nil {
		t.Fatal("no screw slot found through the nested group")
	}

	// Detaching the PCB unlinks its sockets again.
	trayPoints[0].Detach()
	if got := trayGroup.AvailableSlots("Screw"); len(got) != 0 {
		t.Errorf("screw slots after detach = %d, want 0", len(got))
	}
	if len(trayGroup.Children()) != 0 {
		t.Errorf("child groups after detach = %d, want 0", len(trayGroup.Children()))
	}
}

func TestAvailableSlotsTraversalOrder(t *testing.T) {
	parentGroup, parentPoints, _ := newBench("bench", "PCB",
		rl.Vector3{X: 0}, rl.Vector3{X: 1})

	pcb, pcbObj := newPart("pcb", "PCB", true)
	childGroup, childPoints, _ := newBench("pcb-sockets", "PCB", rl.Vector3{X: 2})
	pcbObj.AddComponent(childGroup)

	pcb.Pickup()
	parentPoints[0].Attach(pcb)

	got := parentGroup.AvailableSlots("PCB")
	want := []*AttachPoint{parentPoints[1], childPoints[0]}
	if len(got) != len(want) {
		t.Fatalf("available = %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("available[%d] out of order: own points come before child groups", i)
		}
	}
}

func TestHighlightAvailable(t *testing.T) {
	group, points, _ := newBench("tray", "PCB", rl.Vector3{X: 0}, rl.Vector3{X: 1})
	rec := newHighlightRecorder()
	for _, p := range points {
		p.SetHighlightSink(rec)
	}

	occupantOwner, _ := newPart("pcb-a", "PCB", true)
	occupantOwner.Pickup()
	points[0].Attach(occupantOwner)

	pcb, _ := newPart("pcb-b", "PCB", true)
	pcb.Pickup()

	group.HighlightAvailable(pcb, true)
	if rec.states[points[0]] != HighlightInvalid {
		t.Errorf("occupied point highlight = %v, want invalid", rec.states[points[0]])
	}
	if rec.states[points[1]] != HighlightValid {
		t.Errorf("vacant point highlight = %v, want valid", rec.states[points[1]])
	}

	group.HighlightAvailable(pcb, false)
	for i, p := range points {
		if rec.states[p] != HighlightOff {
			t.Errorf("point %d highlight = %v, want off after clear", i, rec.states[p])
		}
	}
}
