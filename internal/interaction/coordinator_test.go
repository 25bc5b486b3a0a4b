package interaction

import (
	"testing"

	"bench3d/internal/engine"
	"bench3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type promptRecorder struct {
	prompts []Prompt
}

func (r *promptRecorder) ShowPrompt(p Prompt) {
	r.prompts = append(r.prompts, p)
}

func (r *promptRecorder) last() Prompt {
	if len(r.prompts) == 0 {
		return Prompt{}
	}
	return r.prompts[len(r.prompts)-1]
}

type cueRecorder struct {
	cues []string
}

func (r *cueRecorder) PlayCue(name string) {
	r.cues = append(r.cues, name)
}

func newRig(w *fakeWorld) (*Coordinator, *ObjectHolder, *promptRecorder, *cueRecorder) {
	d := newDetector(w)
	h, _ := newHolder(w)
	pr := &promptRecorder{}
	cr := &cueRecorder{}
	return NewCoordinator(d, h, pr, cr), h, pr, cr
}

func TestPromptPickupOnFreeTarget(t *testing.T) {
	_, g := newPart("pcb", "PCB", true)
	w := &fakeWorld{hits: []engine.RaycastResult{{GameObject: g, Distance: 1.0}}}
	c, _, pr, _ := newRig(w)

	c.Update(0.016, input.Frame{})
	got := pr.last()
	if got.Kind != PromptPickup || got.Target != "pcb" {
		t.Errorf("prompt = %+v, want pickup prompt for the pcb", got)
	}

	// Steady aim repeats the same prompt; the sink hears it once.
	n := len(pr.prompts)
	c.Update(0.016, input.Frame{})
	if len(pr.prompts) != n {
		t.Errorf("prompt repeated on steady aim: %d calls, want %d", len(pr.prompts), n)
	}
}

func TestPromptDetachOnAttachedTarget(t *testing.T) {
	e, _ := newPart("pcb", "PCB", true)
	p, host := newHost("tray", "PCB")
	e.Pickup()
	p.Attach(e)

	w := &fakeWorld{hits: []engine.RaycastResult{{GameObject: host, Distance: 1.0}}}
	c, _, pr, _ := newRig(w)

	c.Update(0.016, input.Frame{})
	if got := pr.last(); got.Kind != PromptDetach {
		t.Errorf("prompt = %+v, want detach prompt for an attached target", got)
	}
}

func TestInteractPicksUpTarget(t *testing.T) {
	e, g := newPart("pcb", "PCB", true)
	w := &fakeWorld{hits: []engine.RaycastResult{{GameObject: g, Distance: 1.0}}}
	c, h, _, cr := newRig(w)

	c.Update(0.016, input.Frame{Interact: true})
	if h.Held() != e {
		t.Fatalf("held = %v, want the targeted entity", h.Held())
	}
	if len(cr.cues) != 1 || cr.cues[0] != CuePickup {
		t.Errorf("cues = %v, want [%s]", cr.cues, CuePickup)
	}
}

func TestCarryHighlightsAndAttaches(t *testing.T) {
	group, points, _ := newBench("tray", "PCB", rl.Vector3{X: 0.2})
	mount := points[0].GetGameObject()
	rec := newHighlightRecorder()
	points[0].SetHighlightSink(rec)

	w := &fakeWorld{}
	c, h, pr, cr := newRig(w)

	e, _ := newPart("pcb", "PCB", true)
	h.Pickup(e)

	w.hits = []engine.RaycastResult{{GameObject: mount, Distance: 1.0, Normal: rl.Vector3{Y: 1}}}
	c.Update(0.016, input.Frame{})

	if rec.states[points[0]] != HighlightValid {
		t.Errorf("slot highlight = %v, want valid while carrying a match", rec.states[points[0]])
	}
	if got := pr.last(); got.Kind != PromptAttach || got.Held != "pcb" {
		t.Errorf("prompt = %+v, want attach prompt", got)
	}

	c.Update(0.016, input.Frame{Interact: true})
	if !points[0].IsOccupied() || points[0].Occupant() != e {
		t.Fatal("interact did not attach the held entity to the aimed point")
	}
	if h.IsHolding() {
		t.Error("carry slot not empty after attach")
	}
	if rec.states[points[0]] != HighlightOff {
		t.Errorf("slot highlight = %v, want cleared after attach", rec.states[points[0]])
	}
	if len(cr.cues) == 0 || cr.cues[len(cr.cues)-1] != CueAttach {
		t.Errorf("cues = %v, want attach cue last", cr.cues)
	}
	if got := group.AvailableSlots("PCB"); len(got) != 0 {
		t.Errorf("available slots after attach = %d, want 0", len(got))
	}
}

func TestInteractOnNothingDropsHeld(t *testing.T) {
	w := &fakeWorld{}
	c, h, _, cr := newRig(w)
	e, _ := newPart("pcb", "PCB", true)
	h.Pickup(e)

	c.Update(0.016, input.Frame{Interact: true})
	if h.IsHolding() {
		t.Error("still holding after interacting at nothing")
	}
	if e.State() != StateFree {
		t.Errorf("state = %v, want Free", e.State())
	}
	if len(cr.cues) == 0 || cr.cues[len(cr.cues)-1] != CueDrop {
		t.Errorf("cues = %v, want drop cue", cr.cues)
	}
}

func TestDropKeyReleasesHeld(t *testing.T) {
	w := &fakeWorld{}
	c, h, _, _ := newRig(w)
	e, _ := newPart("pcb", "PCB", true)
	h.Pickup(e)

	c.Update(0.016, input.Frame{Drop: true})
	if h.IsHolding() || e.State() != StateFree {
		t.Error("drop key did not release the held entity")
	}
}

func TestInteractPlacesOnPlainSurface(t *testing.T) {
	w := &fakeWorld{hits: []engine.RaycastResult{surfaceHit("bench-top", 2.0)}}
	c, h, _, cr := newRig(w)
	e, _ := newPart("pcb", "PCB", true)
	h.Pickup(e)

	c.Update(0.016, input.Frame{Interact: true})
	if e.State() != StateFree || h.IsHolding() {
		t.Error("interact on a surface did not set the part down")
	}
	if len(cr.cues) == 0 || cr.cues[len(cr.cues)-1] != CuePlace {
		t.Errorf("cues = %v, want place cue", cr.cues)
	}
}

func TestCannotPlacePrompt(t *testing.T) {
	w := &fakeWorld{hits: []engine.RaycastResult{surfaceHit("far-shelf", 2.0)}}
	c, h, pr, _ := newRig(w)
	h.Tuning.MaxPlaceDistance = 1.0

	e, _ := newPart("pcb", "PCB", true)
	h.Pickup(e)

	c.Update(0.016, input.Frame{Interact: true})
	if got := pr.last(); got.Kind != PromptCannotPlace {
		t.Errorf("prompt = %+v, want cannot-place", got)
	}
	if !h.IsHolding() || e.State() != StateHeld {
		t.Error("failed placement had side effects")
	}
}

func TestCloseCancelsSubscriptions(t *testing.T) {
	_, g := newPart("pcb", "PCB", true)
	w := &fakeWorld{hits: []engine.RaycastResult{{GameObject: g, Distance: 1.0}}}
	c, _, pr, _ := newRig(w)

	c.Close()
	c.Update(0.016, input.Frame{})
	if len(pr.prompts) != 0 {
		t.Errorf("prompts after Close = %v, want none", pr.prompts)
	}
	c.Close() // second close is a no-op
}
