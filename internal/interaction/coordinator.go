package interaction

import (
	"bench3d/internal/engine"
	"bench3d/internal/input"
)

// Coordinator turns probe results and input edges into interaction decisions.
// It owns the decision policy only; the detector perceives, the holder
// carries, entities and points keep their own state.
type Coordinator struct {
	detector *TargetDetector
	holder   *ObjectHolder

	prompts PromptSink
	cues    CueSink

	subs []engine.Subscription

	highlighted *AttachPointGroup
	lastPrompt  Prompt
}

func NewCoordinator(detector *TargetDetector, holder *ObjectHolder, prompts PromptSink, cues CueSink) *Coordinator {
	c := &Coordinator{
		detector: detector,
		holder:   holder,
		prompts:  prompts,
		cues:     cues,
	}
	c.subs = append(c.subs,
		detector.TargetAcquired.Subscribe(c.onTargetAcquired),
		detector.TargetLost.Subscribe(c.onTargetLost),
	)
	return c
}

// Close cancels the detector subscriptions. Safe to call twice.
func (c *Coordinator) Close() {
	for _, s := range c.subs {
		s.Cancel()
	}
	c.subs = nil
}

// Update runs one decision tick: perceive, act on input edges, then advance
// the carry pose.
func (c *Coordinator) Update(deltaTime float32, frame input.Frame) {
	hit := c.detector.Tick()

	if c.holder.IsHolding() {
		c.updateCarryState(hit)
	}

	if frame.Interact {
		c.onInteract(hit)
	}
	if frame.Drop && c.holder.IsHolding() {
		if c.holder.Drop() {
			c.playCue(CueDrop)
			c.showPrompt(Prompt{})
		}
	}

	c.holder.Step(deltaTime, frame)
}

// onTargetAcquired drives the prompt while the hands are empty. While
// carrying, prompts follow the per-tick carry state instead, which also
// covers slot hosts that resolve to no entity.
func (c *Coordinator) onTargetAcquired(e *Interactable) {
	if c.holder.IsHolding() {
		return
	}
	kind := PromptPickup
	if e.State() == StateAttached {
		kind = PromptDetach
	}
	c.showPrompt(Prompt{Kind: kind, Target: e.DisplayName})
}

func (c *Coordinator) onTargetLost(e *Interactable) {
	if c.holder.IsHolding() {
		return
	}
	c.showPrompt(Prompt{})
}

// updateCarryState refreshes slot highlighting and the attach prompt while
// carrying. Highlighting keys off the slot group under the crosshair, not the
// resolved entity: an empty bench looked at produces no entity target but its
// points still light up.
func (c *Coordinator) updateCarryState(hit ProbeHit) {
	held := c.holder.Held()
	group := groupFor(hit.Object)

	if group != c.highlighted {
		if c.highlighted != nil {
			c.highlighted.HighlightAvailable(held, false)
		}
		c.highlighted = group
	}

	if group == nil {
		c.showPrompt(Prompt{Kind: PromptNone, Held: held.DisplayName})
		return
	}
	group.HighlightAvailable(held, true)

	if len(group.AvailableSlots(held.Tag)) > 0 && held.CanAttach {
		target := ""
		if hit.Object != nil {
			target = hit.Object.Name
		}
		c.showPrompt(Prompt{Kind: PromptAttach, Target: target, Held: held.DisplayName})
	} else {
		c.showPrompt(Prompt{Kind: PromptNone, Held: held.DisplayName})
	}
}

// onInteract is the single decision point for the interact key.
//
// Hands empty: pick up the targeted entity (detaching it first when needed).
// Carrying: attach to the aimed point, else the nearest accepting point of
// the aimed group, else set the part down on the surface; looking at nothing
// drops it.
func (c *Coordinator) onInteract(hit ProbeHit) {
	if !c.holder.IsHolding() {
		if e := c.detector.Current(); e != nil {
			c.holder.Pickup(e)
			c.playCue(CuePickup)
			c.clearHighlight()
			c.showPrompt(Prompt{Kind: PromptNone, Held: e.DisplayName})
		}
		return
	}

	held := c.holder.Held()

	if hit.Kind == HitNothing {
		if c.holder.Drop() {
			c.playCue(CueDrop)
			c.clearHighlightFor(held)
			c.showPrompt(Prompt{})
		}
		return
	}

	if p := engine.GetComponent[*AttachPoint](hit.Object); p != nil {
		if c.holder.AttachToSlot(p) {
			c.finishPlacement(held, CueAttach)
			return
		}
	}
	if group := groupFor(hit.Object); group != nil {
		if p := group.NearestValidSlot(held, hit.Point); p != nil {
			if c.holder.AttachToSlot(p) {
				c.finishPlacement(held, CueAttach)
				return
			}
		}
	}
	if c.holder.PlaceOnSurface(hit) {
		c.finishPlacement(held, CuePlace)
		return
	}

	target := ""
	if hit.Object != nil {
		target = hit.Object.Name
	}
	c.showPrompt(Prompt{Kind: PromptCannotPlace, Target: target, Held: held.DisplayName})
}

func (c *Coordinator) finishPlacement(held *Interactable, cue string) {
	c.playCue(cue)
	c.clearHighlightFor(held)
	c.showPrompt(Prompt{})
}

func (c *Coordinator) clearHighlight() {
	if c.highlighted != nil && c.holder.Held() != nil {
		c.highlighted.HighlightAvailable(c.holder.Held(), false)
	}
	c.highlighted = nil
}

func (c *Coordinator) clearHighlightFor(held *Interactable) {
	if c.highlighted != nil {
		c.highlighted.HighlightAvailable(held, false)
	}
	c.highlighted = nil
}

func (c *Coordinator) showPrompt(p Prompt) {
	if p == c.lastPrompt {
		return
	}
	c.lastPrompt = p
	if c.prompts != nil {
		c.prompts.ShowPrompt(p)
	}
}

func (c *Coordinator) playCue(name string) {
	if c.cues != nil {
		c.cues.PlayCue(name)
	}
}

// groupFor finds the attach point group responsible for an object: on the
// object itself or the nearest ancestor carrying one.
func groupFor(g *engine.GameObject) *AttachPointGroup {
	for ; g != nil; g = g.Parent {
		if grp := engine.GetComponent[*AttachPointGroup](g); grp != nil {
			return grp
		}
	}
	return nil
}
