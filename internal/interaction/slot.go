package interaction

import (
	"bench3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AttachPoint is a single named socket on a host object. It holds at most
// one occupant and never owns the occupant's lifetime — the entity's
// Attached state is authoritative, the point keeps a non-owning reference.
type AttachPoint struct {
	engine.BaseComponent
	PointName   string
	AcceptedTag string // empty accepts any tag (eligibility is still required)

	// Expected footprint of an attached part, for validation previews.
	ExpectedSize     rl.Vector3
	ExpectedRotation rl.Vector3

	// Local pose of the occupant relative to this point's frame, fixed at
	// attach time. Not necessarily zero.
	AttachOffset   rl.Vector3
	AttachRotation rl.Vector3

	occupant  *Interactable
	group     *AttachPointGroup
	highlight SlotHighlightSink

	Attached engine.Event[*Interactable]
	Detached engine.Event[*Interactable]
}

func NewAttachPoint(name, acceptedTag string) *AttachPoint {
	return &AttachPoint{
		PointName:   name,
		AcceptedTag: acceptedTag,
	}
}

func (p *AttachPoint) IsOccupied() bool {
	return p.occupant != nil
}

func (p *AttachPoint) Occupant() *Interactable {
	return p.occupant
}

// Group returns the owning group, if the point was registered with one.
func (p *AttachPoint) Group() *AttachPointGroup {
	return p.group
}

// SetHighlightSink wires the presentation layer. Highlighting never affects
// occupancy logic.
func (p *AttachPoint) SetHighlightSink(sink SlotHighlightSink) {
	p.highlight = sink
}

// CanAccept reports whether the candidate could attach right now: the point
// must be vacant, the candidate attach-eligible, and the tag filter (when
// set) must match. A tag match alone is not enough.
func (p *AttachPoint) CanAccept(c *Interactable) bool {
	if p.occupant != nil || c == nil || !c.CanAttach {
		return false
	}
	return p.AcceptedTag == "" || p.AcceptedTag == c.Tag
}

// Attach fastens the candidate to this point. Occupancy and the entity's
// state change together: if either side refuses, nothing changes and Attach
// returns false.
func (p *AttachPoint) Attach(c *Interactable) bool {
	if !p.CanAccept(c) {
		return false
	}
	// Occupancy is recorded before the entity-side transition so a
	// StateChanged listener never sees an Attached entity on an empty point.
	p.occupant = c
	if !c.attachTo(p) {
		p.occupant = nil
		return false
	}

	// The occupant must stay selectable: collider on, interactable layer on
	// it and its direct children.
	if g := c.GetGameObject(); g != nil {
		forceSelectable(g)
		for _, child := range g.Children {
			child.Layer = engine.LayerInteractable
		}
		// Nested assemblies: the occupant's own points become reachable
		// through this point's group.
		if p.group != nil {
			if sub := engine.GetComponent[*AttachPointGroup](g); sub != nil {
				p.group.addChildGroup(sub)
			}
		}
	}

	if p.group != nil {
		p.group.invalidate()
	}
	p.Attached.Invoke(c)
	return true
}

// Detach vacates the point and returns the former occupant for the caller
// to reposition, or nil when already empty. The occupancy record is cleared
// before the entity completes its own transition, so the point never reports
// Occupied for an entity that is no longer attached.
func (p *AttachPoint) Detach() *Interactable {
	if p.occupant == nil {
		return nil
	}
	c := p.occupant
	p.occupant = nil

	if g := c.GetGameObject(); g != nil && p.group != nil {
		if sub := engine.GetComponent[*AttachPointGroup](g); sub != nil {
			p.group.removeChildGroup(sub)
		}
	}
	if p.group != nil {
		p.group.invalidate()
	}

	c.onPointVacated(p)
	p.Detached.Invoke(c)
	return c
}

// SetHighlight forwards a highlight state to the presentation sink.
func (p *AttachPoint) SetHighlight(state SlotHighlight) {
	if p.highlight != nil {
		p.highlight.SetSlotHighlight(p, state)
	}
}

func forceSelectable(g *engine.GameObject) {
	g.Layer = engine.LayerInteractable
	// Enable every collider; leave trigger configuration to the entity's
	// own physical-state intents.
	for _, comp := range g.Components() {
		if col, ok := comp.(interface{ SetEnabled(bool) }); ok {
			col.SetEnabled(true)
		}
	}
}
