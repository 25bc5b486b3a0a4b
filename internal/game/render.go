package game

import (
	"bench3d/internal/components"
	"bench3d/internal/engine"
	"bench3d/internal/interaction"
	"bench3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// renderer draws the world from collider shapes and carries the presentation
// state the interaction core pushes through its sink ports.
type renderer struct {
	outlined   map[*engine.GameObject]bool
	highlights map[*interaction.AttachPoint]interaction.SlotHighlight
}

func newRenderer() *renderer {
	return &renderer{
		outlined:   make(map[*engine.GameObject]bool),
		highlights: make(map[*interaction.AttachPoint]interaction.SlotHighlight),
	}
}

// SetOutline implements the interaction outline port.
func (r *renderer) SetOutline(g *engine.GameObject, on bool) {
	if on {
		r.outlined[g] = true
	} else {
		delete(r.outlined, g)
	}
}

// SetSlotHighlight implements the interaction slot highlight port.
func (r *renderer) SetSlotHighlight(p *interaction.AttachPoint, state interaction.SlotHighlight) {
	if state == interaction.HighlightOff {
		delete(r.highlights, p)
		return
	}
	r.highlights[p] = state
}

func (r *renderer) draw(w *world.World, debug bool) {
	for _, g := range w.Physics.AllObjects() {
		if !g.Active {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](g)
		if box == nil {
			continue
		}
		center := box.GetCenter()
		size := box.GetWorldSize()

		rl.DrawCubeV(center, size, r.bodyColor(g))
		if r.outlined[g] {
			rl.DrawCubeWiresV(center, rl.Vector3Scale(size, 1.05), rl.Orange)
		}
	}

	for p, state := range r.highlights {
		host := p.GetGameObject()
		if host == nil {
			continue
		}
		color := rl.Green
		if state == interaction.HighlightInvalid {
			color = rl.Red
		}
		marker := rl.Vector3Add(host.WorldPosition(), p.AttachOffset)
		rl.DrawCubeWiresV(marker, rl.Vector3{X: 0.12, Y: 0.12, Z: 0.12}, color)
	}

	if debug {
		w.DrawDebug()
	}
}

func (r *renderer) bodyColor(g *engine.GameObject) rl.Color {
	switch g.Layer {
	case engine.LayerHeld:
		return rl.SkyBlue
	case engine.LayerInteractable:
		if e := engine.GetComponent[*interaction.Interactable](g); e != nil && e.State() == interaction.StateAttached {
			return rl.Lime
		}
		return rl.Beige
	default:
		return rl.LightGray
	}
}
