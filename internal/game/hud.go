package game

import (
	"fmt"

	"bench3d/internal/interaction"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD renders the crosshair, the interaction prompt, and an optional debug
// panel. It implements the interaction prompt port.
type HUD struct {
	prompt interaction.Prompt
}

func NewHUD() *HUD {
	return &HUD{}
}

// ShowPrompt implements the interaction prompt port. Called only when the
// prompt changes.
func (h *HUD) ShowPrompt(p interaction.Prompt) {
	h.prompt = p
}

func (h *HUD) Draw(holder *interaction.ObjectHolder, detector *interaction.TargetDetector, debug bool) {
	w := rl.GetScreenWidth()
	hgt := rl.GetScreenHeight()

	rl.DrawText("+", int32(w/2-4), int32(hgt/2-8), 20, rl.RayWhite)

	if text := h.promptText(); text != "" {
		width := rl.MeasureText(text, 20)
		rl.DrawText(text, int32(w/2)-width/2, int32(hgt)-60, 20, rl.RayWhite)
	}

	if debug {
		h.drawDebugPanel(holder, detector)
	}
}

func (h *HUD) promptText() string {
	switch h.prompt.Kind {
	case interaction.PromptPickup:
		return fmt.Sprintf("[E] Pick up %s", h.prompt.Target)
	case interaction.PromptDetach:
		return fmt.Sprintf("[E] Detach %s", h.prompt.Target)
	case interaction.PromptAttach:
		return fmt.Sprintf("[E] Attach %s", h.prompt.Held)
	case interaction.PromptCannotPlace:
		return fmt.Sprintf("Can't place %s here", h.prompt.Held)
	default:
		if h.prompt.Held != "" {
			return fmt.Sprintf("[G] Drop %s", h.prompt.Held)
		}
		return ""
	}
}

func (h *HUD) drawDebugPanel(holder *interaction.ObjectHolder, detector *interaction.TargetDetector) {
	gui.Panel(rl.NewRectangle(10, 10, 230, 120), "interaction")

	held := "-"
	if e := holder.Held(); e != nil {
		held = fmt.Sprintf("%s (d=%.2f)", e.DisplayName, holder.HoldDistance())
	}
	gui.Label(rl.NewRectangle(20, 40, 210, 20), "held: "+held)

	target := "-"
	hit := detector.CurrentHit()
	switch hit.Kind {
	case interaction.HitInteractable:
		target = fmt.Sprintf("%s [%s]", hit.Entity.DisplayName, hit.Entity.State())
	case interaction.HitSurface:
		if hit.Object != nil {
			target = hit.Object.Name + " (surface)"
		}
	}
	gui.Label(rl.NewRectangle(20, 65, 210, 20), "target: "+target)
	gui.Label(rl.NewRectangle(20, 90, 210, 20), fmt.Sprintf("fps: %d", rl.GetFPS()))
}
