package interaction

import "bench3d/internal/engine"

// SlotHighlight is the presentation state of an attach point marker.
type SlotHighlight int

const (
	HighlightOff SlotHighlight = iota
	HighlightValid
	HighlightInvalid
)

// OutlineSink toggles the selection outline on a targeted object.
// Implemented by the rendering layer; nil sinks are allowed everywhere.
type OutlineSink interface {
	SetOutline(g *engine.GameObject, on bool)
}

// SlotHighlightSink receives attach point highlight changes.
type SlotHighlightSink interface {
	SetSlotHighlight(p *AttachPoint, state SlotHighlight)
}

// PromptSink receives the contextual interaction prompt.
type PromptSink interface {
	ShowPrompt(p Prompt)
}

// CueSink plays a named audio cue.
type CueSink interface {
	PlayCue(name string)
}

// Cue names emitted by the coordinator.
const (
	CuePickup = "pickup"
	CueDrop   = "drop"
	CueAttach = "attach"
	CuePlace  = "place"
)
