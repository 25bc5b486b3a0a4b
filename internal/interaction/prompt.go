package interaction

// PromptKind tells the UI layer which interaction is currently offered.
// The core never formats strings; presentation decides the wording.
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptPickup
	PromptDetach
	PromptAttach
	PromptCannotPlace
)

func (k PromptKind) String() string {
	switch k {
	case PromptPickup:
		return "Pickup"
	case PromptDetach:
		return "Detach"
	case PromptAttach:
		return "Attach"
	case PromptCannotPlace:
		return "CannotPlace"
	default:
		return "None"
	}
}

// Prompt is the kind plus the display names the formatter may interpolate.
type Prompt struct {
	Kind   PromptKind
	Target string // what the viewer is looking at
	Held   string // what the viewer is carrying, if anything
}
