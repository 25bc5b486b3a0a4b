package engine

// Layer buckets objects for raycast and overlap filtering.
type Layer int

const (
	LayerDefault Layer = iota
	LayerInteractable
	LayerHeld // carried objects, masked out of the perception probe
	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerInteractable:
		return "Interactable"
	case LayerHeld:
		return "Held"
	default:
		return "Default"
	}
}

// LayerMask selects a set of layers.
type LayerMask uint32

// MaskOf builds a mask containing exactly the given layers.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= 1 << uint(l)
	}
	return m
}

// MaskAll matches every layer.
const MaskAll = LayerMask(1<<uint(layerCount)) - 1

func (m LayerMask) Contains(l Layer) bool {
	return m&(1<<uint(l)) != 0
}

// Without returns the mask with the given layer removed.
func (m LayerMask) Without(l Layer) LayerMask {
	return m &^ (1 << uint(l))
}
