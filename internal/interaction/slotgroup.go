package interaction

import (
	"bench3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AttachPointGroup owns the attach points of one host object. Groups form an
// explicit forest: when a part carrying its own group is attached to one of
// this group's points, that group becomes a child here until detach. Queries
// are plain tree traversals, depth-first with self before children, which
// also fixes the tie-break order for nearest-point lookups.
type AttachPointGroup struct {
	engine.BaseComponent
	points   []*AttachPoint // declaration order
	children []*AttachPointGroup
	parent   *AttachPointGroup

	// Availability cache keyed by candidate tag. Any occupancy change in the
	// subtree invalidates this group and every ancestor.
	available map[string][]*AttachPoint
}

func NewAttachPointGroup() *AttachPointGroup {
	return &AttachPointGroup{}
}

// AddPoint registers a point. Declaration order is preserved and used as the
// tie-break in nearest-point queries.
func (g *AttachPointGroup) AddPoint(p *AttachPoint) {
	if p == nil {
		return
	}
	p.group = g
	g.points = append(g.points, p)
	g.invalidate()
}

// Points returns this group's own points in declaration order.
func (g *AttachPointGroup) Points() []*AttachPoint {
	return g.points
}

// Children returns the child groups currently linked through attached parts.
func (g *AttachPointGroup) Children() []*AttachPointGroup {
	return g.children
}

func (g *AttachPointGroup) addChildGroup(child *AttachPointGroup) {
	if child == nil || child == g {
		return
	}
	// A group never references an ancestor; refuse cycles outright.
	for a := g; a != nil; a = a.parent {
		if a == child {
			return
		}
	}
	child.parent = g
	g.children = append(g.children, child)
	g.invalidate()
}

func (g *AttachPointGroup) removeChildGroup(child *AttachPointGroup) {
	for i, c := range g.children {
		if c == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			child.parent = nil
			g.invalidate()
			return
		}
	}
}

// invalidate drops cached availability here and in every ancestor: a child's
// occupancy change alters ancestor query results too.
func (g *AttachPointGroup) invalidate() {
	for a := g; a != nil; a = a.parent {
		a.available = nil
	}
}

// AvailableSlots returns every vacant point whose tag filter is empty or
// matches tag, across this group and all descendants, depth-first with self
// before children.
func (g *AttachPointGroup) AvailableSlots(tag string) []*AttachPoint {
	if cached, ok := g.available[tag]; ok {
		return cached
	}

	var result []*AttachPoint
	for _, p := range g.points {
		if !p.IsOccupied() && (p.AcceptedTag == "" || p.AcceptedTag == tag) {
			result = append(result, p)
		}
	}
	for _, child := range g.children {
		result = append(result, child.AvailableSlots(tag)...)
	}

	if g.available == nil {
		g.available = make(map[string][]*AttachPoint)
	}
	g.available[tag] = result
	return result
}

// NearestValidSlot returns the point accepting the candidate whose origin is
// closest to position, searching this group and all descendants. Ties go to
// the first point in traversal order — deterministic, not physically
// motivated. Returns nil when no point accepts the candidate.
func (g *AttachPointGroup) NearestValidSlot(c *Interactable, position rl.Vector3) *AttachPoint {
	var best *AttachPoint
	var bestDist float32

	g.walk(func(p *AttachPoint) {
		if !p.CanAccept(c) {
			return
		}
		host := p.GetGameObject()
		if host == nil {
			return
		}
		dist := rl.Vector3Length(rl.Vector3Subtract(host.WorldPosition(), position))
		if best == nil || dist < bestDist {
			best = p
			bestDist = dist
		}
	})
	return best
}

// HighlightAvailable drives the point highlights for a candidate. on=false
// clears every highlight in the subtree unconditionally. on=true re-evaluates
// every point: accepting points get the valid style, all others the invalid
// style. Full re-evaluation each call, not incremental.
func (g *AttachPointGroup) HighlightAvailable(c *Interactable, on bool) {
	g.walk(func(p *AttachPoint) {
		switch {
		case !on:
			p.SetHighlight(HighlightOff)
		case p.CanAccept(c):
			p.SetHighlight(HighlightValid)
		default:
			p.SetHighlight(HighlightInvalid)
		}
	})
}

// walk visits every point depth-first, self before children.
func (g *AttachPointGroup) walk(visit func(p *AttachPoint)) {
	for _, p := range g.points {
		visit(p)
	}
	for _, child := range g.children {
		child.walk(visit)
	}
}
