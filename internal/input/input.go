package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Frame is one tick's worth of input. A Source produces exactly one Frame
// per tick and consumers receive it explicitly; nothing reads a global
// input manager, so tests can drive components with synthetic frames.
type Frame struct {
	// Edge-triggered events, true only on the tick they occur.
	Interact    bool
	Drop        bool
	RotateStart bool
	RotateStop  bool
	Jump        bool

	// Sustained state.
	RotateHeld bool

	// Analog channels.
	Scroll   float32    // scroll wheel delta this tick
	Movement rl.Vector2 // normalized WASD-style movement intent
	Look     rl.Vector2 // mouse delta this tick
}

// Source produces one input frame per tick.
type Source interface {
	Poll() Frame
}

// Script replays a fixed sequence of frames, one per Poll. After the
// sequence is exhausted it returns empty frames. Used by tests.
type Script struct {
	Frames []Frame
	next   int
}

func (s *Script) Poll() Frame {
	if s.next >= len(s.Frames) {
		return Frame{}
	}
	f := s.Frames[s.next]
	s.next++
	return f
}
