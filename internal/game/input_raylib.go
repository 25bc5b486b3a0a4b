package game

import (
	"bench3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylibInput polls the raylib window into one input frame per tick and
// derives the rotate start/stop edges.
type raylibInput struct {
	rotating bool
}

func (r *raylibInput) Poll() input.Frame {
	f := input.Frame{
		Interact: rl.IsKeyPressed(rl.KeyE) || rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Drop:     rl.IsKeyPressed(rl.KeyG),
		Jump:     rl.IsKeyPressed(rl.KeySpace),
		Scroll:   rl.GetMouseWheelMove(),
		Look:     rl.GetMouseDelta(),
	}

	rotating := rl.IsMouseButtonDown(rl.MouseRightButton) || rl.IsKeyDown(rl.KeyR)
	f.RotateHeld = rotating
	f.RotateStart = rotating && !r.rotating
	f.RotateStop = !rotating && r.rotating
	r.rotating = rotating

	if rl.IsKeyDown(rl.KeyW) {
		f.Movement.Y++
	}
	if rl.IsKeyDown(rl.KeyS) {
		f.Movement.Y--
	}
	if rl.IsKeyDown(rl.KeyD) {
		f.Movement.X++
	}
	if rl.IsKeyDown(rl.KeyA) {
		f.Movement.X--
	}
	return f
}
