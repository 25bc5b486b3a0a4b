package components

import (
	"math"

	"bench3d/internal/engine"
	"bench3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSController moves the viewer from an explicitly supplied input frame.
// Call SetInput with the current frame before the per-tick Update.
type FPSController struct {
	engine.BaseComponent
	Yaw          float32
	Pitch        float32
	MoveSpeed    float32
	LookSpeed    float32
	Velocity     rl.Vector3
	Gravity      float32
	JumpStrength float32
	Grounded     bool
	EyeHeight    float32

	frame input.Frame
}

func NewFPSController() *FPSController {
	return &FPSController{
		Yaw:          90.0,
		Pitch:        -15.0,
		MoveSpeed:    6.0,
		LookSpeed:    0.1,
		Gravity:      20.0,
		JumpStrength: 7.0,
		Grounded:     false,
		EyeHeight:    1.7,
	}
}

// SetInput hands this tick's input frame to the controller.
func (f *FPSController) SetInput(frame input.Frame) {
	f.frame = frame
}

func (f *FPSController) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}

	// Mouse look — suspended while the rotate input is held so the held
	// object receives the mouse delta instead of the camera.
	if !f.frame.RotateHeld {
		f.Yaw += f.frame.Look.X * f.LookSpeed
		f.Pitch -= f.frame.Look.Y * f.LookSpeed
	}

	if f.Pitch > 89 {
		f.Pitch = 89
	}
	if f.Pitch < -89 {
		f.Pitch = -89
	}

	forward, right := f.getDirections()

	var moveDir rl.Vector3
	moveDir.X = forward.X*f.frame.Movement.Y + right.X*f.frame.Movement.X
	moveDir.Z = forward.Z*f.frame.Movement.Y + right.Z*f.frame.Movement.X

	// Normalize diagonal movement
	moveLen := float32(math.Sqrt(float64(moveDir.X*moveDir.X + moveDir.Z*moveDir.Z)))
	if moveLen > 1 {
		moveDir.X /= moveLen
		moveDir.Z /= moveLen
	}

	f.Velocity.X = moveDir.X * f.MoveSpeed
	f.Velocity.Z = moveDir.Z * f.MoveSpeed

	if f.frame.Jump && f.Grounded {
		f.Velocity.Y = f.JumpStrength
		f.Grounded = false
	}

	if !f.Grounded {
		f.Velocity.Y -= f.Gravity * deltaTime
	}

	g.Transform.Position.X += f.Velocity.X * deltaTime
	g.Transform.Position.Y += f.Velocity.Y * deltaTime
	g.Transform.Position.Z += f.Velocity.Z * deltaTime
}

func (f *FPSController) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

// GetLookDirection implements engine.LookProvider.
func (f *FPSController) GetLookDirection() (x, y, z float32) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	pitchRad := float64(f.Pitch) * math.Pi / 180
	return float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad))
}

// GetEyeHeight implements engine.LookProvider.
func (f *FPSController) GetEyeHeight() float32 {
	return f.EyeHeight
}
