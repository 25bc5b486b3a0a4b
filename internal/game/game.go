package game

import (
	"bench3d/internal/audio"
	"bench3d/internal/components"
	"bench3d/internal/config"
	"bench3d/internal/engine"
	"bench3d/internal/input"
	"bench3d/internal/interaction"
	"bench3d/internal/world"
	"bench3d/pkg/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Game owns the window, the world, and the interaction rig, and runs the
// per-tick ordering: input, interaction decisions, physics, components, draw.
type Game struct {
	world    *world.World
	player   *engine.GameObject
	camera   *components.Camera
	fps      *components.FPSController
	detector *interaction.TargetDetector
	holder   *interaction.ObjectHolder
	coord    *interaction.Coordinator

	renderer *renderer
	hud      *HUD
	cues     *audio.Manager
	source   input.Source

	cfgUpdates chan *config.Config
	debug      bool
}

func New(cfg *config.Config, scenePath string) (*Game, error) {
	g := &Game{
		renderer:   newRenderer(),
		hud:        NewHUD(),
		source:     &raylibInput{},
		cfgUpdates: make(chan *config.Config, 1),
	}

	g.world = world.NewWorld("workbench")
	if err := world.LoadScene(scenePath, g.world); err != nil {
		return nil, err
	}

	g.player = engine.NewGameObject("player")
	g.player.Transform.Position = rl.Vector3{Z: -4}
	g.fps = components.NewFPSController()
	g.fps.Grounded = true
	g.camera = components.NewCamera()
	g.player.AddComponent(g.fps)
	g.player.AddComponent(g.camera)

	g.detector = interaction.NewTargetDetector(g.world, g.renderer)
	g.detector.MaxDistance = cfg.Probe.MaxDistance
	g.holder = interaction.NewObjectHolder(g.world, cfg.HolderTuning())
	g.player.AddComponent(g.detector)
	g.player.AddComponent(g.holder)
	g.world.SpawnObject(g.player)

	for _, p := range attachPoints(g.world) {
		p.SetHighlightSink(g.renderer)
	}
	g.applyDetachTuning(cfg)
	return g, nil
}

func (g *Game) applyDetachTuning(cfg *config.Config) {
	for _, obj := range g.world.Scene.GameObjects {
		if e := engine.GetComponent[*interaction.Interactable](obj); e != nil {
			e.DetachForward = cfg.Detach.Forward
			e.DetachUp = cfg.Detach.Up
			e.DetachViewerBias = cfg.Detach.ViewerBias
		}
	}
}

// ApplyConfig queues tuning for the next tick. Safe to call from the config
// watcher goroutine.
func (g *Game) ApplyConfig(cfg *config.Config) {
	select {
	case g.cfgUpdates <- cfg:
	default:
	}
}

func (g *Game) Run() {
	rl.InitWindow(1280, 720, "bench3d")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.DisableCursor()

	g.cues = audio.NewManager()
	defer g.cues.Close()

	g.coord = interaction.NewCoordinator(g.detector, g.holder, g.hud, g.cues)
	defer g.coord.Close()

	g.world.Start()
	logger.L().WithField("scene", g.world.Scene.Name).Info("scene started")

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()

		select {
		case cfg := <-g.cfgUpdates:
			g.detector.MaxDistance = cfg.Probe.MaxDistance
			g.holder.Tuning = cfg.HolderTuning()
			g.applyDetachTuning(cfg)
		default:
		}

		frame := g.source.Poll()
		if rl.IsKeyPressed(rl.KeyF1) {
			g.debug = !g.debug
		}

		g.fps.SetInput(frame)
		g.coord.Update(dt, frame)
		g.world.Update(dt)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(28, 28, 36, 255))

		rl.BeginMode3D(g.camera.GetRaylibCamera())
		g.renderer.draw(g.world, g.debug)
		rl.EndMode3D()

		g.hud.Draw(g.holder, g.detector, g.debug)
		rl.EndDrawing()
	}
}

// attachPoints collects every attach point in the scene for sink wiring.
func attachPoints(w *world.World) []*interaction.AttachPoint {
	var points []*interaction.AttachPoint
	for _, g := range w.Scene.GameObjects {
		if p := engine.GetComponent[*interaction.AttachPoint](g); p != nil {
			points = append(points, p)
		}
	}
	return points
}
