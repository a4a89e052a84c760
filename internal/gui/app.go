package gui

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/kaleido/internal/config"
	"github.com/san-kum/kaleido/internal/geom"
	"github.com/san-kum/kaleido/internal/projection"
	"github.com/san-kum/kaleido/internal/scene"
)

var ErrWindowUnavailable = errors.New("gui: window could not be created")

const overlayMargin = 20

type App struct {
	Config     *config.Config
	Engine     *scene.Engine
	Camera     rl.Camera3D
	Projection rl.Matrix
	Method     projection.Method
	Background rl.Color

	moved bool
}

// initWindow opens the window described by cfg and sets the frame budget.
func initWindow(cfg *config.Config) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	if !rl.IsWindowReady() {
		return ErrWindowUnavailable
	}
	rl.SetTargetFPS(int32(cfg.FPS))
	return nil
}

// NewApp prepares the camera and projection for the configured window. It
// needs an open window.
func NewApp(cfg *config.Config, eng *scene.Engine) (*App, error) {
	proj, err := projection.Setup(projection.Default(cfg.Window.Width, cfg.Window.Height), raymathProjection)
	if err != nil {
		return nil, err
	}
	if proj.Cause != nil {
		rl.TraceLog(rl.LogWarning, "KALEIDO: perspective setup failed (%v), using %s fallback", proj.Cause, proj.Method)
	}

	return &App{
		Config: cfg,
		Engine: eng,
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, 0, projection.DefaultDistance),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			projection.DefaultFovY,
			rl.CameraPerspective,
		),
		Projection: toRaylib(proj.Matrix),
		Method:     proj.Method,
		Background: toColor(cfg.BackgroundColor(), 1),
	}, nil
}

// Run opens the window and blocks until it is closed or a frame fails. The
// window is closed on return either way.
func Run(cfg *config.Config, eng *scene.Engine) error {
	if err := initWindow(cfg); err != nil {
		return err
	}
	defer rl.CloseWindow()

	app, err := NewApp(cfg, eng)
	if err != nil {
		return err
	}
	return app.RunLoop()
}

func (a *App) RunLoop() error {
	for !rl.WindowShouldClose() {
		if err := scene.Guard(a.Engine.Frame(), a.step); err != nil {
			rl.TraceLog(rl.LogError, "KALEIDO: %v", err)
			return err
		}
	}
	return nil
}

func (a *App) step() error {
	a.Update()
	prims := a.Engine.Tick()
	if err := scene.CheckFrame(prims); err != nil {
		return err
	}
	a.Draw(prims)
	return nil
}

// Update feeds the pointer into the engine. Until the pointer first moves the
// engine keeps its default tuning.
func (a *App) Update() {
	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		a.moved = true
	}
	if !a.moved {
		return
	}
	pos := rl.GetMousePosition()
	a.Engine.Input(
		float64(pos.X),
		float64(pos.Y),
		float64(rl.GetScreenWidth()),
		float64(rl.GetScreenHeight()),
	)
}

func (a *App) Draw(prims []geom.Primitive) {
	rl.BeginDrawing()
	rl.ClearBackground(a.Background)

	rl.BeginMode3D(a.Camera)
	rl.SetMatrixProjection(a.Projection)
	for _, p := range prims {
		drawPrimitive(p)
	}
	rl.EndMode3D()

	if a.Config.Overlay {
		rl.DrawFPS(overlayMargin, overlayMargin)
	}
	rl.EndDrawing()
}
