package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"

	"analog-clock/internal/config"
	"analog-clock/internal/debug"
	"analog-clock/internal/face"
)

// Window owns the raylib window and drives the frame loop:
// poll input, update state, draw, present, sleep to the target FPS.
type Window struct {
	cfg     *config.Values
	clock   *face.Clock
	surface Surface
	overlay *debug.Overlay

	showOverlay bool
}

func NewWindow(cfg *config.Values, clock *face.Clock) *Window {
	return &Window{
		cfg:     cfg,
		clock:   clock,
		overlay: debug.NewOverlay(),
	}
}

// Run opens the window and loops until it reports a close request, then
// releases the window. Blocks the calling goroutine; raylib requires the
// main thread.
func (w *Window) Run() {
	rl.InitWindow(w.cfg.Window.Width, w.cfg.Window.Height, w.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.cfg.Window.TargetFPS)
	log.Info().
		Int32("width", w.cfg.Window.Width).
		Int32("height", w.cfg.Window.Height).
		Int32("fps", w.cfg.Window.TargetFPS).
		Msg("window opened")

	for !rl.WindowShouldClose() {
		w.update()

		rl.BeginDrawing()
		w.draw()
		rl.EndDrawing()
	}

	log.Info().Msg("quit signal received, shutting down")
}

func (w *Window) update() {
	w.clock.Update()

	if rl.IsKeyPressed(rl.KeyF8) {
		w.showOverlay = !w.showOverlay
	}
}

func (w *Window) draw() {
	w.clock.Draw(w.surface)

	if w.showOverlay {
		w.overlay.Draw(w.clock)
	}
}
