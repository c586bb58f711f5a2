// Package debug draws an in-window runtime overlay, toggled with F8.
package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"analog-clock/internal/face"
)

const (
	panelX     = 10
	panelY     = 10
	panelWidth = 260
	lineHeight = 18
	textSize   = 16
	padding    = 8
)

// Overlay renders frame timing and clock state on top of the scene.
type Overlay struct {
	lines []string
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

func (o *Overlay) Draw(clock *face.Clock) {
	hour, minute, second := clock.Angles()

	o.lines = o.lines[:0]
	o.lines = append(o.lines,
		fmt.Sprintf("FPS: %d", rl.GetFPS()),
		fmt.Sprintf("Frame Time: %.2f ms", rl.GetFrameTime()*1000),
		fmt.Sprintf("Window: %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight()),
		fmt.Sprintf("Theme: %s", clock.Variant()),
		fmt.Sprintf("Hour Angle: %.1f", hour),
		fmt.Sprintf("Minute Angle: %.1f", minute),
		fmt.Sprintf("Second Angle: %.2f", second),
		fmt.Sprintf("Weather: %s", clock.Weather()),
	)

	height := int32(len(o.lines)*lineHeight + 2*padding)
	rl.DrawRectangle(panelX, panelY, panelWidth, height, rl.NewColor(0, 0, 0, 180))

	y := int32(panelY + padding)
	for _, line := range o.lines {
		rl.DrawText(line, panelX+padding, y, textSize, rl.RayWhite)
		y += lineHeight
	}
}
