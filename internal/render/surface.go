package render

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"analog-clock/internal/face"
)

const (
	fontSize    = 24
	fontSpacing = 2
)

// Surface implements face.Surface on raylib. All calls must happen
// between BeginDrawing and EndDrawing on the main thread.
type Surface struct{}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func vec(p face.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func (Surface) FillBackground(c color.RGBA) {
	rl.ClearBackground(rlColor(c))
}

func (Surface) FillCircle(center face.Point, radius float64, c color.RGBA) {
	rl.DrawCircleV(vec(center), float32(radius), rlColor(c))
}

func (Surface) Line(from, to face.Point, width float64, c color.RGBA) {
	rl.DrawLineEx(vec(from), vec(to), float32(width), rlColor(c))
}

func (Surface) CenteredText(text string, center face.Point, c color.RGBA) {
	font := rl.GetFontDefault()
	size := rl.MeasureTextEx(font, text, fontSize, fontSpacing)
	pos := rl.NewVector2(float32(center.X)-size.X/2, float32(center.Y)-size.Y/2)
	rl.DrawTextEx(font, text, pos, fontSize, fontSpacing, rlColor(c))
}
