package theme

import (
	"fmt"
	"image/color"
)

// Variant is one of the two fixed color presets.
type Variant int

const (
	Light Variant = iota
	Dark
)

func (v Variant) String() string {
	if v == Dark {
		return "dark"
	}
	return "light"
}

// Theme maps every named surface of the clock to a color. Instances are
// immutable presets; use Variant.Colors to get one.
type Theme struct {
	Background color.RGBA
	FaceOuter  color.RGBA
	FaceMiddle color.RGBA
	FaceInner  color.RGBA
	HandHour   color.RGBA
	HandMinute color.RGBA
	HandSecond color.RGBA
	Mark       color.RGBA
	Shadow     color.RGBA
	Text       color.RGBA
}

var light = Theme{
	Background: color.RGBA{225, 239, 240, 255},
	FaceOuter:  color.RGBA{45, 45, 45, 255},
	FaceMiddle: color.RGBA{229, 229, 229, 255},
	FaceInner:  color.RGBA{255, 255, 255, 255},
	HandHour:   color.RGBA{45, 45, 45, 255},
	HandMinute: color.RGBA{45, 45, 45, 255},
	HandSecond: color.RGBA{255, 0, 0, 255},
	Mark:       color.RGBA{45, 45, 45, 255},
	Shadow:     color.RGBA{0, 0, 0, 50},
	Text:       color.RGBA{0, 0, 0, 255},
}

var dark = Theme{
	Background: color.RGBA{30, 30, 30, 255},
	FaceOuter:  color.RGBA{100, 100, 100, 255},
	FaceMiddle: color.RGBA{70, 70, 70, 255},
	FaceInner:  color.RGBA{50, 50, 50, 255},
	HandHour:   color.RGBA{255, 255, 255, 255},
	HandMinute: color.RGBA{200, 200, 200, 255},
	HandSecond: color.RGBA{255, 69, 0, 255},
	Mark:       color.RGBA{255, 255, 255, 255},
	Shadow:     color.RGBA{0, 0, 0, 80},
	Text:       color.RGBA{255, 255, 255, 255},
}

// Colors returns the preset for the variant.
func (v Variant) Colors() Theme {
	if v == Dark {
		return dark
	}
	return light
}

// Select picks the variant for an hour of day: dark from 18:00 up to
// (but not including) 06:00, light otherwise. No hysteresis; the result
// can flip at the boundary between two frames.
func Select(hour int) Variant {
	if hour >= 18 || hour < 6 {
		return Dark
	}
	return Light
}

// Mode controls how the active variant is chosen.
type Mode int

const (
	// ModeAuto follows Select on the current hour.
	ModeAuto Mode = iota
	ModeLight
	ModeDark
)

func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	}
	return "auto"
}

// ParseMode reads a theme mode from its config representation.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto", "":
		return ModeAuto, nil
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	}
	return ModeAuto, fmt.Errorf("unknown theme mode %q (want auto, light or dark)", s)
}

// Variant resolves the mode against an hour of day.
func (m Mode) Variant(hour int) Variant {
	switch m {
	case ModeLight:
		return Light
	case ModeDark:
		return Dark
	}
	return Select(hour)
}
