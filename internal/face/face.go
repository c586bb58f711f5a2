package face

import (
	"image/color"
	"math"

	"github.com/jonboulle/clockwork"

	"analog-clock/internal/theme"
)

const (
	hourHandRatio   = 0.5
	minuteHandRatio = 0.7
	secondHandRatio = 0.9

	hourHandWidth   = 8
	minuteHandWidth = 6
	secondHandWidth = 3
	markWidth       = 5

	shadowOffset = 5
	capRadius    = 10
	infoPanelY   = 50

	dateLayout = "Monday, January 02, 2006"
)

// Point is a position in window coordinates.
type Point struct {
	X, Y float64
}

// Surface receives the draw calls for one frame. The render package
// implements it on raylib; tests implement it with a recorder.
type Surface interface {
	FillBackground(c color.RGBA)
	FillCircle(center Point, radius float64, c color.RGBA)
	Line(from, to Point, width float64, c color.RGBA)
	CenteredText(text string, center Point, c color.RGBA)
}

// Clock holds all per-frame state of the analog clock: the three hand
// angles, the formatted date, the weather line and the theme mode. It is
// the single mutable object of the program; Update recomputes it from the
// injected time source once per frame.
type Clock struct {
	timeSource clockwork.Clock
	mode       theme.Mode
	center     Point
	radius     float64

	hourAngle   float64
	minuteAngle float64
	secondAngle float64
	dateText    string
	weatherText string
}

// New builds a clock of the given radius centered at center. The time
// source is injected so tests can freeze it.
func New(center Point, radius float64, mode theme.Mode, timeSource clockwork.Clock) *Clock {
	return &Clock{
		timeSource: timeSource,
		mode:       mode,
		center:     center,
		radius:     radius,
	}
}

// SetWeather stores the info panel weather line. It is set once after the
// startup fetch and never changes afterwards.
func (c *Clock) SetWeather(text string) {
	c.weatherText = text
}

// Update recomputes the hand angles and date text from the current time.
// The second hand angle includes the sub-second fraction so the hand
// sweeps instead of stepping.
func (c *Clock) Update() {
	now := c.timeSource.Now()
	hour, minute, second := now.Clock()

	c.hourAngle = float64(hour%12)*30 + float64(minute)*0.5
	c.minuteAngle = float64(minute) * 6
	c.secondAngle = (float64(second) + float64(now.Nanosecond())/1e9) * 6
	c.dateText = now.Format(dateLayout)
}

// Angles returns the current hour, minute and second hand angles in
// degrees, measured clockwise from 12 o'clock.
func (c *Clock) Angles() (hour, minute, second float64) {
	return c.hourAngle, c.minuteAngle, c.secondAngle
}

// Weather returns the info panel weather line.
func (c *Clock) Weather() string {
	return c.weatherText
}

// Variant resolves the active theme variant for the current hour.
func (c *Clock) Variant() theme.Variant {
	return c.mode.Variant(c.timeSource.Now().Hour())
}

// Draw issues the frame's draw calls in a fixed order: background, info
// panel, the three face circles, twelve hour marks, the three hands (each
// with a shadow underneath) and the center cap.
func (c *Clock) Draw(s Surface) {
	t := c.Variant().Colors()

	s.FillBackground(t.Background)
	s.CenteredText(c.dateText+" | "+c.weatherText, Point{X: c.center.X, Y: infoPanelY}, t.Text)

	s.FillCircle(c.center, c.radius, t.FaceOuter)
	s.FillCircle(c.center, c.radius-30, t.FaceMiddle)
	s.FillCircle(c.center, c.radius-40, t.FaceInner)

	c.drawHourMarks(s, t)

	c.drawHand(s, c.hourAngle, c.radius*hourHandRatio, hourHandWidth, t.HandHour, t.Shadow)
	c.drawHand(s, c.minuteAngle, c.radius*minuteHandRatio, minuteHandWidth, t.HandMinute, t.Shadow)
	c.drawHand(s, c.secondAngle, c.radius*secondHandRatio, secondHandWidth, t.HandSecond, t.Shadow)

	s.FillCircle(c.center, capRadius, t.FaceOuter)
}

// drawHourMarks draws a radial segment every 30 degrees between the
// R-20 and R-40 radii.
func (c *Clock) drawHourMarks(s Surface, t theme.Theme) {
	for i := 0; i < 12; i++ {
		angle := float64(i) * 30 * math.Pi / 180
		from := Point{
			X: c.center.X + (c.radius-20)*math.Cos(angle),
			Y: c.center.Y - (c.radius-20)*math.Sin(angle),
		}
		to := Point{
			X: c.center.X + (c.radius-40)*math.Cos(angle),
			Y: c.center.Y - (c.radius-40)*math.Sin(angle),
		}
		s.Line(from, to, markWidth, t.Mark)
	}
}

// drawHand draws one hand from the center outward. Hand angles are
// clock-style (0 at 12 o'clock, growing clockwise), so the bearing is
// rotated by -90 degrees before the trig; y grows downward on screen,
// which makes the rotation come out clockwise. The shadow copy is drawn
// first, offset down-right.
func (c *Clock) drawHand(s Surface, angleDeg, length, width float64, col, shadow color.RGBA) {
	angle := (angleDeg - 90) * math.Pi / 180
	tip := Point{
		X: c.center.X + length*math.Cos(angle),
		Y: c.center.Y + length*math.Sin(angle),
	}

	shadowFrom := Point{X: c.center.X + shadowOffset, Y: c.center.Y + shadowOffset}
	shadowTo := Point{X: tip.X + shadowOffset, Y: tip.Y + shadowOffset}
	s.Line(shadowFrom, shadowTo, width, shadow)

	s.Line(c.center, tip, width, col)
}
