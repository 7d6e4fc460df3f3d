package widget

import (
	"fmt"
	"image/color"

	"fieldcam/gfx"

	"tinygo.org/x/tinyfont"
)

// recorder is a gfx.Surface that logs every call as a string.
type recorder struct {
	ops  []string
	font tinyfont.Fonter
}

var _ gfx.Surface = (*recorder)(nil)

func colorName(c color.RGBA) string {
	switch c {
	case gfx.Black:
		return "black"
	case gfx.White:
		return "white"
	case gfx.Red:
		return "red"
	case gfx.Green:
		return "green"
	case gfx.Yellow:
		return "yellow"
	case gfx.Blue:
		return "blue"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (r *recorder) add(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) FillRect(x, y, w, h int, c color.RGBA) {
	r.add("fillRect %d %d %d %d %s", x, y, w, h, colorName(c))
}

func (r *recorder) DrawRect(x, y, w, h int, c color.RGBA) {
	r.add("drawRect %d %d %d %d %s", x, y, w, h, colorName(c))
}

func (r *recorder) DrawCircle(x, y, rad int, c color.RGBA) {
	r.add("drawCircle %d %d %d %s", x, y, rad, colorName(c))
}

func (r *recorder) FillCircle(x, y, rad int, c color.RGBA) {
	r.add("fillCircle %d %d %d %s", x, y, rad, colorName(c))
}

func (r *recorder) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	r.add("drawLine %d %d %d %d %s", x0, y0, x1, y1, colorName(c))
}

func (r *recorder) SetTextDatum(d gfx.Datum) {
	r.add("datum %d", d)
}

func (r *recorder) SetTextColor(c color.RGBA) {
	r.add("textColor %s", colorName(c))
}

func (r *recorder) SetTextFont(f tinyfont.Fonter) {
	r.font = f
	r.add("font")
}

func (r *recorder) DrawString(s string, x, y int) {
	r.add("drawString %q %d %d", s, x, y)
}

func (r *recorder) reset() { r.ops = nil }

// fakeClock is a manually advanced millisecond clock.
type fakeClock struct {
	ms uint64
}

func (c *fakeClock) Millis() uint64 { return c.ms }

func (c *fakeClock) advance(ms uint64) { c.ms += ms }
