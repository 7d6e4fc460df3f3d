package gfx

import (
	"image"
	"image/color"

	"tinygo.org/x/tinyfont"
)

func (c *Canvas) SetTextDatum(d Datum) {
	c.datum = d
}

func (c *Canvas) SetTextColor(col color.RGBA) {
	c.textColor = col
}

// SetTextFont selects the font for DrawString. A nil font restores DefaultFont.
func (c *Canvas) SetTextFont(f tinyfont.Fonter) {
	if f == nil {
		f = DefaultFont
	}
	c.font = f
}

// DrawString renders s so that the point of its ink box chosen by the current
// datum lands on (x, y).
func (c *Canvas) DrawString(s string, x, y int) {
	if s == "" || c.font == nil {
		return
	}
	box := TextBounds(c.font, s)
	if box.Empty() {
		return
	}

	var left, baseline int
	switch c.datum {
	case TopLeft, MiddleLeft, BottomLeft:
		left = x
	case TopCenter, MiddleCenter, BottomCenter:
		left = x - box.Dx()/2
	default:
		left = x - box.Dx()
	}
	switch c.datum {
	case TopLeft, TopCenter, TopRight:
		baseline = y - box.Min.Y
	case MiddleLeft, MiddleCenter, MiddleRight:
		baseline = y - (box.Min.Y+box.Max.Y)/2
	default:
		baseline = y - box.Max.Y
	}

	tinyfont.WriteLine(c, c.font, int16(left), int16(baseline), s, c.textColor)
}

// TextBounds returns the extent of s relative to its pen origin: X spans the
// advance width, Y spans from the highest glyph top to the lowest glyph bottom
// (negative is above the baseline).
func TextBounds(f tinyfont.Fonter, s string) image.Rectangle {
	if f == nil || s == "" {
		return image.Rectangle{}
	}
	_, outbox := tinyfont.LineWidth(f, s)

	minY, maxY := 0, 0
	first := true
	for _, r := range s {
		info := f.GetGlyph(r).Info()
		if info.Height == 0 {
			continue
		}
		top := int(info.YOffset)
		bottom := top + int(info.Height)
		if first || top < minY {
			minY = top
		}
		if first || bottom > maxY {
			maxY = bottom
		}
		first = false
	}
	if first {
		// Only blank glyphs: use the line height above the baseline.
		minY = -int(f.GetYAdvance())
	}
	return image.Rect(0, minY, int(outbox), maxY)
}
