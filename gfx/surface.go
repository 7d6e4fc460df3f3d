// Package gfx provides the drawing surface used by the on-screen widgets and
// a software implementation of it over any tinygo.org/x/drivers Displayer.
package gfx

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// Datum selects which point of a string's bounding box is placed at the
// coordinates passed to DrawString.
type Datum uint8

const (
	TopLeft Datum = iota
	TopCenter
	TopRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

// Surface is the set of primitives a widget may draw with.
type Surface interface {
	FillRect(x, y, w, h int, c color.RGBA)
	DrawRect(x, y, w, h int, c color.RGBA)
	DrawCircle(x, y, r int, c color.RGBA)
	FillCircle(x, y, r int, c color.RGBA)
	DrawLine(x0, y0, x1, y1 int, c color.RGBA)

	SetTextDatum(d Datum)
	SetTextColor(c color.RGBA)
	SetTextFont(f tinyfont.Fonter)
	DrawString(s string, x, y int)
}
