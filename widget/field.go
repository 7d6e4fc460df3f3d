package widget

import (
	"image/color"

	"fieldcam/gfx"
)

// Field is one three-axis field sample in screen units: X right, Y down, Z out
// of the screen towards the viewer.
type Field struct {
	X, Y, Z int
}

// Sub returns f - o.
func (f Field) Sub(o Field) Field {
	return Field{X: f.X - o.X, Y: f.Y - o.Y, Z: f.Z - o.Z}
}

// FieldColors picks the colours of the two indicator glyphs.
type FieldColors struct {
	InPlane color.RGBA
	Normal  color.RGBA
}

// DefaultFieldColors draws the arrow in green and the dot/cross in yellow.
var DefaultFieldColors = FieldColors{InPlane: gfx.Green, Normal: gfx.Yellow}

// DrawField draws both components of v at (x, y), scaled by scale percent.
func DrawField(s gfx.Surface, x, y int, v Field, scale int, c FieldColors) {
	DrawZArrow(s, x, y, v.Z*scale/100, c.Normal)
	DrawArrow(s, x, y, v.X*scale/100, v.Y*scale/100, c.InPlane)
}
