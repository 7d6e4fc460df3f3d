package widget

import (
	"image/color"

	"fieldcam/gfx"
)

// arrowUnit is the arrow template in a 100-unit space pointing along +x:
// shaft, then the two head strokes.
var arrowUnit = [3][4]int{
	{0, 0, 100, 0},
	{100, 0, 85, 10},
	{100, 0, 85, -10},
}

// DrawZArrow draws the out-of-plane component z at (x, y): a circle with a dot
// for a vector towards the viewer (z > 0), a circle with a cross otherwise.
func DrawZArrow(s gfx.Surface, x, y, z int, c color.RGBA) {
	mag := z
	if mag < 0 {
		mag = -mag
	}
	s.DrawCircle(x, y, mag/2, c)
	if z > 0 {
		s.FillCircle(x, y, mag/10, c)
		return
	}
	// round(mag * 0.71 / 2): the cross is inscribed at 45 degrees.
	d := (mag*71 + 100) / 200
	s.DrawLine(x+d, y+d, x-d, y-d, c)
	s.DrawLine(x+d, y-d, x-d, y+d, c)
}

// DrawArrow draws an arrow from (x, y) along (dx, dy). Its length follows the
// vector magnitude; a 100-unit vector gives the unscaled template.
func DrawArrow(s gfx.Surface, x, y, dx, dy int, c color.RGBA) {
	for _, seg := range arrowUnit {
		x0, y0 := arrowPoint(x, y, dx, dy, seg[0], seg[1])
		x1, y1 := arrowPoint(x, y, dx, dy, seg[2], seg[3])
		s.DrawLine(x0, y0, x1, y1, c)
	}
}

func arrowPoint(x, y, dx, dy, ux, uy int) (int, int) {
	return x + (ux*dx-uy*dy)/100, y + (ux*dy+uy*dx)/100
}
