package gfx

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// DefaultFont is the font a new Canvas starts with.
var DefaultFont tinyfont.Fonter = &proggy.TinySZ8pt7b

type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Canvas rasterises Surface primitives onto a Displayer.
//
// Everything is clipped to the displayer's Size. Canvas itself implements
// drivers.Displayer so tinyfont can render through the same clip.
// Not safe for concurrent use.
type Canvas struct {
	d      drivers.Displayer
	filler rectFiller

	datum     Datum
	textColor color.RGBA
	font      tinyfont.Fonter
}

func NewCanvas(d drivers.Displayer) *Canvas {
	c := &Canvas{d: d, textColor: White, font: DefaultFont}
	if f, ok := d.(rectFiller); ok {
		c.filler = f
	}
	return c
}

func (c *Canvas) Size() (x, y int16) {
	if c.d == nil {
		return 0, 0
	}
	return c.d.Size()
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if c.d == nil {
		return
	}
	w, h := c.d.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.d.SetPixel(x, y, col)
}

// Display flushes the underlying displayer.
func (c *Canvas) Display() error {
	if c.d == nil {
		return nil
	}
	return c.d.Display()
}

func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
		return
	}
	c.SetPixel(int16(x), int16(y), col)
}

// Clear fills the whole surface.
func (c *Canvas) Clear(col color.RGBA) {
	w, h := c.Size()
	c.FillRect(0, 0, int(w), int(h), col)
}

func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	if c.d == nil || w <= 0 || h <= 0 {
		return
	}
	sw, sh := c.d.Size()
	x0 := clampInt(x, 0, int(sw))
	y0 := clampInt(y, 0, int(sh))
	x1 := clampInt(x+w, 0, int(sw))
	y1 := clampInt(y+h, 0, int(sh))
	if x0 >= x1 || y0 >= y1 {
		return
	}
	if c.filler != nil {
		if err := c.filler.FillRectangle(int16(x0), int16(y0), int16(x1-x0), int16(y1-y0), col); err == nil {
			return
		}
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.d.SetPixel(int16(px), int16(py), col)
		}
	}
}

func (c *Canvas) DrawRect(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	c.FillRect(x, y, w, 1, col)
	c.FillRect(x, y+h-1, w, 1, col)
	c.FillRect(x, y, 1, h, col)
	c.FillRect(x+w-1, y, 1, h, col)
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.RGBA) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) DrawCircle(cx, cy, r int, col color.RGBA) {
	if r < 0 {
		return
	}
	x := r
	y := 0
	err := 0
	for x >= y {
		c.setPixel(cx+x, cy+y, col)
		c.setPixel(cx+y, cy+x, col)
		c.setPixel(cx-x, cy+y, col)
		c.setPixel(cx-y, cy+x, col)
		c.setPixel(cx-x, cy-y, col)
		c.setPixel(cx-y, cy-x, col)
		c.setPixel(cx+x, cy-y, col)
		c.setPixel(cx+y, cy-x, col)
		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

func (c *Canvas) FillCircle(cx, cy, r int, col color.RGBA) {
	if r < 0 {
		return
	}
	for y := -r; y <= r; y++ {
		dx := int(math.Sqrt(float64(r*r - y*y)))
		c.FillRect(cx-dx, cy+y, dx*2+1, 1, col)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
