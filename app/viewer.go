package app

import (
	"fmt"
	"image"

	"fieldcam/gfx"
	"fieldcam/hal"
	"fieldcam/widget"
)

const toolbarHeight = 32

var scaleSteps = []int{1, 2, 4}

var (
	toolbarColor = gfx.Navy
	fieldBg      = gfx.Black
	gridColor    = gfx.DarkGrey
	statusColor  = gfx.LightGrey
)

type viewer struct {
	log    hal.Logger
	touch  hal.Touch
	clock  hal.Clock
	canvas *gfx.Canvas
	src    FieldSource
	cfg    Config

	hold, zero, grid, scale *widget.Button
	buttons                 []*widget.Button

	area  image.Rectangle
	cells []image.Point

	held     bool
	heldAt   uint64
	zeroed   bool
	offsets  []widget.Field
	showGrid bool
	scaleIdx int

	dirty bool
}

func newViewer(h hal.HAL, cfg Config) *viewer {
	v := &viewer{
		log:    h.Logger(),
		touch:  h.Touch(),
		clock:  h.Clock(),
		canvas: gfx.NewCanvas(h.Display()),
		cfg:    cfg,
		dirty:  true,
	}

	w, ht := v.canvas.Size()
	v.area = image.Rect(0, toolbarHeight, int(w), int(ht))
	v.cells = gridCenters(v.area, cfg.Cols, cfg.Rows)

	v.src = cfg.Source
	if v.src == nil {
		c := v.area.Min.Add(v.area.Size().Div(2))
		v.src = newSimField(c.X, c.Y, cfg.Amplitude, cfg.PeriodMillis)
	}

	opts := func(width int) []widget.ButtonOption {
		return []widget.ButtonOption{
			widget.WithSize(width, 24),
			widget.WithColors(gfx.Navy, gfx.White),
			widget.WithSelected(false),
		}
	}
	v.hold = widget.NewButton(v.canvas, v.clock, "HOLD", 4, 4, opts(56)...)
	v.zero = widget.NewButton(v.canvas, v.clock, "ZERO", 64, 4, opts(56)...)
	v.grid = widget.NewButton(v.canvas, v.clock, "GRID", 124, 4, opts(56)...)
	v.scale = widget.NewButton(v.canvas, v.clock, scaleLabel(0), 184, 4, opts(44)...)
	v.buttons = []*widget.Button{v.hold, v.zero, v.grid, v.scale}
	return v
}

func gridCenters(area image.Rectangle, cols, rows int) []image.Point {
	if cols <= 0 || rows <= 0 || area.Empty() {
		return nil
	}
	cw := area.Dx() / cols
	ch := area.Dy() / rows
	pts := make([]image.Point, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pts = append(pts, image.Pt(area.Min.X+c*cw+cw/2, area.Min.Y+r*ch+ch/2))
		}
	}
	return pts
}

func scaleLabel(idx int) string {
	return fmt.Sprintf("x%d", scaleSteps[idx])
}

func (v *viewer) logf(format string, args ...any) {
	if v.log == nil {
		return
	}
	v.log.WriteLineString(fmt.Sprintf(format, args...))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (v *viewer) step() error {
	now := v.clock.Millis()
	if v.touch != nil {
		if x, y, pressed := v.touch.Read(); pressed {
			v.dispatch(x, y, now)
		}
	}
	// A held frame only changes when a button does.
	if v.held && !v.dirty {
		return nil
	}
	v.render(now)
	v.dirty = false
	return v.canvas.Display()
}

func (v *viewer) dispatch(x, y int, now uint64) {
	switch {
	case v.hold.Touched(x, y):
		v.held = !v.held
		v.heldAt = now
		v.hold.Selected = v.held
		v.logf("app: hold %s", onOff(v.held))

	case v.zero.Touched(x, y):
		v.zeroed = !v.zeroed
		v.offsets = v.offsets[:0]
		if v.zeroed {
			t := v.sampleTime(now)
			for _, p := range v.cells {
				v.offsets = append(v.offsets, v.src.Sample(p.X, p.Y, t))
			}
		}
		v.zero.Selected = v.zeroed
		v.logf("app: zero %s", onOff(v.zeroed))

	case v.grid.Touched(x, y):
		v.showGrid = !v.showGrid
		v.grid.Selected = v.showGrid
		v.logf("app: grid %s", onOff(v.showGrid))

	case v.scale.Touched(x, y):
		v.scaleIdx = (v.scaleIdx + 1) % len(scaleSteps)
		v.scale.Text = scaleLabel(v.scaleIdx)
		v.logf("app: scale %s", v.scale.Text)

	default:
		return
	}
	v.dirty = true
}

func (v *viewer) sampleTime(now uint64) uint64 {
	if v.held {
		return v.heldAt
	}
	return now
}

// fieldAt returns the displayed field of cell i at time t.
func (v *viewer) fieldAt(i int, t uint64) widget.Field {
	p := v.cells[i]
	f := v.src.Sample(p.X, p.Y, t)
	if v.zeroed && i < len(v.offsets) {
		f = f.Sub(v.offsets[i])
	}
	return f
}

func (v *viewer) indicatorScale() int {
	return v.cfg.Scale * scaleSteps[v.scaleIdx]
}

func (v *viewer) render(now uint64) {
	c := v.canvas
	t := v.sampleTime(now)

	c.FillRect(v.area.Min.X, v.area.Min.Y, v.area.Dx(), v.area.Dy(), fieldBg)
	if v.showGrid {
		v.drawGrid()
	}
	scale := v.indicatorScale()
	for i, p := range v.cells {
		widget.DrawField(c, p.X, p.Y, v.fieldAt(i, t), scale, widget.DefaultFieldColors)
	}

	w, _ := c.Size()
	c.FillRect(0, 0, int(w), toolbarHeight, toolbarColor)
	for _, b := range v.buttons {
		b.Draw()
	}

	status := fmt.Sprintf("%d.%ds", t/1000, (t/100)%10)
	if v.held {
		status = "HELD " + status
	}
	c.SetTextDatum(gfx.MiddleRight)
	c.SetTextColor(statusColor)
	c.SetTextFont(gfx.DefaultFont)
	c.DrawString(status, int(w)-4, toolbarHeight/2)
}

func (v *viewer) drawGrid() {
	cols, rows := v.cfg.Cols, v.cfg.Rows
	cw := v.area.Dx() / cols
	ch := v.area.Dy() / rows
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v.canvas.DrawRect(v.area.Min.X+c*cw, v.area.Min.Y+r*ch, cw, ch, gridColor)
		}
	}
}
