package hal

import "tinygo.org/x/drivers/touch"

// TouchCalibration maps raw controller readings to screen pixels.
//
// A raw range with Max < Min inverts the axis. SwapXY is applied before
// scaling, for panels mounted in landscape over a portrait controller.
type TouchCalibration struct {
	RawMinX, RawMaxX int
	RawMinY, RawMaxY int
	Width, Height    int
	SwapXY           bool

	// MinPressure is the Z reading a point must exceed to count as pressed.
	MinPressure int
}

// IdentityCalibration passes screen coordinates through unchanged.
func IdentityCalibration(width, height int) TouchCalibration {
	return TouchCalibration{
		RawMinX: 0, RawMaxX: width - 1,
		RawMinY: 0, RawMaxY: height - 1,
		Width: width, Height: height,
	}
}

// Map converts p to screen coordinates. ok is false when the point is not
// pressed or the calibration is degenerate.
func (c TouchCalibration) Map(p touch.Point) (x, y int, ok bool) {
	if p.Z <= c.MinPressure {
		return 0, 0, false
	}
	rx, ry := p.X, p.Y
	if c.SwapXY {
		rx, ry = ry, rx
	}
	x, okX := scaleAxis(rx, c.RawMinX, c.RawMaxX, c.Width)
	y, okY := scaleAxis(ry, c.RawMinY, c.RawMaxY, c.Height)
	if !okX || !okY {
		return 0, 0, false
	}
	return x, y, true
}

func scaleAxis(v, lo, hi, size int) (int, bool) {
	if size <= 0 || hi == lo {
		return 0, false
	}
	out := (v - lo) * (size - 1) / (hi - lo)
	return clampInt(out, 0, size-1), true
}

type touchScreen struct {
	p   touch.Pointer
	cal TouchCalibration
}

// NewTouchScreen combines a touch controller with its calibration.
func NewTouchScreen(p touch.Pointer, cal TouchCalibration) Touch {
	return &touchScreen{p: p, cal: cal}
}

func (t *touchScreen) Read() (x, y int, pressed bool) {
	if t.p == nil {
		return 0, 0, false
	}
	return t.cal.Map(t.p.ReadTouchPoint())
}
