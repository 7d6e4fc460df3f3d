package app

import (
	"math"

	"fieldcam/widget"
)

// FieldSource yields the field at a screen position at a given time.
type FieldSource interface {
	Sample(x, y int, ms uint64) widget.Field
}

// simField is a stand-in for the sensor: a uniform in-plane field rotating
// with the given period, plus a normal component whose phase lags with
// distance from the centre so the dots and crosses sweep outwards.
type simField struct {
	cx, cy    int
	amplitude float64
	period    float64
}

func newSimField(cx, cy, amplitude int, periodMillis uint64) *simField {
	if periodMillis == 0 {
		periodMillis = 4000
	}
	return &simField{
		cx:        cx,
		cy:        cy,
		amplitude: float64(amplitude),
		period:    float64(periodMillis),
	}
}

func (f *simField) Sample(x, y int, ms uint64) widget.Field {
	theta := 2 * math.Pi * float64(ms%uint64(f.period)) / f.period
	d := math.Hypot(float64(x-f.cx), float64(y-f.cy))
	return widget.Field{
		X: int(math.Round(f.amplitude * math.Cos(theta))),
		Y: int(math.Round(f.amplitude * math.Sin(theta))),
		Z: int(math.Round(f.amplitude * math.Cos(theta-d/40))),
	}
}
