package app

import (
	"fieldcam/hal"
	"fieldcam/internal/buildinfo"
)

// Config tunes the field viewer.
type Config struct {
	// Cols and Rows set the indicator grid.
	Cols, Rows int
	// Scale is the base indicator scale in percent.
	Scale int

	// Amplitude and PeriodMillis shape the simulated field.
	Amplitude    int
	PeriodMillis uint64

	// Source replaces the simulated field when set.
	Source FieldSource
}

// DefaultConfig returns the settings used by the entry points.
func DefaultConfig() Config {
	return Config{
		Cols:         6,
		Rows:         4,
		Scale:        100,
		Amplitude:    30,
		PeriodMillis: 4000,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Cols <= 0 {
		c.Cols = d.Cols
	}
	if c.Rows <= 0 {
		c.Rows = d.Rows
	}
	if c.Scale <= 0 {
		c.Scale = d.Scale
	}
	if c.Amplitude <= 0 {
		c.Amplitude = d.Amplitude
	}
	if c.PeriodMillis == 0 {
		c.PeriodMillis = d.PeriodMillis
	}
	return c
}

// New builds the viewer on h and returns its per-tick step function.
func New(h hal.HAL, cfg Config) func() error {
	if l := h.Logger(); l != nil {
		l.WriteLineString("fieldcam " + buildinfo.String())
	}
	v := newViewer(h, cfg.withDefaults())
	return v.safeStep
}
