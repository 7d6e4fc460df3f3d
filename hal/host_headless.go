//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled    bool
	Hz         int
	Ticks      uint64
	StepBudget int

	// Taps are scripted touches replayed against the tick counter.
	Taps []Tap

	// Screenshot, when set, receives a PNG of the last frame.
	Screenshot      string
	ScreenshotScale int
}

// Tap presses the screen at (X, Y) from tick At for Hold ticks.
type Tap struct {
	At   uint64
	Hold uint64
	X, Y int
}

func (t Tap) activeAt(tick uint64) bool {
	hold := t.Hold
	if hold == 0 {
		hold = 1
	}
	return tick >= t.At && tick < t.At+hold
}

// ParseTaps parses a semicolon-separated list of "x,y@tick[+hold]" entries.
func ParseTaps(s string) ([]Tap, error) {
	var taps []Tap
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pos, when, ok := strings.Cut(part, "@")
		if !ok {
			return nil, fmt.Errorf("tap %q: missing @tick", part)
		}
		xs, ys, ok := strings.Cut(pos, ",")
		if !ok {
			return nil, fmt.Errorf("tap %q: want x,y", part)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("tap %q: x: %w", part, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("tap %q: y: %w", part, err)
		}
		at, holdStr, hasHold := strings.Cut(when, "+")
		tick, err := strconv.ParseUint(strings.TrimSpace(at), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("tap %q: tick: %w", part, err)
		}
		tap := Tap{At: tick, Hold: 1, X: x, Y: y}
		if hasHold {
			hold, err := strconv.ParseUint(strings.TrimSpace(holdStr), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("tap %q: hold: %w", part, err)
			}
			tap.Hold = hold
		}
		taps = append(taps, tap)
	}
	return taps, nil
}

// RunHeadless runs the application without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = 1
	}

	h := newHostHAL()
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.replayTaps(cfg.Taps, tick)
			for i := 0; i < cfg.StepBudget && step != nil; i++ {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				if cfg.Screenshot == "" {
					return nil
				}
				return WritePNG(h.fb, cfg.Screenshot, cfg.ScreenshotScale)
			}
		}
	}
}

func (h *hostHAL) replayTaps(taps []Tap, tick uint64) {
	for _, tap := range taps {
		if tap.activeAt(tick) {
			h.pointer.set(tap.X, tap.Y, true)
			return
		}
	}
	h.pointer.set(0, 0, false)
}
