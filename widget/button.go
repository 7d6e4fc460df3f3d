// Package widget holds the on-screen controls and field indicators of the
// calibration display.
package widget

import (
	"image"
	"image/color"

	"fieldcam/gfx"

	"tinygo.org/x/tinyfont"
)

// DebounceMillis is the minimum gap between two accepted touches of a button.
const DebounceMillis = 200

// Clock is a monotonic millisecond counter.
type Clock interface {
	Millis() uint64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() uint64

func (f ClockFunc) Millis() uint64 { return f() }

// Button is a rectangular labelled touch control.
//
// Selected and Text may be changed at any time; the next Draw picks them up.
// The surface and clock are borrowed and must outlive the button.
type Button struct {
	Selected bool
	Text     string

	s     gfx.Surface
	clock Clock
	font  tinyfont.Fonter

	x, y, w, h int
	bg, fg     color.RGBA

	lastTouch uint64
}

// ButtonOption customises NewButton.
type ButtonOption func(*Button)

func WithSize(w, h int) ButtonOption {
	return func(b *Button) { b.w, b.h = w, h }
}

func WithColors(bg, fg color.RGBA) ButtonOption {
	return func(b *Button) { b.bg, b.fg = bg, fg }
}

func WithSelected(selected bool) ButtonOption {
	return func(b *Button) { b.Selected = selected }
}

func WithFont(f tinyfont.Fonter) ButtonOption {
	return func(b *Button) { b.font = f }
}

// NewButton creates a 20x20 selected button, white on black, at (x, y).
// The debounce window starts at construction.
func NewButton(s gfx.Surface, clock Clock, text string, x, y int, opts ...ButtonOption) *Button {
	b := &Button{
		Selected: true,
		Text:     text,
		s:        s,
		clock:    clock,
		font:     gfx.DefaultFont,
		x:        x,
		y:        y,
		w:        20,
		h:        20,
		bg:       gfx.Black,
		fg:       gfx.White,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.lastTouch = b.now()
	return b
}

func (b *Button) now() uint64 {
	if b.clock == nil {
		return 0
	}
	return b.clock.Millis()
}

// Bounds returns the button rectangle.
func (b *Button) Bounds() image.Rectangle {
	return image.Rect(b.x, b.y, b.x+b.w, b.y+b.h)
}

// Colors returns the fill and the outline/text colour for the current state.
// A selected button swaps background and foreground.
func (b *Button) Colors() (fill, ink color.RGBA) {
	if b.Selected {
		return b.fg, b.bg
	}
	return b.bg, b.fg
}

// Draw renders the button: filled box, outline, centred label.
func (b *Button) Draw() {
	if b.s == nil {
		return
	}
	fill, ink := b.Colors()
	b.s.FillRect(b.x, b.y, b.w, b.h, fill)
	b.s.DrawRect(b.x, b.y, b.w, b.h, ink)
	b.s.SetTextDatum(gfx.MiddleCenter)
	b.s.SetTextColor(ink)
	b.s.SetTextFont(b.font)
	b.s.DrawString(b.Text, b.x+b.w/2, b.y+b.h/2)
}

// Contains reports whether (tx, ty) lies inside the button.
func (b *Button) Contains(tx, ty int) bool {
	return tx >= b.x && tx < b.x+b.w && ty >= b.y && ty < b.y+b.h
}

// Touched reports whether a touch at (tx, ty) activates the button. A touch
// is accepted when it is inside the button and at least DebounceMillis have
// passed since the previous accepted touch; only then is the debounce window
// restarted. A held finger therefore fires at most once per window.
func (b *Button) Touched(tx, ty int) bool {
	if !b.Contains(tx, ty) {
		return false
	}
	now := b.now()
	if now < b.lastTouch || now-b.lastTouch < DebounceMillis {
		return false
	}
	b.lastTouch = now
	return true
}
