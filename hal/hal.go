package hal

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display is a pixel sink with a fast rectangle fill.
//
// Panel drivers from tinygo.org/x/drivers satisfy it directly; on the host it
// is backed by a Framebuffer.
type Display interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Touch reports the current touch position in screen coordinates.
type Touch interface {
	Read() (x, y int, pressed bool)
}

// Clock is a monotonic millisecond counter.
type Clock interface {
	Millis() uint64
}

// HAL provides the only contact point between the application and the board.
type HAL interface {
	Logger() Logger
	Display() Display
	Touch() Touch
	Clock() Clock
}
