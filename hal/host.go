//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"

	"tinygo.org/x/drivers/touch"
)

// Host panel geometry, matching an ILI9341 in landscape.
const (
	HostWidth  = 320
	HostHeight = 240
)

type hostHAL struct {
	logger  *hostLogger
	fb      *memFramebuffer
	disp    Display
	pointer *hostPointer
	touch   Touch
	clock   Clock
}

// New returns a host HAL implementation.
func New() HAL {
	return newHostHAL()
}

func newHostHAL() *hostHAL {
	fb := newMemFramebuffer(HostWidth, HostHeight)
	pointer := &hostPointer{}
	return &hostHAL{
		logger:  &hostLogger{w: os.Stdout},
		fb:      fb,
		disp:    NewFramebufferDisplay(fb),
		pointer: pointer,
		touch:   NewTouchScreen(pointer, IdentityCalibration(HostWidth, HostHeight)),
		clock:   NewClock(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Touch() Touch     { return h.touch }
func (h *hostHAL) Clock() Clock     { return h.clock }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostPointer is a touch controller fed by the mouse or a headless script.
// Coordinates are already in screen space.
type hostPointer struct {
	mu sync.Mutex
	pt touch.Point
}

func (p *hostPointer) ReadTouchPoint() touch.Point {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pt
}

func (p *hostPointer) set(x, y int, pressed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !pressed {
		p.pt = touch.Point{}
		return
	}
	p.pt = touch.Point{X: x, Y: y, Z: 1}
}
