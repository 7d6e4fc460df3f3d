//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/drivers/xpt2046"
)

// BoardCalibration is the XPT2046 raw range measured on the reference unit
// (ILI9341 2.8" module, landscape).
var BoardCalibration = TouchCalibration{
	RawMinX: 0xF000, RawMaxX: 0x0C00,
	RawMinY: 0x1000, RawMaxY: 0xF000,
	Width: 320, Height: 240,
	SwapXY: true,
}

type tinyGoHAL struct {
	logger *uartLogger
	disp   *ili9341.Device
	touch  Touch
	clock  Clock
}

// New returns a Raspberry Pi Pico HAL with an ILI9341 panel on SPI0 and an
// XPT2046 touch controller on its own pins.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	machine.SPI0.Configure(machine.SPIConfig{
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		SDI:       machine.GP16,
		Frequency: 40_000_000,
	})
	disp := ili9341.NewSPI(machine.SPI0, machine.GP20, machine.GP17, machine.GP21)
	disp.Configure(ili9341.Config{Rotation: drivers.Rotation90})

	tp := xpt2046.New(machine.GP10, machine.GP13, machine.GP11, machine.GP12, machine.GP14)
	if err := tp.Configure(&xpt2046.Config{Precision: 10}); err != nil {
		logger.WriteLineString("touch: configure: " + err.Error())
	}

	return &tinyGoHAL{
		logger: logger,
		disp:   disp,
		touch:  NewTouchScreen(&tp, BoardCalibration),
		clock:  NewClock(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return h.disp }
func (h *tinyGoHAL) Touch() Touch     { return h.touch }
func (h *tinyGoHAL) Clock() Clock     { return h.clock }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
