package gfx

import "image/color"

// Panel palette. Values are the RGB888 expansions of the usual RGB565 names.
var (
	Black       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	Navy        = color.RGBA{R: 0x00, G: 0x00, B: 0x80, A: 0xFF}
	DarkGreen   = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xFF}
	DarkCyan    = color.RGBA{R: 0x00, G: 0x80, B: 0x80, A: 0xFF}
	Maroon      = color.RGBA{R: 0x80, G: 0x00, B: 0x00, A: 0xFF}
	Purple      = color.RGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xFF}
	Olive       = color.RGBA{R: 0x80, G: 0x80, B: 0x00, A: 0xFF}
	LightGrey   = color.RGBA{R: 0xD3, G: 0xD3, B: 0xD3, A: 0xFF}
	DarkGrey    = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	Blue        = color.RGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}
	Green       = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	Cyan        = color.RGBA{R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF}
	Red         = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	Magenta     = color.RGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}
	Yellow      = color.RGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}
	White       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Orange      = color.RGBA{R: 0xFF, G: 0xB4, B: 0x00, A: 0xFF}
	GreenYellow = color.RGBA{R: 0xB4, G: 0xFF, B: 0x00, A: 0xFF}
)
