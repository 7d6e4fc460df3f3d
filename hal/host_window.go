//go:build !tinygo && cgo

package hal

import (
	"image"

	"fieldcam/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards
// the left mouse button as touch input. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, scale int) error {
	if scale <= 0 {
		scale = 2
	}
	h := newHostHAL()
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("fieldcam (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*scale, h.fb.height*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.pollMouse()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) pollMouse() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.h.pointer.set(0, 0, false)
		return
	}
	// Layout maps the window to framebuffer pixels, so the cursor is already
	// in screen space.
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= g.h.fb.width || y >= g.h.fb.height {
		g.h.pointer.set(0, 0, false)
		return
	}
	g.h.pointer.set(x, y, true)
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)
	decodeRGB565(g.img.Pix, g.scratch)

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
