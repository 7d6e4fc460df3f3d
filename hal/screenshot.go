//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Image copies the framebuffer into an RGBA image.
func Image(fb Framebuffer) (*image.RGBA, error) {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return nil, fmt.Errorf("snapshot: %w", ErrNotImplemented)
	}
	w, h := fb.Width(), fb.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	src := make([]byte, w*h*2)
	if mem, ok := fb.(*memFramebuffer); ok {
		mem.snapshotRGB565(src)
	} else {
		buf := fb.Buffer()
		stride := fb.StrideBytes()
		for y := 0; y < h; y++ {
			off := y * stride
			if off+w*2 > len(buf) {
				break
			}
			copy(src[y*w*2:(y+1)*w*2], buf[off:off+w*2])
		}
	}
	decodeRGB565(img.Pix, src)
	return img, nil
}

// WritePNG writes the framebuffer to path, upscaled by an integer factor with
// nearest-neighbour sampling so single pixels stay crisp.
func WritePNG(fb Framebuffer, path string, scale int) error {
	img, err := Image(fb)
	if err != nil {
		return err
	}
	if scale < 1 {
		scale = 1
	}

	var out image.Image = img
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		out = dst
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create screenshot %q: %w", path, err)
	}
	if err := png.Encode(f, out); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode screenshot %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close screenshot %q: %w", path, err)
	}
	return nil
}

func decodeRGB565(dst, src []byte) {
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, g, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}
