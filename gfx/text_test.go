package gfx

import (
	"image"
	"testing"
)

func inkBox(d *memDisplay) image.Rectangle {
	var r image.Rectangle
	first := true
	for p := range d.pix {
		px := image.Rect(p.X, p.Y, p.X+1, p.Y+1)
		if first {
			r = px
			first = false
			continue
		}
		r = r.Union(px)
	}
	return r
}

func TestTextBounds(t *testing.T) {
	box := TextBounds(DefaultFont, "OK")
	if box.Dx() <= 0 || box.Dy() <= 0 {
		t.Fatalf("empty bounds: %v", box)
	}
	if box.Min.Y >= 0 {
		t.Fatalf("glyph tops should sit above the baseline: %v", box)
	}
	if !TextBounds(DefaultFont, "").Empty() {
		t.Fatal("empty string should have empty bounds")
	}
	if !TextBounds(nil, "x").Empty() {
		t.Fatal("nil font should have empty bounds")
	}
}

func TestDrawStringMiddleCenter(t *testing.T) {
	d := newMemDisplay(200, 100)
	c := NewCanvas(d)
	c.SetTextDatum(MiddleCenter)
	c.SetTextColor(Yellow)
	c.DrawString("HOLD", 100, 50)

	if len(d.pix) == 0 {
		t.Fatal("nothing drawn")
	}
	for _, col := range d.pix {
		if col != Yellow {
			t.Fatalf("unexpected text colour %#v", col)
		}
	}

	ink := inkBox(d)
	midY := (ink.Min.Y + ink.Max.Y) / 2
	if midY < 48 || midY > 52 {
		t.Fatalf("text not vertically centred: ink %v", ink)
	}
	midX := (ink.Min.X + ink.Max.X) / 2
	if midX < 96 || midX > 104 {
		t.Fatalf("text not horizontally centred: ink %v", ink)
	}
}

func TestDrawStringTopLeftAndBottomRight(t *testing.T) {
	d := newMemDisplay(200, 100)
	c := NewCanvas(d)
	c.SetTextDatum(TopLeft)
	c.DrawString("A", 10, 10)
	ink := inkBox(d)
	if ink.Min.X < 10 || ink.Min.Y < 10 {
		t.Fatalf("top-left text starts above/left of datum: %v", ink)
	}

	d2 := newMemDisplay(200, 100)
	c2 := NewCanvas(d2)
	c2.SetTextDatum(BottomRight)
	c2.DrawString("A", 50, 50)
	ink2 := inkBox(d2)
	if ink2.Max.X > 50 || ink2.Max.Y > 50 {
		t.Fatalf("bottom-right text extends past datum: %v", ink2)
	}
}

func TestDrawStringClipsAtEdge(t *testing.T) {
	d := newMemDisplay(20, 20)
	c := NewCanvas(d)
	c.SetTextDatum(MiddleCenter)
	// memDisplay panics on out-of-range writes.
	c.DrawString("WIDE LABEL", 0, 0)
	c.SetTextFont(nil)
	c.DrawString("WIDE LABEL", 19, 19)
}
