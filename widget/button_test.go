package widget

import (
	"image"
	"reflect"
	"testing"

	"fieldcam/gfx"
)

func TestButtonDefaultsDrawSelected(t *testing.T) {
	r := &recorder{}
	b := NewButton(r, &fakeClock{}, "OK", 10, 20)

	if !b.Selected {
		t.Fatal("buttons start selected")
	}
	if got := b.Bounds(); got != image.Rect(10, 20, 30, 40) {
		t.Fatalf("bounds: got %v", got)
	}

	b.Draw()
	want := []string{
		"fillRect 10 20 20 20 white",
		"drawRect 10 20 20 20 black",
		"datum 4",
		"textColor black",
		"font",
		`drawString "OK" 20 30`,
	}
	if !reflect.DeepEqual(r.ops, want) {
		t.Fatalf("ops:\n got %q\nwant %q", r.ops, want)
	}
	if r.font != gfx.DefaultFont {
		t.Fatal("expected the default button font")
	}
}

func TestButtonDrawUnselectedAndMutated(t *testing.T) {
	r := &recorder{}
	b := NewButton(r, &fakeClock{}, "A", 0, 0,
		WithSize(60, 24), WithColors(gfx.Blue, gfx.Yellow), WithSelected(false))

	b.Draw()
	if r.ops[0] != "fillRect 0 0 60 24 blue" || r.ops[1] != "drawRect 0 0 60 24 yellow" {
		t.Fatalf("unselected colours: %q", r.ops[:2])
	}
	if r.ops[3] != "textColor yellow" {
		t.Fatalf("text colour: %q", r.ops[3])
	}

	r.reset()
	b.Selected = true
	b.Text = "B"
	b.Draw()
	want := []string{
		"fillRect 0 0 60 24 yellow",
		"drawRect 0 0 60 24 blue",
		"datum 4",
		"textColor blue",
		"font",
		`drawString "B" 30 12`,
	}
	if !reflect.DeepEqual(r.ops, want) {
		t.Fatalf("ops:\n got %q\nwant %q", r.ops, want)
	}
}

func TestButtonTouchedDebounce(t *testing.T) {
	clk := &fakeClock{ms: 1000}
	b := NewButton(&recorder{}, clk, "X", 10, 10, WithSize(40, 30))

	// The debounce window starts at construction.
	if b.Touched(20, 20) {
		t.Fatal("touch right after construction should be debounced")
	}

	clk.advance(DebounceMillis)
	if !b.Touched(20, 20) {
		t.Fatal("expected first touch after the window to be accepted")
	}
	if b.Touched(20, 20) {
		t.Fatal("immediate repeat should be debounced")
	}

	clk.advance(DebounceMillis - 1)
	if b.Touched(20, 20) {
		t.Fatal("repeat inside the window should be debounced")
	}

	// The rejected touches did not restart the window.
	clk.advance(1)
	if !b.Touched(20, 20) {
		t.Fatal("expected touch exactly one window after the last accept")
	}
}

func TestButtonTouchedBounds(t *testing.T) {
	clk := &fakeClock{}
	b := NewButton(&recorder{}, clk, "X", 10, 10, WithSize(40, 30))
	clk.advance(10 * DebounceMillis)

	outside := [][2]int{{9, 10}, {10, 9}, {50, 10}, {10, 40}, {50, 40}, {-1, -1}}
	for _, p := range outside {
		if b.Touched(p[0], p[1]) {
			t.Fatalf("touch at %v should miss", p)
		}
	}
	// Misses leave the debounce state alone, so the next hit is accepted.
	if !b.Touched(10, 10) {
		t.Fatal("top-left corner is inside")
	}
	clk.advance(DebounceMillis)
	if !b.Touched(49, 39) {
		t.Fatal("bottom-right pixel is inside")
	}
}

func TestButtonContains(t *testing.T) {
	b := NewButton(nil, nil, "", 0, 0, WithSize(2, 2))
	if !b.Contains(1, 1) || b.Contains(2, 1) || b.Contains(1, 2) {
		t.Fatal("Contains must use half-open bounds")
	}
	// No surface: Draw is a no-op.
	b.Draw()
}

func TestClockFunc(t *testing.T) {
	ms := uint64(7)
	var c Clock = ClockFunc(func() uint64 { return ms })
	if c.Millis() != 7 {
		t.Fatal("ClockFunc should forward")
	}
}
