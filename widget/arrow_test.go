package widget

import (
	"reflect"
	"testing"

	"fieldcam/gfx"
)

func TestDrawZArrowTowardsViewer(t *testing.T) {
	r := &recorder{}
	DrawZArrow(r, 50, 60, 10, gfx.Red)
	want := []string{
		"drawCircle 50 60 5 red",
		"fillCircle 50 60 1 red",
	}
	if !reflect.DeepEqual(r.ops, want) {
		t.Fatalf("ops:\n got %q\nwant %q", r.ops, want)
	}
}

func TestDrawZArrowAwayFromViewer(t *testing.T) {
	r := &recorder{}
	DrawZArrow(r, 50, 60, -10, gfx.Red)
	want := []string{
		"drawCircle 50 60 5 red",
		"drawLine 54 64 46 56 red",
		"drawLine 54 56 46 64 red",
	}
	if !reflect.DeepEqual(r.ops, want) {
		t.Fatalf("ops:\n got %q\nwant %q", r.ops, want)
	}
}

func TestDrawZArrowZero(t *testing.T) {
	r := &recorder{}
	DrawZArrow(r, 5, 5, 0, gfx.Red)
	want := []string{
		"drawCircle 5 5 0 red",
		"drawLine 5 5 5 5 red",
		"drawLine 5 5 5 5 red",
	}
	if !reflect.DeepEqual(r.ops, want) {
		t.Fatalf("ops:\n got %q\nwant %q", r.ops, want)
	}
}

func TestDrawZArrowCrossRounding(t *testing.T) {
	cases := []struct {
		z    int
		want string
	}{
		{-1, "drawLine 0 0 0 0 red"},        // 0.355
		{-3, "drawLine 1 1 -1 -1 red"},      // 1.065
		{-20, "drawLine 7 7 -7 -7 red"},     // 7.1
		{-40, "drawLine 14 14 -14 -14 red"}, // 14.2
	}
	for _, tc := range cases {
		r := &recorder{}
		DrawZArrow(r, 0, 0, tc.z, gfx.Red)
		if r.ops[1] != tc.want {
			t.Fatalf("z=%d: got %q, want %q", tc.z, r.ops[1], tc.want)
		}
	}
}

func TestDrawArrowUnitVector(t *testing.T) {
	r := &recorder{}
	DrawArrow(r, 0, 0, 100, 0, gfx.Green)
	want := []string{
		"drawLine 0 0 100 0 green",
		"drawLine 100 0 85 10 green",
		"drawLine 100 0 85 -10 green",
	}
	if !reflect.DeepEqual(r.ops, want) {
		t.Fatalf("ops:\n got %q\nwant %q", r.ops, want)
	}
}

func TestDrawArrowRotatedAndScaled(t *testing.T) {
	r := &recorder{}
	// Pointing down the screen (+y), half length, anchored at (10, 20).
	DrawArrow(r, 10, 20, 0, 50, gfx.Green)
	want := []string{
		"drawLine 10 20 10 70 green",
		"drawLine 10 70 5 62 green",
		"drawLine 10 70 15 62 green",
	}
	if !reflect.DeepEqual(r.ops, want) {
		t.Fatalf("ops:\n got %q\nwant %q", r.ops, want)
	}
}

func TestDrawArrowZero(t *testing.T) {
	r := &recorder{}
	DrawArrow(r, 0, 0, 0, 0, gfx.Green)
	for _, op := range r.ops {
		if op != "drawLine 0 0 0 0 green" {
			t.Fatalf("expected degenerate segment, got %q", op)
		}
	}
	if len(r.ops) != 3 {
		t.Fatalf("got %d segments, want 3", len(r.ops))
	}
}

func TestDrawFieldScales(t *testing.T) {
	r := &recorder{}
	DrawField(r, 0, 0, Field{X: 100, Y: 0, Z: 20}, 50, DefaultFieldColors)
	want := []string{
		"drawCircle 0 0 5 yellow",
		"fillCircle 0 0 1 yellow",
		"drawLine 0 0 50 0 green",
		"drawLine 50 0 42 5 green",
		"drawLine 50 0 42 -5 green",
	}
	if !reflect.DeepEqual(r.ops, want) {
		t.Fatalf("ops:\n got %q\nwant %q", r.ops, want)
	}
}

func TestFieldSub(t *testing.T) {
	got := Field{X: 5, Y: -2, Z: 9}.Sub(Field{X: 1, Y: 1, Z: 10})
	if got != (Field{X: 4, Y: -3, Z: -1}) {
		t.Fatalf("got %+v", got)
	}
}
