package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"fieldcam/gfx"
)

// safeStep runs one frame; a panic is logged, painted as a fatal screen and
// returned as an error so the runner stops.
func (v *viewer) safeStep() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		stack := debug.Stack()
		v.fatal(r, stack)
		err = fmt.Errorf("app: panic: %v", r)
	}()
	return v.step()
}

func (v *viewer) fatal(value any, stack []byte) {
	lines := []string{
		"fieldcam panic:",
		fmt.Sprintf("%v", value),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	for _, line := range lines {
		v.logf("%s", line)
	}

	c := v.canvas
	c.Clear(gfx.Maroon)
	c.SetTextDatum(gfx.TopLeft)
	c.SetTextColor(gfx.White)
	c.SetTextFont(gfx.DefaultFont)

	box := gfx.TextBounds(gfx.DefaultFont, "0")
	charW, lineH := box.Dx(), box.Dy()+2
	w, h := c.Size()
	if charW <= 0 || lineH <= 2 {
		_ = c.Display()
		return
	}
	cols := int(w) / charW
	if cols <= 0 {
		cols = 1
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+lineH > int(h) {
				_ = c.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			c.DrawString(chunk, 0, y)
			y += lineH
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = c.Display()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
