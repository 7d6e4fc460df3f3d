//go:build tinygo && baremetal

package app

import (
	"time"

	"fieldcam/hal"
)

// Run drives the viewer forever at roughly 30 frames per second.
// A failed step leaves the last frame (the fatal screen) on the panel.
func Run(h hal.HAL, cfg Config) {
	step := New(h, cfg)
	for {
		if err := step(); err != nil {
			h.Logger().WriteLineString("app: halted: " + err.Error())
			select {}
		}
		time.Sleep(33 * time.Millisecond)
	}
}
