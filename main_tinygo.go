//go:build tinygo && baremetal

package main

import (
	"fieldcam/app"
	"fieldcam/hal"
)

func main() {
	app.Run(hal.New(), app.DefaultConfig())
}
