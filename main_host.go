//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"fieldcam/app"
	"fieldcam/hal"
)

func main() {
	var hcfg hal.HeadlessConfig
	var taps string
	var windowScale int
	cfg := app.DefaultConfig()

	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&taps, "taps", "", `Scripted headless touches, "x,y@tick[+hold];...".`)
	flag.StringVar(&hcfg.Screenshot, "screenshot", "", "Write the last headless frame to this PNG file.")
	flag.IntVar(&hcfg.ScreenshotScale, "screenshot-scale", 2, "Integer upscale factor for -screenshot.")
	flag.IntVar(&windowScale, "scale", 2, "Window scale factor.")
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "Indicator grid columns.")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Indicator grid rows.")
	flag.IntVar(&cfg.Scale, "field-scale", cfg.Scale, "Indicator scale in percent.")
	flag.IntVar(&cfg.Amplitude, "amplitude", cfg.Amplitude, "Simulated field amplitude in pixels.")
	flag.Uint64Var(&cfg.PeriodMillis, "period", cfg.PeriodMillis, "Simulated field rotation period in milliseconds.")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.New(h, cfg)
	}

	if hcfg.Enabled {
		parsed, err := hal.ParseTaps(taps)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		hcfg.Taps = parsed

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, windowScale); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
