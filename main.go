package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"

	"sector/app"
	"sector/hal"
	"sector/portal"
)

func main() {
	var (
		headless bool
		hcfg     hal.HeadlessConfig
		scale    int
		minimap  string
		fovDeg   float64
		debug    bool
	)
	cfg := app.DefaultConfig()

	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate (window TPS or headless steps per second).")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&cfg.Render.Width, "width", cfg.Render.Width, "Framebuffer width in pixels.")
	flag.IntVar(&cfg.Render.Height, "height", cfg.Render.Height, "Framebuffer height in pixels.")
	flag.IntVar(&scale, "scale", 4, "Window zoom and snapshot upscale factor.")
	flag.StringVar(&minimap, "minimap", portal.MinimapOff.String(), "Initial minimap: off, first-person or absolute.")
	flag.BoolVar(&cfg.HUD, "hud", cfg.HUD, "Draw the status overlay.")
	flag.StringVar(&cfg.SnapshotPath, "snapshot", "", "Write one frame to this PNG file.")
	flag.Uint64Var(&cfg.SnapshotFrame, "snapshot-frame", cfg.SnapshotFrame, "Frame number (from 1) to write with -snapshot.")
	flag.Float64Var(&fovDeg, "fov", 90, "Horizontal field of view in degrees.")
	flag.BoolVar(&debug, "debug", false, "Log renderer diagnostics to stderr.")
	flag.Parse()

	mode, ok := portal.ParseMinimapMode(minimap)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown -minimap %q\n", minimap)
		os.Exit(2)
	}
	cfg.Minimap = mode
	cfg.Render.FOVX = float32(fovDeg * math.Pi / 180)
	cfg.SnapshotScale = scale
	if err := cfg.Render.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if debug {
		portal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, cfg) }

	if headless {
		hcfg.Width, hcfg.Height = cfg.Render.Width, cfg.Render.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	wcfg := hal.WindowConfig{Width: cfg.Render.Width, Height: cfg.Render.Height, Scale: scale, TPS: hcfg.Hz}
	if err := hal.RunWindow(wcfg, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
