package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lahkro/snowfall/config"
	"github.com/lahkro/snowfall/snow"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats := flag.Bool("log-stats", false, "Output frame stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int64("max-frames", 0, "Stop after N frames (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Use config stats window if not overridden by CLI
	statsWindowSec := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		statsWindowSec = *statsWindow
	}

	opts := snow.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: statsWindowSec,
		OutputDir:      *outputDir,
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Snowfall")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	s, err := snow.NewScene(opts)
	if err != nil {
		// Point sprite shaders are unavailable on this driver; show a
		// static backdrop instead of exiting.
		slog.Error("scene unavailable", "error", err)
		runFallback(cfg)
		return
	}
	defer s.Unload()

	slog.Info("starting snowfall",
		"seed", rngSeed,
		"stats_window", statsWindowSec,
		"max_frames", *maxFrames,
	)

	for !rl.WindowShouldClose() {
		s.Update()
		s.Draw()

		if *maxFrames > 0 && s.Frame() >= *maxFrames {
			slog.Info("max frames reached", "frame", s.Frame())
			break
		}
	}
}

// runFallback renders a static background with a notice until the window
// closes. Used when shader compilation fails.
func runFallback(cfg *config.Config) {
	rgb := cfg.Derived.BackgroundRGB
	bg := rl.NewColor(rgb[0], rgb[1], rgb[2], 255)

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(bg)
		rl.DrawText("snowfall unavailable: shader compilation failed", 20, 20, 20, rl.Fade(rl.White, 0.7))
		rl.EndDrawing()
	}
}
