// Package snow coordinates the snowfall scene: camera, materials, particle
// fields, background state and the live control panel. All shared mutable
// state lives on the Scene so the frame loop, resize handling and panel
// callbacks touch one owned context instead of free-floating globals.
package snow

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/lahkro/snowfall/camera"
	"github.com/lahkro/snowfall/config"
	"github.com/lahkro/snowfall/particles"
	"github.com/lahkro/snowfall/renderer"
	"github.com/lahkro/snowfall/telemetry"
	"github.com/lahkro/snowfall/ui"
)

// Options holds scene construction settings from the CLI.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
}

// Scene owns the full render state for the snowfall background.
type Scene struct {
	cfg *config.Config
	rng *rand.Rand
	rig *camera.Rig

	snowMat   *renderer.Material
	spriteMat *renderer.Material

	snowField   *renderer.Field
	spriteField *renderer.Field

	panel *ui.Panel

	perf      *telemetry.PerfCollector
	stats     *telemetry.StatsWindow
	output    *telemetry.OutputManager
	logStats  bool
	showStats bool

	frame int64
}

// NewScene builds the complete scene from the loaded configuration.
// A shader compilation failure is the capability-absence condition: it is
// returned as an error and the caller substitutes a static fallback screen.
func NewScene(opts Options) (*Scene, error) {
	cfg := config.Cfg()

	s := &Scene{
		cfg: cfg,
		rng: rand.New(rand.NewSource(opts.Seed)),
		rig: camera.New(
			cfg.Derived.ScreenW32,
			cfg.Derived.ScreenH32,
			float32(cfg.Camera.Z),
			float32(cfg.Camera.FovY),
		),
		panel:    ui.NewPanel(),
		perf:     telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		stats:    telemetry.NewStatsWindow(opts.StatsWindowSec),
		logStats: opts.LogStats,
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("initializing output: %w", err)
		}
		s.output = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Warn("failed to snapshot config", "error", err)
		}
	}

	if err := s.buildMaterials(); err != nil {
		return nil, err
	}
	s.buildFields()

	slog.Info("scene built",
		"particles", cfg.Snow.Count,
		"sprite_ratio", cfg.Snow.SpriteRatio,
		"fog", cfg.Scene.Fog,
	)

	return s, nil
}

// fog assembles the fog uniform values from the current parameters.
// Fog blends toward the background color so distant particles dissolve
// into the backdrop.
func (s *Scene) fog() renderer.Fog {
	return renderer.Fog{
		Enabled: s.cfg.Scene.Fog,
		Color:   s.cfg.Derived.BackgroundRGB,
		Near:    float32(s.cfg.Scene.FogNear),
		Far:     float32(s.cfg.Scene.FogFar),
	}
}

// buildMaterials compiles the two shader-backed materials. Per-type point
// size is material-bound, which is why size and ratio edits rebuild
// materials before fields.
func (s *Scene) buildMaterials() error {
	snowMat, spriteMat, err := s.newMaterials()
	if err != nil {
		return err
	}
	s.snowMat = snowMat
	s.spriteMat = spriteMat
	return nil
}

// newMaterials compiles a fresh material pair without touching scene
// state, so callers can swap only after both compiles succeed.
func (s *Scene) newMaterials() (*renderer.Material, *renderer.Material, error) {
	snowCfg := s.cfg.Snow

	snowMat, err := renderer.NewMaterial(renderer.MaterialParams{
		Size:            float32(snowCfg.SnowSize),
		RangeY:          float32(snowCfg.RangeY),
		AlphaTest:       float32(snowCfg.AlphaTest),
		SizeAttenuation: snowCfg.SizeAttenuation,
		TexturePath:     s.cfg.Textures.Snow,
		Fog:             s.fog(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("building snow material: %w", err)
	}

	spriteMat, err := renderer.NewMaterial(renderer.MaterialParams{
		Size:            float32(snowCfg.SpriteSize),
		RangeY:          float32(snowCfg.RangeY),
		AlphaTest:       float32(snowCfg.AlphaTest),
		SizeAttenuation: snowCfg.SizeAttenuation,
		TexturePath:     s.cfg.Textures.Sprite,
		Fog:             s.fog(),
	})
	if err != nil {
		snowMat.Unload()
		return nil, nil, fmt.Errorf("building sprite material: %w", err)
	}

	return snowMat, spriteMat, nil
}

// batchParams maps the configuration onto generator sampling bounds.
func (s *Scene) batchParams() particles.Params {
	c := s.cfg.Snow
	return particles.Params{
		RangeX:     float32(c.RangeX),
		RangeY:     float32(c.RangeY),
		RangeZ:     float32(c.RangeZ),
		VelocityY:  float32(c.VelocityY),
		AmplitudeX: float32(c.AmplitudeX),
		AngleBias:  float32(c.AngleBias),
	}
}

// buildFields generates fresh batches and uploads both point fields.
func (s *Scene) buildFields() {
	snowCount, spriteCount := particles.SplitCounts(s.cfg.Snow.Count, s.cfg.Snow.SpriteRatio)
	p := s.batchParams()
	h := s.rig.PointScale()

	s.snowField = renderer.NewField(particles.Generate(snowCount, p, s.rng, h), s.snowMat)
	s.spriteField = renderer.NewField(particles.Generate(spriteCount, p, s.rng, h), s.spriteMat)
}

// rebuildFields replaces both particle fields. Old GPU buffers are
// disposed before the replacements are generated, bounding peak usage to
// old+new only momentarily and preventing growth across repeated rebuilds.
func (s *Scene) rebuildFields() {
	s.unloadFields()
	s.buildFields()
	slog.Debug("fields rebuilt", "snow", s.snowField.Count(), "sprite", s.spriteField.Count())
}

// rebuildMaterials replaces materials and then fields. The replacement
// pair is compiled before anything is torn down: a failed compile leaves
// the old materials and fields live, so the scene keeps drawing the
// previous state instead of dereferencing disposed resources.
func (s *Scene) rebuildMaterials() error {
	snowMat, spriteMat, err := s.newMaterials()
	if err != nil {
		return err
	}

	s.unloadFields()
	s.snowMat.Unload()
	s.spriteMat.Unload()
	s.snowMat = snowMat
	s.spriteMat = spriteMat

	s.buildFields()
	slog.Debug("materials rebuilt")
	return nil
}

func (s *Scene) unloadFields() {
	if s.snowField != nil {
		s.snowField.Unload()
		s.snowField = nil
	}
	if s.spriteField != nil {
		s.spriteField.Unload()
		s.spriteField = nil
	}
}

// Frame returns the number of frames rendered so far.
func (s *Scene) Frame() int64 {
	return s.frame
}

// Unload releases every GPU resource the scene owns. Called once on
// teardown after the frame loop exits.
func (s *Scene) Unload() {
	s.unloadFields()
	if s.snowMat != nil {
		s.snowMat.Unload()
	}
	if s.spriteMat != nil {
		s.spriteMat.Unload()
	}
	if s.output != nil {
		if err := s.output.Close(); err != nil {
			slog.Warn("closing telemetry output", "error", err)
		}
	}
}
