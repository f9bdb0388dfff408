// Package config provides configuration loading and access for the snowfall scene.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable scene and simulation parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Scene     SceneConfig     `yaml:"scene"`
	Camera    CameraConfig    `yaml:"camera"`
	Snow      SnowConfig      `yaml:"snow"`
	Textures  TexturesConfig  `yaml:"textures"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SceneConfig holds background and fog settings.
type SceneConfig struct {
	Background string  `yaml:"background"` // Hex color, e.g. "#0a0e1a"
	Fog        bool    `yaml:"fog"`
	FogNear    float64 `yaml:"fog_near"` // View-space distance where fog starts
	FogFar     float64 `yaml:"fog_far"`  // View-space distance of full fog
}

// CameraConfig holds camera placement parameters.
type CameraConfig struct {
	Z    float64 `yaml:"z"`     // Distance from the particle volume center
	FovY float64 `yaml:"fov_y"` // Vertical field of view in degrees
}

// SnowConfig holds particle population and motion parameters.
// Values are not validated on load: degenerate inputs (ratio outside [0,1],
// zero counts) fall through to the generator, which clamps counts to zero.
type SnowConfig struct {
	Count           int     `yaml:"count"`            // Total particles across both populations
	SpriteRatio     float64 `yaml:"sprite_ratio"`     // Fraction of Count rendered as decorative sprites
	SnowSize        float64 `yaml:"snow_size"`        // Base point size of plain snow
	SpriteSize      float64 `yaml:"sprite_size"`      // Base point size of sprites
	SizeAttenuation bool    `yaml:"size_attenuation"` // Scale point size by inverse view depth
	AlphaTest       float64 `yaml:"alpha_test"`       // Fragment discard threshold; 0 = never discard
	RangeX          float64 `yaml:"range_x"`          // Spatial extent per axis; positions sample +/- range/2
	RangeY          float64 `yaml:"range_y"`
	RangeZ          float64 `yaml:"range_z"`
	VelocityY       float64 `yaml:"velocity_y"`  // Fall speed magnitude; samples bias downward
	AmplitudeX      float64 `yaml:"amplitude_x"` // Horizontal sway amplitude
	AngleBias       float64 `yaml:"angle_bias"`  // Center of the per-particle phase angle interval
}

// TexturesConfig holds texture file paths for the two populations.
// A missing or unreadable file degrades to a plain white point.
type TexturesConfig struct {
	Snow   string `yaml:"snow"`
	Sprite string `yaml:"sprite"`
}

// TelemetryConfig holds frame statistics parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Frames in the rolling perf window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32     float32  // Screen.Width as float32
	ScreenH32     float32  // Screen.Height as float32
	BackgroundRGB [3]uint8 // Parsed Scene.Background
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// RefreshDerived recomputes derived values after live parameter edits
// (the control panel mutates fields in place).
func (c *Config) RefreshDerived() {
	c.computeDerived()
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.BackgroundRGB = ParseHexColor(c.Scene.Background)
}

// ParseHexColor parses a "#rrggbb" string into RGB bytes.
// Malformed input yields black rather than an error: the background is a
// visual-only value and the scene must come up regardless.
func ParseHexColor(s string) [3]uint8 {
	var r, g, b uint8
	if len(s) == 7 && s[0] == '#' {
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
			return [3]uint8{}
		}
	}
	return [3]uint8{r, g, b}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
