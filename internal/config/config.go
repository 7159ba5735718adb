package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"realmz-dasm/internal/canvas"
)

// EnvPrefix prefixes environment overrides, e.g. REALMZ_OUTPUT_DIR.
const EnvPrefix = "REALMZ"

// Dungeon map styles.
const (
	StyleAuto    = "auto"
	StylePattern = "pattern"
	StylePlain   = "plain"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	ScenarioDir       string `mapstructure:"scenario_dir"`
	OutputDir         string `mapstructure:"output_dir"`
	DefaultAssetsDir  string `mapstructure:"default_assets_dir"`
	ScenarioAssetsDir string `mapstructure:"scenario_assets_dir"`

	// Render settings
	ImageFormat  string  `mapstructure:"image_format"`  // bmp | png | webp
	DungeonStyle string  `mapstructure:"dungeon_style"` // auto | pattern | plain
	RenderMaps   bool    `mapstructure:"render_maps"`
	LayoutMaps   bool    `mapstructure:"layout_maps"`
	LayoutScale  float64 `mapstructure:"layout_scale"`

	Debug bool `mapstructure:"debug"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("scenario_dir", "")
	v.SetDefault("output_dir", "")
	v.SetDefault("default_assets_dir", "")
	v.SetDefault("scenario_assets_dir", "")
	v.SetDefault("image_format", "bmp")
	v.SetDefault("dungeon_style", StyleAuto)
	v.SetDefault("render_maps", true)
	v.SetDefault("layout_maps", false)
	v.SetDefault("layout_scale", 0.25)
	v.SetDefault("debug", false)
	return v
}

// Load reads a YAML, JSON or TOML config file. An empty path yields the
// defaults; REALMZ_* environment variables override either.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	ScenarioDir       string
	OutputDir         string
	DefaultAssetsDir  string
	ScenarioAssetsDir string
	ImageFormat       string
	DungeonStyle      string
	NoMaps            bool
	Layout            bool
	Debug             bool
}

// Resolve applies CLI flags and fills derived paths. CLI flags take priority
// when non-empty or set.
func (c *Config) Resolve(flags Flags) {
	if flags.ScenarioDir != "" {
		c.ScenarioDir = flags.ScenarioDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.DefaultAssetsDir != "" {
		c.DefaultAssetsDir = flags.DefaultAssetsDir
	}
	if flags.ScenarioAssetsDir != "" {
		c.ScenarioAssetsDir = flags.ScenarioAssetsDir
	}
	if flags.ImageFormat != "" {
		c.ImageFormat = flags.ImageFormat
	}
	if flags.DungeonStyle != "" {
		c.DungeonStyle = flags.DungeonStyle
	}
	if flags.NoMaps {
		c.RenderMaps = false
	}
	if flags.Layout {
		c.LayoutMaps = true
	}
	if flags.Debug {
		c.Debug = true
	}

	// Output defaults to a sibling of the scenario directory
	if c.OutputDir == "" && c.ScenarioDir != "" {
		clean := filepath.Clean(c.ScenarioDir)
		c.OutputDir = filepath.Join(filepath.Dir(clean), filepath.Base(clean)+".out")
	}

	if c.ImageFormat == "" {
		c.ImageFormat = "bmp"
	}
	if c.DungeonStyle == "" {
		c.DungeonStyle = StyleAuto
	}
	if c.LayoutScale <= 0 {
		c.LayoutScale = 0.25
	}
}

// Validate reports settings the batch cannot run with.
func (c *Config) Validate() error {
	if c.ScenarioDir == "" {
		return fmt.Errorf("config: scenario_dir is required")
	}
	if _, err := canvas.ParseFormat(c.ImageFormat); err != nil {
		return fmt.Errorf("config: image_format: %w", err)
	}
	switch c.DungeonStyle {
	case StyleAuto, StylePattern, StylePlain:
	default:
		return fmt.Errorf("config: dungeon_style %q is not auto, pattern or plain", c.DungeonStyle)
	}
	if c.LayoutScale > 1 {
		return fmt.Errorf("config: layout_scale %g must be in (0, 1]", c.LayoutScale)
	}
	return nil
}

// Format returns the parsed image format; call Validate first.
func (c *Config) Format() canvas.Format {
	f, err := canvas.ParseFormat(c.ImageFormat)
	if err != nil {
		return canvas.BMP
	}
	return f
}
