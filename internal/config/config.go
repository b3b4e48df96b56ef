// Package config loads render settings from a file, the environment and
// command-line flags, in increasing order of priority.
package config

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SOFTRENDER_WIDTH.
const EnvPrefix = "SOFTRENDER"

// Config holds all render settings. Angles are in degrees.
type Config struct {
	// Inputs
	Mesh    string `mapstructure:"mesh"`
	Texture string `mapstructure:"texture"`
	Charset string `mapstructure:"charset"`
	Filter  string `mapstructure:"filter"`
	// TextureDir is searched for images named after the mesh's materials.
	TextureDir string `mapstructure:"texture_dir"`

	// Output
	Output   string `mapstructure:"output"`
	Format   string `mapstructure:"format"`
	Scale    int    `mapstructure:"output_scale"`
	Kernel   string `mapstructure:"kernel"`
	Manifest bool   `mapstructure:"manifest"`
	Workers  int    `mapstructure:"workers"`

	// Render settings
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
	FOV       float32 `mapstructure:"fov"`
	Near      float32 `mapstructure:"near"`
	Far       float32 `mapstructure:"far"`
	Frames    int     `mapstructure:"frames"`
	Step      float32 `mapstructure:"rotate_step"`
	Wireframe bool    `mapstructure:"wireframe"`
	Ambient   float32 `mapstructure:"ambient"`

	LogLevel string `mapstructure:"log_level"`
}

// Default returns the built-in settings. Output carries no extension so
// Resolve can take it from Format.
func Default() Config {
	return Config{
		Filter:   "nearest",
		Output:   "softrender",
		Format:   "webp",
		Scale:    1,
		Kernel:   "nearest",
		Workers:  runtime.NumCPU(),
		Width:    800,
		Height:   800,
		FOV:      45,
		Near:     -0.1,
		Far:      -100,
		Frames:   1,
		Step:     5,
		LogLevel: "info",
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	for key, val := range map[string]any{
		"mesh":         d.Mesh,
		"texture":      d.Texture,
		"texture_dir":  d.TextureDir,
		"charset":      d.Charset,
		"filter":       d.Filter,
		"output":       d.Output,
		"format":       d.Format,
		"output_scale": d.Scale,
		"kernel":       d.Kernel,
		"manifest":     d.Manifest,
		"workers":      d.Workers,
		"width":        d.Width,
		"height":       d.Height,
		"fov":          d.FOV,
		"near":         d.Near,
		"far":          d.Far,
		"frames":       d.Frames,
		"rotate_step":  d.Step,
		"wireframe":    d.Wireframe,
		"ambient":      d.Ambient,
		"log_level":    d.LogLevel,
	} {
		v.SetDefault(key, val)
	}
}

// Load reads the optional config file at path (JSON, YAML or TOML by
// extension) and applies SOFTRENDER_* environment overrides. An empty path
// loads defaults and the environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

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
// Zero values leave the loaded setting alone.
type Flags struct {
	Mesh       string
	Texture    string
	TextureDir string
	Output     string
	Width      int
	Height     int
	Frames     int
	Scale      int
	Wireframe  bool
	LogLevel   string
}

// Resolve applies flags and replaces invalid settings with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Mesh != "" {
		c.Mesh = flags.Mesh
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Wireframe {
		c.Wireframe = true
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	d := Default()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		c.FOV = d.FOV
	}
	// The camera looks down -z, so both planes are negative and near > far.
	if c.Near >= 0 {
		c.Near = d.Near
	}
	if c.Far >= c.Near {
		c.Far = min(d.Far, c.Near*10)
	}
	if c.Frames <= 0 {
		c.Frames = d.Frames
	}
	if c.Scale <= 0 {
		c.Scale = d.Scale
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if filepath.Ext(c.Output) == "" {
		c.Output += "." + strings.TrimPrefix(c.Format, ".")
	}
}
