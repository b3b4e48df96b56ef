package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"softrender/internal/config"
	"softrender/internal/logging"
)

var (
	cfgFile string
	flags   config.Flags
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "softrender",
		Short: "CPU software rasterizer for OBJ meshes",
		Long: `softrender draws textured, depth-tested OBJ meshes entirely on the CPU
and writes the frames to WebP, PNG or TGA files or shows them in a window.`,
		SilenceUsage: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (JSON, YAML or TOML)")
	pf.StringVar(&flags.LogLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVarP(&flags.Mesh, "mesh", "m", "", "OBJ mesh to render")
	pf.StringVarP(&flags.Texture, "texture", "t", "", "diffuse texture (png, jpeg, tga, bmp, webp)")
	pf.StringVar(&flags.TextureDir, "texture-dir", "", "directory of per-material textures named after usemtl entries")
	pf.IntVar(&flags.Width, "width", 0, "frame width in pixels (default 800)")
	pf.IntVar(&flags.Height, "height", 0, "frame height in pixels (default 800)")
	pf.BoolVar(&flags.Wireframe, "wireframe", false, "draw triangle outlines only")

	rootCmd.AddCommand(renderCmd(), viewCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and environment, applies flags and
// installs the logger.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, err
	}
	cfg.Resolve(flags)

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, err
	}
	logging.SetLogger(logging.NewText(os.Stderr, level))

	if cfg.Mesh == "" {
		return cfg, fmt.Errorf("no mesh given: use --mesh or set mesh in the config file")
	}
	return cfg, nil
}
