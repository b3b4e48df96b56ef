package main

import (
	"context"
	"errors"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"softrender/internal/batch"
	"softrender/internal/logging"
	"softrender/internal/postprocess"
	"softrender/internal/present"
	"softrender/internal/raster"
)

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render frames to image files",
		Long: `Render one frame, or a turntable animation with --frames, to WebP, PNG or
TGA files chosen by the output extension. Animation frames are numbered
name_0000.ext, name_0001.ext and so on.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logging.Logger()

			kernel, err := postprocess.ParseKernel(cfg.Kernel)
			if err != nil {
				return err
			}
			anim, err := buildAnimator(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			start := time.Now()
			var st raster.Stats
			if cfg.Frames == 1 {
				iw := &present.ImageWriter{Path: cfg.Output, Scale: cfg.Scale, Kernel: kernel}
				st, err = anim.Run(ctx, 1, iw)
				if err != nil {
					return err
				}
				log.Info("frame written", "path", cfg.Output, "pixels", st.Written, "elapsed", time.Since(start))
				return nil
			}

			w, err := batch.NewWriter(batch.Config{
				Path:     cfg.Output,
				Scale:    cfg.Scale,
				Kernel:   kernel,
				Workers:  cfg.Workers,
				Progress: 2 * time.Second,
			})
			if err != nil {
				return err
			}
			st, runErr := anim.Run(ctx, cfg.Frames, w)
			results, writeErr := w.Close()
			log.Info("animation written",
				"frames", len(results),
				"pixels", st.Written,
				"depth_rejected", st.DepthRejected(),
				"elapsed", time.Since(start))

			if cfg.Manifest {
				manifest := filepath.Join(filepath.Dir(cfg.Output), "manifest.json")
				if err := batch.WriteManifest(manifest, results); err != nil {
					log.Warn("manifest write failed", "err", err)
				} else {
					log.Info("manifest written", "path", manifest)
				}
			}
			if errors.Is(runErr, context.Canceled) {
				log.Warn("render interrupted", "frames", len(results))
			}
			return errors.Join(runErr, writeErr)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Output, "output", "o", "", "output file; extension picks webp, png or tga")
	f.IntVarP(&flags.Frames, "frames", "n", 0, "number of turntable frames (default 1)")
	f.IntVar(&flags.Scale, "scale", 0, "integer output upscale factor (default 1)")

	return cmd
}
