package main

import (
	"github.com/spf13/cobra"

	"softrender/internal/logging"
	"softrender/internal/present"
	"softrender/internal/present/window"
)

func viewCmd() *cobra.Command {
	var spin bool
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the mesh in a window",
		Long: `Open a window and redraw the mesh every tick. W/S move forward and back,
A/D turn, Q/Z move up and down and Escape quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			anim, err := buildAnimator(cfg)
			if err != nil {
				return err
			}

			win := window.New("softrender - "+cfg.Mesh, cfg.Width, cfg.Height, 1)
			frame := 0
			return win.Run(func(ev present.Event) error {
				if ev == present.Exit {
					return present.ErrExit
				}
				if anim.Renderer.Camera.Apply(ev) {
					logging.Logger().Debug("camera moved", "event", ev, "eye", anim.Renderer.Camera.Eye)
				}
				anim.Render(frame)
				if spin {
					frame++
				}
				return anim.Renderer.Present(win)
			})
		},
	}
	cmd.Flags().BoolVar(&spin, "spin", false, "rotate the mesh every frame")
	return cmd
}
