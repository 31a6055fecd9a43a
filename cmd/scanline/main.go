// scanline - banded parallel software rasterizer
// Fly a camera through a small scene of solid triangles, drawn in the
// terminal, in a window, or to an image file.
//
// Controls:
//
//	W/S         - Move forward/back
//	A/D         - Move left/right
//	E/Space, C  - Move up/down
//	Up/Down     - Tilt up/down (also K/J)
//	Left/Right  - Turn left/right (also H/L)
//	R           - Reset camera
//	Q/Esc       - Quit
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

const controlsHelp = `Controls:
  W/S         Move forward/back
  A/D         Move left/right
  E/Space, C  Move up/down
  Up/Down     Tilt up/down (also K/J)
  Left/Right  Turn left/right (also H/L)
  R           Reset camera
  Q/Esc       Quit`

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:   "scanline",
		Short: "Software rasterizer with banded parallel triangle fill",
		Long: "scanline renders a scene of solid-color triangles on the CPU: camera transform,\n" +
			"perspective divide, edge-function fill with a depth buffer, each triangle split\n" +
			"into horizontal bands filled in parallel. Without a subcommand it draws in the\n" +
			"terminal.\n\n" + controlsHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTerminal(cmd.Context(), cfg, cmd.Flags().Changed("half-height"))
		},
	}
	cfg.bindFlags(root)

	root.AddCommand(
		&cobra.Command{
			Use:   "window",
			Short: "Render in a desktop window",
			Long:  "Open a --width x --height window and render the scene every frame.\n\n" + controlsHelp,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runWindow(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "snapshot <file.png|file.bmp>",
			Short: "Render one frame to an image file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSnapshot(cmd.Context(), cfg, args[0])
			},
		},
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd()); err != nil {
		stop()
		os.Exit(1)
	}
}
