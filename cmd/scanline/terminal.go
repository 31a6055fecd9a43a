package main

import (
	"context"
	"fmt"
	"os"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/scanline/pkg/input"
	"github.com/taigrr/scanline/pkg/render"
)

// terminalHalfHeight keeps half-block pixels square: the view frame gets
// the framebuffer's aspect ratio.
func terminalHalfHeight(halfWidth float64, width, height int) float64 {
	return halfWidth * float64(height) / float64(width)
}

// runTerminal renders into the alternate screen until a quit key or ctx is
// done. Logs only go to --log-file since the screen is in use.
func runTerminal(ctx context.Context, cfg *config, halfHeightSet bool) error {
	closeLog, err := cfg.setupLogging(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	faces, mesh, err := cfg.faces()
	if err != nil {
		return err
	}

	term := uv.DefaultTerminal()
	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	fbWidth, fbHeight := render.TerminalSize(cols, rows)
	opts, err := cfg.options(fbWidth, fbHeight)
	if err != nil {
		return err
	}
	if !halfHeightSet {
		opts.HalfHeight = terminalHalfHeight(opts.HalfWidth, fbWidth, fbHeight)
	}
	renderer, err := render.NewRenderer(opts)
	if err != nil {
		return err
	}
	cam, err := cfg.camera(opts)
	if err != nil {
		return err
	}
	ctrl := input.NewController(cam, cfg.steps())
	hud := NewHUD(mesh.Name, mesh.TriangleCount(), cfg.fps)

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	render.Logger().Info("terminal view started", "cols", cols, "rows", rows, "scene", mesh.Name)

	events := term.Events()
	ticker := time.NewTicker(time.Second / time.Duration(cfg.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				if ev.Width <= 0 || ev.Height <= 0 {
					continue
				}
				cols, rows = ev.Width, ev.Height
				term.Erase()
				term.Resize(cols, rows)
				if err := renderer.Resize(render.TerminalSize(cols, rows)); err != nil {
					return err
				}
				if !halfHeightSet {
					fb := renderer.FrameBuffer()
					cam.HalfHeight = terminalHalfHeight(cam.HalfWidth, fb.Width, fb.Height)
				}

			case uv.KeyPressEvent:
				cmd, ok := ctrl.Keymap.Match(func(key string) bool {
					return ev.MatchString(key)
				})
				if ok && !ctrl.Apply(cmd) {
					return nil
				}
			}

		case <-ticker.C:
			stats := renderer.RenderFrame(cam, faces)
			renderer.FrameBuffer().Draw(term, term.Bounds())
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
			hud.Update(stats)
			fmt.Fprint(os.Stdout, hud.Render(cols, rows, cam))
		}
	}
}
