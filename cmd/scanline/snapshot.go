package main

import (
	"context"
	"fmt"
	"os"

	"github.com/taigrr/scanline/pkg/render"
)

// runSnapshot renders a single frame and writes it to path.
func runSnapshot(ctx context.Context, cfg *config, path string) error {
	closeLog, err := cfg.setupLogging(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	stats, err := snapshot(cfg, path)
	if err != nil {
		return err
	}
	render.Logger().InfoContext(ctx, "snapshot written",
		"path", path,
		"drawn", stats.Drawn,
		"culled", stats.Culled,
		"written", stats.Written,
		"elapsed", stats.Elapsed,
	)
	return nil
}

func snapshot(cfg *config, path string) (render.FrameStats, error) {
	faces, _, err := cfg.faces()
	if err != nil {
		return render.FrameStats{}, err
	}
	opts, err := cfg.options(cfg.width, cfg.height)
	if err != nil {
		return render.FrameStats{}, err
	}
	renderer, err := render.NewRenderer(opts)
	if err != nil {
		return render.FrameStats{}, err
	}
	cam, err := cfg.camera(opts)
	if err != nil {
		return render.FrameStats{}, err
	}

	stats := renderer.RenderFrame(cam, faces)
	if err := renderer.FrameBuffer().Save(path); err != nil {
		return stats, fmt.Errorf("save snapshot: %w", err)
	}
	return stats, nil
}
