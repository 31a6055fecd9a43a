package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taigrr/scanline/pkg/input"
	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
	"github.com/taigrr/scanline/pkg/scene"
)

// config holds the flag values shared by every command.
type config struct {
	width      int
	height     int
	halfWidth  float64
	halfHeight float64
	bands      int
	bg         string
	scene      string
	fps        int
	moveStep   float64
	turnStep   float64
	cam        string
	look       string
	logLevel   string
	logFile    string
}

func (c *config) bindFlags(cmd *cobra.Command) {
	d := render.DefaultOptions()
	s := input.DefaultSteps()

	f := cmd.PersistentFlags()
	f.IntVar(&c.width, "width", d.Width, "Framebuffer width in pixels (window and snapshot)")
	f.IntVar(&c.height, "height", d.Height, "Framebuffer height in pixels (window and snapshot)")
	f.Float64Var(&c.halfWidth, "half-width", d.HalfWidth, "View frame half width at unit distance")
	f.Float64Var(&c.halfHeight, "half-height", d.HalfHeight, "View frame half height at unit distance")
	f.IntVar(&c.bands, "bands", d.Bands, "Parallel bands per triangle fill")
	f.StringVar(&c.bg, "bg", "30,30,40", "Background color (R,G,B)")
	f.StringVar(&c.scene, "scene", "demo", fmt.Sprintf("Built-in scene %v", scene.Names()))
	f.IntVar(&c.fps, "fps", 60, "Target FPS")
	f.Float64Var(&c.moveStep, "move-step", s.Move, "Distance moved per key press")
	f.Float64Var(&c.turnStep, "turn-step", s.Turn, "Radians turned per key press")
	f.StringVar(&c.cam, "cam", "0,0,0", "Initial camera position (X,Y,Z)")
	f.StringVar(&c.look, "look", "", "Point the camera at (X,Y,Z) on start")
	f.StringVar(&c.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	f.StringVar(&c.logFile, "log-file", "", "Write logs to this file")
}

// options builds renderer options for a width x height framebuffer.
func (c *config) options(width, height int) (render.Options, error) {
	bg, err := render.ParseRGB(c.bg)
	if err != nil {
		return render.Options{}, err
	}
	opts := render.Options{
		Width:      width,
		Height:     height,
		Bands:      c.bands,
		HalfWidth:  c.halfWidth,
		HalfHeight: c.halfHeight,
		Background: bg,
	}
	if err := opts.Validate(); err != nil {
		return render.Options{}, err
	}
	if c.fps <= 0 {
		return render.Options{}, fmt.Errorf("invalid fps %d", c.fps)
	}
	return opts, nil
}

// camera creates the starting camera for opts.
func (c *config) camera(opts render.Options) (*render.Camera, error) {
	cam := opts.NewCamera()

	pos, err := parseVec3(c.cam)
	if err != nil {
		return nil, fmt.Errorf("--cam: %w", err)
	}
	cam.SetPosition(pos)

	if c.look != "" {
		target, err := parseVec3(c.look)
		if err != nil {
			return nil, fmt.Errorf("--look: %w", err)
		}
		cam.LookAt(target)
	}
	return cam, nil
}

func (c *config) steps() input.Steps {
	return input.Steps{Move: c.moveStep, Turn: c.turnStep}
}

func (c *config) faces() ([]render.Face, *scene.Mesh, error) {
	m, err := scene.Builtin(c.scene)
	if err != nil {
		return nil, nil, err
	}
	return m.Triangles(), m, nil
}

func parseVec3(s string) (math3d.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math3d.Vec3{}, fmt.Errorf("parse vector %q: want 3 components, got %d", s, len(parts))
	}
	var xyz [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("parse vector %q: %w", s, err)
		}
		xyz[i] = f
	}
	return math3d.V3(xyz[0], xyz[1], xyz[2]), nil
}

var errBadLevel = errors.New("unknown log level")

// setupLogging installs the render package logger. Logs go to --log-file
// when set, otherwise to fallback; a nil fallback keeps logging off. The
// returned function closes the log file.
func (c *config) setupLogging(fallback io.Writer) (func() error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return nil, fmt.Errorf("%w %q", errBadLevel, c.logLevel)
	}

	w, closeFn := fallback, func() error { return nil }
	if c.logFile != "" {
		f, err := os.OpenFile(c.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	if w == nil {
		render.SetLogger(nil)
		return closeFn, nil
	}
	render.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}
