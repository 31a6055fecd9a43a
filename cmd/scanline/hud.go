package main

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/scanline/pkg/render"
)

// HUD shows frame timing and pipeline counts. The frame time readout is
// eased toward each new measurement with a critically damped spring so the
// number stays readable; the camera itself is never smoothed.
type HUD struct {
	scene     string
	triangles int

	spring  harmonica.Spring
	frameMS float64
	frameV  float64
	stats   render.FrameStats
}

// NewHUD creates a HUD for a scene of the given size.
func NewHUD(scene string, triangles, fps int) *HUD {
	return &HUD{
		scene:     scene,
		triangles: triangles,
		// Frequency 6.0 settles within a few frames, damping 1.0 = no overshoot
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Update feeds one frame's statistics (call once per frame).
func (h *HUD) Update(stats render.FrameStats) {
	ms := float64(stats.Elapsed) / float64(time.Millisecond)
	if h.frameMS == 0 {
		h.frameMS = ms
	}
	h.frameMS, h.frameV = h.spring.Update(h.frameMS, h.frameV, ms)
	h.stats = stats
}

// FrameTime returns the eased frame time.
func (h *HUD) FrameTime() time.Duration {
	return time.Duration(h.frameMS * float64(time.Millisecond))
}

// Status returns the top status line.
func (h *HUD) Status() string {
	return fmt.Sprintf("%s  %d tris  %.1f ms  drawn %d  culled %d  px %d",
		h.scene, h.triangles, h.frameMS, h.stats.Drawn, h.stats.Culled, h.stats.Written)
}

// CameraLine describes the camera position and orientation in degrees.
func (h *HUD) CameraLine(cam *render.Camera) string {
	p, o := cam.Position, cam.Orientation
	return fmt.Sprintf("pos %.2f,%.2f,%.2f  θ %.0f°  φ %.0f°",
		p.X, p.Y, p.Z, o.Theta*180/math.Pi, o.Phi*180/math.Pi)
}

// Render returns the escape sequence that draws the HUD on the top and
// bottom rows of a width x height terminal.
func (h *HUD) Render(width, height int, cam *render.Camera) string {
	// ANSI escape codes for positioning and styling
	const (
		reset     = "\x1b[0m"
		bgBlack   = "\x1b[40m"
		fgGreen   = "\x1b[92m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	status := truncate(h.Status(), width-2)
	camLine := truncate(h.CameraLine(cam), width-2)
	return moveTo(1, 1) + clearLine + bgBlack + fgGreen + " " + status + " " + reset +
		moveTo(height, 1) + clearLine + bgBlack + fgCyan + " " + camLine + " " + reset
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
