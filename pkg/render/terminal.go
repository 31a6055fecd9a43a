package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen. Each terminal row shows two framebuffer rows using ▀ with the
// foreground as the top pixel and the background as the bottom pixel, so
// the framebuffer height should be 2x the terminal height.
func (fb *FrameBuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col-area.Min.X < fb.Width; col++ {
			x := col - area.Min.X
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(fb.GetPixel(x, topY)),
					Bg: cellColor(fb.GetPixel(x, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// cellColor converts a pixel to a cell color; transparent means no color.
func cellColor(c Color) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}

// TerminalSize returns the framebuffer dimensions that fill a terminal of
// cols x rows cells with half-block drawing.
func TerminalSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}
