package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorBlack   = color.RGBA{0, 0, 0, 255}
	ColorWhite   = color.RGBA{255, 255, 255, 255}
	ColorRed     = color.RGBA{255, 0, 0, 255}
	ColorGreen   = color.RGBA{0, 255, 0, 255}
	ColorBlue    = color.RGBA{0, 0, 255, 255}
	ColorYellow  = color.RGBA{255, 255, 0, 255}
	ColorCyan    = color.RGBA{0, 255, 255, 255}
	ColorMagenta = color.RGBA{255, 0, 255, 255}
	ColorGray    = color.RGBA{128, 128, 128, 255}
	ColorSky     = color.RGBA{135, 206, 235, 255}
	ColorGrass   = color.RGBA{34, 139, 34, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) Color {
	return color.RGBA{r, g, b, 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) Color {
	return color.RGBA{r, g, b, a}
}

// Pack encodes c as a 32-bit RGBA8888 value with red in the high byte.
func Pack(c Color) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Unpack decodes an RGBA8888 value produced by Pack.
func Unpack(p uint32) Color {
	return color.RGBA{uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)}
}

// ParseRGB parses an "R,G,B" triple such as "30,30,40".
func ParseRGB(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("parse color %q: want 3 components, got %d", s, len(parts))
	}
	var c [3]uint8
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("parse color %q: component %d out of range", s, v)
		}
		c[i] = uint8(v)
	}
	return RGB(c[0], c[1], c[2]), nil
}
