// Package colormodel converts between the color representations used by the
// editor: 8-bit integer RGB, normalized float RGB and "#RRGGBB" hex strings.
package colormodel

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with integer channels, nominally 0-255.
type RGB struct {
	R, G, B int
}

// Normalized is a color with float channels in 0.0-1.0.
// It is the canonical in-memory form of a color.
type Normalized struct {
	R, G, B float64
}

// Fallback colors.
var (
	Black = Normalized{0, 0, 0}
	White = Normalized{1, 1, 1}
)

// Normalized divides each channel by 255.
// Channels outside 0-255 produce out-of-range results; no clamping happens here.
func (c RGB) Normalized() Normalized {
	return Normalized{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex formats the color as "#RRGGBB" with uppercase digits.
// Channels must already be in 0-255; route float colors through
// Normalized.RGB first.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the CSS form "rgb(R, G, B)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGB clamps each channel to 0.0-1.0, scales by 255 and rounds half away
// from zero. NaN channels map to 0.
func (c Normalized) RGB() RGB {
	cl := c.Clamped()
	return RGB{
		R: toByte(cl.R),
		G: toByte(cl.G),
		B: toByte(cl.B),
	}
}

// Hex returns the "#RRGGBB" form of the clamped color.
func (c Normalized) Hex() string {
	return c.RGB().Hex()
}

// Clamped returns the color with every channel limited to 0.0-1.0.
func (c Normalized) Clamped() Normalized {
	return FromColorful(c.Colorful().Clamped())
}

// Colorful returns the color as a go-colorful value.
func (c Normalized) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// NRGBA returns an opaque image color.
func (c Normalized) NRGBA() color.NRGBA {
	rgb := c.RGB()
	return color.NRGBA{R: uint8(rgb.R), G: uint8(rgb.G), B: uint8(rgb.B), A: 255}
}

// FromColorful converts a go-colorful value without clamping.
func FromColorful(c colorful.Color) Normalized {
	return Normalized{R: c.R, G: c.G, B: c.B}
}

func toByte(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v * 255))
}
