// Package paint holds editor state that the GUI shell binds its widgets to:
// the brush, the palette swatches and the color label.
package paint

import (
	"errors"
	"fmt"

	"github.com/Faultbox/pixelbrush/pkg/colormodel"
)

// MinBrushSize is the smallest brush diameter in pixels.
const MinBrushSize = 1.0

// ErrBrushSize is returned when a brush size is outside the allowed range.
var ErrBrushSize = errors.New("brush size out of range")

// Brush is the current painting tool.
type Brush struct {
	color   colormodel.Normalized
	size    float64
	maxSize float64
}

// NewBrush returns a black brush of minimum size that accepts sizes up to
// maxSize, the top of the size slider.
func NewBrush(maxSize float64) (*Brush, error) {
	// NaN fails this comparison too
	if !(maxSize >= MinBrushSize) {
		return nil, fmt.Errorf("%w: max %v < %v", ErrBrushSize, maxSize, MinBrushSize)
	}
	return &Brush{color: colormodel.Black, size: MinBrushSize, maxSize: maxSize}, nil
}

// Color returns the brush color.
func (b *Brush) Color() colormodel.Normalized {
	return b.color
}

// SetColor changes the brush color.
func (b *Brush) SetColor(c colormodel.Normalized) {
	b.color = c
}

// Size returns the brush diameter.
func (b *Brush) Size() float64 {
	return b.size
}

// MaxSize returns the largest accepted diameter.
func (b *Brush) MaxSize() float64 {
	return b.maxSize
}

// SetSize changes the brush diameter. The size is left unchanged on error.
func (b *Brush) SetSize(size float64) error {
	if !(size >= MinBrushSize && size <= b.maxSize) {
		return fmt.Errorf("%w: %v outside [%v, %v]", ErrBrushSize, size, MinBrushSize, b.maxSize)
	}
	b.size = size
	return nil
}

// ColorLabel returns the two-line text shown for a selected color:
// "#RRGGBB" and "rgb(R, G, B)".
func ColorLabel(c colormodel.Normalized) string {
	rgb := c.RGB()
	return rgb.Hex() + "\n" + rgb.String()
}
