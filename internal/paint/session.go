package paint

import (
	"errors"
	"fmt"

	"github.com/Faultbox/pixelbrush/pkg/gpl"
)

// ErrPaletteNotFound is returned when the configured palette is not loaded.
var ErrPaletteNotFound = errors.New("palette not found")

// Session is the editor state for one run of the application.
type Session struct {
	palette  *gpl.Palette
	swatches *SwatchGroup
	brush    *Brush
	label    string
}

// NewSession selects the named palette from palettes and wires its swatches
// to the brush. The brush starts at brushSize and never exceeds maxBrushSize.
func NewSession(palettes *gpl.Collection, paletteName string, brushSize, maxBrushSize float64) (*Session, error) {
	p, ok := palettes.Find(paletteName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPaletteNotFound, paletteName)
	}

	brush, err := NewBrush(maxBrushSize)
	if err != nil {
		return nil, err
	}
	if err := brush.SetSize(brushSize); err != nil {
		return nil, err
	}

	s := &Session{
		palette:  p,
		swatches: NewSwatchGroup(p),
		brush:    brush,
	}
	s.swatches.OnPress(s.pickColor)
	return s, nil
}

// pickColor runs on every swatch press, including the one that deselects.
func (s *Session) pickColor(_ int, sw Swatch) {
	s.brush.SetColor(sw.Color())
	s.label = ColorLabel(sw.Color())
}

// Palette returns the active palette.
func (s *Session) Palette() *gpl.Palette {
	return s.palette
}

// Swatches returns the swatch group of the active palette.
func (s *Session) Swatches() *SwatchGroup {
	return s.swatches
}

// Brush returns the brush.
func (s *Session) Brush() *Brush {
	return s.brush
}

// PressSwatch presses swatch i, as a click on it would.
func (s *Session) PressSwatch(i int) error {
	return s.swatches.Press(i)
}

// SetBrushSize follows the brush size slider. Sizes outside
// [MinBrushSize, max] return ErrBrushSize.
func (s *Session) SetBrushSize(size float64) error {
	return s.brush.SetSize(size)
}

// ColorLabel returns the text for the last picked color, "" before any pick.
func (s *Session) ColorLabel() string {
	return s.label
}
