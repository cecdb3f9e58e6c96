package paint

import (
	"errors"
	"fmt"

	"github.com/Faultbox/pixelbrush/pkg/colormodel"
	"github.com/Faultbox/pixelbrush/pkg/gpl"
)

// ErrSwatchIndex is returned for a swatch index outside the group.
var ErrSwatchIndex = errors.New("swatch index out of range")

// Swatch is a selectable color cell.
type Swatch interface {
	Color() colormodel.Normalized
	Label() string
	Selected() bool
}

// ColorSwatch is a Swatch backed by a palette entry.
type ColorSwatch struct {
	entry    gpl.Entry
	selected bool
}

// Color returns the palette entry's color.
func (s *ColorSwatch) Color() colormodel.Normalized {
	return s.entry.Color
}

// Label returns the palette entry's label, "" when the file gave none.
func (s *ColorSwatch) Label() string {
	return s.entry.Label
}

// Selected reports whether the swatch is the group's current selection.
func (s *ColorSwatch) Selected() bool {
	return s.selected
}

// SwatchGroup is a toggle group: at most one swatch is selected.
type SwatchGroup struct {
	swatches []*ColorSwatch
	handlers []func(index int, s Swatch)
}

// NewSwatchGroup creates one swatch per palette entry, in entry order.
func NewSwatchGroup(p *gpl.Palette) *SwatchGroup {
	g := &SwatchGroup{swatches: make([]*ColorSwatch, p.Len())}
	for i := range g.swatches {
		g.swatches[i] = &ColorSwatch{entry: p.Entry(i)}
	}
	return g
}

// Len returns the number of swatches.
func (g *SwatchGroup) Len() int {
	return len(g.swatches)
}

// Swatch returns the swatch at index i.
func (g *SwatchGroup) Swatch(i int) Swatch {
	return g.swatches[i]
}

// OnPress registers fn to be called after every press.
func (g *SwatchGroup) OnPress(fn func(index int, s Swatch)) {
	g.handlers = append(g.handlers, fn)
}

// Press toggles swatch i. Selecting it clears any other selection; pressing
// the selected swatch deselects it. Handlers run in both cases.
func (g *SwatchGroup) Press(i int) error {
	if i < 0 || i >= len(g.swatches) {
		return fmt.Errorf("%w: %d", ErrSwatchIndex, i)
	}

	pressed := g.swatches[i]
	if pressed.selected {
		pressed.selected = false
	} else {
		for _, s := range g.swatches {
			s.selected = false
		}
		pressed.selected = true
	}

	for _, fn := range g.handlers {
		fn(i, pressed)
	}
	return nil
}

// Selected returns the selected swatch and its index, if any.
func (g *SwatchGroup) Selected() (int, Swatch, bool) {
	for i, s := range g.swatches {
		if s.selected {
			return i, s, true
		}
	}
	return -1, nil, false
}
