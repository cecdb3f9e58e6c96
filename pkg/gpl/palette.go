// Package gpl reads GIMP palette (.gpl) files.
package gpl

import (
	"math"

	"github.com/Faultbox/pixelbrush/pkg/colormodel"
)

// Entry is one color of a palette.
type Entry struct {
	Color colormodel.Normalized
	Label string // Empty when the file gives no label
}

// Palette is a parsed palette file. It is read-only once returned by the loader.
type Palette struct {
	name    string
	columns int
	entries []Entry
	path    string
}

// FallbackEntries returns the black and white pair used for palettes that
// define no colors.
func FallbackEntries() []Entry {
	return []Entry{
		{Color: colormodel.Black},
		{Color: colormodel.White},
	}
}

// Name returns the display name.
func (p *Palette) Name() string {
	return p.name
}

// Columns returns the grid column hint; 0 means automatic layout.
func (p *Palette) Columns() int {
	return p.columns
}

// Path returns the file the palette was read from, or "" for streams.
func (p *Palette) Path() string {
	return p.path
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entry returns the entry at index i in file order.
func (p *Palette) Entry(i int) Entry {
	return p.entries[i]
}

// Entries returns a copy of all entries in file order.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Nearest returns the index of the entry perceptually closest to c,
// measured as Euclidean distance in CIE L*a*b*.
func (p *Palette) Nearest(c colormodel.Normalized) int {
	target := c.Clamped().Colorful()

	best, bestDist := 0, math.Inf(1)
	for i, e := range p.entries {
		d := target.DistanceLab(e.Color.Clamped().Colorful())
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
