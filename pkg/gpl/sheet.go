package gpl

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// ErrInvalidCellSize is returned for swatch cells smaller than one pixel.
var ErrInvalidCellSize = errors.New("swatch cell size must be positive")

// SheetSize returns the grid used to lay out the palette. The column hint is
// honored; without one the grid is as close to square as possible.
func SheetSize(p *Palette) (cols, rows int) {
	n := p.Len()
	if n == 0 {
		return 0, 0
	}
	cols = p.columns
	if cols <= 0 {
		cols = int(math.Ceil(math.Sqrt(float64(n))))
	}
	if cols > n {
		cols = n
	}
	rows = (n + cols - 1) / cols
	return cols, rows
}

// RenderSheet draws the palette as a grid of cell x cell swatches in entry
// order. Unused cells in the last row stay transparent.
func RenderSheet(p *Palette, cell int) (*image.NRGBA, error) {
	if cell <= 0 {
		return nil, ErrInvalidCellSize
	}

	cols, rows := SheetSize(p)
	sheet := imaging.New(cols*cell, rows*cell, color.Transparent)
	for i, e := range p.entries {
		swatch := imaging.New(cell, cell, e.Color.NRGBA())
		pos := image.Pt((i%cols)*cell, (i/cols)*cell)
		sheet = imaging.Paste(sheet, swatch, pos)
	}
	return sheet, nil
}

// SaveSheet renders the palette and writes it to path. The image format
// follows the file extension.
func SaveSheet(p *Palette, cell int, path string) error {
	sheet, err := RenderSheet(p, cell)
	if err != nil {
		return err
	}
	return imaging.Save(sheet, path)
}
