package gpl

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func TestSheetSize(t *testing.T) {
	tests := []struct {
		name     string
		columns  int
		entries  int
		wantCols int
		wantRows int
	}{
		{"auto square", 0, 16, 4, 4},
		{"auto partial", 0, 5, 3, 2},
		{"fallback", 0, 2, 2, 1},
		{"hinted", 4, 10, 4, 3},
		{"hint wider than palette", 8, 3, 3, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &Palette{columns: tc.columns, entries: make([]Entry, tc.entries)}
			cols, rows := SheetSize(p)
			if cols != tc.wantCols || rows != tc.wantRows {
				t.Errorf("expected %dx%d, got %dx%d", tc.wantCols, tc.wantRows, cols, rows)
			}
		})
	}
}

func TestRenderSheet(t *testing.T) {
	p, err := Parse(strings.NewReader("GIMP Palette\nColumns: 2\n255 0 0\n0 255 0\n0 0 255\n"), "rgb")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	img, err := RenderSheet(p, 8)
	if err != nil {
		t.Fatalf("RenderSheet failed: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("expected 16x16 sheet, got %dx%d", b.Dx(), b.Dy())
	}

	checks := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{R: 255, A: 255}},
		{15, 7, color.NRGBA{G: 255, A: 255}},
		{3, 12, color.NRGBA{B: 255, A: 255}},
		{12, 12, color.NRGBA{}},
	}
	for _, c := range checks {
		if got := img.NRGBAAt(c.x, c.y); got != c.want {
			t.Errorf("pixel (%d,%d): expected %v, got %v", c.x, c.y, c.want, got)
		}
	}
}

func TestRenderSheet_InvalidCell(t *testing.T) {
	p := &Palette{entries: FallbackEntries()}
	if _, err := RenderSheet(p, 0); err != ErrInvalidCellSize {
		t.Errorf("expected ErrInvalidCellSize, got %v", err)
	}
}

func TestSaveSheet(t *testing.T) {
	p := &Palette{name: "bw", entries: FallbackEntries()}
	path := filepath.Join(t.TempDir(), "bw.png")

	if err := SaveSheet(p, 4, path); err != nil {
		t.Fatalf("SaveSheet failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected sheet file: %v", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("failed to open sheet: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
		t.Errorf("expected 8x4 image, got %v", img.Bounds())
	}
}
