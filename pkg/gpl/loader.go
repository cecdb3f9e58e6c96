package gpl

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// LoadOptions controls how ReadPalettesWithOptions treats bad files.
type LoadOptions struct {
	// SkipInvalid skips files with a bad header instead of failing the load.
	// I/O errors always fail.
	SkipInvalid bool
	// OnSkip is called for every skipped file. May be nil.
	OnSkip func(path string, err error)
}

// Collection holds every palette found under a root directory.
type Collection struct {
	palettes []*Palette
}

// ReadPalettes loads every .gpl file under root, recursively.
// The first file with an invalid header aborts the load.
func ReadPalettes(root string) (*Collection, error) {
	return ReadPalettesWithOptions(root, LoadOptions{})
}

// ReadPalettesWithOptions loads every .gpl file under root, recursively,
// in lexical path order.
func ReadPalettesWithOptions(root string, opts LoadOptions) (*Collection, error) {
	c := &Collection{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() || !strings.EqualFold(filepath.Ext(path), Extension) {
			return nil
		}

		p, err := ParseFile(path)
		if err != nil {
			if opts.SkipInvalid && errors.Is(err, ErrInvalidHeader) {
				if opts.OnSkip != nil {
					opts.OnSkip(path, err)
				}
				return nil
			}
			return err
		}
		c.palettes = append(c.palettes, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading palettes from %s: %w", root, err)
	}

	return c, nil
}

// NewCollection builds a collection from already parsed palettes.
func NewCollection(palettes ...*Palette) *Collection {
	c := &Collection{palettes: make([]*Palette, len(palettes))}
	copy(c.palettes, palettes)
	return c
}

// Len returns the number of palettes.
func (c *Collection) Len() int {
	return len(c.palettes)
}

// All returns the palettes in discovery order.
func (c *Collection) All() []*Palette {
	out := make([]*Palette, len(c.palettes))
	copy(out, c.palettes)
	return out
}

// Names returns the palette names in discovery order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.palettes))
	for i, p := range c.palettes {
		names[i] = p.name
	}
	return names
}

// Find returns the first palette with the given name.
func (c *Collection) Find(name string) (*Palette, bool) {
	for _, p := range c.palettes {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}
