package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/pixelbrush/internal/config"
	"github.com/Faultbox/pixelbrush/internal/logger"
	"github.com/Faultbox/pixelbrush/internal/paint"
	"github.com/Faultbox/pixelbrush/pkg/colormodel"
	"github.com/Faultbox/pixelbrush/pkg/gpl"
)

var errUsage = errors.New("invalid usage")

func run(w io.Writer, cfg *config.Config, command string, args []string) error {
	switch command {
	case "list", "ls":
		return cmdList(w, cfg, args)
	case "show":
		return cmdShow(w, cfg, args)
	case "pick":
		return cmdPick(w, cfg, args)
	case "nearest":
		return cmdNearest(w, cfg, args)
	case "sheet":
		return cmdSheet(w, cfg, args)
	case "config":
		return cmdConfig(w, cfg, args)
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

// loadPalettes reads the palette directory using the configured error policy.
func loadPalettes(cfg *config.Config, dir string) (*gpl.Collection, error) {
	opts := gpl.LoadOptions{
		SkipInvalid: cfg.Palettes.SkipInvalid,
		OnSkip:      logger.SkipReporter(),
	}

	palettes, err := gpl.ReadPalettesWithOptions(dir, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("palettes loaded", zap.String("dir", dir), zap.Int("count", palettes.Len()))
	return palettes, nil
}

func findPalette(cfg *config.Config, name string) (*gpl.Palette, error) {
	palettes, err := loadPalettes(cfg, cfg.Palettes.Dir)
	if err != nil {
		return nil, err
	}
	p, ok := palettes.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", paint.ErrPaletteNotFound, name)
	}
	return p, nil
}

func cmdList(w io.Writer, cfg *config.Config, args []string) error {
	dir := cfg.Palettes.Dir
	if len(args) > 0 {
		dir = args[0]
	}

	palettes, err := loadPalettes(cfg, dir)
	if err != nil {
		return err
	}

	for _, p := range palettes.All() {
		rel, err := filepath.Rel(dir, p.Path())
		if err != nil {
			rel = p.Path()
		}
		fmt.Fprintf(w, "%-24s %3d cols %4d colors  %s\n", p.Name(), p.Columns(), p.Len(), rel)
	}
	fmt.Fprintf(w, "\n(%d palettes)\n", palettes.Len())
	return nil
}

func cmdShow(w io.Writer, cfg *config.Config, args []string) error {
	name := cfg.Palettes.Default
	if len(args) > 0 {
		name = args[0]
	}

	p, err := findPalette(cfg, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Palette: %s\n", p.Name())
	fmt.Fprintf(w, "Columns: %d\n", p.Columns())
	fmt.Fprintf(w, "Colors:  %d\n\n", p.Len())
	for i, e := range p.Entries() {
		rgb := e.Color.RGB()
		fmt.Fprintf(w, "%4d  %s  %-20s %s\n", i, rgb.Hex(), rgb.String(), e.Label)
	}
	return nil
}

func cmdPick(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: paltool pick <index>", errUsage)
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: index %q is not a number", errUsage, args[0])
	}

	palettes, err := loadPalettes(cfg, cfg.Palettes.Dir)
	if err != nil {
		return err
	}
	session, err := paint.NewSession(palettes, cfg.Palettes.Default, cfg.Brush.Size, cfg.Brush.MaxSize)
	if err != nil {
		return err
	}
	if err := session.PressSwatch(index); err != nil {
		return err
	}

	fmt.Fprintln(w, session.ColorLabel())
	return nil
}

func cmdNearest(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: paltool nearest <R> <G> <B> [name]", errUsage)
	}

	var channels [3]int
	for i := range channels {
		v, err := strconv.Atoi(args[i])
		if err != nil || v < 0 || v > 255 {
			return fmt.Errorf("%w: channel %q must be 0-255", errUsage, args[i])
		}
		channels[i] = v
	}

	name := cfg.Palettes.Default
	if len(args) > 3 {
		name = args[3]
	}
	p, err := findPalette(cfg, name)
	if err != nil {
		return err
	}

	target := colormodel.RGB{R: channels[0], G: channels[1], B: channels[2]}
	i := p.Nearest(target.Normalized())
	e := p.Entry(i)
	fmt.Fprintf(w, "%s -> %d %s %s\n", target.Hex(), i, e.Color.Hex(), e.Label)
	return nil
}

func cmdSheet(w io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("sheet", flag.ContinueOnError)
	cell := fs.Int("cell", 16, "Swatch size in pixels")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("%w: paltool sheet [-cell N] <name> <out.png>", errUsage)
	}

	p, err := findPalette(cfg, fs.Arg(0))
	if err != nil {
		return err
	}
	if err := gpl.SaveSheet(p, *cell, fs.Arg(1)); err != nil {
		return fmt.Errorf("writing sheet: %w", err)
	}

	cols, rows := gpl.SheetSize(p)
	fmt.Fprintf(w, "Wrote: %s (%dx%d swatches)\n", fs.Arg(1), cols, rows)
	return nil
}

func cmdConfig(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 1 || args[0] != "init" {
		return fmt.Errorf("%w: paltool config init [path]", errUsage)
	}

	path := filepath.Join(config.ConfigDir(), "config.yaml")
	if len(args) > 1 {
		path = args[1]
	}
	if err := config.Default().SaveTo(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(w, "Wrote: %s\n", path)
	return nil
}
