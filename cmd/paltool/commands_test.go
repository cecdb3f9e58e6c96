package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/pixelbrush/internal/config"
	"github.com/Faultbox/pixelbrush/internal/paint"
	"github.com/Faultbox/pixelbrush/pkg/gpl"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"toxic-raven.gpl": "GIMP Palette\nColumns: 2\n18 52 86 Ink\n255 0 0 Red\n0 255 0 Green\n",
		"extra/bw.gpl":    "GIMP Palette\nName: Mono\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	cfg := config.Default()
	cfg.Palettes.Dir = dir
	return cfg
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, testConfig(t), "list", nil); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	for _, want := range []string{"toxic-raven", "Mono", "(2 palettes)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestRun_Show(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, testConfig(t), "show", nil); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	for _, want := range []string{"Palette: toxic-raven", "Columns: 2", "#123456", "rgb(18, 52, 86)", "Ink"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestRun_ShowMissing(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, testConfig(t), "show", []string{"nope"})
	if !errors.Is(err, paint.ErrPaletteNotFound) {
		t.Errorf("expected ErrPaletteNotFound, got %v", err)
	}
}

func TestRun_Pick(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, testConfig(t), "pick", []string{"0"}); err != nil {
		t.Fatalf("pick failed: %v", err)
	}
	if out.String() != "#123456\nrgb(18, 52, 86)\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRun_Nearest(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, testConfig(t), "nearest", []string{"250", "10", "10"}); err != nil {
		t.Fatalf("nearest failed: %v", err)
	}
	if !strings.Contains(out.String(), "Red") {
		t.Errorf("expected Red to be nearest, got %q", out.String())
	}

	err := run(&out, testConfig(t), "nearest", []string{"300", "0", "0"})
	if !errors.Is(err, errUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestRun_Sheet(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "raven.png")
	if err := run(&out, testConfig(t), "sheet", []string{"-cell", "4", "toxic-raven", path}); err != nil {
		t.Fatalf("sheet failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected sheet file: %v", err)
	}
	if !strings.Contains(out.String(), "2x2 swatches") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRun_InvalidHeaderPolicy(t *testing.T) {
	cfg := testConfig(t)
	if err := os.WriteFile(filepath.Join(cfg.Palettes.Dir, "broken.gpl"), []byte("nope\n"), 0644); err != nil {
		t.Fatalf("failed to write palette: %v", err)
	}

	var out bytes.Buffer
	if err := run(&out, cfg, "list", nil); !errors.Is(err, gpl.ErrInvalidHeader) {
		t.Errorf("expected ErrInvalidHeader, got %v", err)
	}

	cfg.Palettes.SkipInvalid = true
	out.Reset()
	if err := run(&out, cfg, "list", nil); err != nil {
		t.Fatalf("list with skip_invalid failed: %v", err)
	}
	if !strings.Contains(out.String(), "(2 palettes)") {
		t.Errorf("expected 2 palettes, got:\n%s", out.String())
	}
}

func TestRun_ConfigInit(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := run(&out, config.Default(), "config", []string{"init", path}); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if !strings.Contains(string(data), "toxic-raven") {
		t.Errorf("expected default palette in config, got:\n%s", data)
	}
}

func TestRun_Unknown(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, config.Default(), "paint", nil); !errors.Is(err, errUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
}
