// paltool is a CLI utility for inspecting GIMP palettes used by the editor.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/pixelbrush/internal/config"
	"github.com/Faultbox/pixelbrush/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Stdout, cfg, args[0], args[1:]); err != nil {
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`paltool - GIMP palette utility

Usage:
  paltool [flags] <command> [options]

Commands:
  list [dir]                      List palettes (name, columns, colors)
  show [name]                     Show palette entries
  pick <index>                    Pick a swatch from the default palette
  nearest <R> <G> <B> [name]      Find the closest palette color
  sheet [-cell N] <name> <out>    Render a swatch sheet image
  config init [path]              Write the default config file

Flags:
  -config <file>     Config file path
  -palettes <dir>    Palette directory
  -palette <name>    Default palette
  -skip-invalid      Skip palette files with a bad header
  -brush-size <n>    Initial brush size
  -debug             Enable debug logging

Examples:
  paltool list
  paltool -palettes /usr/share/gimp/2.0/palettes show Web
  paltool pick 3
  paltool nearest 200 40 40
  paltool sheet -cell 32 toxic-raven raven.png`)
}
