package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagPalettes    = flag.String("palettes", "", "Directory scanned for .gpl palettes")
	flagPalette     = flag.String("palette", "", "Palette selected at startup")
	flagSkipInvalid = flag.Bool("skip-invalid", false, "Skip palette files with a bad header")
	flagBrushSize   = flag.Float64("brush-size", 0, "Initial brush size")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPalettes != "" {
		cfg.Palettes.Dir = *flagPalettes
	}
	if *flagPalette != "" {
		cfg.Palettes.Default = *flagPalette
	}
	if *flagSkipInvalid {
		cfg.Palettes.SkipInvalid = true
	}
	if *flagBrushSize > 0 {
		cfg.Brush.Size = *flagBrushSize
	}
}
