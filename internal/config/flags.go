package config

// This file implements CLI flag parsing and help text for gather-images.
// Date flags are captured as strings and parsed after Parse so error
// messages can name the offending value.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (unknown flag, malformed date).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("gather-images", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var raw rawFlags

	defineDateFlags(fs, &raw)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &raw)
	defineUtilityFlags(fs, &raw)
	fs.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Path to configuration file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if raw.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if raw.showVersion {
		fmt.Fprintln(os.Stdout, "gather-images v"+version)
		os.Exit(0)
	}

	applyColorFlags(cfg, &raw)
	return applyDateFlags(cfg, &raw)
}

// rawFlags holds values that need post-Parse handling: date strings, color
// overrides, and the exit-after-printing flags.
type rawFlags struct {
	fromDate    string
	toDate      string
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineDateFlags registers --from-date and --to-date as raw strings.
func defineDateFlags(fs *flag.FlagSet, raw *rawFlags) {
	fs.StringVar(&raw.fromDate, "from-date", "", "Start date in YYYY-MM-DD format (required)")
	fs.StringVar(&raw.toDate, "to-date", "", "End date in YYYY-MM-DD format (default: yesterday)")
}

// defineBehaviorFlags registers --dry-run and --exif-dates.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not create directories or copy files")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.EXIFDate, "exif-dates", false, "Try the EXIF capture date before mtime for images")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, raw *rawFlags) {
	fs.BoolVar(&raw.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&raw.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, raw *rawFlags) {
	fs.BoolVar(&raw.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&raw.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&raw.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&raw.showHelp, "h", false, "Same as --help")
}

// applyColorFlags resolves --color/--no-color into cfg.ColorMode.
func applyColorFlags(cfg *Config, raw *rawFlags) {
	if raw.noColor {
		cfg.ColorMode = ColorNever
	} else if raw.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// applyDateFlags parses the captured date strings into cfg. An absent
// --to-date leaves the default (yesterday) in place.
func applyDateFlags(cfg *Config, raw *rawFlags) error {
	if raw.fromDate != "" {
		t, err := ParseDate(raw.fromDate)
		if err != nil {
			return err
		}
		cfg.FromDate = Midnight(t)
	}
	if raw.toDate != "" {
		t, err := ParseDate(raw.toDate)
		if err != nil {
			return err
		}
		cfg.ToDate = Midnight(t)
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "gather-images v" + version + " — organize photos and videos with date filtering and deduplication"},
		{"", ""},
		{"  gather-images --from-date YYYY-MM-DD [OPTIONS]", ""},
		{"", ""},
		{"Selection", ""},
		{"  --from-date <date>", "Start date, YYYY-MM-DD (required)"},
		{"  --to-date <date>", "End date, YYYY-MM-DD (default: yesterday)"},
		{"  --config <path>", "Configuration file (default: config.ini)"},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Preview only; do not copy anything"},
		{"  --exif-dates", "Try EXIF capture date before mtime for images"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
