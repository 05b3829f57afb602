// Command gather-images organizes photos and videos from WhatsApp and
// regular media folders into a dated output tree, filtering by date range,
// dropping exact duplicates, and normalizing filenames.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/holybiber/image-tools/internal/config"
	"github.com/holybiber/image-tools/internal/logging"
	"github.com/holybiber/image-tools/internal/pipeline"
)

// version is injected at build time via -ldflags; plain "go build" keeps
// the default.
var version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr. Once NewLogger succeeds, all output goes through the logger.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "gather-images: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "gather-images: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gather-images: %v\n", err)
		return 1
	}
	defer log.Close()

	if err := cfg.LoadFolders(); err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			log.Error("Configuration file %q not found", cfg.ConfigPath)
			fmt.Fprintln(os.Stderr, "Create a config file with the following structure:")
			fmt.Fprintln(os.Stderr)
			fmt.Fprint(os.Stderr, config.ExampleTemplate)
			return 1
		}
		log.Error("%v", err)
		return 1
	}

	log.Info("=== gather-images v%s ===", version)
	if cfg.DryRun {
		log.Warn("DRY RUN — no directories are created and no files are copied")
	}

	runner := pipeline.NewRunner(afero.NewOsFs(), &cfg, log)
	if _, err := runner.Run(); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}
