// Package config holds runtime configuration for the organizer: defaults,
// CLI flag parsing, validation, and loading of the sectioned config.ini
// folder lists. The pipeline only ever sees the resulting Config value and
// never reads configuration files itself.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Category identifies the semantic type of a configured folder group. The
// values double as the config.ini section names.
type Category string

const (
	CategoryWhatsAppImages Category = "whatsapp_images"
	CategoryWhatsAppVideos Category = "whatsapp_videos"
	CategoryRegular        Category = "image_folders"
)

// FolderGroup is one configured list of input folders sharing a category.
type FolderGroup struct {
	Category Category
	Folders  []string
}

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings for a gather-images run. It is populated
// by [DefaultConfig], mutated by [ParseFlags], and completed by
// [LoadFolders] before being passed (by pointer) to the pipeline.
type Config struct {
	// Date range (inclusive, calendar dates at UTC midnight).
	FromDate time.Time // Required via --from-date.
	ToDate   time.Time // Default: yesterday.

	// Config file.
	ConfigPath string // Default: "config.ini".

	// Loaded from the config file by [LoadFolders].
	Groups     []FolderGroup // Processing order: whatsapp images, whatsapp videos, regular.
	OutputBase string

	// Behavior flags.
	DryRun   bool
	EXIFDate bool // Try EXIF capture date before mtime for images.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with defaults matching the documented CLI
// contract: config.ini in the working directory and a to-date of yesterday.
func DefaultConfig() Config {
	return Config{
		ToDate:     Yesterday(),
		ConfigPath: "config.ini",
		ColorMode:  ColorAuto,
	}
}

// Yesterday returns yesterday's calendar date at UTC midnight.
func Yesterday() time.Time {
	return Midnight(time.Now().AddDate(0, 0, -1))
}

// Midnight truncates t to its calendar date, normalized to UTC so that
// range comparisons are pure date comparisons regardless of the source
// timestamp's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a CLI date argument in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t, nil
}

// Validate checks the date range. FromDate is required; the range is
// inclusive so equal dates are fine.
func (c *Config) Validate() error {
	if c.FromDate.IsZero() {
		return errors.New("--from-date is required")
	}
	if c.ToDate.IsZero() {
		return errors.New("to-date must not be empty")
	}
	if c.FromDate.After(c.ToDate) {
		return errors.New("from-date must be before or equal to to-date")
	}
	return nil
}

// OutputFolderName returns the run's output directory name, derived from the
// end of the date range.
func (c *Config) OutputFolderName() string {
	return "allebilder-bis-" + c.ToDate.Format("2006-01-02")
}
