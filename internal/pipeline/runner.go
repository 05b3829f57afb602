// Package pipeline orchestrates one organizer run: output-directory
// validation, the per-category walk→filter→dedup→name→copy loop, and the
// final warnings and statistics report.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/holybiber/image-tools/internal/config"
	"github.com/holybiber/image-tools/internal/dedup"
	"github.com/holybiber/image-tools/internal/display"
	"github.com/holybiber/image-tools/internal/logging"
	"github.com/holybiber/image-tools/internal/naming"
	"github.com/holybiber/image-tools/internal/scan"
)

// Runner carries the mutable state of a single run: the dedup index, the
// statistics counters, and the accumulated warnings. It is created at run
// start and discarded at run end; nothing survives across runs.
type Runner struct {
	fsys       afero.Fs
	cfg        *config.Config
	log        *logging.Logger
	index      *dedup.Index
	stats      RunStats
	warnings   []string
	outputPath string
}

// NewRunner returns a Runner with an empty dedup index.
func NewRunner(fsys afero.Fs, cfg *config.Config, log *logging.Logger) *Runner {
	return &Runner{
		fsys:  fsys,
		cfg:   cfg,
		log:   log,
		index: dedup.NewIndex(fsys),
	}
}

// Run executes the whole pipeline. The returned error is fatal (output
// directory collision or an unusable output tree); per-file failures are
// absorbed into warnings and never abort the run.
func (r *Runner) Run() (RunStats, error) {
	r.log.Info("Organizing media from %s to %s",
		r.cfg.FromDate.Format("2006-01-02"), r.cfg.ToDate.Format("2006-01-02"))

	r.outputPath = filepath.Join(r.cfg.OutputBase, r.cfg.OutputFolderName())
	if _, err := r.fsys.Stat(r.outputPath); err == nil {
		return r.stats, fmt.Errorf("output directory %q already exists, aborting to avoid overwriting", r.outputPath)
	} else if !os.IsNotExist(err) {
		return r.stats, fmt.Errorf("cannot check output directory %q: %w", r.outputPath, err)
	}
	r.log.Info("Output directory: %s", r.outputPath)

	if !r.cfg.DryRun {
		for _, sub := range naming.Subdirs() {
			if err := r.fsys.MkdirAll(filepath.Join(r.outputPath, sub), 0o755); err != nil {
				return r.stats, fmt.Errorf("cannot create output directory: %w", err)
			}
		}
	}

	for _, group := range r.cfg.Groups {
		r.processGroup(group)
	}

	r.report()
	return r.stats, nil
}

// warn records a recoverable condition: logged immediately, counted, and
// repeated in the warnings block of the final report.
func (r *Runner) warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.stats.Warnings++
	r.warnings = append(r.warnings, msg)
	r.log.Warn("%s", msg)
}

// processGroup walks every folder of one configured category. Missing
// folders are warned about and skipped; the run continues.
func (r *Runner) processGroup(group config.FolderGroup) {
	for _, folder := range group.Folders {
		if !scan.Exists(r.fsys, folder) {
			r.warn("input folder does not exist: %s", folder)
			continue
		}
		r.log.Info("Processing %s folder: %s", group.Category, folder)

		err := scan.Walk(r.fsys, folder, r.cfg.FromDate, r.cfg.ToDate, r.cfg.EXIFDate,
			func(path, ext string) {
				r.processFile(group.Category, path, ext)
			},
			func(path string, err error) {
				r.warn("cannot access %s: %v", path, err)
			})
		if err != nil {
			r.warn("walk of %s failed: %v", folder, err)
		}
	}
}

// processFile runs the dedup→name→route→copy stages for one candidate file
// that already passed the extension and date-range filters.
func (r *Runner) processFile(category config.Category, path, ext string) {
	dup, original, err := r.index.IsDuplicate(path)
	if err != nil {
		// Unreadable content is not proof of duplication; keep the file in
		// the pipeline and let the copy stage surface a real I/O problem.
		r.warn("cannot hash %s: %v", path, err)
	}
	if dup {
		r.log.Info("Ignoring duplicate: %s (original: %s)", path, original)
		return
	}

	cleanName := naming.Clean(filepath.Base(path))
	if cleanName != filepath.Base(path) {
		r.log.Debug(r.cfg.Verbose, "Normalized name: %s -> %s", filepath.Base(path), cleanName)
	}
	if !naming.ValidFormat(cleanName) {
		r.warn("filename doesn't match the expected naming convention: %s", cleanName)
	}

	subdir := naming.Route(category, ext)
	r.countRouted(category, ext)
	r.copyFile(path, filepath.Join(r.outputPath, subdir), cleanName)
}

// countRouted increments the per-category counter matching the routing
// decision for one file.
func (r *Runner) countRouted(category config.Category, ext string) {
	switch {
	case category == config.CategoryWhatsAppImages:
		r.stats.WhatsAppImages++
	case category == config.CategoryWhatsAppVideos:
		r.stats.WhatsAppVideos++
	case scan.IsVideo(ext):
		r.stats.RegularVideos++
	default:
		r.stats.RegularImages++
	}
}

// report prints the accumulated warnings block followed by the final
// statistics block.
func (r *Runner) report() {
	r.stats.Duplicates = r.index.Duplicates

	if len(r.warnings) > 0 {
		r.log.Warn("Warnings")
		r.log.Warn("========")
		for _, w := range r.warnings {
			r.log.Warn("%s", w)
		}
	}

	r.log.Info("Output folder: %s", r.outputPath)
	r.log.Info("==================================================")
	r.log.Info("PROCESSING STATISTICS")
	r.log.Info("==================================================")
	r.log.Info("Total files processed: %d", r.stats.Processed)
	r.log.Info("Duplicates skipped: %d", r.stats.Duplicates)
	r.log.Info("WhatsApp images: %d", r.stats.WhatsAppImages)
	r.log.Info("WhatsApp videos: %d", r.stats.WhatsAppVideos)
	r.log.Info("Regular images: %d", r.stats.RegularImages)
	r.log.Info("Regular videos: %d", r.stats.RegularVideos)
	r.log.Info("Bytes copied: %s", display.FormatBytes(r.stats.BytesCopied))
	r.log.Info("Warnings: %d", r.stats.Warnings)
	r.log.Info("==================================================")
}
