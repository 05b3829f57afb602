// Package distill samples every Nth file from a set of folders into an
// output folder. Listing is top-level only and sorted, so a given folder
// state always yields the same selection.
package distill

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/holybiber/image-tools/internal/logging"
)

// Options are the sampler's inputs, taken straight from the CLI.
type Options struct {
	InputFolders []string
	N            int // Take every Nth file.
	Offset       int // Index of the first file taken.
	OutputFolder string
}

// Validate rejects option combinations the selection arithmetic cannot
// handle.
func (o *Options) Validate() error {
	if len(o.InputFolders) == 0 {
		return errors.New("--input-folders is required")
	}
	if o.N < 1 {
		return errors.New("-n must be at least 1")
	}
	if o.Offset < 0 {
		return errors.New("-o must not be negative")
	}
	if o.OutputFolder == "" {
		return errors.New("--output-folder is required")
	}
	return nil
}

// Run copies every Nth file (starting at Offset) from each input folder
// into the output folder and returns the number of files copied.
// Non-existent input folders are skipped with a message; same-name copies
// overwrite, matching the flat output layout.
func Run(fsys afero.Fs, opts Options, log *logging.Logger) (int, error) {
	if err := fsys.MkdirAll(opts.OutputFolder, 0o755); err != nil {
		return 0, err
	}

	copied := 0
	for _, folder := range opts.InputFolders {
		info, err := fsys.Stat(folder)
		if err != nil || !info.IsDir() {
			log.Warn("Skipping non-existent folder: %s", folder)
			continue
		}

		names, err := listFiles(fsys, folder)
		if err != nil {
			return copied, err
		}

		for i := opts.Offset; i < len(names); i += opts.N {
			src := filepath.Join(folder, names[i])
			dest := filepath.Join(opts.OutputFolder, names[i])
			if err := copyPreserving(fsys, src, dest); err != nil {
				return copied, err
			}
			copied++
			log.Info("Copied: %s -> %s", src, dest)
		}
	}
	return copied, nil
}

// listFiles returns the names of the regular files directly inside folder,
// sorted lexicographically (afero.ReadDir sorts by name).
func listFiles(fsys afero.Fs, folder string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, folder)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// copyPreserving copies bytes and carries the source's permission bits and
// modification time over to the destination.
func copyPreserving(fsys afero.Fs, src, dest string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := fsys.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = fsys.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	mode := info.Mode().Perm()
	if mode == 0 {
		mode = os.FileMode(0o644)
	}
	if err := fsys.Chmod(dest, mode); err != nil {
		return err
	}
	return fsys.Chtimes(dest, time.Now(), info.ModTime())
}
