package scan

import (
	"os"
	"time"

	"github.com/spf13/afero"
)

// Walk recursively enumerates the media files under root whose effective
// date falls inside the inclusive [from, to] range and calls visit for each,
// passing the file path and its lowercased extension. Files with
// unrecognized extensions and files outside the range are skipped silently.
// Entries that cannot be read are reported through fail and skipped, so one
// bad subtree never hides the folder's remaining files. Enumeration order is
// whatever the underlying filesystem yields.
func Walk(fsys afero.Fs, root string, from, to time.Time, useEXIF bool, visit func(path, ext string), fail func(path string, err error)) error {
	return afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fail(path, err)
			return nil
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		ext := Ext(path)
		if !IsMedia(ext) {
			return nil
		}
		if !InRange(EffectiveDate(fsys, path, info.ModTime(), useEXIF), from, to) {
			return nil
		}
		visit(path, ext)
		return nil
	})
}

// Exists reports whether path exists on fsys. Used by the pipeline to warn
// about (and skip) missing input folders without aborting the run.
func Exists(fsys afero.Fs, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
