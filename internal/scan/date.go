package scan

import (
	"path/filepath"
	"regexp"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/spf13/afero"

	"github.com/holybiber/image-tools/internal/config"
)

// datePrefix matches a leading 8-digit block that may be a YYYYMMDD date.
var datePrefix = regexp.MustCompile(`^\d{8}`)

// EffectiveDate returns the calendar date (UTC midnight) attributed to a
// file for range filtering. Precedence: a valid YYYYMMDD filename prefix,
// then (only when useEXIF is set, for formats that carry EXIF) the EXIF
// capture date, then the modification time.
func EffectiveDate(fsys afero.Fs, path string, modTime time.Time, useEXIF bool) time.Time {
	if m := datePrefix.FindString(filepath.Base(path)); m != "" {
		// time.Parse rejects impossible dates (month 13, Feb 31), so a
		// numeric prefix that is not a real date falls through to mtime.
		if t, err := time.Parse("20060102", m); err == nil {
			return config.Midnight(t)
		}
	}
	if useEXIF && hasEXIF(Ext(path)) {
		if t, ok := exifDate(fsys, path); ok {
			return config.Midnight(t)
		}
	}
	return config.Midnight(modTime)
}

// InRange reports whether d lies within the inclusive [from, to] range.
// All three values are calendar dates at UTC midnight.
func InRange(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}

// hasEXIF reports whether files with ext can carry EXIF metadata that
// goexif understands.
func hasEXIF(ext string) bool {
	return ext == ".jpg" || ext == ".jpeg" || ext == ".tiff"
}

// exifDate reads the EXIF capture date (DateTimeOriginal, falling back to
// DateTime). Any decode failure simply reports no date.
func exifDate(fsys afero.Fs, path string) (time.Time, bool) {
	f, err := fsys.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}
	t, err := x.DateTime()
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
