// Package scan enumerates candidate media files: recursive folder walking,
// extension recognition, effective-date extraction, and date-range filtering.
package scan

import (
	"path/filepath"
	"strings"
)

// Recognized media extensions (lowercase, with leading dot). Anything else
// is skipped silently during the walk.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mkv":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".m4v":  true,
}

// Ext returns the lowercased extension of path, including the leading dot.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// IsImage reports whether ext (lowercase, with dot) is a recognized image extension.
func IsImage(ext string) bool { return imageExtensions[ext] }

// IsVideo reports whether ext (lowercase, with dot) is a recognized video extension.
func IsVideo(ext string) bool { return videoExtensions[ext] }

// IsMedia reports whether ext is a recognized image or video extension.
func IsMedia(ext string) bool { return imageExtensions[ext] || videoExtensions[ext] }
