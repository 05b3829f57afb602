// Package naming implements the destination-name rules: camera/app prefix
// stripping, extension normalization, the advisory naming-convention check,
// destination routing, and collision resolution.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Camera/app prefixes stripped from the start of a base name. At most one
// is removed, and only once.
var strippedPrefixes = []string{"IMG-", "IMG_", "VID_", "VID-"}

// Clean normalizes a filename: strips one known prefix from the base name,
// lowercases the extension, and canonicalizes ".jpeg" to ".jpg". Applying
// Clean to an already-cleaned name is a no-op.
func Clean(filename string) string {
	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)

	for _, p := range strippedPrefixes {
		if strings.HasPrefix(name, p) {
			name = name[len(p):]
			break
		}
	}

	ext = strings.ToLower(ext)
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	return name + ext
}

// expectedFormat is the naming convention a cleaned file is expected to
// follow: an 8-digit date (months 01-12, days 01-31), a "_" or "-"
// separator, then a WhatsApp-style token (two constrained characters and
// four digits). Deliberately permissive: plain YYYYMMDD_HHMMSS names match
// too, because the HHMMSS block satisfies the token character classes.
var expectedFormat = regexp.MustCompile(`^\d{4}(0[1-9]|1[0-2])(0[1-9]|[12][0-9]|3[01])[_-][W0-9][A0-9]\d{4}`)

// ValidFormat reports whether a cleaned filename matches the expected
// convention and carries a .jpg or .mp4 extension. A failing name is only
// worth a warning; it never blocks copying.
func ValidFormat(filename string) bool {
	if !strings.HasSuffix(filename, ".jpg") && !strings.HasSuffix(filename, ".mp4") {
		return false
	}
	return expectedFormat.MatchString(filename)
}
