package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// waSequence matches a WhatsApp sequence stem, e.g. "2024-01-15-WA0001"
// (prefix "2024-01-15-WA", number "0001").
var waSequence = regexp.MustCompile(`^(.*-WA)(\d+)$`)

// UniqueName returns a filename guaranteed not to exist in dir at call time.
// Names are checked against the directory's actual current contents, not a
// cached set, because files land in dir incrementally within one run.
//
// If the desired name is free it is returned unchanged. For WhatsApp-style
// stems the WA sequence number is bumped (4-digit zero-padded, up to 999
// attempts); when that fails, or for any other stem, a "_<counter>" suffix
// is appended before the extension, counting up from 1.
func UniqueName(fsys afero.Fs, dir, filename string) string {
	if !exists(fsys, filepath.Join(dir, filename)) {
		return filename
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	if strings.Contains(stem, "WA") {
		if m := waSequence.FindStringSubmatch(stem); m != nil {
			prefix := m[1]
			current, _ := strconv.Atoi(m[2])
			for num := current + 1; num < current+1000; num++ {
				candidate := fmt.Sprintf("%s%04d%s", prefix, num, ext)
				if !exists(fsys, filepath.Join(dir, candidate)) {
					return candidate
				}
			}
			// Sequence exhausted; fall through to generic suffixing.
		}
	}

	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, counter, ext)
		if !exists(fsys, filepath.Join(dir, candidate)) {
			return candidate
		}
	}
}

func exists(fsys afero.Fs, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
