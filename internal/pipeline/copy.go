package pipeline

import (
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/holybiber/image-tools/internal/naming"
)

// Destination files are owner-writable, world-readable.
const destFileMode = 0o644

// copyFile copies src into destDir under desiredName, resolving a unique
// destination name first. A failure is recoverable: it is warned about and
// the Processed counter is left untouched.
func (r *Runner) copyFile(src, destDir, desiredName string) {
	if r.cfg.DryRun {
		r.log.Success("[DRY] Would copy: %s -> %s", src, filepath.Join(destDir, desiredName))
		r.stats.Processed++
		return
	}

	if err := r.fsys.MkdirAll(destDir, 0o755); err != nil {
		r.warn("cannot create %s: %v", destDir, err)
		return
	}

	dest := filepath.Join(destDir, naming.UniqueName(r.fsys, destDir, desiredName))
	n, err := copyContents(r.fsys, src, dest)
	if err != nil {
		r.warn("copy of %s to %s failed: %v", src, dest, err)
		return
	}

	r.stats.Processed++
	r.stats.BytesCopied += n
	r.log.Info("Copied: %s -> %s", src, dest)
}

// copyContents copies file bytes, fixes the destination permissions, and
// carries the source modification time over. A partial destination left by
// a failed byte copy is removed.
func copyContents(fsys afero.Fs, src, dest string) (int64, error) {
	in, err := fsys.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, err
	}

	out, err := fsys.Create(dest)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		_ = fsys.Remove(dest)
		return 0, err
	}
	if err := out.Close(); err != nil {
		_ = fsys.Remove(dest)
		return 0, err
	}

	if err := fsys.Chmod(dest, destFileMode); err != nil {
		return n, err
	}
	if err := fsys.Chtimes(dest, time.Now(), info.ModTime()); err != nil {
		return n, err
	}
	return n, nil
}
