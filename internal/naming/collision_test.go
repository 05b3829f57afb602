package naming

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func touch(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	if err := afero.WriteFile(fsys, path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestUniqueName_NoCollision(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/out", 0o755); err != nil {
		t.Fatal(err)
	}
	got := UniqueName(fsys, "/out", "20240115-WA0001.jpg")
	if got != "20240115-WA0001.jpg" {
		t.Errorf("UniqueName = %q, want the name unchanged", got)
	}
}

func TestUniqueName_WhatsAppSequenceBump(t *testing.T) {
	fsys := afero.NewMemMapFs()
	touch(t, fsys, "/out/2024-01-15-WA0001.jpg")

	got := UniqueName(fsys, "/out", "2024-01-15-WA0001.jpg")
	if got != "2024-01-15-WA0002.jpg" {
		t.Errorf("UniqueName = %q, want %q", got, "2024-01-15-WA0002.jpg")
	}
}

func TestUniqueName_WhatsAppSkipsTakenNumbers(t *testing.T) {
	fsys := afero.NewMemMapFs()
	touch(t, fsys, "/out/20240115-WA0001.jpg")
	touch(t, fsys, "/out/20240115-WA0002.jpg")
	touch(t, fsys, "/out/20240115-WA0003.jpg")

	got := UniqueName(fsys, "/out", "20240115-WA0001.jpg")
	if got != "20240115-WA0004.jpg" {
		t.Errorf("UniqueName = %q, want %q", got, "20240115-WA0004.jpg")
	}
}

func TestUniqueName_GenericSuffix(t *testing.T) {
	fsys := afero.NewMemMapFs()
	touch(t, fsys, "/out/photo.jpg")

	got := UniqueName(fsys, "/out", "photo.jpg")
	if got != "photo_1.jpg" {
		t.Errorf("UniqueName = %q, want %q", got, "photo_1.jpg")
	}

	touch(t, fsys, "/out/photo_1.jpg")
	got = UniqueName(fsys, "/out", "photo.jpg")
	if got != "photo_2.jpg" {
		t.Errorf("UniqueName = %q, want %q", got, "photo_2.jpg")
	}
}

func TestUniqueName_WAWithoutSequencePatternUsesGeneric(t *testing.T) {
	// "WA" in the stem but no "-WA<digits>" tail: the generic counter applies.
	fsys := afero.NewMemMapFs()
	touch(t, fsys, "/out/WAlk.jpg")

	got := UniqueName(fsys, "/out", "WAlk.jpg")
	if got != "WAlk_1.jpg" {
		t.Errorf("UniqueName = %q, want %q", got, "WAlk_1.jpg")
	}
}

func TestUniqueName_SequenceExhaustionFallsThrough(t *testing.T) {
	fsys := afero.NewMemMapFs()
	// Occupy the desired name and the next 999 sequence numbers.
	touch(t, fsys, "/out/d-WA0000.jpg")
	for num := 1; num <= 999; num++ {
		touch(t, fsys, filepath.Join("/out", fmt.Sprintf("d-WA%04d.jpg", num)))
	}

	got := UniqueName(fsys, "/out", "d-WA0000.jpg")
	if got != "d-WA0000_1.jpg" {
		t.Errorf("UniqueName = %q, want generic fallback %q", got, "d-WA0000_1.jpg")
	}
}
