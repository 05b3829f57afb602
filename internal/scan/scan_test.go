package scan

import (
	"fmt"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/spf13/afero"
)

// failTestWalk fails the test if the walk reports an unreadable entry.
func failTestWalk(t *testing.T) func(path string, err error) {
	t.Helper()
	return func(path string, err error) {
		t.Errorf("unexpected walk failure at %s: %v", path, err)
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/in/photo.JPG", ".jpg"},
		{"/in/clip.Mp4", ".mp4"},
		{"/in/noext", ""},
		{"/in/archive.tar.gz", ".gz"},
	}
	for _, tt := range tests {
		if got := Ext(tt.path); got != tt.want {
			t.Errorf("Ext(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestExtensionSets(t *testing.T) {
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp"} {
		if !IsImage(ext) || IsVideo(ext) {
			t.Errorf("%s should be an image extension", ext)
		}
	}
	for _, ext := range []string{".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v"} {
		if !IsVideo(ext) || IsImage(ext) {
			t.Errorf("%s should be a video extension", ext)
		}
	}
	for _, ext := range []string{".txt", ".pdf", ".exe", ""} {
		if IsMedia(ext) {
			t.Errorf("%s should not be a media extension", ext)
		}
	}
}

// writeAt creates a file with content and a given modification date.
func writeAt(t *testing.T, fsys afero.Fs, path, content string, mtime time.Time) {
	t.Helper()
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := fsys.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
}

func TestWalk(t *testing.T) {
	fsys := afero.NewMemMapFs()
	inRange := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	outRange := time.Date(2023, time.June, 1, 10, 0, 0, 0, time.UTC)

	writeAt(t, fsys, "/in/a.jpg", "a", inRange)
	writeAt(t, fsys, "/in/sub/b.MP4", "b", inRange)
	writeAt(t, fsys, "/in/skip.txt", "text", inRange)
	writeAt(t, fsys, "/in/old.jpg", "old", outRange)
	// Filename date outside the range beats the in-range mtime.
	writeAt(t, fsys, "/in/20230601_WA0001.jpg", "named", inRange)

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	var got []string
	err := Walk(fsys, "/in", from, to, false, func(path, ext string) {
		got = append(got, path)
	}, failTestWalk(t))
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(got)

	want := []string{"/in/a.jpg", "/in/sub/b.MP4"}
	if len(got) != len(want) {
		t.Fatalf("Walk visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Walk visited %v, want %v", got, want)
			break
		}
	}
}

func TestWalk_PassesLowercasedExt(t *testing.T) {
	fsys := afero.NewMemMapFs()
	mtime := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	writeAt(t, fsys, "/in/CLIP.MOV", "c", mtime)

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	var gotExt string
	err := Walk(fsys, "/in", from, to, false, func(path, ext string) {
		gotExt = ext
	}, failTestWalk(t))
	if err != nil {
		t.Fatal(err)
	}
	if gotExt != ".mov" {
		t.Errorf("ext = %q, want %q", gotExt, ".mov")
	}
}

// statFailFs makes Stat fail for one path, simulating an unreadable entry.
type statFailFs struct {
	afero.Fs
	failPath string
}

func (s *statFailFs) Stat(name string) (os.FileInfo, error) {
	if name == s.failPath {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrPermission}
	}
	return s.Fs.Stat(name)
}

func TestWalk_UnreadableEntrySkipped(t *testing.T) {
	mem := afero.NewMemMapFs()
	mtime := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	writeAt(t, mem, "/in/a.jpg", "a", mtime)
	writeAt(t, mem, "/in/bad.jpg", "b", mtime)
	writeAt(t, mem, "/in/c.jpg", "c", mtime)
	fsys := &statFailFs{Fs: mem, failPath: "/in/bad.jpg"}

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	var visited, failed []string
	err := Walk(fsys, "/in", from, to, false,
		func(path, ext string) { visited = append(visited, path) },
		func(path string, err error) { failed = append(failed, fmt.Sprintf("%s: %v", path, err)) })
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(visited)

	// The unreadable entry must not hide the files after it.
	want := []string{"/in/a.jpg", "/in/c.jpg"}
	if len(visited) != len(want) || visited[0] != want[0] || visited[1] != want[1] {
		t.Errorf("visited %v, want %v", visited, want)
	}
	if len(failed) != 1 {
		t.Fatalf("failures = %v, want exactly one for the unreadable entry", failed)
	}
}

func TestExists(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/there", 0o755); err != nil {
		t.Fatal(err)
	}
	if !Exists(fsys, "/there") {
		t.Error("Exists(/there) = false, want true")
	}
	if Exists(fsys, "/nowhere") {
		t.Error("Exists(/nowhere) = true, want false")
	}
}
