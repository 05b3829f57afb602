// Package dedup detects exact-duplicate files by content hash within a
// single run. The index is created at run start and discarded at run end;
// nothing is persisted.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/spf13/afero"
)

// Index maps content hashes to the first source path that produced them.
// Once a hash is inserted its mapping is never overwritten, so the first
// occurrence of any content wins for the whole run.
type Index struct {
	fsys       afero.Fs
	seen       map[string]string // content hash → first source path
	Duplicates int               // count of files rejected as duplicates
}

// NewIndex returns an empty index reading file content through fsys.
func NewIndex(fsys afero.Fs) *Index {
	return &Index{fsys: fsys, seen: make(map[string]string)}
}

// IsDuplicate hashes the file at path and checks it against the index.
// The first file with a given content claims the hash and returns
// (false, "", nil); later identical content returns (true, firstPath, nil).
// A read failure returns the error and the file is treated as not a
// duplicate (the caller decides whether to warn).
func (ix *Index) IsDuplicate(path string) (dup bool, original string, err error) {
	sum, err := ix.hashFile(path)
	if err != nil {
		return false, "", err
	}
	if first, ok := ix.seen[sum]; ok {
		ix.Duplicates++
		return true, first, nil
	}
	ix.seen[sum] = path
	return false, "", nil
}

// Len returns the number of distinct content hashes seen so far.
func (ix *Index) Len() int { return len(ix.seen) }

// hashFile streams the file through SHA-256. io.Copy reads in fixed-size
// chunks, so memory stays bounded for large videos.
func (ix *Index) hashFile(path string) (string, error) {
	f, err := ix.fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
