package uucp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileInfo describes one file returned by Spool.List.
type FileInfo struct {
	Name string
	Size int64
}

// Spool is the filesystem side of a spool tree.
type Spool interface {
	// Exists reports whether path exists. Only failures other than
	// non-existence are returned as errors.
	Exists(ctx context.Context, path string) (bool, error)
	// List returns the files directly under dir.
	List(ctx context.Context, dir string) ([]FileInfo, error)
	// Open opens the file at path for reading.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// DirSpool is a Spool over the local filesystem.
type DirSpool struct{}

// Exists implements Spool.
func (DirSpool) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// List implements Spool. Subdirectories are skipped.
func (DirSpool) List(ctx context.Context, dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat %s: %w", filepath.Join(dir, e.Name()), err)
		}
		files = append(files, FileInfo{Name: e.Name(), Size: info.Size()})
	}
	return files, nil
}

// Open implements Spool.
func (DirSpool) Open(_ context.Context, path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Stats are totals over the files of one listing.
type Stats struct {
	// NFiles is the total number of files.
	NFiles int `json:"nfiles"`
	// NBytes is the size of those files in bytes.
	NBytes int64 `json:"nbytes"`
}

// List reads the `C.` and `D.` directories under sitePath and returns the
// spool entries found there. Files whose name does not carry the prefix of
// their directory are returned with an empty qid so the queue counts them as
// ignored.
func List(ctx context.Context, s Spool, sitePath string) ([]Entry, Stats, error) {
	var (
		entries []Entry
		stats   Stats
	)

	for _, prefix := range []Prefix{PrefixControl, PrefixData} {
		dir := filepath.Join(sitePath, string(prefix))
		files, err := s.List(ctx, dir)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("list %s: %w", dir, err)
		}

		for _, f := range files {
			stats.NFiles++
			stats.NBytes += f.Size

			entry := Entry{Name: f.Name, Path: filepath.Join(dir, f.Name), Prefix: prefix}
			if p, qid, ok := ParseName(f.Name); ok && p == prefix {
				entry.QID = qid
			}
			entries = append(entries, entry)
		}
	}
	return entries, stats, nil
}
