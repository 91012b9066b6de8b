package fsys

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/osmike/batchkit/internal/domain"
	errs "github.com/osmike/batchkit/internal/error"
	"github.com/osmike/batchkit/internal/log"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
)

// Local implements FS on the local filesystem.
//
// WriteFile goes through a temp file with fsync before an atomic rename, so a
// crash mid-write never leaves a truncated file behind.
type Local struct {
	logger zerolog.Logger
}

// NewLocal returns an FS backed by the local filesystem.
func NewLocal() *Local {
	return &Local{logger: log.WithComponent("fsys.local")}
}

// Exists reports whether a file or directory exists at path.
func (l *Local) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errs.New(errs.ErrRead, err.Error())
}

// ReadFile returns the full content of the file at path.
func (l *Local) ReadFile(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.New(errs.ErrNotExist, path)
		}
		return nil, errs.New(errs.ErrRead, err.Error())
	}
	return data, nil
}

// WriteFile atomically replaces the content of the file at path, creating any
// missing parent directories.
func (l *Local) WriteFile(_ context.Context, path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errs.New(errs.ErrMkdir, err.Error())
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return errs.New(errs.ErrWrite, err.Error())
	}
	return nil
}

// AppendFile appends data to the file at path, creating it if absent.
func (l *Local) AppendFile(_ context.Context, path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errs.New(errs.ErrMkdir, err.Error())
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.New(errs.ErrWrite, err.Error())
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return errs.New(errs.ErrWrite, err.Error())
	}
	return nil
}

// Delete removes the file at path. Deleting an absent file is not an error.
func (l *Local) Delete(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errs.New(errs.ErrDelete, err.Error())
	}
	return nil
}

// Rename moves the file at oldPath to newPath, replacing any existing file.
func (l *Local) Rename(_ context.Context, oldPath, newPath string) error {
	if err := os.MkdirAll(filepath.Dir(newPath), 0o755); err != nil {
		return errs.New(errs.ErrMkdir, err.Error())
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		if os.IsNotExist(err) {
			return errs.New(errs.ErrNotExist, oldPath)
		}
		return errs.New(errs.ErrRename, err.Error())
	}
	return nil
}

// List returns the entries directly under dir. An absent dir yields an empty
// listing.
func (l *Local) List(_ context.Context, dir string) ([]domain.FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.New(errs.ErrList, err.Error())
	}

	infos := make([]domain.FileInfo, 0, len(entries))
	for _, entry := range entries {
		fi, err := entry.Info()
		if err != nil {
			// Entry vanished between ReadDir and Info.
			continue
		}
		infos = append(infos, domain.FileInfo{
			Path:    filepath.Join(dir, entry.Name()),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
			IsDir:   entry.IsDir(),
		})
	}
	return infos, nil
}

// MkdirAll creates dir and any missing parents.
func (l *Local) MkdirAll(_ context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errs.New(errs.ErrMkdir, err.Error())
	}
	return nil
}

// PurgeOlderThan deletes the files directly under dir whose modification time
// is older than ttl. Directories are left untouched.
func (l *Local) PurgeOlderThan(ctx context.Context, dir string, ttl time.Duration) (int, error) {
	infos, err := l.List(ctx, dir)
	if err != nil {
		return 0, errs.New(errs.ErrPurge, err.Error())
	}

	cutoff := time.Now().Add(-ttl)
	removed := 0
	for _, fi := range infos {
		if fi.IsDir || !fi.ModTime.Before(cutoff) {
			continue
		}
		if err := l.Delete(ctx, fi.Path); err != nil {
			return removed, errs.New(errs.ErrPurge, fmt.Sprintf("removing %s: %v", fi.Path, err))
		}
		removed++
	}

	if removed > 0 {
		l.logger.Debug().Str("dir", dir).Int("removed", removed).Msg("purged stale files")
	}
	return removed, nil
}
