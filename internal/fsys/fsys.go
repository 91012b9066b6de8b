// Package fsys provides a thin, backend-agnostic filesystem layer for batch
// jobs. The same FS surface covers the local filesystem (atomic, durable
// writes) and S3-compatible object stores, so job code and the run monitor can
// persist reports and intermediate files without caring where they land.
package fsys

import (
	"context"
	"strings"
	"time"

	"github.com/osmike/batchkit/internal/domain"
)

// FS abstracts the handful of file operations batch jobs actually need.
//
// Implementations:
//   - Local: local filesystem with atomic, durable writes.
//   - S3: S3-compatible object stores, where paths are object keys,
//     Rename is copy+delete and directories are implicit prefixes.
//
// All methods take a context for cancellation; remote backends honor it on
// every request. Paths use forward slashes on every backend.
type FS interface {
	// Exists reports whether a file (or object) exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// ReadFile returns the full content of the file at path.
	// The error wraps ErrNotExist when the file is absent.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile replaces the content of the file at path, creating it and any
	// missing parent directories. Local writes are atomic and durable.
	WriteFile(ctx context.Context, path string, data []byte) error

	// AppendFile appends data to the file at path, creating it if absent.
	AppendFile(ctx context.Context, path string, data []byte) error

	// Delete removes the file at path. Deleting an absent file is not an error.
	Delete(ctx context.Context, path string) error

	// Rename moves the file at oldPath to newPath, replacing any existing file.
	Rename(ctx context.Context, oldPath, newPath string) error

	// List returns the entries directly under dir (or, for object stores, the
	// objects sharing the dir prefix). An absent dir yields an empty listing.
	List(ctx context.Context, dir string) ([]domain.FileInfo, error)

	// MkdirAll creates dir and any missing parents. No-op on object stores.
	MkdirAll(ctx context.Context, dir string) error

	// PurgeOlderThan deletes the files under dir whose modification time is
	// older than ttl, and returns the number of files removed.
	PurgeOlderThan(ctx context.Context, dir string, ttl time.Duration) (int, error)
}

// ReadLines reads the file at path and splits it into lines, dropping a single
// trailing newline but preserving interior empty lines.
func ReadLines(ctx context.Context, fs FS, path string) ([]string, error) {
	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil, nil
	}
	return strings.Split(s, "\n"), nil
}

// WriteLines joins lines with newlines, appends a trailing newline and writes
// the result to path.
func WriteLines(ctx context.Context, fs FS, path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return fs.WriteFile(ctx, path, []byte(b.String()))
}
