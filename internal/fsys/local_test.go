package fsys

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	errs "github.com/osmike/batchkit/internal/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_WriteReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := NewLocal()
	path := filepath.Join(t.TempDir(), "sub", "dir", "data.txt")

	err := fs.WriteFile(ctx, path, []byte("hello"))
	require.NoError(t, err)

	data, err := fs.ReadFile(ctx, path)
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestLocal_WriteFile_Replaces(t *testing.T) {
	ctx := context.Background()
	fs := NewLocal()
	path := filepath.Join(t.TempDir(), "data.txt")

	require.NoError(t, fs.WriteFile(ctx, path, []byte("first")))
	require.NoError(t, fs.WriteFile(ctx, path, []byte("second")))

	data, err := fs.ReadFile(ctx, path)
	assert.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestLocal_ReadFile_NotExist(t *testing.T) {
	fs := NewLocal()

	_, err := fs.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, errs.ErrNotExist)
}

func TestLocal_Exists(t *testing.T) {
	ctx := context.Background()
	fs := NewLocal()
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")

	ok, err := fs.Exists(ctx, path)
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, fs.WriteFile(ctx, path, []byte("x")))

	ok, err = fs.Exists(ctx, path)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestLocal_AppendFile(t *testing.T) {
	ctx := context.Background()
	fs := NewLocal()
	path := filepath.Join(t.TempDir(), "log.txt")

	require.NoError(t, fs.AppendFile(ctx, path, []byte("one\n")))
	require.NoError(t, fs.AppendFile(ctx, path, []byte("two\n")))

	data, err := fs.ReadFile(ctx, path)
	assert.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestLocal_Delete_Idempotent(t *testing.T) {
	ctx := context.Background()
	fs := NewLocal()
	path := filepath.Join(t.TempDir(), "data.txt")

	require.NoError(t, fs.WriteFile(ctx, path, []byte("x")))
	assert.NoError(t, fs.Delete(ctx, path))
	assert.NoError(t, fs.Delete(ctx, path))

	ok, err := fs.Exists(ctx, path)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestLocal_Rename(t *testing.T) {
	ctx := context.Background()
	fs := NewLocal()
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "nested", "new.txt")

	require.NoError(t, fs.WriteFile(ctx, oldPath, []byte("payload")))
	require.NoError(t, fs.Rename(ctx, oldPath, newPath))

	ok, err := fs.Exists(ctx, oldPath)
	assert.NoError(t, err)
	assert.False(t, ok)

	data, err := fs.ReadFile(ctx, newPath)
	assert.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestLocal_Rename_Missing(t *testing.T) {
	fs := NewLocal()
	dir := t.TempDir()

	err := fs.Rename(context.Background(), filepath.Join(dir, "absent"), filepath.Join(dir, "target"))
	assert.ErrorIs(t, err, errs.ErrNotExist)
}

func TestLocal_List(t *testing.T) {
	ctx := context.Background()
	fs := NewLocal()
	dir := t.TempDir()

	require.NoError(t, fs.WriteFile(ctx, filepath.Join(dir, "a.txt"), []byte("a")))
	require.NoError(t, fs.WriteFile(ctx, filepath.Join(dir, "b.txt"), []byte("bb")))
	require.NoError(t, fs.MkdirAll(ctx, filepath.Join(dir, "sub")))

	infos, err := fs.List(ctx, dir)
	assert.NoError(t, err)
	assert.Len(t, infos, 3)

	names := map[string]bool{}
	for _, fi := range infos {
		names[filepath.Base(fi.Path)] = fi.IsDir
	}
	assert.False(t, names["a.txt"])
	assert.False(t, names["b.txt"])
	assert.True(t, names["sub"])
}

func TestLocal_List_MissingDir(t *testing.T) {
	fs := NewLocal()

	infos, err := fs.List(context.Background(), filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, err)
	assert.Empty(t, infos)
}

func TestLocal_PurgeOlderThan(t *testing.T) {
	ctx := context.Background()
	fs := NewLocal()
	dir := t.TempDir()
	stale := filepath.Join(dir, "stale.log")
	fresh := filepath.Join(dir, "fresh.log")

	require.NoError(t, fs.WriteFile(ctx, stale, []byte("old")))
	require.NoError(t, fs.WriteFile(ctx, fresh, []byte("new")))

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	removed, err := fs.PurgeOlderThan(ctx, dir, 24*time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 1, removed)

	ok, _ := fs.Exists(ctx, stale)
	assert.False(t, ok)
	ok, _ = fs.Exists(ctx, fresh)
	assert.True(t, ok)
}

func TestLocal_PurgeOlderThan_SkipsDirs(t *testing.T) {
	ctx := context.Background()
	fs := NewLocal()
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")

	require.NoError(t, fs.MkdirAll(ctx, sub))
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(sub, old, old))

	removed, err := fs.PurgeOlderThan(ctx, dir, 24*time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestReadWriteLines(t *testing.T) {
	ctx := context.Background()
	fs := NewLocal()
	path := filepath.Join(t.TempDir(), "lines.txt")

	lines := []string{"alpha", "", "gamma"}
	require.NoError(t, WriteLines(ctx, fs, path, lines))

	got, err := ReadLines(ctx, fs, path)
	assert.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestReadLines_EmptyFile(t *testing.T) {
	ctx := context.Background()
	fs := NewLocal()
	path := filepath.Join(t.TempDir(), "empty.txt")

	require.NoError(t, fs.WriteFile(ctx, path, nil))

	got, err := ReadLines(ctx, fs, path)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
