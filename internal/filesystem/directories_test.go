package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/lessw2020/Color-ls/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func newTestHandler() *Handler {
	return NewHandler(&schema.OS{}, &schema.Unix{})
}

// writeTree builds the canonical test layout: b.txt, .hidden and a
// subdirectory A with three children.
func writeTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("x"), 0o644))

	sub := filepath.Join(root, "A")
	require.NoError(t, os.Mkdir(sub, 0o755))
	for _, name := range []string{"one", ".two", "three"} {
		require.NoError(t, os.WriteFile(filepath.Join(sub, name), nil, 0o644))
	}

	return root
}

func findEntry(t *testing.T, entries []*schema.Entry, name string) *schema.Entry {
	t.Helper()

	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("entry %q not found", name)

	return nil
}

func TestList_Directory(t *testing.T) {
	t.Parallel()

	root := writeTree(t)
	handler := newTestHandler()

	collected, err := handler.List(root, true)
	require.NoError(t, err)

	assert.True(t, collected.FromDirectory)
	assert.Len(t, collected.Entries, 3, "collection includes hidden entries; screening is a display concern")

	dir := findEntry(t, collected.Entries, "A")
	assert.Equal(t, schema.KindDirectory, dir.Kind)
	require.NotNil(t, dir.ChildCount)
	assert.Equal(t, uint64(3), *dir.ChildCount, "child count includes hidden children")

	file := findEntry(t, collected.Entries, "b.txt")
	assert.Equal(t, schema.KindRegular, file.Kind)
	assert.Nil(t, file.ChildCount)
	require.NotNil(t, file.Metadata)
	assert.Equal(t, int64(5), file.Metadata.Size)
	assert.Equal(t, uint64(1), file.Metadata.Nlink)
	assert.False(t, file.Metadata.ModifiedAt.IsZero())
}

func TestList_Directory_CountingDisabled(t *testing.T) {
	t.Parallel()

	root := writeTree(t)
	handler := newTestHandler()

	collected, err := handler.List(root, false)
	require.NoError(t, err)

	for _, e := range collected.Entries {
		assert.Nil(t, e.ChildCount)
	}
}

func TestList_SingleFile(t *testing.T) {
	t.Parallel()

	root := writeTree(t)
	handler := newTestHandler()

	target := filepath.Join(root, "b.txt")
	collected, err := handler.List(target, true)
	require.NoError(t, err)

	assert.False(t, collected.FromDirectory)
	require.Len(t, collected.Entries, 1)
	assert.Equal(t, "b.txt", collected.Entries[0].Name)
	assert.Equal(t, target, collected.Entries[0].FullPath)
}

func TestList_Symlink(t *testing.T) {
	t.Parallel()

	root := writeTree(t)
	handler := newTestHandler()

	require.NoError(t, os.Symlink(filepath.Join(root, "b.txt"), filepath.Join(root, "b.link")))

	collected, err := handler.List(root, true)
	require.NoError(t, err)

	link := findEntry(t, collected.Entries, "b.link")
	assert.Equal(t, schema.KindSymlink, link.Kind)
	assert.Nil(t, link.ChildCount)
}

func TestList_Missing(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	_, err := handler.List(filepath.Join(t.TempDir(), "nope"), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCountChildren(t *testing.T) {
	t.Parallel()

	root := writeTree(t)
	handler := newTestHandler()

	got := handler.CountChildren(filepath.Join(root, "A"))
	require.NotNil(t, got)
	assert.Equal(t, uint64(3), *got)
}

func TestCountChildren_Unreadable(t *testing.T) {
	t.Parallel()

	handler := newTestHandler()

	assert.Nil(t, handler.CountChildren(filepath.Join(t.TempDir(), "nope")),
		"an unreadable directory reports an unknown count, not an error")
}

type fakeOSProvider struct {
	readDirFn func(name string) ([]os.DirEntry, error)
	statFn    func(name string) (os.FileInfo, error)
}

func (f *fakeOSProvider) ReadDir(name string) ([]os.DirEntry, error) {
	return f.readDirFn(name)
}

func (f *fakeOSProvider) Stat(name string) (os.FileInfo, error) {
	return f.statFn(name)
}

type fakeUnixProvider struct {
	lstatFn func(path string, stat *unix.Stat_t) error
}

func (f *fakeUnixProvider) Lstat(path string, stat *unix.Stat_t) error {
	return f.lstatFn(path, stat)
}

type fakeDirEntry struct {
	name string
}

func (f *fakeDirEntry) Name() string               { return f.name }
func (f *fakeDirEntry) IsDir() bool                { return false }
func (f *fakeDirEntry) Type() fs.FileMode          { return 0 }
func (f *fakeDirEntry) Info() (fs.FileInfo, error) { return nil, nil }

// realDirInfo returns an actual directory os.FileInfo for fake Stat results.
func realDirInfo(t *testing.T) os.FileInfo {
	t.Helper()

	info, err := os.Stat(t.TempDir())
	require.NoError(t, err)

	return info
}

func TestList_InvalidName(t *testing.T) {
	t.Parallel()

	dirInfo := realDirInfo(t)
	handler := NewHandler(
		&fakeOSProvider{
			statFn: func(string) (os.FileInfo, error) { return dirInfo, nil },
			readDirFn: func(string) ([]os.DirEntry, error) {
				return []os.DirEntry{&fakeDirEntry{name: "\xff\xfe"}}, nil
			},
		},
		&fakeUnixProvider{
			lstatFn: func(string, *unix.Stat_t) error { return nil },
		},
	)

	_, err := handler.List("/fake", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestList_ChildStatFailureSkipsChild(t *testing.T) {
	t.Parallel()

	errStat := errors.New("stat failed")
	dirInfo := realDirInfo(t)

	handler := NewHandler(
		&fakeOSProvider{
			statFn: func(string) (os.FileInfo, error) { return dirInfo, nil },
			readDirFn: func(string) ([]os.DirEntry, error) {
				return []os.DirEntry{
					&fakeDirEntry{name: "good"},
					&fakeDirEntry{name: "bad"},
				}, nil
			},
		},
		&fakeUnixProvider{
			lstatFn: func(path string, stat *unix.Stat_t) error {
				if filepath.Base(path) == "bad" {
					return errStat
				}
				stat.Mode = unix.S_IFREG | 0o644
				stat.Nlink = 1

				return nil
			},
		},
	)

	collected, err := handler.List("/fake", true)
	require.NoError(t, err, "a failing child is skipped, not fatal")

	require.Len(t, collected.Entries, 1)
	assert.Equal(t, "good", collected.Entries[0].Name)
}

func TestList_UnreadableDirectory(t *testing.T) {
	t.Parallel()

	errDenied := errors.New("permission denied")
	dirInfo := realDirInfo(t)

	handler := NewHandler(
		&fakeOSProvider{
			statFn:    func(string) (os.FileInfo, error) { return dirInfo, nil },
			readDirFn: func(string) ([]os.DirEntry, error) { return nil, errDenied },
		},
		&fakeUnixProvider{
			lstatFn: func(string, *unix.Stat_t) error { return nil },
		},
	)

	_, err := handler.List("/fake", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, errDenied)
	assert.NotErrorIs(t, err, ErrInvalidName)
}
