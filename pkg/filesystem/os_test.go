package filesystem_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/modinstall/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
}

func TestCopyFilePreservesModeAndMtime(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src", "run.sh")
	dst := filepath.Join(tmp, "out", "nested", "run.sh")
	writeFile(t, src, "#!/bin/sh\necho hi\n", 0750)

	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	require.NoError(t, filesystem.CopyFile(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\necho hi\n", string(content))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime), "mtime %v", info.ModTime())
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0750), info.Mode().Perm())
	}
}

func TestCopyFileOverwrites(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "a.txt")
	dst := filepath.Join(tmp, "b.txt")
	writeFile(t, src, "new", 0644)
	writeFile(t, dst, "old content that is longer", 0644)

	require.NoError(t, filesystem.CopyFile(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestCopyFileRejectsDirectory(t *testing.T) {
	tmp := t.TempDir()
	err := filesystem.CopyFile(tmp, filepath.Join(tmp, "x"))
	assert.Error(t, err)
}

func TestCopyTree(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	writeFile(t, filepath.Join(src, "a.txt"), "a", 0644)
	writeFile(t, filepath.Join(src, "sub", "b.txt"), "b", 0644)
	writeFile(t, filepath.Join(src, "sub", "deeper", "c.txt"), "c", 0644)

	dst := filepath.Join(tmp, "dst")
	require.NoError(t, filesystem.CopyTree(src, dst))

	for rel, want := range map[string]string{
		"a.txt":            "a",
		"sub/b.txt":        "b",
		"sub/deeper/c.txt": "c",
	} {
		content, err := os.ReadFile(filepath.Join(dst, filepath.FromSlash(rel)))
		require.NoError(t, err, rel)
		assert.Equal(t, want, string(content), rel)
	}
}

func TestExistsAndIsDir(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "f")
	writeFile(t, file, "x", 0644)

	assert.True(t, filesystem.Exists(file))
	assert.False(t, filesystem.IsDir(file))
	assert.True(t, filesystem.IsDir(tmp))
	assert.False(t, filesystem.Exists(filepath.Join(tmp, "missing")))
}

func TestCopyFileOntoItselfKeepsContent(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "settings.json")
	writeFile(t, file, "important content", 0644)

	err := filesystem.CopyFile(file, file)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrFileCopy))

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "important content", string(content))
}

func TestCopyTreeRejectsOverlappingDirectories(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	writeFile(t, filepath.Join(src, "a.txt"), "a", 0644)

	tests := []struct {
		name string
		dst  string
	}{
		{name: "same directory", dst: src},
		{name: "same directory unclean", dst: filepath.Join(src, "sub", "..")},
		{name: "nested destination", dst: filepath.Join(src, "sub")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := filesystem.CopyTree(src, tt.dst)
			require.Error(t, err)
			assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrFileCopy))
			assert.NoDirExists(t, filepath.Join(src, "sub"))
		})
	}
}

func TestCopyTreeOverlaysExistingDestination(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")
	writeFile(t, filepath.Join(src, "sub", "b.txt"), "new b", 0644)
	writeFile(t, filepath.Join(dst, "sub", "b.txt"), "old b", 0644)
	writeFile(t, filepath.Join(dst, "sub", "mine.txt"), "mine", 0644)

	require.NoError(t, filesystem.CopyTree(src, dst))

	content, err := os.ReadFile(filepath.Join(dst, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new b", string(content))
	assert.FileExists(t, filepath.Join(dst, "sub", "mine.txt"))
}

func TestCopyTreeFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "elsewhere", "real.txt"), "real", 0644)
	src := filepath.Join(tmp, "src")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.Symlink(filepath.Join(tmp, "elsewhere"), filepath.Join(src, "linked")))

	dst := filepath.Join(tmp, "dst")
	require.NoError(t, filesystem.CopyTree(src, dst))

	info, err := os.Lstat(filepath.Join(dst, "linked"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	content, err := os.ReadFile(filepath.Join(dst, "linked", "real.txt"))
	require.NoError(t, err)
	assert.Equal(t, "real", string(content))
}

func TestRemoveTree(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "commands")
	writeFile(t, filepath.Join(dir, "deep", "x.md"), "x", 0644)

	require.NoError(t, filesystem.RemoveTree(dir))
	assert.NoDirExists(t, dir)

	// already gone
	assert.NoError(t, filesystem.RemoveTree(dir))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, filesystem.EnsureDir(dir))
	assert.DirExists(t, dir)
	assert.NoError(t, filesystem.EnsureDir(dir))
}
