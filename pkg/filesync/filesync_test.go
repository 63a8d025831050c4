package filesync_test

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/modinstall/pkg/filesync"
	"github.com/arthur-debert/modinstall/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSyncer() *filesync.Syncer {
	return filesync.New(zerolog.Nop())
}

func TestReplaceFileCreatesParents(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateTree(t, tmp, map[string]string{"src/CLAUDE.md": "rules"})

	dst := filepath.Join(tmp, "install", "deep", "CLAUDE.md")
	require.NoError(t, newSyncer().ReplaceFile(filepath.Join(tmp, "src", "CLAUDE.md"), dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "rules", string(content))
}

func TestReplaceDirMakesDestinationEqualToSource(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")
	testutil.CreateTree(t, src, map[string]string{
		"a.md":       "new a",
		"sub/b.md":   "new b",
		"sub/x/c.md": "c",
	})
	testutil.CreateTree(t, dst, map[string]string{
		"a.md":          "old a",
		"custom.md":     "user file",
		"sub/b.md":      "old b",
		"sub/local.md":  "user nested",
		"gone/keep.txt": "whole dir",
	})

	require.NoError(t, newSyncer().ReplaceDir(src, dst))

	assert.Equal(t, testutil.ReadTree(t, src), testutil.ReadTree(t, dst))
	_, err := os.Stat(filepath.Join(dst, "gone"))
	assert.True(t, os.IsNotExist(err))
}

func TestReplaceDirIntoMissingDestination(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	testutil.CreateTree(t, src, map[string]string{"one.txt": "1"})

	dst := filepath.Join(tmp, "a", "b", "dst")
	require.NoError(t, newSyncer().ReplaceDir(src, dst))
	assert.Equal(t, map[string]string{"one.txt": "1"}, testutil.ReadTree(t, dst))
}

func TestMergeDirKeepsDestinationOnlyEntriesAtEveryDepth(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")
	srcFiles := map[string]string{
		"a.md":            "new a",
		"sub/b.md":        "new b",
		"sub/deep/c.md":   "new c",
		"fresh/d.md":      "d",
		"fresh/more/e.md": "e",
	}
	dstFiles := map[string]string{
		"a.md":             "old a",
		"custom.md":        "user file",
		"sub/b.md":         "old b",
		"sub/local.md":     "user nested",
		"sub/deep/c.md":    "old c",
		"sub/deep/mine.md": "user deep",
		"untouched/z.md":   "z",
	}
	testutil.CreateTree(t, src, srcFiles)
	testutil.CreateTree(t, dst, dstFiles)

	require.NoError(t, newSyncer().MergeDir(src, dst))

	want := map[string]string{}
	for k, v := range dstFiles {
		want[k] = v
	}
	for k, v := range srcFiles {
		want[k] = v
	}
	assert.Equal(t, want, testutil.ReadTree(t, dst))
}

func TestMergeDirCreatesDestination(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	testutil.CreateTree(t, src, map[string]string{"x/y.txt": "y"})

	dst := filepath.Join(tmp, "new", "dst")
	require.NoError(t, newSyncer().MergeDir(src, dst))
	assert.Equal(t, map[string]string{"x/y.txt": "y"}, testutil.ReadTree(t, dst))
}

func TestMergeDirIsIdempotent(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")
	testutil.CreateTree(t, src, map[string]string{"a": "1", "d/b": "2"})
	testutil.CreateTree(t, dst, map[string]string{"keep": "k"})

	s := newSyncer()
	require.NoError(t, s.MergeDir(src, dst))
	first := testutil.ReadTree(t, dst)
	require.NoError(t, s.MergeDir(src, dst))

	assert.Equal(t, first, testutil.ReadTree(t, dst))
}

func TestSamePathIsRejectedWithoutTouchingContent(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateTree(t, tmp, map[string]string{
		"commands/review.md": "important content",
		"CLAUDE.md":          "important content",
	})
	dir := filepath.Join(tmp, "commands")
	file := filepath.Join(tmp, "CLAUDE.md")

	tests := []struct {
		name string
		run  func(s *filesync.Syncer) error
	}{
		{name: "replace file", run: func(s *filesync.Syncer) error { return s.ReplaceFile(file, file) }},
		{name: "replace dir", run: func(s *filesync.Syncer) error { return s.ReplaceDir(dir, dir) }},
		{name: "merge dir", run: func(s *filesync.Syncer) error { return s.MergeDir(dir, dir) }},
		{name: "replace dir into child", run: func(s *filesync.Syncer) error {
			return s.ReplaceDir(dir, filepath.Join(dir, "nested"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(newSyncer())
			require.Error(t, err)
			assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrFileCopy), "code %s", apperrors.GetErrorCode(err))

			assert.Equal(t, map[string]string{
				"commands/review.md": "important content",
				"CLAUDE.md":          "important content",
			}, testutil.ReadTree(t, tmp))
		})
	}
}
