package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	synthos "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
)

// DirPerm is used for directories created without a source counterpart
const DirPerm fs.FileMode = 0755

// volume splits an absolute path into the root synthfs operates from and
// the slash separated path below it. synthfs only accepts fs.ValidPath
// names, so every absolute path is made relative to its volume root.
func volume(p string) (string, string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", "", err
	}
	root := filepath.VolumeName(abs) + string(filepath.Separator)
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", "", err
	}
	return root, filepath.ToSlash(rel), nil
}

// session binds a source and a destination to one OS filesystem
type session struct {
	ctx  context.Context
	root string
	fsys synthfs.FullFileSystem
	sfs  *synthfs.SynthFS
}

func open(src, dst string) (*session, string, string, error) {
	srcRoot, srcRel, err := volume(src)
	if err != nil {
		return nil, "", "", err
	}
	dstRoot, dstRel, err := volume(dst)
	if err != nil {
		return nil, "", "", err
	}
	if srcRoot != dstRoot {
		return nil, "", "", apperrors.Newf(apperrors.ErrFileCopy, "cannot copy across volumes: %s -> %s", src, dst)
	}
	s := &session{
		ctx:  context.Background(),
		root: srcRoot,
		fsys: synthos.NewOSFileSystem(srcRoot),
		sfs:  synthfs.New(),
	}
	return s, srcRel, dstRel, nil
}

func (s *session) abs(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

// Exists reports whether path exists. Errors other than "not exist"
// (e.g. permission denied on a parent) are reported as existing so that
// callers surface the real error on use.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// IsDir reports whether path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates path and any missing parents
func EnsureDir(path string) error {
	root, rel, err := volume(path)
	if err != nil {
		return err
	}
	return synthfs.New().CreateDir(rel, DirPerm).Execute(context.Background(), synthos.NewOSFileSystem(root))
}

// SamePath reports whether a and b name the same existing file or directory
func SamePath(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// CopyFile copies src to dst, overwriting dst if it exists. Permission bits
// and the modification time of src are applied to dst. Missing parent
// directories of dst are created. Copying a file onto itself is an error.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: fmt.Errorf("is a directory")}
	}
	if SamePath(src, dst) {
		return apperrors.Newf(apperrors.ErrFileCopy, "source and destination are the same file: %s", src)
	}

	s, srcRel, dstRel, err := open(src, dst)
	if err != nil {
		return err
	}
	return s.copyFile(srcRel, dstRel, info)
}

// CopyTree overlays the directory src onto dst. dst is created if missing
// and files at the same relative paths are overwritten. Nothing already in
// dst is ever removed. dst must not be src or lie inside it.
func CopyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "copytree", Path: src, Err: fmt.Errorf("not a directory")}
	}
	if err := CheckDistinct(src, dst); err != nil {
		return err
	}

	s, srcRel, dstRel, err := open(src, dst)
	if err != nil {
		return err
	}
	return s.copyDir(srcRel, dstRel, info)
}

// RemoveTree deletes path and everything below it. A missing path is not
// an error.
func RemoveTree(path string) error {
	root, rel, err := volume(path)
	if err != nil {
		return err
	}
	if rel == "." {
		return apperrors.Newf(apperrors.ErrFileCopy, "refusing to remove volume root %s", path)
	}
	return synthfs.New().Delete(rel).Execute(context.Background(), synthos.NewOSFileSystem(root))
}

// CheckDistinct fails with FILE_COPY when the directory dst is src itself
// or lies inside it, where a tree copy would never terminate.
func CheckDistinct(src, dst string) error {
	if SamePath(src, dst) {
		return apperrors.Newf(apperrors.ErrFileCopy, "source and destination are the same directory: %s", src)
	}
	srcAbs, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	dstAbs, err := filepath.Abs(dst)
	if err != nil {
		return err
	}
	if rel, err := filepath.Rel(srcAbs, dstAbs); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return apperrors.Newf(apperrors.ErrFileCopy, "destination %s is inside source %s", dst, src)
	}
	return nil
}

func (s *session) copyFile(src, dst string, info fs.FileInfo) error {
	if err := s.sfs.Copy(src, dst).Execute(s.ctx, s.fsys); err != nil {
		return err
	}
	// WriteFile keeps the mode of a file that already existed
	return stamp(s.abs(dst), info)
}

func (s *session) copyDir(src, dst string, info fs.FileInfo) error {
	if err := s.sfs.CreateDir(dst, info.Mode().Perm()|0700).Execute(s.ctx, s.fsys); err != nil {
		return err
	}

	entries, err := fs.ReadDir(s.fsys, src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcItem := path.Join(src, entry.Name())
		dstItem := path.Join(dst, entry.Name())

		// Stat follows symlinks, so linked files and directories are copied
		itemInfo, err := s.fsys.Stat(srcItem)
		if err != nil {
			return err
		}
		if itemInfo.IsDir() {
			if err := s.copyDir(srcItem, dstItem, itemInfo); err != nil {
				return err
			}
			continue
		}
		if err := s.copyFile(srcItem, dstItem, itemInfo); err != nil {
			return err
		}
	}

	return stamp(s.abs(dst), info)
}

// stamp applies the mode and modification time of info to path. The synthfs
// filesystem has no chmod or chtimes.
func stamp(path string, info fs.FileInfo) error {
	if err := os.Chmod(path, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(path, info.ModTime(), info.ModTime())
}
