// SPDX-License-Identifier: MPL-2.0

// Package treeops implements the recursive tree operations behind fsh's
// cp and rmdir commands: file copy, directory tree copy, and removal of
// empty directories.
//
// Every operation runs against an afero.Fs so the same code serves the host
// filesystem (afero.NewOsFs) and in-memory trees (afero.NewMemMapFs).
//
// Failure policy: the first failing file or directory aborts the operation.
// Anything already written stays on disk; there is no rollback.
package treeops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"fsh-cli/internal/logging"
	"fsh-cli/pkg/fspath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

var (
	// ErrNotDirectory is returned when a directory is required but the path
	// names something else.
	ErrNotDirectory = errors.New("not a directory")
	// ErrDirNotFound is returned when a directory to remove does not exist.
	ErrDirNotFound = errors.New("directory not found")
	// ErrDirNotEmpty is returned when a directory to remove has entries.
	ErrDirNotEmpty = errors.New("directory not empty")
	// ErrCopyIntoSelf is returned when a tree copy destination lies inside
	// its own source.
	ErrCopyIntoSelf = errors.New("cannot copy a directory into itself")
	// ErrSameFile is returned when a file copy would read and write one path.
	ErrSameFile = errors.New("source and destination are the same file")
)

// Ops runs tree operations against one filesystem.
type Ops struct {
	fs     afero.Fs
	logger *log.Logger
}

// New creates an Ops bound to fsys. A nil logger discards records.
func New(fsys afero.Fs, logger *log.Logger) *Ops {
	return &Ops{fs: fsys, logger: logging.OrDiscard(logger)}
}

// CopyFile copies the bytes of src to dst, creating or truncating dst.
// The destination keeps the source permission bits.
func (o *Ops) CopyFile(src, dst string) (err error) {
	if filepath.Clean(src) == filepath.Clean(dst) {
		return &fs.PathError{Op: "copy", Path: src, Err: ErrSameFile}
	}

	in, err := o.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: errors.New("is a directory")}
	}

	perm := info.Mode().Perm()
	if perm == 0 {
		perm = filePerm
	}

	out, err := o.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	n, err := io.Copy(out, in)
	if err != nil {
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}

	o.logger.Debug("copied file", "src", src, "dst", dst, "bytes", n)
	return nil
}

// CopyTree copies the directory src onto dst. dst and any missing parents
// are created; existing files under dst are overwritten and unrelated
// entries are left alone. Children are visited in directory-listing order.
func (o *Ops) CopyTree(src, dst string) error {
	info, err := o.fs.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "copytree", Path: src, Err: ErrNotDirectory}
	}
	if fspath.IsWithin(src, dst) {
		return &fs.PathError{Op: "copytree", Path: dst, Err: ErrCopyIntoSelf}
	}
	if dstInfo, statErr := o.fs.Stat(dst); statErr == nil && !dstInfo.IsDir() {
		return &fs.PathError{Op: "copytree", Path: dst, Err: ErrNotDirectory}
	}

	return o.copyDir(src, dst)
}

func (o *Ops) copyDir(src, dst string) error {
	if err := o.fs.MkdirAll(dst, dirPerm); err != nil {
		return err
	}
	o.logger.Debug("created directory", "path", dst)

	entries, err := afero.ReadDir(o.fs, src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := o.copyDir(from, to); err != nil {
				return err
			}
			continue
		}
		if err := o.CopyFile(from, to); err != nil {
			return err
		}
	}
	return nil
}

// IsEmptyDir reports whether path is a directory with no entries.
func (o *Ops) IsEmptyDir(path string) (bool, error) {
	info, err := o.fs.Stat(path)
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, &fs.PathError{Op: "readdir", Path: path, Err: ErrNotDirectory}
	}
	return afero.IsEmpty(o.fs, path)
}

// RemoveEmptyDir deletes the directory at path only when it has no entries.
func (o *Ops) RemoveEmptyDir(path string) error {
	info, err := o.fs.Stat(path)
	if err != nil || !info.IsDir() {
		return &fs.PathError{Op: "rmdir", Path: path, Err: ErrDirNotFound}
	}

	empty, err := afero.IsEmpty(o.fs, path)
	if err != nil {
		return err
	}
	if !empty {
		return &fs.PathError{Op: "rmdir", Path: path, Err: ErrDirNotEmpty}
	}

	if err := o.fs.Remove(path); err != nil {
		return err
	}
	o.logger.Debug("removed directory", "path", path)
	return nil
}

// RemoveEmptyDirs deletes every empty immediate subdirectory of dir whose
// name matches pattern (doublestar syntax; "*" matches all). Non-empty
// matches are skipped silently. The names of removed directories are
// returned in listing order.
func (o *Ops) RemoveEmptyDirs(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
	}

	entries, err := afero.ReadDir(o.fs, dir)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		matched, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return removed, err
		}
		if !matched {
			continue
		}

		p := filepath.Join(dir, entry.Name())
		empty, err := afero.IsEmpty(o.fs, p)
		if err != nil {
			return removed, err
		}
		if !empty {
			o.logger.Debug("skipping non-empty directory", "path", p)
			continue
		}
		if err := o.fs.Remove(p); err != nil {
			return removed, err
		}
		o.logger.Debug("removed directory", "path", p)
		removed = append(removed, entry.Name())
	}
	return removed, nil
}
