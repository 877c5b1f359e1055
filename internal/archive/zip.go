// SPDX-License-Identifier: MPL-2.0

// Package archive packs directory trees into zip archives and extracts them
// again.
//
// Entry names are "/"-separated and rooted at the base name of each packed
// root, so archives are relocatable. A filesystem root has no base name; its
// children are stored at the top level. Directories are implied by the files
// they hold; a directory contributing no other entry gets an explicit
// "name/" marker entry.
// Trees are walked in lexical order, so packing the same tree twice yields
// the same entry layout.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fsh-cli/internal/logging"
	"fsh-cli/pkg/fspath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

var (
	// ErrRootNotFound is the sentinel wrapped by RootNotFoundError.
	ErrRootNotFound = errors.New("file or directory not found")
	// ErrDirectoryNeedsRecursive is the sentinel wrapped by DirectoryNeedsRecursiveError.
	ErrDirectoryNeedsRecursive = errors.New("is a directory, recursive packing required")
	// ErrUnsafeEntry is the sentinel wrapped by UnsafeEntryError.
	ErrUnsafeEntry = errors.New("unsafe archive entry")
)

type (
	// RootNotFoundError is returned when a root requested for packing does not exist.
	// It wraps ErrRootNotFound for errors.Is() compatibility.
	RootNotFoundError struct {
		Path string
	}

	// DirectoryNeedsRecursiveError is returned when a directory root is packed
	// without recursion. It wraps ErrDirectoryNeedsRecursive.
	DirectoryNeedsRecursiveError struct {
		Path string
	}

	// UnsafeEntryError is returned when an archive entry name would land
	// outside the extraction root. It wraps ErrUnsafeEntry.
	UnsafeEntryError struct {
		Name string
	}

	// Entry describes one archive entry.
	Entry struct {
		// Name is the "/"-separated entry path. Directory markers end in "/".
		Name string
		// IsDir marks a directory entry.
		IsDir bool
		// Size is the uncompressed size of a file entry.
		Size uint64
	}

	// Codec packs and unpacks zip archives on a single filesystem.
	Codec struct {
		fs     afero.Fs
		logger *log.Logger
	}
)

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRootNotFound, e.Path)
}

func (e *RootNotFoundError) Unwrap() error { return ErrRootNotFound }

func (e *DirectoryNeedsRecursiveError) Error() string {
	return fmt.Sprintf("%s %s", e.Path, ErrDirectoryNeedsRecursive)
}

func (e *DirectoryNeedsRecursiveError) Unwrap() error { return ErrDirectoryNeedsRecursive }

func (e *UnsafeEntryError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsafeEntry, e.Name)
}

func (e *UnsafeEntryError) Unwrap() error { return ErrUnsafeEntry }

// NewCodec creates a Codec bound to fsys. A nil logger discards records.
func NewCodec(fsys afero.Fs, logger *log.Logger) *Codec {
	return &Codec{fs: fsys, logger: logging.OrDiscard(logger)}
}

// CheckRoot verifies that root exists and may be packed with the given
// recursion setting.
func (c *Codec) CheckRoot(root string, recursive bool) error {
	info, err := c.fs.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &RootNotFoundError{Path: root}
		}
		return err
	}
	if info.IsDir() && !recursive {
		return &DirectoryNeedsRecursiveError{Path: root}
	}
	return nil
}

// Validate runs CheckRoot over every root and returns the first failure.
func (c *Codec) Validate(roots []string, recursive bool) error {
	for _, root := range roots {
		if err := c.CheckRoot(root, recursive); err != nil {
			return err
		}
	}
	return nil
}

// Pack validates roots and then writes them as one zip stream to w.
// Nothing is written when validation fails.
func (c *Codec) Pack(w io.Writer, roots []string, recursive bool) error {
	return c.pack(w, roots, recursive, "")
}

// PackFile packs roots into a new archive at out. The archive file itself
// is skipped if it falls inside a packed tree. On failure the partially
// written archive is removed.
func (c *Codec) PackFile(out string, roots []string, recursive bool) (err error) {
	if err := c.Validate(roots, recursive); err != nil {
		return err
	}

	f, err := c.fs.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		if err != nil {
			_ = c.fs.Remove(out) // best-effort cleanup of a partial archive
		}
	}()

	return c.pack(f, roots, recursive, out)
}

func (c *Codec) pack(w io.Writer, roots []string, recursive bool, skip string) (err error) {
	if err := c.Validate(roots, recursive); err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	defer func() {
		if closeErr := zw.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	for _, root := range roots {
		info, err := c.fs.Stat(root)
		if err != nil {
			return err
		}
		name := rootEntryName(root)
		if info.IsDir() {
			err = c.writeDir(zw, root, name, skip)
		} else {
			err = c.writeFile(zw, root, name, info)
		}
		if err != nil {
			return fmt.Errorf("packing %s: %w", root, err)
		}
	}
	return nil
}

// writeDir adds the tree under dir, depth first, using entry as the name of
// dir itself.
func (c *Codec) writeDir(zw *zip.Writer, dir, entry, skip string) error {
	infos, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		return err
	}

	emitted := 0
	for _, info := range infos {
		p := filepath.Join(dir, info.Name())
		if skip != "" && p == filepath.Clean(skip) {
			continue
		}
		child := fspath.EntryName(entry, info.Name())
		if info.IsDir() {
			err = c.writeDir(zw, p, child, skip)
		} else {
			err = c.writeFile(zw, p, child, info)
		}
		if err != nil {
			return err
		}
		emitted++
	}

	if emitted == 0 && entry != "" {
		return c.writeDirMarker(zw, dir, entry)
	}
	return nil
}

// rootEntryName is the archive name of a packed root, or "" for a
// filesystem root.
func rootEntryName(root string) string {
	base := filepath.Base(filepath.Clean(root))
	if base == string(filepath.Separator) || base == "." {
		return ""
	}
	return base
}

func (c *Codec) writeDirMarker(zw *zip.Writer, dir, entry string) error {
	info, err := c.fs.Stat(dir)
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("creating directory header: %w", err)
	}
	header.Name = entry + "/"

	if _, err := zw.CreateHeader(header); err != nil {
		return fmt.Errorf("creating directory entry: %w", err)
	}
	c.logger.Debug("archived directory", "entry", header.Name)
	return nil
}

func (c *Codec) writeFile(zw *zip.Writer, path, entry string, info fs.FileInfo) (err error) {
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("creating file header: %w", err)
	}
	header.Name = entry
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("creating zip entry: %w", err)
	}

	f, err := c.fs.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	n, err := io.Copy(w, f)
	if err != nil {
		return fmt.Errorf("writing %s: %w", entry, err)
	}
	c.logger.Debug("archived file", "entry", entry, "bytes", n)
	return nil
}

// Unpack extracts every entry of the archive in r under destRoot, in the
// order the entries appear in the archive. Directory markers become
// directories; file entries get their parent directories created and
// overwrite existing files. The first failing entry stops extraction and
// entries already written are left in place.
func (c *Codec) Unpack(r io.ReaderAt, size int64, destRoot string) error {
	zr, err := openReader(r, size)
	if err != nil {
		return err
	}

	if err := c.fs.MkdirAll(destRoot, dirPerm); err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}

	for _, file := range zr.File {
		target, err := fspath.FromEntryName(destRoot, file.Name)
		if err != nil {
			return &UnsafeEntryError{Name: file.Name}
		}

		if isDirEntry(file) {
			if err := c.fs.MkdirAll(target, dirPerm); err != nil {
				return fmt.Errorf("creating directory %s: %w", file.Name, err)
			}
			c.logger.Debug("extracted directory", "entry", file.Name)
			continue
		}

		if err := c.fs.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
			return fmt.Errorf("creating parent directory for %s: %w", file.Name, err)
		}
		if err := c.extractFile(file, target); err != nil {
			return fmt.Errorf("extracting %s: %w", file.Name, err)
		}
	}
	return nil
}

// UnpackFile extracts the archive stored at archivePath under destRoot.
func (c *Codec) UnpackFile(archivePath, destRoot string) (err error) {
	f, err := c.fs.Open(archivePath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: is a directory", archivePath)
	}

	return c.Unpack(f, info.Size(), destRoot)
}

// Entries lists the entries of the archive in r in stored order.
func (c *Codec) Entries(r io.ReaderAt, size int64) ([]Entry, error) {
	zr, err := openReader(r, size)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(zr.File))
	for _, file := range zr.File {
		entries = append(entries, Entry{
			Name:  file.Name,
			IsDir: isDirEntry(file),
			Size:  file.UncompressedSize64,
		})
	}
	return entries, nil
}

func (c *Codec) extractFile(file *zip.File, target string) (err error) {
	rc, err := file.Open()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	perm := file.Mode().Perm()
	if perm == 0 {
		perm = filePerm
	}

	out, err := c.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	//nolint:gosec // G110: archives come from the local user; size bounded by the filesystem
	n, err := io.Copy(out, rc)
	if err != nil {
		return err
	}
	c.logger.Debug("extracted file", "entry", file.Name, "bytes", n)
	return nil
}

func isDirEntry(file *zip.File) bool {
	return strings.HasSuffix(file.Name, "/") || file.FileInfo().IsDir()
}

// openReader opens a zip stream. Insecure entry names are reported per entry
// by Unpack, so zip.ErrInsecurePath is not fatal here.
func openReader(r io.ReaderAt, size int64) (*zip.Reader, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	return zr, nil
}
