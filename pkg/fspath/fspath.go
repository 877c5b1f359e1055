// SPDX-License-Identifier: MPL-2.0

// Package fspath resolves user-supplied path tokens against a virtual working
// directory and converts between host paths and archive entry names.
//
// Host paths use the OS separator. Archive entry names always use "/".
package fspath

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ErrUnsafeEntryName is returned when an archive entry name would resolve
// outside of the extraction root.
var ErrUnsafeEntryName = errors.New("unsafe archive entry name")

// Resolve turns token into an absolute path. An absolute token is returned
// unchanged; a relative token is joined onto cwd. No I/O is performed:
// "." and ".." segments are cleaned lexically by the join instead of being
// passed through to the filesystem. The two only disagree when the segment
// before a ".." is a symbolic link, and fsh does not follow link semantics.
func Resolve(token, cwd string) string {
	if filepath.IsAbs(token) {
		return token
	}
	return filepath.Join(cwd, token)
}

// IsWithin reports whether target is root itself or lies beneath it.
// Both paths are compared after cleaning.
func IsWithin(root, target string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(target))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// EntryName builds a "/"-separated archive entry name from a root name and
// a host-relative path beneath it.
func EntryName(rootName, rel string) string {
	if rel == "" || rel == "." {
		return rootName
	}
	return path.Join(rootName, filepath.ToSlash(rel))
}

// FromEntryName maps an archive entry name onto a host path under destRoot.
// Names that are absolute, empty, or climb out of destRoot are rejected.
func FromEntryName(destRoot, name string) (string, error) {
	trimmed := strings.TrimSuffix(name, "/")
	if trimmed == "" || path.IsAbs(trimmed) || filepath.IsAbs(filepath.FromSlash(trimmed)) || filepath.VolumeName(trimmed) != "" {
		return "", fmt.Errorf("%w: %q", ErrUnsafeEntryName, name)
	}

	target := filepath.Join(destRoot, filepath.FromSlash(trimmed))
	if !IsWithin(destRoot, target) || target == filepath.Clean(destRoot) {
		return "", fmt.Errorf("%w: %q", ErrUnsafeEntryName, name)
	}
	return target, nil
}
