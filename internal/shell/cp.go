// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"errors"
	"path/filepath"

	"fsh-cli/internal/treeops"

	"github.com/spf13/afero"
)

// cpCommand copies a file, or a directory tree with -r.
type cpCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newCpCommand())
}

func newCpCommand() *cpCommand {
	return &cpCommand{
		baseCommand: baseCommand{
			name:    "cp",
			usage:   "cp [-r] <source> <target>",
			summary: "copy a file, or a directory tree with -r",
			flags: []FlagInfo{
				{Name: "r", Description: "copy directories recursively"},
			},
		},
	}
}

// Run executes the cp command.
func (c *cpCommand) Run(s Session, args []string) Result {
	recursive, rest := splitRecursive(args)
	if len(rest) < 2 {
		return usageError(c.name, "cp: usage: %s", c.usage)
	}

	src := s.Resolve(rest[0])
	dst := s.Resolve(rest[1])

	info, err := s.FS.Stat(src)
	if err != nil {
		return notFoundError(c.name, err, "cp: source not found: %s", rest[0])
	}

	if info.IsDir() {
		if !recursive {
			return usageError(c.name, "cp: use -r for directories")
		}
		if err := s.Tree.CopyTree(src, dst); err != nil {
			switch {
			case errors.Is(err, treeops.ErrCopyIntoSelf):
				return stateError(c.name, err, "cp: cannot copy a directory into itself: %s", rest[0])
			case errors.Is(err, treeops.ErrNotDirectory):
				return stateError(c.name, err, "cp: not a directory: %s", rest[1])
			default:
				return ioError(c.name, err, "cp: copy failed: %v", err)
			}
		}
		return success("Copied %s to %s", filepath.Base(src), dst)
	}

	target := dst
	if isDir, _ := afero.DirExists(s.FS, dst); isDir {
		target = filepath.Join(dst, filepath.Base(src))
	}
	if err := s.Tree.CopyFile(src, target); err != nil {
		if errors.Is(err, treeops.ErrSameFile) {
			return stateError(c.name, err, "cp: '%s' and '%s' are the same file", rest[0], rest[1])
		}
		return ioError(c.name, err, "cp: copy failed: %v", err)
	}
	return success("Copied %s to %s", filepath.Base(src), dst)
}
