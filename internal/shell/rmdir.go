// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"errors"
	"path/filepath"
	"strings"

	"fsh-cli/internal/treeops"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// rmdirCommand removes empty directories. A glob argument ("*" being the
// common case) sweeps every matching empty subdirectory of the working
// directory; a plain path removes that single directory if it is empty.
// An existing directory whose name contains glob characters is taken
// literally.
type rmdirCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newRmdirCommand())
}

func newRmdirCommand() *rmdirCommand {
	return &rmdirCommand{
		baseCommand: baseCommand{
			name:    "rmdir",
			usage:   "rmdir <path>|<glob>",
			summary: "remove an empty directory, or every empty subdirectory matching a glob",
		},
	}
}

// Run executes the rmdir command.
func (c *rmdirCommand) Run(s Session, args []string) Result {
	if len(args) == 0 {
		return usageError(c.name, "rmdir: missing argument")
	}

	token := args[0]
	p := filepath.Clean(s.Resolve(token))
	if isGlob(token) {
		if isDir, _ := afero.DirExists(s.FS, p); !isDir {
			return c.sweep(s, token)
		}
	}

	if err := s.Tree.RemoveEmptyDir(p); err != nil {
		switch {
		case errors.Is(err, treeops.ErrDirNotFound):
			return notFoundError(c.name, err, "rmdir: directory not found: %s", token)
		case errors.Is(err, treeops.ErrDirNotEmpty):
			return stateError(c.name, err, "rmdir: directory not empty: %s", token)
		default:
			return ioError(c.name, err, "rmdir: failed to remove %s: %v", token, err)
		}
	}
	return success("Deleted directory: %s", p)
}

func (c *rmdirCommand) sweep(s Session, pattern string) Result {
	removed, err := s.Tree.RemoveEmptyDirs(s.Cwd, pattern)

	lines := make([]string, 0, len(removed))
	for _, name := range removed {
		lines = append(lines, "Deleted empty directory: "+name)
	}

	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return usageError(c.name, "rmdir: invalid pattern: %s", pattern)
		}
		if len(removed) == 0 {
			return ioError(c.name, err, "rmdir: cannot access current directory")
		}
		return partialFailure(lines, newCommandError(ErrIO, c.name, err, "rmdir: %v", err))
	}

	if len(lines) == 0 {
		return success("No empty directories found to delete.")
	}
	return successLines(lines)
}

func isGlob(token string) bool {
	return strings.ContainsAny(token, "*?[{")
}
