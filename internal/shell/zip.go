// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"errors"
	"path/filepath"

	"fsh-cli/internal/archive"
)

// zipCommand packs files and, with -r, directory trees into a zip archive.
// Every input is checked before the archive file is created.
type zipCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newZipCommand())
}

func newZipCommand() *zipCommand {
	return &zipCommand{
		baseCommand: baseCommand{
			name:    "zip",
			usage:   "zip [-r] <output.zip> <file>...",
			summary: "create a zip archive; -r is required for directories",
			flags: []FlagInfo{
				{Name: "r", Description: "archive directories recursively"},
			},
		},
	}
}

// Run executes the zip command.
func (c *zipCommand) Run(s Session, args []string) Result {
	recursive, rest := splitRecursive(args)
	if len(rest) < 2 {
		return usageError(c.name, "zip: usage: %s", c.usage)
	}

	out := filepath.Clean(s.Resolve(rest[0]))
	roots := make([]string, 0, len(rest)-1)
	for _, token := range rest[1:] {
		root := s.Resolve(token)
		if err := s.Archive.CheckRoot(root, recursive); err != nil {
			switch {
			case errors.Is(err, archive.ErrRootNotFound):
				return notFoundError(c.name, err, "zip: file or directory not found: %s", token)
			case errors.Is(err, archive.ErrDirectoryNeedsRecursive):
				return usageError(c.name, "zip: %s is a directory, use -r", token)
			default:
				return ioError(c.name, err, "zip: cannot read %s: %v", token, err)
			}
		}
		roots = append(roots, root)
	}

	if err := s.Archive.PackFile(out, roots, recursive); err != nil {
		return ioError(c.name, err, "zip: failed to create archive: %v", err)
	}
	return success("Archive created at: %s", out)
}
