// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"errors"
	"path/filepath"

	"fsh-cli/internal/archive"
)

// unzipCommand extracts a zip archive into the working directory or the
// directory given with -d, creating it when absent.
type unzipCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newUnzipCommand())
}

func newUnzipCommand() *unzipCommand {
	return &unzipCommand{
		baseCommand: baseCommand{
			name:    "unzip",
			usage:   "unzip <archive.zip> [-d <destination>]",
			summary: "extract a zip archive",
			flags: []FlagInfo{
				{Name: "d", Description: "extract into this directory", TakesValue: true},
			},
		},
	}
}

// Run executes the unzip command.
func (c *unzipCommand) Run(s Session, args []string) Result {
	if len(args) == 0 || (len(args) > 1 && args[1] != "-d") {
		return usageError(c.name, "unzip: usage: %s", c.usage)
	}

	archivePath := s.Resolve(args[0])
	dest := s.Cwd
	if len(args) > 1 {
		if len(args) < 3 {
			return usageError(c.name, "unzip: destination folder missing after -d")
		}
		dest = filepath.Clean(s.Resolve(args[2]))
	}

	info, err := s.FS.Stat(archivePath)
	if err != nil {
		return notFoundError(c.name, err, "unzip: archive not found: %s", args[0])
	}
	if info.IsDir() {
		return stateError(c.name, nil, "unzip: %s is a directory", args[0])
	}

	if err := s.Archive.UnpackFile(archivePath, dest); err != nil {
		if errors.Is(err, archive.ErrUnsafeEntry) {
			return stateError(c.name, err, "unzip: %v", err)
		}
		return ioError(c.name, err, "unzip: extraction failed: %v", err)
	}
	return success("Archive extracted to: %s", dest)
}
