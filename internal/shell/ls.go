// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"slices"

	"github.com/spf13/afero"
)

// lsCommand lists the immediate children of a directory, one per line.
type lsCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newLsCommand())
}

func newLsCommand() *lsCommand {
	return &lsCommand{
		baseCommand: baseCommand{
			name:    "ls",
			usage:   "ls [path]",
			summary: "list directory entries in lexical order",
		},
	}
}

// Run executes the ls command.
func (c *lsCommand) Run(s Session, args []string) Result {
	dir := s.Cwd
	if len(args) > 0 {
		dir = s.Resolve(args[0])
	}

	info, err := s.FS.Stat(dir)
	if err != nil {
		return notFoundError(c.name, err, "ls: cannot access directory")
	}
	if !info.IsDir() {
		return stateError(c.name, nil, "ls: cannot access directory")
	}

	infos, err := afero.ReadDir(s.FS, dir)
	if err != nil {
		return ioError(c.name, err, "ls: cannot access directory")
	}

	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		names = append(names, fi.Name())
	}
	slices.Sort(names)
	return successLines(names)
}
