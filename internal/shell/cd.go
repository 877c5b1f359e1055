// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"path/filepath"
)

// cdCommand changes the virtual working directory. It is the only command
// that reports a new Cwd.
type cdCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newCdCommand())
}

func newCdCommand() *cdCommand {
	return &cdCommand{
		baseCommand: baseCommand{
			name:    "cd",
			usage:   "cd [path]",
			summary: "change directory; no argument goes home, .. goes up",
		},
	}
}

// Run executes the cd command.
func (c *cdCommand) Run(s Session, args []string) Result {
	if len(args) == 0 {
		return Result{Output: "Changed to home directory", Cwd: s.Home}
	}

	if args[0] == ".." {
		parent := filepath.Dir(s.Cwd)
		if parent == s.Cwd {
			return success("Already at root directory")
		}
		return Result{Output: "Moved to parent directory", Cwd: parent}
	}

	target := filepath.Clean(s.Resolve(args[0]))
	info, err := s.FS.Stat(target)
	if err != nil {
		return notFoundError(c.name, err, "cd: invalid path")
	}
	if !info.IsDir() {
		return stateError(c.name, nil, "cd: invalid path")
	}
	return Result{Output: "Changed directory to: " + target, Cwd: target}
}
