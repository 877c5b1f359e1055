// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"github.com/spf13/afero"
)

// rmCommand deletes a file or an empty directory. There is no recursive
// mode; non-empty directories are refused.
type rmCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newRmCommand())
}

func newRmCommand() *rmCommand {
	return &rmCommand{
		baseCommand: baseCommand{
			name:    "rm",
			usage:   "rm <path>",
			summary: "delete a file or an empty directory",
		},
	}
}

// Run executes the rm command.
func (c *rmCommand) Run(s Session, args []string) Result {
	if len(args) == 0 {
		return usageError(c.name, "rm: missing operand")
	}

	token := args[0]
	p := s.Resolve(token)

	info, err := s.FS.Stat(p)
	if err != nil {
		return notFoundError(c.name, err, "rm: file not found: %s", token)
	}
	if info.IsDir() {
		empty, err := afero.IsEmpty(s.FS, p)
		if err != nil {
			return ioError(c.name, err, "rm: failed to delete %s: %v", token, err)
		}
		if !empty {
			return stateError(c.name, nil, "rm: cannot remove '%s': directory not empty", token)
		}
	}

	if err := s.FS.Remove(p); err != nil {
		return ioError(c.name, err, "rm: failed to delete %s: %v", token, err)
	}
	s.Logger.Debug("removed path", "path", p)
	return success("File '%s' deleted successfully", token)
}
