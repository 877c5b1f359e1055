// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"os"
)

// touchCommand creates an empty file. An existing file is left untouched.
type touchCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newTouchCommand())
}

func newTouchCommand() *touchCommand {
	return &touchCommand{
		baseCommand: baseCommand{
			name:    "touch",
			usage:   "touch <file>",
			summary: "create an empty file",
		},
	}
}

// Run executes the touch command.
func (c *touchCommand) Run(s Session, args []string) Result {
	if len(args) == 0 {
		return usageError(c.name, "touch: missing argument")
	}

	token := args[0]
	p := s.Resolve(token)
	if _, err := s.FS.Stat(p); err == nil {
		return success("File already exists")
	}

	f, err := s.FS.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return ioError(c.name, err, "touch: cannot create %s: %v", token, err)
	}
	if err := f.Close(); err != nil {
		return ioError(c.name, err, "touch: cannot create %s: %v", token, err)
	}
	return success("File %s created successfully", token)
}
