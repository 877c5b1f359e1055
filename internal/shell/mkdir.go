// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"path/filepath"
	"strings"
)

// mkdirCommand creates directories, including missing parents. Each argument
// gets its own report line; a failure does not stop later arguments.
type mkdirCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newMkdirCommand())
}

func newMkdirCommand() *mkdirCommand {
	return &mkdirCommand{
		baseCommand: baseCommand{
			name:    "mkdir",
			usage:   "mkdir <path>...",
			summary: "create directories and their parents",
		},
	}
}

// Run executes the mkdir command.
func (c *mkdirCommand) Run(s Session, args []string) Result {
	if len(args) == 0 {
		return usageError(c.name, "mkdir: missing argument")
	}

	lines := make([]string, 0, len(args))
	var firstErr *CommandError
	for _, token := range args {
		p := filepath.Clean(s.Resolve(token))

		if _, err := s.FS.Stat(p); err == nil {
			lines = append(lines, "Directory already exists: "+filepath.Base(p))
			continue
		}

		if err := s.FS.MkdirAll(p, 0o755); err != nil {
			msg := "mkdir: failed to create " + p
			lines = append(lines, msg)
			if firstErr == nil {
				firstErr = newCommandError(ErrIO, c.name, err, "%s", msg)
			}
			continue
		}
		s.Logger.Debug("created directory", "path", p)
		lines = append(lines, "Directory created: "+p)
	}

	res := Result{Output: strings.Join(lines, "\n")}
	if firstErr != nil {
		res.Err = firstErr
	}
	return res
}
