// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"strings"

	"github.com/spf13/afero"
)

// catCommand prints the concatenated contents of files.
type catCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newCatCommand())
}

func newCatCommand() *catCommand {
	return &catCommand{
		baseCommand: baseCommand{
			name:    "cat",
			usage:   "cat <file>...",
			summary: "print file contents",
		},
	}
}

// Run executes the cat command.
func (c *catCommand) Run(s Session, args []string) Result {
	if len(args) == 0 {
		return usageError(c.name, "cat: missing argument")
	}

	var b strings.Builder
	for _, token := range args {
		data, cerr := readRegularFile(s, c.name, token)
		if cerr != nil {
			var lines []string
			if b.Len() > 0 {
				lines = append(lines, strings.TrimSuffix(b.String(), "\n"))
			}
			return partialFailure(lines, cerr)
		}
		b.Write(data)
	}
	return success("%s", strings.TrimSuffix(b.String(), "\n"))
}

// readRegularFile reads the file named by token, classifying failures the
// way cat and wc report them.
func readRegularFile(s Session, cmd, token string) ([]byte, *CommandError) {
	p := s.Resolve(token)
	info, err := s.FS.Stat(p)
	if err != nil {
		return nil, newCommandError(ErrNotFound, cmd, err, "%s: %s: no such file", cmd, token)
	}
	if info.IsDir() {
		return nil, newCommandError(ErrState, cmd, nil, "%s: %s: is a directory", cmd, token)
	}
	data, err := afero.ReadFile(s.FS, p)
	if err != nil {
		return nil, newCommandError(ErrIO, cmd, err, "%s: %s: %v", cmd, token, err)
	}
	return data, nil
}
