// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"fmt"
)

// helpCommand lists the registered commands with their usage.
type helpCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newHelpCommand())
}

func newHelpCommand() *helpCommand {
	return &helpCommand{
		baseCommand: baseCommand{
			name:    "help",
			usage:   "help",
			summary: "list commands",
		},
	}
}

// Run executes the help command.
func (c *helpCommand) Run(s Session, _ []string) Result {
	cmds := s.Registry.Commands()

	width := 0
	for _, cmd := range cmds {
		width = max(width, len(cmd.Usage()))
	}

	lines := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		lines = append(lines, fmt.Sprintf("%-*s  %s", width, cmd.Usage(), cmd.Summary()))
	}
	return successLines(lines)
}
