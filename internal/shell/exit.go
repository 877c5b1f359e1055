// SPDX-License-Identifier: MPL-2.0

package shell

// exitCommand ends the loop without output.
type exitCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newExitCommand())
}

func newExitCommand() *exitCommand {
	return &exitCommand{
		baseCommand: baseCommand{
			name:    "exit",
			usage:   "exit",
			summary: "leave the shell",
		},
	}
}

// Run executes the exit command.
func (c *exitCommand) Run(_ Session, _ []string) Result {
	return Result{Exit: true}
}
