// SPDX-License-Identifier: MPL-2.0

package shell

// pwdCommand prints the virtual working directory.
type pwdCommand struct {
	baseCommand
}

func init() {
	RegisterDefault(newPwdCommand())
}

func newPwdCommand() *pwdCommand {
	return &pwdCommand{
		baseCommand: baseCommand{
			name:    "pwd",
			usage:   "pwd",
			summary: "print the current directory",
		},
	}
}

// Run executes the pwd command.
func (c *pwdCommand) Run(s Session, _ []string) Result {
	return success("%s", s.Cwd)
}
