// SPDX-License-Identifier: MPL-2.0

package shell

type (
	// Command is one builtin of the shell.
	Command interface {
		// Name returns the command name (e.g., "cp", "ls", "cd").
		Name() string

		// Usage returns the one-line argument grammar, e.g. "cp [-r] <source> <target>".
		Usage() string

		// Summary returns a short description for help output.
		Summary() string

		// SupportedFlags returns the flags this command understands.
		SupportedFlags() []FlagInfo

		// Run executes the command. args excludes the command name.
		// Run must not panic and must release every handle it opens
		// before returning.
		Run(s Session, args []string) Result
	}

	// FlagInfo describes a flag accepted by a builtin.
	FlagInfo struct {
		// Name is the flag name without the dash (e.g., "r" for -r).
		Name string
		// Description explains what the flag does.
		Description string
		// TakesValue indicates if the flag requires a value (e.g., -d <dir>).
		TakesValue bool
	}
)

// baseCommand carries the descriptive half of a Command.
type baseCommand struct {
	name    string
	usage   string
	summary string
	flags   []FlagInfo
}

// Name returns the command name.
func (c *baseCommand) Name() string {
	return c.name
}

// Usage returns the argument grammar.
func (c *baseCommand) Usage() string {
	return c.usage
}

// Summary returns the help description.
func (c *baseCommand) Summary() string {
	return c.summary
}

// SupportedFlags returns the flags supported by this command.
func (c *baseCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

// splitRecursive strips a leading -r flag from args.
func splitRecursive(args []string) (recursive bool, rest []string) {
	if len(args) > 0 && args[0] == "-r" {
		return true, args[1:]
	}
	return false, args
}
