// SPDX-License-Identifier: MPL-2.0

package shell

import "strings"

// Invocation is one parsed input line.
type Invocation struct {
	Name string
	Args []string
}

// Parse splits line on whitespace into a command name and its arguments.
// There is no quoting, so a path containing spaces cannot be expressed.
// ok is false for a blank line.
func Parse(line string) (inv Invocation, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Invocation{}, false
	}
	return Invocation{Name: fields[0], Args: fields[1:]}, true
}
