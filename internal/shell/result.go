// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"fmt"
	"strings"
)

// Result is the outcome of one command.
//
// A successful command may have empty Output, which means "print nothing".
// A failed command carries Err; its Output is either empty (the error
// message is the text) or, for commands reporting per-argument outcomes like
// mkdir, the full report including the failing lines.
type Result struct {
	Output string
	Err    error
	// Cwd is the new virtual working directory. Empty means unchanged.
	Cwd string
	// Exit asks the loop to stop.
	Exit bool
}

// Failed reports whether the command failed.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Text returns the text to print for r.
func (r Result) Text() string {
	if r.Output != "" {
		return r.Output
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return ""
}

func success(format string, args ...any) Result {
	return Result{Output: fmt.Sprintf(format, args...)}
}

func successLines(lines []string) Result {
	return Result{Output: strings.Join(lines, "\n")}
}

func failure(err *CommandError) Result {
	return Result{Err: err}
}

func usageError(cmd, format string, args ...any) Result {
	return failure(newCommandError(ErrUsage, cmd, nil, format, args...))
}

func notFoundError(cmd string, cause error, format string, args ...any) Result {
	return failure(newCommandError(ErrNotFound, cmd, cause, format, args...))
}

func stateError(cmd string, cause error, format string, args ...any) Result {
	return failure(newCommandError(ErrState, cmd, cause, format, args...))
}

func ioError(cmd string, cause error, format string, args ...any) Result {
	return failure(newCommandError(ErrIO, cmd, cause, format, args...))
}

// partialFailure reports the lines produced before err followed by err's
// message, for commands that process several arguments in order.
func partialFailure(lines []string, err *CommandError) Result {
	return Result{
		Output: strings.Join(append(lines, err.Message), "\n"),
		Err:    err,
	}
}
