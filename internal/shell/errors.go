// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage classifies malformed or missing command arguments.
	ErrUsage = errors.New("usage error")
	// ErrNotFound classifies a referenced file or directory that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrState classifies an operation that is invalid given filesystem state.
	ErrState = errors.New("invalid state")
	// ErrIO classifies a failed read, write, create, or delete.
	ErrIO = errors.New("i/o failure")
	// ErrUnknownCommand classifies an unrecognized command name.
	ErrUnknownCommand = errors.New("unknown command")
)

// CommandError is the failure carried by a Result. Message is the exact text
// shown to the user. errors.Is matches both Kind and Cause.
type CommandError struct {
	Kind    error
	Command string
	Message string
	Cause   error
}

// Error returns the user-facing message.
func (e *CommandError) Error() string {
	return e.Message
}

// Unwrap exposes the kind sentinel and, when present, the underlying error.
func (e *CommandError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func newCommandError(kind error, cmd string, cause error, format string, args ...any) *CommandError {
	return &CommandError{
		Kind:    kind,
		Command: cmd,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Kind returns the sentinel classifying err, or nil when err is not a
// command failure.
func Kind(err error) error {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return nil
}

// KindName returns a short lowercase label for the kind of err.
func KindName(err error) string {
	switch Kind(err) {
	case ErrUsage:
		return "usage"
	case ErrNotFound:
		return "not-found"
	case ErrState:
		return "state"
	case ErrIO:
		return "io"
	case ErrUnknownCommand:
		return "unknown-command"
	default:
		return ""
	}
}
