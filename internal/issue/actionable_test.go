// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "start shell"},
			want: "failed to start shell",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "load configuration", Resource: "fsh.cue"},
			want: "failed to load configuration: fsh.cue",
		},
		{
			name: "with resource and cause",
			err: &ActionableError{
				Operation: "open start directory",
				Resource:  "/srv/data",
				Cause:     fs.ErrNotExist,
			},
			want: "failed to open start directory: /srv/data: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("reading: %w", fs.ErrPermission)
	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("fsh.cue").
		WithSuggestion("Check file permissions").
		WithSuggestion("Run without --config to use defaults").
		Wrap(cause).
		BuildError()

	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("errors.Is(err, fs.ErrPermission) = false for %v", err)
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("error is %T, want *ActionableError", err)
	}
	if len(ae.Suggestions) != 2 {
		t.Errorf("got %d suggestions, want 2", len(ae.Suggestions))
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	if ae := NewErrorContext().WithResource("x").Build(); ae != nil {
		t.Errorf("Build() = %v, want nil", ae)
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() = %v, want nil", err)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := &ActionableError{
		Operation:   "load configuration",
		Resource:    "fsh.cue",
		Suggestions: []string{"Check the file for CUE syntax errors"},
		Cause:       fmt.Errorf("parse: %w", errors.New("unexpected token")),
	}

	plain := err.Format(false)
	if !strings.Contains(plain, "• Check the file for CUE syntax errors") {
		t.Errorf("Format(false) missing suggestion: %q", plain)
	}
	if strings.Contains(plain, "Error chain:") {
		t.Errorf("Format(false) should not include the chain: %q", plain)
	}

	verbose := err.Format(true)
	for _, want := range []string{"Error chain:", "1. parse: unexpected token", "2. unexpected token"} {
		if !strings.Contains(verbose, want) {
			t.Errorf("Format(true) missing %q: %q", want, verbose)
		}
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")
	if got := FormatError(plain, true); got != "plain failure" {
		t.Errorf("FormatError(plain) = %q, want %q", got, "plain failure")
	}

	wrapped := fmt.Errorf("startup: %w", &ActionableError{Operation: "start shell", Suggestions: []string{"retry"}})
	if got := FormatError(wrapped, false); !strings.Contains(got, "• retry") {
		t.Errorf("FormatError(wrapped) = %q, want suggestions", got)
	}
}
