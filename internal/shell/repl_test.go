// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func runLoop(t *testing.T, d *Dispatcher, input string, opts LoopOptions) string {
	t.Helper()

	var out bytes.Buffer
	opts.In = strings.NewReader(input)
	opts.Out = &out
	if err := NewLoop(d, opts).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestLoop_Session(t *testing.T) {
	t.Parallel()

	d, fsys := newTestDispatcher(t, nil)
	input := "mkdir foo\nmkdir foo\n\nbogus arg\nexit\nmkdir never\n"

	got := runLoop(t, d, input, LoopOptions{Banner: true})
	want := "Type 'exit' to quit.\n" +
		"Directory created: /work/foo\n" +
		"Directory already exists: foo\n" +
		"Unknown command: bogus\n" +
		"Program exited.\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	assertExists(t, fsys, "/work/never", false)
}

func TestLoop_EndOfInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		opts  LoopOptions
		want  string
	}{
		{"prompt and eof", "pwd\n", LoopOptions{ShowPrompt: true}, "> /work\n> \n"},
		{"last line without newline", "pwd", LoopOptions{ShowPrompt: true}, "> /work\n"},
		{"custom prompt", "pwd\n", LoopOptions{ShowPrompt: true, Prompt: "fsh$ "}, "fsh$ /work\nfsh$ \n"},
		{"no prompt", "cd ..\npwd\n", LoopOptions{}, "Moved to parent directory\n/\n"},
		{"crlf input", "pwd\r\n", LoopOptions{}, "/work\n"},
		{"empty input with banner", "", LoopOptions{Banner: true}, "Type 'exit' to quit.\nProgram exited.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, _ := newTestDispatcher(t, nil)
			if got := runLoop(t, d, tt.input, tt.opts); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoop_StyledFailuresKeepText(t *testing.T) {
	t.Parallel()

	d, _ := newTestDispatcher(t, nil)
	got := runLoop(t, d, "bogus\n", LoopOptions{Styles: &Styles{}})
	if !strings.Contains(got, "Unknown command: bogus") {
		t.Errorf("output = %q, want it to contain the failure text", got)
	}
}

func TestLoop_ContextCanceled(t *testing.T) {
	t.Parallel()

	d, _ := newTestDispatcher(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewLoop(d, LoopOptions{In: strings.NewReader("pwd\n")}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
