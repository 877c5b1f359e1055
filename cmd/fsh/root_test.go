// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"fsh-cli/internal/config"

	"github.com/spf13/afero"
)

func newTestFS(t *testing.T) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/work", 0o755); err != nil {
		t.Fatalf("failed to create /work: %v", err)
	}
	return fsys
}

func runRoot(t *testing.T, fsys afero.Fs, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := NewApp(Dependencies{
		FS:     fsys,
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: &errOut,
	})
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)

	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2026-01-15T10:00:00Z"

		want := "v1.2.3 (commit: abc1234, built: 2026-01-15T10:00:00Z)"
		if got := getVersionString(); got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev build", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got, want := getVersionString(), "dev (built from source)"; got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestRoot_Session(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t)
	stdout, _, err := runRoot(t, fsys, "mkdir foo\nmkdir foo\nbogus\nexit\npwd\n", "--dir", "/work", "--no-banner")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "Directory created: /work/foo\nDirectory already exists: foo\nUnknown command: bogus\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRoot_Banner(t *testing.T) {
	t.Parallel()

	stdout, _, err := runRoot(t, newTestFS(t), "pwd\n", "-C", "/work")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := "Type 'exit' to quit.\n/work\nProgram exited.\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRoot_ConfigFile(t *testing.T) {
	t.Parallel()

	fsys := newTestFS(t)
	if err := afero.WriteFile(fsys, "/etc/fsh.cue", []byte("banner: false\nstart_dir: \"/work\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runRoot(t, fsys, "pwd\n", "--config", "/etc/fsh.cue")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "/work\n" {
		t.Errorf("stdout = %q, want %q", stdout, "/work\n")
	}
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := runRoot(t, newTestFS(t), "pwd\n", "-C", "/work", "--no-banner", "-v")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "/work\n" {
		t.Errorf("stdout = %q, want %q", stdout, "/work\n")
	}
	if !strings.Contains(stderr, "dispatching command") {
		t.Errorf("stderr = %q, want debug records", stderr)
	}
}

func TestRoot_StartupFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{"missing start dir", []string{"--dir", "/missing"}, "failed to open start directory"},
		{"bad color flag", []string{"-C", "/work", "--color", "pink"}, "invalid color mode"},
		{"missing config file", []string{"--config", "/nope.cue"}, "config file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, stderr, err := runRoot(t, newTestFS(t), "pwd\n", tt.args...)
			var exitErr *ExitError
			if !errors.As(err, &exitErr) || exitErr.Code != 1 {
				t.Fatalf("Execute() error = %v, want ExitError with code 1", err)
			}
			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestConfigShowAndDump(t *testing.T) {
	t.Parallel()

	stdout, _, err := runRoot(t, newTestFS(t), "", "config", "show", "--color", "never")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	for _, want := range []string{"Current Configuration", "(using defaults)", `prompt: "> "`, "color: never"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("config show output missing %q:\n%s", want, stdout)
		}
	}

	stdout, _, err = runRoot(t, newTestFS(t), "", "config", "dump")
	if err != nil {
		t.Fatalf("config dump error = %v", err)
	}
	if want := config.GenerateCUE(config.DefaultConfig()); stdout != want {
		t.Errorf("config dump = %q, want %q", stdout, want)
	}
}

func TestCommandsReference(t *testing.T) {
	t.Parallel()

	stdout, _, err := runRoot(t, newTestFS(t), "", "commands", "--raw")
	if err != nil {
		t.Fatalf("commands --raw error = %v", err)
	}
	for _, want := range []string{"# fsh commands", "| `cp [-r] <source> <target>` |", "## unzip", "- `-d <value>`: extract into this directory"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("reference missing %q:\n%s", want, stdout)
		}
	}

	rendered, _, err := runRoot(t, newTestFS(t), "", "commands", "--color", "never")
	if err != nil {
		t.Fatalf("commands error = %v", err)
	}
	if !strings.Contains(rendered, "fsh commands") {
		t.Errorf("rendered reference missing title:\n%s", rendered)
	}
}

func TestColorEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tests := []struct {
		mode config.ColorMode
		want bool
	}{
		{config.ColorAlways, true},
		{config.ColorNever, false},
		{config.ColorAuto, false},
	}
	for _, tt := range tests {
		if got := colorEnabled(tt.mode, &buf); got != tt.want {
			t.Errorf("colorEnabled(%q, buffer) = %v, want %v", tt.mode, got, tt.want)
		}
	}

	if shellStyles(config.ColorNever, &buf) != nil {
		t.Error("shellStyles(never) should be nil")
	}
	if shellStyles(config.ColorAlways, &buf) == nil {
		t.Error("shellStyles(always) should not be nil")
	}
}

func TestRoot_PromptNotPrintedForPipedInput(t *testing.T) {
	t.Parallel()

	stdout, _, err := runRoot(t, newTestFS(t), "pwd\n", "-C", "/work", "--no-banner", "--prompt", "fsh$ ")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "/work\n" {
		t.Errorf("stdout = %q, want %q", stdout, "/work\n")
	}

	root := NewRootCommand(NewApp(Dependencies{FS: newTestFS(t)}))
	flag := root.Flags().Lookup("prompt")
	if flag == nil {
		t.Fatal("--prompt flag not registered")
	}
	if !strings.Contains(flag.Usage, "piped input") {
		t.Errorf("--prompt usage = %q, want it to mention piped input", flag.Usage)
	}
}
