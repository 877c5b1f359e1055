// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"reflect"
	"testing"
)

func TestDefaultRegistry_Builtins(t *testing.T) {
	t.Parallel()

	want := []string{"cat", "cd", "cp", "exit", "help", "ls", "mkdir", "pwd", "rm", "rmdir", "touch", "unzip", "wc", "zip"}
	if got := DefaultRegistry.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	for _, cmd := range DefaultRegistry.Commands() {
		if cmd.Usage() == "" || cmd.Summary() == "" {
			t.Errorf("command %q lacks usage or summary", cmd.Name())
		}
	}
}

func TestRegistry_RegisterDuplicatePanics(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newPwdCommand())

	defer func() {
		if recover() == nil {
			t.Error("Register() of a duplicate name did not panic")
		}
	}()
	reg.Register(newPwdCommand())
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newCpCommand())

	cmd, ok := reg.Lookup("cp")
	if !ok || cmd.Name() != "cp" {
		t.Fatalf("Lookup(cp) = %v, %v", cmd, ok)
	}
	if _, ok := reg.Lookup("mv"); ok {
		t.Error("Lookup(mv) found an unregistered command")
	}

	flags := cmd.SupportedFlags()
	if len(flags) != 1 || flags[0].Name != "r" {
		t.Errorf("SupportedFlags() = %+v, want a single -r flag", flags)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line   string
		want   Invocation
		wantOK bool
	}{
		{"", Invocation{}, false},
		{"   \t ", Invocation{}, false},
		{"pwd", Invocation{Name: "pwd", Args: []string{}}, true},
		{"  cp   -r a\tb  ", Invocation{Name: "cp", Args: []string{"-r", "a", "b"}}, true},
		{"cat 'my file'", Invocation{Name: "cat", Args: []string{"'my", "file'"}}, true},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.line)
		if ok != tt.wantOK || !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %+v, %v; want %+v, %v", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}
