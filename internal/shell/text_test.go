// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"strings"
	"testing"
)

func TestWc(t *testing.T) {
	t.Parallel()

	d, _ := newTestDispatcher(t, map[string]string{
		"notes.txt": "hello\nworld\n",
		"other.txt": "one two  three",
		"dir/":      "",
	})

	assertSuccess(t, d.Execute("wc notes.txt"), "2 2 10 notes.txt")
	assertSuccess(t, d.Execute("wc notes.txt other.txt"), "2 2 10 notes.txt\n1 3 11 other.txt")
	assertFailure(t, d.Execute("wc notes.txt nope"), ErrNotFound, "2 2 10 notes.txt\nwc: nope: no such file")
	assertFailure(t, d.Execute("wc dir"), ErrState, "wc: dir: is a directory")
	assertFailure(t, d.Execute("wc"), ErrUsage, "wc: missing argument")
}

func TestCountText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want textCounts
	}{
		{"empty", "", textCounts{}},
		{"two lines", "hello\nworld\n", textCounts{lines: 2, words: 2, chars: 10}},
		{"no trailing newline", "a b\nc", textCounts{lines: 2, words: 3, chars: 3}},
		{"blank lines", "\n\n", textCounts{lines: 2}},
		{"tabs and unicode", "héllo\twörld\n", textCounts{lines: 1, words: 2, chars: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := countText(tt.text); got != tt.want {
				t.Errorf("countText(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCat(t *testing.T) {
	t.Parallel()

	d, _ := newTestDispatcher(t, map[string]string{
		"a.txt":     "hello\n",
		"b.txt":     "world\n",
		"empty.txt": "",
		"dir/":      "",
	})

	assertSuccess(t, d.Execute("cat a.txt"), "hello")
	assertSuccess(t, d.Execute("cat a.txt b.txt"), "hello\nworld")
	assertSuccess(t, d.Execute("cat empty.txt"), "")
	assertFailure(t, d.Execute("cat a.txt nope"), ErrNotFound, "hello\ncat: nope: no such file")
	assertFailure(t, d.Execute("cat dir"), ErrState, "cat: dir: is a directory")
	assertFailure(t, d.Execute("cat"), ErrUsage, "cat: missing argument")
}

func TestHelp(t *testing.T) {
	t.Parallel()

	d, _ := newTestDispatcher(t, nil)
	res := d.Execute("help")
	if res.Failed() {
		t.Fatalf("help failed: %v", res.Err)
	}

	out := res.Text()
	for _, name := range DefaultRegistry.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("help output missing %q", name)
		}
	}
	if !strings.Contains(out, "cp [-r] <source> <target>") {
		t.Errorf("help output missing cp usage: %q", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != len(DefaultRegistry.Names()) {
		t.Errorf("help has %d lines, want %d", len(lines), len(DefaultRegistry.Names()))
	}
}

func TestExit(t *testing.T) {
	t.Parallel()

	d, _ := newTestDispatcher(t, nil)
	res := d.Execute("exit")
	if !res.Exit {
		t.Error("exit did not request termination")
	}
	assertSuccess(t, res, "")
}
