// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"errors"
	"testing"

	"fsh-cli/internal/testutil"

	"github.com/spf13/afero"
)

const (
	testCwd  = "/work"
	testHome = "/home/user"
)

// newTestDispatcher builds a dispatcher over an in-memory tree rooted at
// testCwd, with testHome as the home directory.
func newTestDispatcher(t *testing.T, tree map[string]string) (*Dispatcher, afero.Fs) {
	t.Helper()
	return newTestDispatcherOn(t, afero.NewMemMapFs(), tree)
}

// newTestDispatcherOn is newTestDispatcher over a caller-supplied filesystem.
func newTestDispatcherOn(t *testing.T, fsys afero.Fs, tree map[string]string) (*Dispatcher, afero.Fs) {
	t.Helper()

	testutil.WriteTree(t, fsys, testCwd, tree)
	testutil.WriteTree(t, fsys, testHome, nil)

	d, err := NewDispatcher(Options{FS: fsys, Cwd: testCwd, Home: testHome})
	if err != nil {
		t.Fatalf("NewDispatcher() error = %v", err)
	}
	return d, fsys
}

func assertText(t *testing.T, res Result, want string) {
	t.Helper()
	if got := res.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func assertSuccess(t *testing.T, res Result, want string) {
	t.Helper()
	if res.Failed() {
		t.Errorf("command failed: %v", res.Err)
	}
	assertText(t, res, want)
}

func assertFailure(t *testing.T, res Result, kind error, want string) {
	t.Helper()
	if !res.Failed() {
		t.Fatalf("command succeeded with %q, want failure", res.Text())
	}
	if !errors.Is(res.Err, kind) {
		t.Errorf("error kind = %v, want %v", Kind(res.Err), kind)
	}
	assertText(t, res, want)
}

func assertExists(t *testing.T, fsys afero.Fs, path string, want bool) {
	t.Helper()
	ok, err := afero.Exists(fsys, path)
	if err != nil {
		t.Fatalf("Exists(%q) error = %v", path, err)
	}
	if ok != want {
		t.Errorf("Exists(%q) = %v, want %v", path, ok, want)
	}
}
