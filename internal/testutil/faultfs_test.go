// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func TestFaultFs_FailsOnlySelectedReads(t *testing.T) {
	t.Parallel()

	base := afero.NewMemMapFs()
	WriteTree(t, base, "/w", map[string]string{"bad.txt": "bad", "good.txt": "good"})
	fsys := NewFaultFs(base, "/w/bad.txt")

	if _, err := afero.ReadFile(fsys, "/w/bad.txt"); !errors.Is(err, ErrInjectedRead) {
		t.Errorf("ReadFile(bad.txt) error = %v, want ErrInjectedRead", err)
	}
	got, err := afero.ReadFile(fsys, "/w/good.txt")
	if err != nil || string(got) != "good" {
		t.Errorf("ReadFile(good.txt) = %q, %v, want %q", got, err, "good")
	}
	if _, err := fsys.Stat("/w/bad.txt"); err != nil {
		t.Errorf("Stat(bad.txt) error = %v, want nil", err)
	}
}
