// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrInjectedRead is returned by every read from a file FaultFs was told to fail.
var ErrInjectedRead = errors.New("injected read failure")

type (
	// FaultFs wraps an afero.Fs so that reading selected files fails with
	// ErrInjectedRead. Opening and stat-ing those files still succeeds, which
	// makes the failure surface in the middle of a copy or archive write.
	FaultFs struct {
		afero.Fs
		failReads map[string]bool
	}

	failingFile struct {
		afero.File
	}
)

// NewFaultFs wraps base; reads from any of paths fail.
func NewFaultFs(base afero.Fs, paths ...string) *FaultFs {
	fail := make(map[string]bool, len(paths))
	for _, p := range paths {
		fail[filepath.Clean(p)] = true
	}
	return &FaultFs{Fs: base, failReads: fail}
}

// Open opens name on the wrapped filesystem.
func (f *FaultFs) Open(name string) (afero.File, error) {
	file, err := f.Fs.Open(name)
	return f.wrap(name, file, err)
}

// OpenFile opens name on the wrapped filesystem.
func (f *FaultFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := f.Fs.OpenFile(name, flag, perm)
	return f.wrap(name, file, err)
}

func (f *FaultFs) wrap(name string, file afero.File, err error) (afero.File, error) {
	if err != nil || !f.failReads[filepath.Clean(name)] {
		return file, err
	}
	return &failingFile{File: file}, nil
}

func (*failingFile) Read([]byte) (int, error) {
	return 0, ErrInjectedRead
}

func (*failingFile) ReadAt([]byte, int64) (int, error) {
	return 0, ErrInjectedRead
}
