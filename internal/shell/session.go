// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"fsh-cli/internal/archive"
	"fsh-cli/internal/treeops"
	"fsh-cli/pkg/fspath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Session is the snapshot of shell state handed to a command. It is passed
// by value; commands report a directory change through Result.Cwd instead
// of mutating it.
type Session struct {
	// Cwd is the virtual working directory.
	Cwd string
	// Home is the directory cd switches to without an argument.
	Home string

	FS       afero.Fs
	Logger   *log.Logger
	Registry *Registry
	Tree     *treeops.Ops
	Archive  *archive.Codec
}

// Resolve maps a path token onto an absolute path against s.Cwd.
func (s Session) Resolve(token string) string {
	return fspath.Resolve(token, s.Cwd)
}
