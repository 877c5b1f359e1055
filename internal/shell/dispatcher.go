// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fsh-cli/internal/archive"
	"fsh-cli/internal/logging"
	"fsh-cli/internal/treeops"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// ErrInvalidWorkingDir is returned by NewDispatcher when the starting
// directory does not exist or is not a directory.
var ErrInvalidWorkingDir = errors.New("invalid working directory")

// Options configures a Dispatcher.
type Options struct {
	// FS is the filesystem commands operate on. Defaults to the host filesystem.
	FS afero.Fs
	// Cwd is the initial virtual working directory. Defaults to the process
	// working directory.
	Cwd string
	// Home is the target of a bare cd. Defaults to the user's home directory.
	Home string
	// Logger receives debug records. Defaults to a discarding logger.
	Logger *log.Logger
	// Registry supplies the commands. Defaults to DefaultRegistry.
	Registry *Registry
}

// Dispatcher routes invocations to commands and owns the virtual working
// directory. It is not safe for concurrent use; the shell runs one command
// at a time.
type Dispatcher struct {
	session Session
}

// NewDispatcher validates opts and creates a Dispatcher.
func NewDispatcher(opts Options) (*Dispatcher, error) {
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Registry == nil {
		opts.Registry = DefaultRegistry
	}
	opts.Logger = logging.OrDiscard(opts.Logger)

	if opts.Cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		opts.Cwd = wd
	}
	cwd, err := filepath.Abs(opts.Cwd)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidWorkingDir, opts.Cwd, err)
	}
	if ok, statErr := afero.DirExists(opts.FS, cwd); statErr != nil || !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWorkingDir, cwd)
	}

	if opts.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		opts.Home = home
	}

	return &Dispatcher{
		session: Session{
			Cwd:      cwd,
			Home:     opts.Home,
			FS:       opts.FS,
			Logger:   opts.Logger,
			Registry: opts.Registry,
			Tree:     treeops.New(opts.FS, opts.Logger),
			Archive:  archive.NewCodec(opts.FS, opts.Logger),
		},
	}, nil
}

// Cwd returns the current virtual working directory.
func (d *Dispatcher) Cwd() string {
	return d.session.Cwd
}

// Session returns a snapshot of the current session.
func (d *Dispatcher) Session() Session {
	return d.session
}

// Execute parses line and dispatches it. A blank line yields an empty Result.
func (d *Dispatcher) Execute(line string) Result {
	inv, ok := Parse(line)
	if !ok {
		return Result{}
	}
	return d.Dispatch(inv.Name, inv.Args)
}

// Dispatch runs the named command with args against the current session and
// applies any working directory change it reports. Unknown names produce an
// ErrUnknownCommand result. A panicking command is converted into an ErrIO
// result so the loop survives.
func (d *Dispatcher) Dispatch(name string, args []string) (res Result) {
	logger := d.session.Logger
	logger.Debug("dispatching command", "command", name, "args", len(args), "cwd", d.session.Cwd)

	cmd, ok := d.session.Registry.Lookup(name)
	if !ok {
		return failure(newCommandError(ErrUnknownCommand, name, nil, "Unknown command: %s", name))
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("command panicked", "command", name, "panic", r)
			res = ioError(name, fmt.Errorf("panic: %v", r), "%s: internal error: %v", name, r)
		}
		if res.Failed() {
			logger.Debug("command failed", "command", name, "kind", KindName(res.Err), "error", res.Err)
		}
	}()

	res = cmd.Run(d.session, args)
	if res.Cwd != "" && res.Cwd != d.session.Cwd {
		logger.Debug("changed working directory", "from", d.session.Cwd, "to", res.Cwd)
		d.session.Cwd = res.Cwd
	}
	return res
}
