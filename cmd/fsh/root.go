// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fsh-cli/internal/config"
	"fsh-cli/internal/issue"
	"fsh-cli/internal/logging"
	"fsh-cli/internal/shell"

	"github.com/charmbracelet/fang"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the values bound to the root command's flags.
type rootFlags struct {
	verbose    bool
	configPath string
	dir        string
	prompt     string
	noBanner   bool
	color      string
}

// NewRootCommand builds the fsh command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "fsh",
		Short: "A small interactive file shell",
		Long: TitleStyle.Render("fsh") + SubtitleStyle.Render(" - a small interactive file shell") + `

fsh reads one command per line from standard input and runs it against
the host filesystem: navigation (pwd, cd, ls), file management (mkdir,
rmdir, touch, cp, rm), inspection (cat, wc), and zip archives (zip,
unzip). Paths are resolved against fsh's own working directory, which
only cd changes.

` + SubtitleStyle.Render("Examples:") + `
  fsh                      Start an interactive session
  fsh -C /tmp/work         Start in /tmp/work
  fsh < script.txt         Run commands from a file
  fsh commands             Show the command reference
  fsh config show          Show the effective configuration`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, app, flags)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "CUE config file (defaults apply when unset)")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "", "style output: auto, always, or never")
	rootCmd.Flags().StringVarP(&flags.dir, "dir", "C", "", "initial working directory")
	rootCmd.Flags().StringVar(&flags.prompt, "prompt", "", "prompt shown when stdin is a terminal (never printed for piped input)")
	rootCmd.Flags().BoolVar(&flags.noBanner, "no-banner", false, "do not print the greeting and farewell lines")

	rootCmd.AddCommand(newCommandsCommand(app, flags))
	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the fsh command line. This is called by main.main().
func Execute() {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))

	// No signal notification: the loop blocks in a read that a canceled
	// context cannot interrupt, so Ctrl-C keeps its default behavior.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// loadEffectiveConfig loads the config file named by --config and applies
// flag overrides on top.
func loadEffectiveConfig(cmd *cobra.Command, app *App, flags *rootFlags) (*config.Config, error) {
	cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: flags.configPath, FS: app.FS})
	if err != nil {
		return nil, err
	}

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("prompt") {
		cfg.Prompt = flags.prompt
	}
	if changed("no-banner") && flags.noBanner {
		cfg.Banner = false
	}
	if changed("dir") {
		cfg.StartDir = flags.dir
	}
	if changed("color") {
		cfg.Color = config.ColorMode(flags.color)
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("apply command line flags").
			WithSuggestion("Run 'fsh --help' to see accepted flag values").
			Wrap(err).
			BuildError()
	}
	return cfg, nil
}

// runShell starts the interactive loop.
func runShell(cmd *cobra.Command, app *App, flags *rootFlags) error {
	cfg, err := loadEffectiveConfig(cmd, app, flags)
	if err != nil {
		return startupFailure(cmd, app, err, flags.verbose)
	}

	logger, err := logging.New(app.stderr, cfg.LogLevel)
	if err != nil {
		return startupFailure(cmd, app, err, flags.verbose)
	}

	startDir, err := resolveStartDir(app.FS, cfg.StartDir)
	if err != nil {
		return startupFailure(cmd, app, err, flags.verbose)
	}

	dispatcher, err := shell.NewDispatcher(shell.Options{
		FS:     app.FS,
		Cwd:    startDir,
		Logger: logger,
	})
	if err != nil {
		return startupFailure(cmd, app, issue.NewErrorContext().
			WithOperation("start shell").
			WithResource(startDir).
			WithSuggestion("Pass an existing directory with --dir").
			Wrap(err).
			BuildError(), flags.verbose)
	}
	logger.Debug("shell started", "cwd", dispatcher.Cwd(), "config", flags.configPath)

	loop := shell.NewLoop(dispatcher, shell.LoopOptions{
		In:         app.stdin,
		Out:        app.stdout,
		Prompt:     cfg.Prompt,
		ShowPrompt: isTerminal(app.stdin),
		Banner:     cfg.Banner,
		Styles:     shellStyles(cfg.Color, app.stdout),
	})
	if err := loop.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return startupFailure(cmd, app, err, flags.verbose)
	}
	return nil
}

// resolveStartDir turns the configured start directory into an absolute
// path, defaulting to the process working directory.
func resolveStartDir(fsys afero.Fs, dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if ok, _ := afero.DirExists(fsys, abs); !ok {
		return "", issue.NewErrorContext().
			WithOperation("open start directory").
			WithResource(abs).
			WithSuggestion("Check the --dir flag or the start_dir config key").
			Wrap(shell.ErrInvalidWorkingDir).
			BuildError()
	}
	return abs, nil
}

// startupFailure prints err with its suggestions and returns an ExitError
// so the error is not printed a second time.
func startupFailure(cmd *cobra.Command, app *App, err error, verbose bool) error {
	fmt.Fprintln(app.stderr, issue.FormatError(err, verbose))
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: 1, Err: err}
}
