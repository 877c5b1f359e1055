// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"fsh-cli/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `fsh config` command tree.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect fsh configuration",
		Long: `Inspect fsh configuration.

fsh runs on built-in defaults unless a CUE file is passed with --config.
Keys: prompt, banner, log_level, start_dir, color.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd, app, flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadEffectiveConfig(cmd, app, flags)
			if err != nil {
				return startupFailure(cmd, app, err, flags.verbose)
			}
			_, err = fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return err
		},
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App, flags *rootFlags) error {
	cfg, err := loadEffectiveConfig(cmd, app, flags)
	if err != nil {
		return startupFailure(cmd, app, err, flags.verbose)
	}

	r := newRenderer(cfg.Color, app.stdout)
	headerStyle := r.NewStyle().Inherit(TitleStyle)
	keyStyle := r.NewStyle().Inherit(CmdStyle)
	valueStyle := r.NewStyle().Inherit(SuccessStyle)
	mutedStyle := r.NewStyle().Inherit(SubtitleStyle)

	w := app.stdout
	fmt.Fprintln(w, headerStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if flags.configPath != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), flags.configPath)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), mutedStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	startDir := cfg.StartDir
	if startDir == "" {
		startDir = "(process working directory)"
	}

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("prompt"), valueStyle.Render(fmt.Sprintf("%q", cfg.Prompt)))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("banner"), valueStyle.Render(fmt.Sprintf("%v", cfg.Banner)))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("log_level"), valueStyle.Render(cfg.LogLevel))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("start_dir"), valueStyle.Render(startDir))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("color"), valueStyle.Render(cfg.Color.String()))

	return nil
}
