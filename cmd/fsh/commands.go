// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"fsh-cli/internal/shell"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// newCommandsCommand creates `fsh commands`, the rendered command reference.
func newCommandsCommand(app *App, flags *rootFlags) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "Show the reference for commands accepted inside the shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			md := commandReference(shell.DefaultRegistry)
			if raw {
				_, err := fmt.Fprint(app.stdout, md)
				return err
			}

			cfg, err := loadEffectiveConfig(cmd, app, flags)
			if err != nil {
				return startupFailure(cmd, app, err, flags.verbose)
			}
			out, err := renderMarkdown(md, colorEnabled(cfg.Color, app.stdout))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(app.stdout, out)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the markdown source")
	return cmd
}

// commandReference renders the registry as a markdown document.
func commandReference(reg *shell.Registry) string {
	var sb strings.Builder

	sb.WriteString("# fsh commands\n\n")
	sb.WriteString("Arguments are split on whitespace; quoting is not supported. ")
	sb.WriteString("Relative paths resolve against the shell's working directory.\n\n")
	sb.WriteString("| Command | Description |\n")
	sb.WriteString("|---|---|\n")
	for _, c := range reg.Commands() {
		fmt.Fprintf(&sb, "| `%s` | %s |\n", c.Usage(), c.Summary())
	}

	for _, c := range reg.Commands() {
		flags := c.SupportedFlags()
		if len(flags) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n## %s\n\n", c.Name())
		for _, f := range flags {
			name := "-" + f.Name
			if f.TakesValue {
				name += " <value>"
			}
			fmt.Fprintf(&sb, "- `%s`: %s\n", name, f.Description)
		}
	}
	return sb.String()
}

// renderMarkdown renders md for the terminal. Without color the notty style
// keeps the layout but emits no escape sequences.
func renderMarkdown(md string, color bool) (string, error) {
	style := glamour.WithStandardStyle("notty")
	if color {
		style = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
