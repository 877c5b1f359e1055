// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the fsh command line: the root command that starts the
// interactive shell, plus the "commands" and "config" subcommands.
package cmd
