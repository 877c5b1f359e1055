// SPDX-License-Identifier: MPL-2.0

// Package shell implements fsh's interactive command language.
//
// A Dispatcher owns the virtual working directory and routes each parsed
// line to a registered Command. Commands receive an immutable Session
// snapshot (working directory, home directory, filesystem, logger) and return
// a tagged Result; only cd reports a new working directory through
// Result.Cwd. No command failure ever escapes as a panic or terminates the
// loop: failures are carried by Result.Err and classified with the sentinel
// kinds in errors.go.
//
// Builtins live one per file and register themselves with DefaultRegistry
// during package initialization.
package shell
