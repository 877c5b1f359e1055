// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helpers shared by fsh's tests: environment
// overrides that restore themselves, and builders that lay out or read back
// whole directory trees on an afero.Fs.
package testutil
