// SPDX-License-Identifier: MPL-2.0

// Package issue builds user-facing errors for process-level failures such as
// an unreadable config file or an unusable start directory. Command failures
// inside the shell do not use this package; they are reported as results.
package issue
