// SPDX-License-Identifier: MPL-2.0

// Package config handles fsh configuration using Viper with CUE as the file
// format.
//
// Defaults apply when no file is given. A file is read only when its path is
// passed explicitly (fsh --config <file>); there is no search path. The file
// is validated against the embedded #Config schema (config_schema.cue)
// before its values are merged over the defaults.
package config
