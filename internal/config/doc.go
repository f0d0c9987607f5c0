// Package config loads, normalizes, and validates qimu configuration.
//
// Configuration lives in a TOML file (default ~/.config/qimu/config.toml)
// whose sections seed the defaults for reads-table flags and logging.
// Missing files are not an error: defaults apply, and the config command
// can persist changes back to disk. Always obtain settings through this
// package so downstream code sees sanitized lists and validated values.
package config
