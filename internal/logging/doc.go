// Package logging constructs slog loggers for the qimu CLI.
//
// Diagnostics go to stderr so stdout stays reserved for table output.
// Console and JSON formats are supported, and the stream can be duplicated
// into a log file for later inspection.
package logging
