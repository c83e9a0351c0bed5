// Package logging constructs the slog loggers used across condense.
//
// Two output formats are supported: a human-oriented console format with
// ANSI color when the destination is a terminal, and line-delimited JSON
// for machine consumption. Level and format come from configuration or
// command-line flags.
package logging
