// Package config loads, normalizes, and validates condense configuration.
//
// It supplies repository defaults, expands tilde paths, and reads TOML
// files from ~/.config/condense/config.toml or a condense.toml in the
// working directory. Obtain settings through this package so downstream
// code receives sanitized values and clear validation errors.
package config
