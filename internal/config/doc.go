// Package config loads, normalizes, and validates toolkit configuration.
//
// It supplies repository defaults, expands tilde paths, reads the TOML file,
// and lower-cases the default language list so downstream code always sees
// sanitized values. Obtain settings through Load rather than reading the file
// directly.
package config
