// Package config loads, normalizes, and validates exifsort configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// EXIFSORT_LOG_LEVEL. The Config type centralizes every knob the CLI needs so
// scan behaviour and log routing are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
