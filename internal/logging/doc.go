// Package logging assembles structured slog loggers and formatting helpers
// used across exifsort.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so pipeline code can
// automatically tag log lines with run identifiers and stage names. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
//
// Prefer these constructors over hand-rolled slog setup so components emit
// data with the same shape and routing as the rest of the tool.
package logging
