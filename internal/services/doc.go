// Package services defines shared utilities consumed by the pipeline stages.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent per-file outcomes (skipped vs failed).
//   - Context helpers that stamp run identifiers and stage names for logging.
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays uniform across stages.
package services
