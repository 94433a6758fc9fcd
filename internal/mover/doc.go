// Package mover performs the file relocation half of the pipeline.
//
// Moves use rename semantics and never overwrite an existing destination.
// When the output directory lives on a different filesystem, the mover falls
// back to a verified copy-then-delete in which the delete is attempted only
// after the copy is complete, so a failure at any point leaves the original
// file in place.
package mover
