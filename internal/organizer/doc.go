// Package organizer drives photo files through the metadata, naming, and
// relocation stages.
//
// It enumerates JPEG candidates, validates the directory pair, holds an
// advisory lock on the output directory for the duration of the run, and
// fans tasks out over a fixed-size worker pool. Each task runs its whole
// pipeline on one worker; a failing file never aborts the rest of the run.
// Completion events reach the caller through an observer callback so the
// pool stays free of presentation concerns.
package organizer
