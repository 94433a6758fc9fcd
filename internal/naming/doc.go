// Package naming derives canonical destination filenames from capture
// timestamps and guarantees their uniqueness within a run.
//
// The ClaimSet is the single shared mutable structure of the pipeline: its
// check-and-insert is one atomic critical section, which is what keeps two
// photos taken in the same second from racing to the same destination.
package naming
