// Package preflight evaluates environment checks before an organize pass:
// directory permissions and, for cross-device moves, free space on the
// output filesystem.
package preflight
