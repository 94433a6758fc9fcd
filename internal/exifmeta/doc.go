// Package exifmeta extracts capture timestamps from EXIF metadata embedded in
// JPEG files.
//
// Reads are bounded by default: only the leading window of a file is parsed,
// which finds the standard APP1 segment in camera output without paying for a
// full read. Callers can disable the window to scan entire files when dealing
// with non-standard layouts.
package exifmeta
