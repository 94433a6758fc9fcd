// Command exifsort organizes JPEG photos into timestamp-derived filenames.
//
// It reads each file's DateTimeOriginal EXIF tag and moves the file into the
// output directory as YYYY-MM-DD_HH-MM-SS.jpg, suffixing _1, _2, ... when
// timestamps collide. Files without usable metadata stay where they are and
// are reported in the end-of-run summary.
package main
