package exifmeta

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"exifsort/internal/services"
)

// exifTimeLayout is the fixed date-time text format EXIF mandates for
// DateTimeOriginal values.
const exifTimeLayout = "2006:01:02 15:04:05"

// DefaultWindow is the bounded-read size that locates the standard EXIF
// segment in typical camera output without touching the rest of the file.
const DefaultWindow int64 = 64 * 1024

// ReadCaptureTime extracts the DateTimeOriginal timestamp from the JPEG at
// path. A positive window restricts parsing to the leading window bytes; a
// non-positive window scans the entire file.
//
// Errors wrap services.ErrNoMetadata when no EXIF segment or tag can be
// located within the scanned region, services.ErrParse when the tag value
// does not match the EXIF date-time format, and services.ErrIO for read
// failures. The file is never modified.
func ReadCaptureTime(path string, window int64) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, services.Wrap(services.ErrIO, "scan", "open file", "", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if window > 0 {
		reader = io.LimitReader(f, window)
	}

	// A truncated or EXIF-free stream fails to decode; both present as the
	// metadata being unavailable to this scan.
	x, err := exif.Decode(reader)
	if err != nil {
		return time.Time{}, services.Wrap(services.ErrNoMetadata, "scan", "decode exif", "no usable EXIF data", err)
	}

	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, services.Wrap(services.ErrNoMetadata, "scan", "read tag", "DateTimeOriginal tag absent", err)
	}

	value, err := tag.StringVal()
	if err != nil {
		return time.Time{}, services.Wrap(services.ErrParse, "scan", "read tag", "DateTimeOriginal is not a string value", err)
	}

	taken, err := time.Parse(exifTimeLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, services.Wrap(services.ErrParse, "scan", "parse timestamp", "DateTimeOriginal does not match "+exifTimeLayout, err)
	}
	return taken, nil
}
