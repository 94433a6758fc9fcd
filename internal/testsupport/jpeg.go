package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"
	"time"
)

// Minimal TIFF layout used by the fixture writer. IFD0 holds a single
// pointer to the EXIF sub-IFD, which holds a single DateTimeOriginal entry
// stored at a fixed offset behind both IFDs.
const (
	tagExifIFDPointer   = 0x8769
	tagDateTimeOriginal = 0x9003
	typeASCII           = 2
	typeLong            = 4

	ifd0Offset    = 8
	exifIFDOffset = ifd0Offset + 2 + 12 + 4
	valueOffset   = exifIFDOffset + 2 + 12 + 4
)

// WriteJPEG writes a minimal JPEG whose EXIF APP1 segment carries the given
// capture time as DateTimeOriginal.
func WriteJPEG(t *testing.T, path string, taken time.Time) {
	t.Helper()
	WriteJPEGDateString(t, path, taken.Format("2006:01:02 15:04:05"), 0)
}

// WriteJPEGDateString writes a JPEG with the raw string value stored in the
// DateTimeOriginal tag, allowing malformed values. When padding is positive,
// a comment segment of that many bytes is inserted before the EXIF segment so
// that the metadata sits beyond a bounded read window.
func WriteJPEGDateString(t *testing.T, path, value string, padding int) {
	t.Helper()

	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xD8}) // SOI
	writeComment(&buf, padding)
	writeAPP1(&buf, buildTIFF(value))
	buf.Write([]byte{0xFF, 0xD9}) // EOI

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

// WriteJPEGWithoutEXIF writes a JPEG carrying no EXIF segment at all.
func WriteJPEGWithoutEXIF(t *testing.T, path string) {
	t.Helper()

	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xD8})
	writeComment(&buf, 32)
	buf.Write([]byte{0xFF, 0xD9})

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writeComment(buf *bytes.Buffer, padding int) {
	// A segment length field is 16 bits, so large padding is split across
	// multiple comment segments.
	const maxChunk = 60000
	for padding > 0 {
		chunk := padding
		if chunk > maxChunk {
			chunk = maxChunk
		}
		buf.Write([]byte{0xFF, 0xFE})
		length := uint16(chunk + 2)
		buf.Write([]byte{byte(length >> 8), byte(length)})
		buf.Write(bytes.Repeat([]byte{'.'}, chunk))
		padding -= chunk
	}
}

func writeAPP1(buf *bytes.Buffer, tiff []byte) {
	buf.Write([]byte{0xFF, 0xE1})
	length := uint16(2 + 6 + len(tiff))
	buf.Write([]byte{byte(length >> 8), byte(length)})
	buf.WriteString("Exif\x00\x00")
	buf.Write(tiff)
}

func buildTIFF(value string) []byte {
	var buf bytes.Buffer
	le := binary.LittleEndian

	// Header: little-endian byte order, magic 42, offset of IFD0.
	buf.WriteString("II")
	binary.Write(&buf, le, uint16(42))
	binary.Write(&buf, le, uint32(ifd0Offset))

	// IFD0: one entry pointing at the EXIF sub-IFD.
	binary.Write(&buf, le, uint16(1))
	binary.Write(&buf, le, uint16(tagExifIFDPointer))
	binary.Write(&buf, le, uint16(typeLong))
	binary.Write(&buf, le, uint32(1))
	binary.Write(&buf, le, uint32(exifIFDOffset))
	binary.Write(&buf, le, uint32(0)) // no next IFD

	// EXIF sub-IFD: one DateTimeOriginal entry, value stored out of line.
	binary.Write(&buf, le, uint16(1))
	binary.Write(&buf, le, uint16(tagDateTimeOriginal))
	binary.Write(&buf, le, uint16(typeASCII))
	binary.Write(&buf, le, uint32(len(value)+1))
	binary.Write(&buf, le, uint32(valueOffset))
	binary.Write(&buf, le, uint32(0))

	buf.WriteString(value)
	buf.WriteByte(0)
	return buf.Bytes()
}
