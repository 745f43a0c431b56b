// Package sauce reads and writes SAUCE v00 metadata records.
//
// SAUCE (Standard Architecture for Universal Comment Extensions) is a fixed
// 128-byte block appended to BBS art files carrying title, author, group,
// date and size hints. Only the bare record is supported here; comment
// blocks and record chaining are out of scope.
package sauce

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/bkrabach/ansiterm/internal/cp437"
)

const (
	// RecordSize is the exact length of a SAUCE record.
	RecordSize = 128

	// magic occupies the first five bytes of every record.
	magic = "SAUCE"

	// version is the SAUCE revision this package writes.
	version = "00"

	// searchWindow bounds the defensive backward scan in Strip. Some files
	// carry padding between the art and the record; anything further from
	// the end than this is assumed to be art content that merely contains
	// the magic bytes.
	searchWindow = 512
)

// Data and file type values for character-based ANSI art.
const (
	DataTypeCharacter = 1
	FileTypeANSI      = 1
)

// now is the clock used for default dates; tests swap it out.
var now = time.Now

// Record holds the fields written into a SAUCE block. Text fields longer
// than their fixed width are truncated; an empty Date means the current
// date. TInfo1 and TInfo2 conventionally carry width and height for
// character art.
type Record struct {
	Title    string // 35 bytes
	Author   string // 20 bytes
	Group    string // 20 bytes
	Date     string // 8 bytes, YYYYMMDD
	DataType byte
	FileType byte
	TInfo1   uint16
	TInfo2   uint16
}

// Has reports whether data ends in a SAUCE record: at least 128 bytes long
// with the magic in the expected window.
func Has(data []byte) bool {
	if len(data) < RecordSize {
		return false
	}
	start := len(data) - RecordSize
	return string(data[start:start+len(magic)]) == magic
}

// Strip returns data without its trailing SAUCE record. When the record is
// not exactly at the end, the trailing searchWindow bytes are scanned
// backward for the magic to handle nonstandard padding. That fallback is
// best effort, not a security boundary; data without a detectable record
// comes back unchanged.
func Strip(data []byte) []byte {
	if Has(data) {
		return data[:len(data)-RecordSize]
	}
	if idx := bytes.LastIndex(data, []byte(magic)); idx != -1 && len(data)-idx <= searchWindow {
		return data[:idx]
	}
	return data
}

// Append returns data followed by a 128-byte SAUCE record built from rec.
// The record's size field is the length of data, so Strip is an exact
// inverse and Has always holds on the result.
func Append(data []byte, rec Record) []byte {
	buf := make([]byte, RecordSize)
	copy(buf[0:5], magic)
	copy(buf[5:7], version)

	putField(buf[7:42], rec.Title)
	putField(buf[42:62], rec.Author)
	putField(buf[62:82], rec.Group)

	date := rec.Date
	if date == "" {
		date = now().Format("20060102")
	}
	putField(buf[82:90], date)

	binary.LittleEndian.PutUint32(buf[90:94], uint32(len(data)))
	buf[94] = rec.DataType
	buf[95] = rec.FileType
	binary.LittleEndian.PutUint16(buf[96:98], rec.TInfo1)
	binary.LittleEndian.PutUint16(buf[98:100], rec.TInfo2)
	// TInfo3, TInfo4, flags and the filler string stay zero.

	out := make([]byte, 0, len(data)+RecordSize)
	out = append(out, data...)
	return append(out, buf...)
}

// putField writes s into dst as CP437, truncated to the field width and
// padded with spaces, never NULs.
func putField(dst []byte, s string) {
	b := cp437.Encode(s)
	if len(b) > len(dst) {
		b = b[:len(dst)]
	}
	n := copy(dst, b)
	for i := n; i < len(dst); i++ {
		dst[i] = ' '
	}
}
