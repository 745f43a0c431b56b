package sauce

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
}

func TestHas(t *testing.T) {
	art := []byte("ANSI art content")

	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"appended record", Append(art, Record{}), true},
		{"no record", art, false},
		{"shorter than record size", bytes.Repeat([]byte{'x'}, RecordSize-1), false},
		{"empty", nil, false},
		{"magic not at record offset", append([]byte("SAUCE"), bytes.Repeat([]byte{'x'}, RecordSize)...), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Has(tt.data); got != tt.want {
				t.Errorf("Has = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppendStripRoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		[]byte("ANSI art content"),
		bytes.Repeat([]byte{0xC9, 0xCD, 0xBB}, 100),
		[]byte("contains the word SAUCE in the middle"),
	}

	for _, data := range payloads {
		got := Append(data, Record{Title: "Banner", Author: "Artist"})
		if len(got) != len(data)+RecordSize {
			t.Errorf("Append length = %d, want %d", len(got), len(data)+RecordSize)
		}
		if !Has(got) {
			t.Errorf("Has(Append(...)) = false for payload %q", data)
		}
		if stripped := Strip(got); !bytes.Equal(stripped, data) {
			t.Errorf("Strip(Append(%q)) = %q", data, stripped)
		}
	}
}

func TestStripNoRecordIsNoop(t *testing.T) {
	data := []byte("plain art, no metadata")
	if got := Strip(data); !bytes.Equal(got, data) {
		t.Errorf("Strip = %q, want input unchanged", got)
	}
}

func TestStripWithTrailingPadding(t *testing.T) {
	// Nonstandard files carry bytes after the record, pushing the magic off
	// its expected window; the backward search still finds it.
	art := []byte("art body")
	padded := append(Append(art, Record{}), 0x1a, 0x1a, 0x1a)

	if Has(padded) {
		t.Fatal("Has should fail once the record is padded off the end")
	}
	if got := Strip(padded); !bytes.Equal(got, art) {
		t.Errorf("Strip(padded) = %q, want %q", got, art)
	}
}

func TestStripMagicFarFromEndIgnored(t *testing.T) {
	data := append([]byte("SAUCE appears early "), bytes.Repeat([]byte{'x'}, searchWindow)...)
	if got := Strip(data); !bytes.Equal(got, data) {
		t.Errorf("Strip removed content around an unrelated magic occurrence")
	}
}

func TestAppendLayout(t *testing.T) {
	defer func(orig func() time.Time) { now = orig }(now)
	now = fixedNow

	art := []byte("0123456789")
	got := Append(art, Record{
		Title:    "MY BBS",
		Author:   "Artist",
		Group:    "Group",
		DataType: DataTypeCharacter,
		FileType: FileTypeANSI,
		TInfo1:   80,
		TInfo2:   25,
	})

	rec := got[len(art):]
	if string(rec[0:5]) != "SAUCE" {
		t.Errorf("magic = %q", rec[0:5])
	}
	if string(rec[5:7]) != "00" {
		t.Errorf("version = %q", rec[5:7])
	}
	if string(rec[7:42]) != "MY BBS"+string(bytes.Repeat([]byte{' '}, 29)) {
		t.Errorf("title field = %q", rec[7:42])
	}
	if string(rec[82:90]) != "20260314" {
		t.Errorf("date field = %q, want default of current date", rec[82:90])
	}
	if size := binary.LittleEndian.Uint32(rec[90:94]); size != uint32(len(art)) {
		t.Errorf("size field = %d, want %d", size, len(art))
	}
	if rec[94] != DataTypeCharacter || rec[95] != FileTypeANSI {
		t.Errorf("type bytes = %d %d", rec[94], rec[95])
	}
	if w := binary.LittleEndian.Uint16(rec[96:98]); w != 80 {
		t.Errorf("tinfo1 = %d, want 80", w)
	}
	if h := binary.LittleEndian.Uint16(rec[98:100]); h != 25 {
		t.Errorf("tinfo2 = %d, want 25", h)
	}
	for i, b := range rec[100:] {
		if b != 0 {
			t.Errorf("reserved byte %d = %#x, want zero", 100+i, b)
			break
		}
	}
}

func TestAppendTruncatesLongFields(t *testing.T) {
	long := string(bytes.Repeat([]byte{'T'}, 50))
	got := Append(nil, Record{Title: long, Author: long, Group: long})

	rec := got[:RecordSize]
	if string(rec[7:42]) != long[:35] {
		t.Errorf("title not truncated to 35 bytes: %q", rec[7:42])
	}
	if string(rec[42:62]) != long[:20] {
		t.Errorf("author not truncated to 20 bytes: %q", rec[42:62])
	}
}

func TestAppendSpacePadding(t *testing.T) {
	got := Append(nil, Record{Title: "x"})
	rec := got[:RecordSize]
	for i := 8; i < 42; i++ {
		if rec[i] != ' ' {
			t.Fatalf("title byte %d = %#x, want space padding", i, rec[i])
		}
	}
}
