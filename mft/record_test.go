package mft

import (
	"encoding/binary"
	"testing"

	"github.com/C-Sto/gomftrecover/diskio"
)

// asciiUTF16LE encodes an ASCII-only string as UTF-16LE, for building test
// fixtures. It is not used by the production decoder.
func asciiUTF16LE(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		out = append(out, byte(r), 0)
	}
	return out
}

func newBlankRecord(size int) []byte {
	buf := make([]byte, size)
	copy(buf[0:4], "FILE")
	binary.LittleEndian.PutUint16(buf[hdrFirstAttrOffset:], 48)
	binary.LittleEndian.PutUint16(buf[hdrFlags:], 0x01)
	binary.LittleEndian.PutUint16(buf[hdrLinkCount:], 1)
	binary.LittleEndian.PutUint32(buf[hdrRealSize:], uint32(size))
	binary.LittleEndian.PutUint32(buf[hdrAllocatedSize:], uint32(size))
	return buf
}

func TestParseRecordResidentStandardInformationAndFileName(t *testing.T) {
	// S1: resident STANDARD_INFORMATION + FILE_NAME.
	buf := newBlankRecord(2048)

	const siStart = 48
	const siLen = 80
	binary.LittleEndian.PutUint32(buf[siStart+offAttrType:], uint32(AttrStandardInformation))
	binary.LittleEndian.PutUint32(buf[siStart+offAttrLength:], siLen)
	binary.LittleEndian.PutUint32(buf[siStart+offResidentContentSize:], 16)
	binary.LittleEndian.PutUint16(buf[siStart+offResidentContentOffset:], 24)
	binary.LittleEndian.PutUint64(buf[siStart+24:], 0x1122334455667788)
	binary.LittleEndian.PutUint64(buf[siStart+32:], 0x99AABBCCDDEEFF00)

	const fnStart = siStart + siLen // 128
	name := "sample.txt"
	nameBytes := asciiUTF16LE(name)
	contentLen := fnNameBytes + len(nameBytes)
	attrLen := 24 + contentLen

	binary.LittleEndian.PutUint32(buf[fnStart+offAttrType:], uint32(AttrFileName))
	binary.LittleEndian.PutUint32(buf[fnStart+offAttrLength:], uint32(attrLen))
	binary.LittleEndian.PutUint32(buf[fnStart+offResidentContentSize:], uint32(contentLen))
	binary.LittleEndian.PutUint16(buf[fnStart+offResidentContentOffset:], 24)

	contentStart := fnStart + 24
	binary.LittleEndian.PutUint64(buf[contentStart+fnParentReference:], 0x21)
	buf[contentStart+fnNameLength] = byte(len(name))
	buf[contentStart+fnNamespace] = byte(NamespaceWin32)
	copy(buf[contentStart+fnNameBytes:], nameBytes)

	rec, err := ParseRecord(diskio.NewMemReader(buf), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("got nil record")
	}

	if rec.Name != "sample.txt" {
		t.Errorf("got name %q, want %q", rec.Name, "sample.txt")
	}
	if rec.CreationTime != 0x1122334455667788 {
		t.Errorf("got creation time %#x, want %#x", rec.CreationTime, 0x1122334455667788)
	}
	if rec.ModifiedTime != 0x99AABBCCDDEEFF00 {
		t.Errorf("got modified time %#x, want %#x", rec.ModifiedTime, uint64(0x99AABBCCDDEEFF00))
	}
	if rec.Flags != FlagInUse {
		t.Errorf("got flags %#x, want %#x", rec.Flags, FlagInUse)
	}
	if rec.LinkCount != 1 {
		t.Errorf("got link count %d, want 1", rec.LinkCount)
	}
}

func TestParseRecordMalformedRunlistStillReturnsRecord(t *testing.T) {
	// S6 at the record level: a malformed runlist drops data_runs but the
	// surrounding record, and the size from the attribute header, survive.
	buf := newBlankRecord(RecordSize)

	const dataStart = 48
	const runlistOffset = 64
	runlist := []byte{0x31, 0x02, 0xFF, 0xFF}
	attrLen := runlistOffset + len(runlist)

	binary.LittleEndian.PutUint32(buf[dataStart+offAttrType:], uint32(AttrData))
	binary.LittleEndian.PutUint32(buf[dataStart+offAttrLength:], uint32(attrLen))
	buf[dataStart+offAttrNonResident] = 1
	binary.LittleEndian.PutUint16(buf[dataStart+offNonResidentRunlistOffset:], runlistOffset)
	binary.LittleEndian.PutUint64(buf[dataStart+offNonResidentRealSize:], 12345)
	copy(buf[dataStart+runlistOffset:], runlist)

	rec, err := ParseRecord(diskio.NewMemReader(buf), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("got nil record")
	}

	if rec.Size != 12345 {
		t.Errorf("got size %d, want 12345", rec.Size)
	}
	if len(rec.DataRuns) != 0 {
		t.Errorf("got %d data runs, want 0", len(rec.DataRuns))
	}
}

func TestParseRecordBadSignatureRefused(t *testing.T) {
	buf := newBlankRecord(RecordSize)
	copy(buf[0:4], "BAD!")

	rec, err := ParseRecord(diskio.NewMemReader(buf), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != nil {
		t.Fatalf("got record %+v, want nil", rec)
	}
}

func TestParseRecordHeaderInvariantViolationRefused(t *testing.T) {
	buf := newBlankRecord(RecordSize)
	// First attribute offset at or past the declared real size.
	binary.LittleEndian.PutUint16(buf[hdrFirstAttrOffset:], 512)
	binary.LittleEndian.PutUint32(buf[hdrRealSize:], 512)

	rec, err := ParseRecord(diskio.NewMemReader(buf), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != nil {
		t.Fatalf("got record %+v, want nil", rec)
	}
}

func TestParseRecordShortReadSurfacesError(t *testing.T) {
	buf := newBlankRecord(512) // shorter than RecordSize

	_, err := ParseRecord(diskio.NewMemReader(buf), 0)
	if err == nil {
		t.Fatal("expected an error for a short read, got nil")
	}
}
