package mft

import (
	"encoding/binary"
	"fmt"
)

// RecordSize is the fixed size of an NTFS MFT record buffer (spec section
// 6, "On-disk format dependencies").
const RecordSize = 1024

// minRecordSize is the fallback buffer length required by spec section 3
// when a record's declared real size is zero.
const minRecordSize = 512

var fileSignature = [4]byte{'F', 'I', 'L', 'E'}

// FileFlag holds the MftHeader.Flags bits (spec section 3).
type FileFlag uint16

const (
	FlagInUse     FileFlag = 0x0001
	FlagDirectory FileFlag = 0x0002
)

// MftHeader is the fixed 42-byte prefix of an MFT record (spec section 3).
type MftHeader struct {
	UsaOffset       uint16
	UsaSize         uint16
	Lsn             uint64
	SequenceNumber  uint16
	LinkCount       uint16
	FirstAttrOffset uint16
	Flags           FileFlag
	RealSize        uint32
	AllocatedSize   uint32
	BaseRecord      uint64
	NextAttributeID uint16
}

// MftHeader field byte offsets within the record buffer.
const (
	hdrSignature       = 0
	hdrUsaOffset       = 4
	hdrUsaSize         = 6
	hdrLsn             = 8
	hdrSequenceNumber  = 16
	hdrLinkCount       = 18
	hdrFirstAttrOffset = 20
	hdrFlags           = 22
	hdrRealSize        = 24
	hdrAllocatedSize   = 28
	hdrBaseRecord      = 32
	hdrNextAttributeID = 40
	hdrLength          = 42
)

// parseHeader decodes and validates the 42-byte MftHeader prefix of buf,
// enforcing the invariants of spec section 3.
func parseHeader(buf []byte) (MftHeader, error) {
	if len(buf) < hdrLength {
		return MftHeader{}, fmt.Errorf("%w: buffer shorter than header", ErrShortRead)
	}

	if buf[0] != fileSignature[0] || buf[1] != fileSignature[1] ||
		buf[2] != fileSignature[2] || buf[3] != fileSignature[3] {
		return MftHeader{}, ErrBadSignature
	}

	h := MftHeader{
		UsaOffset:       binary.LittleEndian.Uint16(buf[hdrUsaOffset:]),
		UsaSize:         binary.LittleEndian.Uint16(buf[hdrUsaSize:]),
		Lsn:             binary.LittleEndian.Uint64(buf[hdrLsn:]),
		SequenceNumber:  binary.LittleEndian.Uint16(buf[hdrSequenceNumber:]),
		LinkCount:       binary.LittleEndian.Uint16(buf[hdrLinkCount:]),
		FirstAttrOffset: binary.LittleEndian.Uint16(buf[hdrFirstAttrOffset:]),
		Flags:           FileFlag(binary.LittleEndian.Uint16(buf[hdrFlags:])),
		RealSize:        binary.LittleEndian.Uint32(buf[hdrRealSize:]),
		AllocatedSize:   binary.LittleEndian.Uint32(buf[hdrAllocatedSize:]),
		BaseRecord:      binary.LittleEndian.Uint64(buf[hdrBaseRecord:]),
		NextAttributeID: binary.LittleEndian.Uint16(buf[hdrNextAttributeID:]),
	}

	if h.RealSize != 0 {
		if uint32(h.FirstAttrOffset) >= h.RealSize {
			return MftHeader{}, fmt.Errorf("%w: first attribute offset %d >= real size %d",
				ErrHeaderInvariant, h.FirstAttrOffset, h.RealSize)
		}
	} else if len(buf) < minRecordSize {
		return MftHeader{}, fmt.Errorf("%w: zero real size requires >= %d bytes, got %d",
			ErrHeaderInvariant, minRecordSize, len(buf))
	}

	return h, nil
}

// NameNamespace is the FILE_NAME namespace tag (spec section 3).
type NameNamespace uint8

const (
	NamespacePOSIX       NameNamespace = 0
	NamespaceWin32       NameNamespace = 1
	NamespaceDOS         NameNamespace = 2
	NamespaceWin32AndDOS NameNamespace = 3
)

// FileRecord is the fully decoded output of one MFT record parse (spec
// section 3). It is value-owned and independent of the physical order its
// source attributes appeared in.
type FileRecord struct {
	ID              uint64
	Name            string
	NameNamespace   NameNamespace
	Flags           FileFlag
	LinkCount       uint16
	ParentReference uint64
	CreationTime    uint64
	ModifiedTime    uint64
	Size            uint64
	DataRuns        []DataRun
	ResidentData    []byte

	haveName bool
}

// baseRecordOffset converts a base-record/file reference's record number
// into an absolute byte offset, assuming a contiguous layout of
// fixed-size MFT records (offset = recordNumber * RecordSize). The core
// has no visibility into the $MFT's own runlist, so extension-record
// resolution (spec section 4.3) relies on this convention, which matches
// how standalone MFT-dump tooling throughout the retrieval pack (e.g.
// t9t/gomft, aarsakian/MFTExtractor) addresses records: sequential fixed
// slots rather than through a separate cluster map.
func baseRecordOffset(fileReference uint64) int64 {
	const recordNumberMask = 0x0000FFFFFFFFFFFF
	return int64(fileReference&recordNumberMask) * RecordSize
}

// ParseRecord reads exactly RecordSize bytes at offset and decodes them
// into a FileRecord (spec section 4.4, "read_record"). It returns
// (nil, nil) — not an error — for any hard decode failure on the primary
// record, since the scan controller's policy is to treat the slot as
// uninteresting and move on (spec section 4.8). A non-nil error is
// reserved for reader-level failures worth surfacing (short reads,
// I/O errors).
func ParseRecord(reader Reader, offset int64) (*FileRecord, error) {
	buf := make([]byte, RecordSize)
	n, err := reader.ReadAt(buf, offset)
	if err != nil {
		return nil, fmt.Errorf("mft: reading record at %d: %w", offset, err)
	}
	if n < RecordSize {
		return nil, fmt.Errorf("%w: got %d of %d bytes at offset %d", ErrShortRead, n, RecordSize, offset)
	}

	header, err := parseHeader(buf)
	if err != nil {
		// A refused record is not an engine error; the caller moves on.
		return nil, nil //nolint:nilerr
	}

	rec := &FileRecord{
		ID:            uint64(offset) / RecordSize,
		Flags:         header.Flags,
		LinkCount:     header.LinkCount,
		NameNamespace: NamespacePOSIX,
	}

	scanStart := int(header.FirstAttrOffset)
	applyAttributes(rec, buf, scanStart)

	if len(rec.DataRuns) == 0 && len(rec.ResidentData) == 0 {
		resolveExtensions(rec, reader, buf, header)
	}

	return rec, nil
}

// applyAttributes runs the attribute scanner over buf and dispatches each
// recognized attribute to its decoder, in whatever physical order they
// appear (spec section 4.4 step 4: the result must not depend on that
// order — namespace preference and first-$DATA-wins are handled inside
// the individual decoders).
func applyAttributes(rec *FileRecord, buf []byte, startOffset int) {
	for _, attr := range scanAttributes(buf, startOffset) {
		switch attr.typ {
		case AttrStandardInformation:
			decodeStandardInformation(rec, &attr)
		case AttrFileName:
			decodeFileName(rec, &attr)
		case AttrData:
			decodeData(rec, &attr)
		case AttrAttributeList:
			// Collected separately by resolveExtensions only when needed
			// (spec section 4.4 step 5); nothing to apply here directly.
		default:
			// Unrecognized types are silently skipped (spec section 4.8).
		}
	}
}

// resolveExtensions attempts to populate rec.DataRuns from an extension
// chain when the primary record carried no non-resident $DATA of its own:
// first via any ATTRIBUTE_LIST entries collected during the scan, then by
// falling back to the base record named in the header (spec section 4.3).
func resolveExtensions(rec *FileRecord, reader Reader, buf []byte, header MftHeader) {
	refs := collectAttributeListReferences(buf, int(header.FirstAttrOffset))
	for _, ref := range refs {
		if tryResolveDataFrom(rec, reader, ref, 1) {
			return
		}
	}

	if header.BaseRecord != 0 {
		tryResolveDataFrom(rec, reader, header.BaseRecord, 1)
	}
}

// tryResolveDataFrom opens the record named by fileReference, scans it for
// a non-resident unnamed $DATA attribute, and if found copies its runlist
// into rec. depth is checked against maxExtensionDepth, but this function
// does not recurse and resolveExtensions always passes 1, so each
// reference is followed exactly one hop and the check never refuses.
func tryResolveDataFrom(rec *FileRecord, reader Reader, fileReference uint64, depth int) bool {
	if depth > maxExtensionDepth {
		return false
	}

	offset := baseRecordOffset(fileReference)
	buf := make([]byte, RecordSize)
	n, err := reader.ReadAt(buf, offset)
	if err != nil || n < RecordSize {
		// External reader error: abandon this extension only (spec 4.8).
		return false
	}

	header, err := parseHeader(buf)
	if err != nil {
		return false
	}

	for _, attr := range scanAttributes(buf, int(header.FirstAttrOffset)) {
		if attr.typ != AttrData || attr.isNamed() {
			continue
		}

		if decodeData(rec, &attr) {
			return true
		}
	}

	return false
}

const maxExtensionDepth = 8

// collectAttributeListReferences scans buf for a resident ATTRIBUTE_LIST
// attribute and returns the distinct non-zero file references it names
// (spec section 4.3). Returns nil if none is present or it cannot be
// decoded.
func collectAttributeListReferences(buf []byte, startOffset int) []uint64 {
	for _, attr := range scanAttributes(buf, startOffset) {
		if attr.typ != AttrAttributeList || attr.nonResident {
			continue
		}

		content, ok := attr.residentContent()
		if !ok {
			continue
		}

		return decodeAttributeListEntries(content)
	}

	return nil
}
