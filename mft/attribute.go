package mft

import "encoding/binary"

// AttributeType identifies the kind of an NTFS attribute record.
type AttributeType uint32

// NTFS attribute type constants relevant to this core (spec section 6).
const (
	AttrStandardInformation AttributeType = 0x10
	AttrAttributeList       AttributeType = 0x20
	AttrFileName            AttributeType = 0x30
	AttrData                AttributeType = 0x80
	AttrEndOfAttributes     AttributeType = 0xFFFFFFFF
)

// Common header byte offsets, relative to the start of one attribute
// record (spec section 4.2).
const (
	offAttrType        = 0
	offAttrLength      = 4
	offAttrNonResident = 8
	offAttrNameLength  = 9
	offAttrNameOffset  = 10

	offResidentContentSize   = 16
	offResidentContentOffset = 20

	offNonResidentRunlistOffset = 32
	offNonResidentRealSize      = 48
)

// attributeView is a bounds-checked slice of a single attribute inside an
// MFT record buffer, plus its decoded common header fields. It never
// outlives the record buffer it was cut from.
type attributeView struct {
	typ         AttributeType
	nonResident bool
	nameLength  uint8
	nameOffset  uint16
	start       int
	length      uint32
	raw         []byte // buf[start : start+length]
}

// isNamed reports whether this is a named stream (e.g. an alternate data
// stream), which the unnamed-$DATA policy in spec section 4.3 must skip.
func (a *attributeView) isNamed() bool {
	return a.nameLength != 0
}

// hasLen reports whether this attribute's raw bytes are at least n long,
// the bounds check every fixed-offset field accessor below requires
// before it may be called.
func (a *attributeView) hasLen(n int) bool {
	return len(a.raw) >= n
}

// residentContentSize returns the resident content_size field. Caller must
// have already bounds-checked with hasLen(offResidentContentOffset+2).
func (a *attributeView) residentContentSize() uint32 {
	return binary.LittleEndian.Uint32(a.raw[offResidentContentSize:])
}

func (a *attributeView) residentContentOffset() uint16 {
	return binary.LittleEndian.Uint16(a.raw[offResidentContentOffset:])
}

// residentContent returns the attribute's resident payload bytes, bounds
// checked against both the common header and the attribute's own declared
// length.
func (a *attributeView) residentContent() ([]byte, bool) {
	if !a.hasLen(offResidentContentOffset + 2) {
		return nil, false
	}

	size := a.residentContentSize()
	offset := a.residentContentOffset()

	start := int(offset)
	end := start + int(size)
	if start < 0 || end < start || end > len(a.raw) {
		return nil, false
	}

	return a.raw[start:end], true
}

func (a *attributeView) nonResidentRunlistOffset() uint16 {
	return binary.LittleEndian.Uint16(a.raw[offNonResidentRunlistOffset:])
}

func (a *attributeView) nonResidentRealSize() uint64 {
	return binary.LittleEndian.Uint64(a.raw[offNonResidentRealSize:])
}

// runlistBytes slices out this non-resident attribute's runlist, bounds
// checked against the attribute's own declared length (spec section 4.3:
// "slice from attr_start+runlist_offset to attr_start+length").
func (a *attributeView) runlistBytes() ([]byte, bool) {
	if !a.hasLen(offNonResidentRunlistOffset + 2) {
		return nil, false
	}

	off := int(a.nonResidentRunlistOffset())
	if off < 0 || off > len(a.raw) {
		return nil, false
	}

	return a.raw[off:], true
}

// nonResidentSize returns the real_size field, bounds checked.
func (a *attributeView) nonResidentSize() (uint64, bool) {
	if !a.hasLen(offNonResidentRealSize + 8) {
		return 0, false
	}

	return a.nonResidentRealSize(), true
}

// scanAttributes walks the attribute stream of a record buffer starting at
// startOffset, returning every attribute whose header and declared length
// fit entirely inside buf. It never trusts a declared length against
// anything but len(buf); malformed or unrecognized attributes are either
// skipped (per the per-attribute decode policy) or stop the scan outright,
// matching the termination rules of spec section 4.2.
func scanAttributes(buf []byte, startOffset int) []attributeView {
	var views []attributeView

	pos := startOffset
	for {
		if pos < 0 || pos+8 > len(buf) {
			break
		}

		typ := AttributeType(binary.LittleEndian.Uint32(buf[pos+offAttrType:]))
		if typ == AttrEndOfAttributes {
			break
		}

		length := binary.LittleEndian.Uint32(buf[pos+offAttrLength:])
		if length == 0 {
			break
		}

		end := pos + int(length)
		if end < pos || end > len(buf) {
			break
		}

		if pos+offAttrNameOffset+2 > end {
			// Not even enough room for the common header; treat as
			// malformed and stop the scan rather than guess.
			break
		}

		view := attributeView{
			typ:         typ,
			nonResident: buf[pos+offAttrNonResident] != 0,
			nameLength:  buf[pos+offAttrNameLength],
			nameOffset:  binary.LittleEndian.Uint16(buf[pos+offAttrNameOffset:]),
			start:       pos,
			length:      length,
			raw:         buf[pos:end],
		}

		views = append(views, view)
		pos = end
	}

	return views
}
