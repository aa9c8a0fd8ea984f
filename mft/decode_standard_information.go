package mft

import "encoding/binary"

// standardInformation content byte offsets (spec section 4.3).
const (
	siCreationTime = 0
	siModifiedTime = 8
	siContentSize  = 16
)

// decodeStandardInformation fills rec.CreationTime and rec.ModifiedTime
// from a resident STANDARD_INFORMATION attribute. A content area shorter
// than 16 bytes is a malformed attribute and is silently dropped (spec
// section 4.8); other attributes of the record are unaffected.
func decodeStandardInformation(rec *FileRecord, attr *attributeView) {
	if attr.nonResident {
		return
	}

	content, ok := attr.residentContent()
	if !ok || len(content) < siContentSize {
		return
	}

	rec.CreationTime = binary.LittleEndian.Uint64(content[siCreationTime:])
	rec.ModifiedTime = binary.LittleEndian.Uint64(content[siModifiedTime:])
}
