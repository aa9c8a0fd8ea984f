package mft

import "encoding/binary"

// ATTRIBUTE_LIST entry byte offsets and size tolerance (spec section 4.3).
const (
	alEntryLength16      = 4
	alEntryFileReference = 16
	alMinEntryLength     = 24
)

// decodeAttributeListEntries walks a resident ATTRIBUTE_LIST content area
// and returns the distinct non-zero file references its entries name, in
// first-seen order. Malformed trailing bytes simply stop the walk; the
// references collected so far are still returned (spec section 4.8:
// malformed attribute content drops only what could not be parsed).
func decodeAttributeListEntries(content []byte) []uint64 {
	var refs []uint64
	seen := make(map[uint64]bool)

	pos := 0
	for pos+alMinEntryLength <= len(content) {
		length := int(binary.LittleEndian.Uint16(content[pos+alEntryLength16:]))
		if length < alMinEntryLength {
			// Tolerance: the 16-bit field looked too small to be real;
			// re-read it as a 32-bit length at the same offset.
			length = int(binary.LittleEndian.Uint32(content[pos+alEntryLength16:]))
		}

		if length <= 0 {
			break
		}

		end := pos + length
		if end < pos || end > len(content) {
			break
		}

		ref := binary.LittleEndian.Uint64(content[pos+alEntryFileReference:])
		if ref != 0 && !seen[ref] {
			seen[ref] = true
			refs = append(refs, ref)
		}

		pos = end
	}

	return refs
}
