package mft

import (
	"encoding/binary"
	"unicode/utf8"
)

// FILE_NAME content byte offsets (spec section 4.3).
const (
	fnParentReference = 0
	fnCreationTime    = 8
	fnAllocatedSize   = 40
	fnRealSize        = 48
	fnFlags           = 56
	fnReparse         = 60
	fnNameLength      = 64
	fnNamespace       = 65
	fnNameBytes       = 66

	maxNameBytes = 255
)

// namespaceRank orders FILE_NAME namespaces by preference: Win32 and
// Win32AndDOS outrank POSIX, which outranks DOS. Equal-ranked candidates
// are resolved first-seen-wins (an explicit decision recorded for this
// module, since the source left the tie unspecified — see the design
// notes).
func namespaceRank(ns NameNamespace) int {
	switch ns {
	case NamespaceWin32, NamespaceWin32AndDOS:
		return 2
	case NamespacePOSIX:
		return 1
	default: // NamespaceDOS
		return 0
	}
}

// decodeFileName applies one FILE_NAME attribute to rec, honoring the
// namespace preference policy of spec section 4.3: a strictly
// higher-ranked namespace always overrides whatever name is currently
// held; a tie leaves the first-seen name in place.
func decodeFileName(rec *FileRecord, attr *attributeView) {
	if attr.nonResident {
		return
	}

	content, ok := attr.residentContent()
	if !ok || len(content) < fnNameLength+2 {
		return
	}

	nameLenUnits := int(content[fnNameLength])
	namespace := NameNamespace(content[fnNamespace])

	nameEnd := fnNameBytes + nameLenUnits*2
	if nameEnd > len(content) {
		return
	}

	if rec.haveName && namespaceRank(namespace) <= namespaceRank(rec.NameNamespace) {
		return
	}

	name := decodeUTF16LE(content[fnNameBytes:nameEnd])
	if len(name) > maxNameBytes {
		// Back off to the last full rune so the cut never splits a
		// multi-byte UTF-8 sequence (spec section 3: names passed upward
		// are valid UTF-8).
		cut := maxNameBytes
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}

	rec.Name = name
	rec.NameNamespace = namespace
	rec.haveName = true
	rec.ParentReference = binary.LittleEndian.Uint64(content[fnParentReference:])
}
