package mft

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// bootSectorSize is the fixed size of an NTFS boot sector.
const bootSectorSize = 512

// BootSector is the NTFS boot sector layout, used to derive the cluster
// size and the byte offset of the $MFT's first record without requiring
// the caller to already know them. Field layout and derivation follow
// the teacher's ntfsdump boot sector reader, ported from kusano/ntfsdump.
type BootSector struct {
	Jump             [3]byte
	OEMID            [8]byte
	BytePerSector    uint16
	SectorPerCluster uint8
	Reserved         [2]byte
	Zero1            [3]byte
	Unused1          [2]byte
	MediaDescriptor  byte
	Zeros2           [2]byte
	SectorPerTrack   uint16
	HeadNumber       uint16
	HiddenSector     uint32
	Unused2          [8]byte
	TotalSector      uint64
	MFTCluster       int64
	MFTMirrCluster   uint64
	ClusterPerRecord int8
	Unused3          [3]byte
	ClusterPerBlock  int8
	Unused4          [3]byte
	SerialNumber     uint64
	CheckSum         uint32
	BootCode         [0x1aa]byte
	EndMarker        [2]byte
}

// ClusterSize returns the volume's cluster size in bytes.
func (b *BootSector) ClusterSize() uint64 {
	return uint64(b.BytePerSector) * uint64(b.SectorPerCluster)
}

// MFTOffset returns the absolute byte offset of the $MFT's first record.
func (b *BootSector) MFTOffset() int64 {
	return b.MFTCluster * int64(b.ClusterSize())
}

// ReadBootSector reads and decodes the 512-byte boot sector at the start
// of reader. It is a convenience for callers that do not already know
// the volume's cluster size and MFT offset; the core's parsing and
// reading operations never call it themselves.
func ReadBootSector(reader Reader) (*BootSector, error) {
	buf := make([]byte, bootSectorSize)
	n, err := reader.ReadAt(buf, 0)
	if err != nil {
		return nil, fmt.Errorf("mft: reading boot sector: %w", err)
	}
	if n < bootSectorSize {
		return nil, fmt.Errorf("%w: got %d of %d bytes", ErrShortRead, n, bootSectorSize)
	}

	var sec BootSector
	if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &sec); err != nil {
		return nil, fmt.Errorf("mft: decoding boot sector: %w", err)
	}

	if sec.BytePerSector == 0 || sec.SectorPerCluster == 0 {
		return nil, fmt.Errorf("%w: zero sector or cluster size in boot sector", ErrHeaderInvariant)
	}

	return &sec, nil
}
