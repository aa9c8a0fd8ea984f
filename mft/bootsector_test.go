package mft

import (
	"encoding/binary"
	"testing"

	"github.com/C-Sto/gomftrecover/diskio"
)

func TestReadBootSectorDerivesClusterSizeAndMFTOffset(t *testing.T) {
	buf := make([]byte, bootSectorSize)
	copy(buf[3:11], "NTFS    ")
	binary.LittleEndian.PutUint16(buf[11:], 512) // BytePerSector
	buf[13] = 8                                  // SectorPerCluster
	binary.LittleEndian.PutUint64(buf[40:], 1000) // TotalSector
	binary.LittleEndian.PutUint64(buf[48:], 4)    // MFTCluster

	reader := diskio.NewMemReader(buf)
	boot, err := ReadBootSector(reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := boot.ClusterSize(); got != 4096 {
		t.Errorf("got cluster size %d, want 4096", got)
	}
	if got := boot.MFTOffset(); got != 4*4096 {
		t.Errorf("got MFT offset %d, want %d", got, 4*4096)
	}
}

func TestReadBootSectorRejectsZeroClusterSize(t *testing.T) {
	buf := make([]byte, bootSectorSize)
	reader := diskio.NewMemReader(buf)

	_, err := ReadBootSector(reader)
	if err == nil {
		t.Fatal("expected an error for a zero sector/cluster size boot sector")
	}
}
