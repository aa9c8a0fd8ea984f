package mft

import (
	"encoding/binary"
	"testing"
)

func TestScanAttributesStopsAtEndMarker(t *testing.T) {
	buf := make([]byte, 64)
	binary.LittleEndian.PutUint32(buf[0:], uint32(AttrEndOfAttributes))

	views := scanAttributes(buf, 0)
	if len(views) != 0 {
		t.Fatalf("got %d views, want 0", len(views))
	}
}

func TestScanAttributesStopsOnOverrunLength(t *testing.T) {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:], uint32(AttrStandardInformation))
	binary.LittleEndian.PutUint32(buf[4:], 1000) // declared length overruns buf

	views := scanAttributes(buf, 0)
	if len(views) != 0 {
		t.Fatalf("got %d views, want 0", len(views))
	}
}

func TestScanAttributesStopsOnZeroLength(t *testing.T) {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:], uint32(AttrStandardInformation))
	binary.LittleEndian.PutUint32(buf[4:], 0)

	views := scanAttributes(buf, 0)
	if len(views) != 0 {
		t.Fatalf("got %d views, want 0", len(views))
	}
}

func TestScanAttributesReturnsMultiple(t *testing.T) {
	buf := make([]byte, 96)
	binary.LittleEndian.PutUint32(buf[0:], uint32(AttrStandardInformation))
	binary.LittleEndian.PutUint32(buf[4:], 48)
	binary.LittleEndian.PutUint32(buf[48:], uint32(AttrFileName))
	binary.LittleEndian.PutUint32(buf[52:], 48)

	views := scanAttributes(buf, 0)
	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}
	if views[0].typ != AttrStandardInformation || views[1].typ != AttrFileName {
		t.Fatalf("got types %v, %v", views[0].typ, views[1].typ)
	}
}
