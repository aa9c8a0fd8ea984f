package mft

import (
	"errors"
	"testing"
)

func TestMapRangePartialAcrossRuns(t *testing.T) {
	// S5: map partial range across runs.
	rec := &FileRecord{
		Size: 2560,
		DataRuns: []DataRun{
			{ClusterCount: 2, LCN: 5},
			{ClusterCount: 3, LCN: 10},
		},
	}

	frags, err := MapRange(rec, 512, 1024, 512)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Fragment{
		{DiskOffset: 5*512 + 512, Length: 512},
		{DiskOffset: 10 * 512, Length: 512},
	}

	if len(frags) != len(want) {
		t.Fatalf("got %d fragments, want %d: %+v", len(frags), len(want), frags)
	}
	for i := range want {
		if frags[i] != want[i] {
			t.Fatalf("fragment %d: got %+v, want %+v", i, frags[i], want[i])
		}
	}
}

func TestMapRangeFullLengthSumsToSize(t *testing.T) {
	// Invariant 3: map_range(r, 0, r.size, cs) produces fragments whose
	// lengths sum to r.size.
	rec := &FileRecord{
		Size: 5 * 512,
		DataRuns: []DataRun{
			{ClusterCount: 2, LCN: 5},
			{ClusterCount: 3, LCN: 10},
		},
	}

	frags, err := MapRange(rec, 0, rec.Size, 512)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var total uint64
	for _, f := range frags {
		total += f.Length
	}
	if total != rec.Size {
		t.Fatalf("got total length %d, want %d", total, rec.Size)
	}
}

func TestMapRangeZeroClusterSizeIsFatal(t *testing.T) {
	rec := &FileRecord{DataRuns: []DataRun{{ClusterCount: 1, LCN: 0}}}

	_, err := MapRange(rec, 0, 1, 0)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got err=%v, want ErrInvalidArgument", err)
	}
}

func TestMapRangeSparseRunEmitsZeroFill(t *testing.T) {
	rec := &FileRecord{
		Size:     3 * 512,
		DataRuns: []DataRun{{ClusterCount: 3, LCN: sparseLCN}},
	}

	frags, err := MapRange(rec, 0, rec.Size, 512)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frags) != 1 || !frags[0].Zero || frags[0].Length != rec.Size {
		t.Fatalf("got %+v, want single zero-fill fragment of length %d", frags, rec.Size)
	}
}
