package mft

import "testing"

func TestDescribeIncludesCoreFields(t *testing.T) {
	rec := &FileRecord{
		ID:       7,
		Name:     "sample.txt",
		Size:     1234,
		DataRuns: []DataRun{{ClusterCount: 2, LCN: 5}},
	}

	d := rec.Describe()

	name, ok := d.Get("name")
	if !ok || name != "sample.txt" {
		t.Fatalf("got name=%v ok=%v, want sample.txt", name, ok)
	}

	size, ok := d.Get("size")
	if !ok || size != uint64(1234) {
		t.Fatalf("got size=%v ok=%v, want 1234", size, ok)
	}

	runCount, ok := d.Get("run_count")
	if !ok || runCount != 1 {
		t.Fatalf("got run_count=%v ok=%v, want 1", runCount, ok)
	}
}
