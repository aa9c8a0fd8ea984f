package cmd

// Settings holds the flags the gomftrecover CLI accepts (adapted from the
// teacher's own flag-backed Settings struct, re-scoped to an NTFS image
// instead of a SYSTEM/NTDS pair).
type Settings struct {
	Image         string
	MFTOffset     int64
	ClusterSize   uint64
	UseBootSector bool
	RecordID      int64
	Outfile       string
}
