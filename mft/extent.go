package mft

import "fmt"

// Fragment is one physically contiguous piece of a logical byte range, as
// produced by MapRange (spec section 4.5). Exactly one of the two shapes
// applies: a disk-backed fragment has Zero == false and DiskOffset/Length
// set; a hole has Zero == true and only Length set.
type Fragment struct {
	DiskOffset int64
	Length     uint64
	Zero       bool
}

// MapRange translates the logical byte range [fileOffset, fileOffset+length)
// of rec through its data runs into a sequence of disk extents and
// zero-fill holes (spec section 4.5). If the runlist is exhausted before
// the request is satisfied, the produced prefix is returned without error;
// the caller (ReadRange) is responsible for filling the remainder with
// zeros.
//
// rec.ResidentData is not consulted here: resident files have no runlist
// to map and are handled entirely by ReadRange's short-circuit.
func MapRange(rec *FileRecord, fileOffset, length uint64, clusterSize uint64) ([]Fragment, error) {
	if clusterSize == 0 {
		return nil, fmt.Errorf("%w: cluster size must be non-zero", ErrInvalidArgument)
	}

	var frags []Fragment

	remaining := length
	fileCursor := uint64(0)

	for _, run := range rec.DataRuns {
		if remaining == 0 {
			break
		}

		runBytes := run.ClusterCount * clusterSize

		if fileOffset >= fileCursor+runBytes {
			fileCursor += runBytes
			continue
		}

		startInRun := uint64(0)
		if fileOffset > fileCursor {
			startInRun = fileOffset - fileCursor
		}

		avail := runBytes - startInRun
		take := remaining
		if avail < take {
			take = avail
		}

		if run.LCN == sparseLCN {
			frags = append(frags, Fragment{Length: take, Zero: true})
		} else {
			diskOffset := run.LCN*int64(clusterSize) + int64(startInRun)
			frags = append(frags, Fragment{DiskOffset: diskOffset, Length: take})
		}

		remaining -= take
		fileCursor += runBytes
	}

	return frags, nil
}
