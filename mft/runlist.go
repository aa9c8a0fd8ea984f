package mft

import "fmt"

// DataRun is a single decoded entry of an NTFS runlist: ClusterCount
// clusters starting at the absolute logical cluster number LCN. A sparse
// run (a hole, to be read as zeros) is encoded with LCN == -1.
//
// Grounded on corebreaker/ntfstool core.AttributeDesc.GetRunList and
// Velocidex/go-ntfs parser.NTFS_ATTRIBUTE.RunList, both of which decode
// the same run-header nibble layout by padding length/offset fields out
// to a fixed byte width before sign-extending.
type DataRun struct {
	ClusterCount uint64
	LCN          int64
}

const sparseLCN = -1

// DecodeRuns parses the compressed NTFS data-run encoding found in a
// non-resident attribute. It is total on well-formed input and returns an
// error (never a partial result) on malformation, per spec section 4.1.
func DecodeRuns(data []byte) ([]DataRun, error) {
	var runs []DataRun

	lcn := int64(0)
	pos := 0

	for pos < len(data) {
		header := data[pos]
		if header == 0x00 {
			// Clean terminator; a trailing absent terminator (slice ends
			// here) is also accepted since the loop condition handles it.
			break
		}

		lenSize := int(header & 0x0F)
		offSize := int(header >> 4)

		if lenSize == 0 {
			return nil, fmt.Errorf("%w: zero length size at offset %d", ErrMalformedRunlist, pos)
		}
		if lenSize > 8 || offSize > 8 {
			return nil, fmt.Errorf("%w: field width %d/%d exceeds 8 bytes at offset %d",
				ErrMalformedRunlist, lenSize, offSize, pos)
		}

		pos++
		if pos+lenSize+offSize > len(data) {
			return nil, fmt.Errorf("%w: run at offset %d overruns buffer", ErrMalformedRunlist, pos-1)
		}

		count := decodeUnsigned(data[pos : pos+lenSize])
		pos += lenSize

		if count == 0 {
			return nil, fmt.Errorf("%w: zero cluster count", ErrMalformedRunlist)
		}

		if offSize == 0 {
			// Sparse run: no LCN delta, running LCN is left untouched.
			runs = append(runs, DataRun{ClusterCount: count, LCN: sparseLCN})
			continue
		}

		delta := decodeSigned(data[pos : pos+offSize])
		pos += offSize

		lcn += delta
		runs = append(runs, DataRun{ClusterCount: count, LCN: lcn})
	}

	return runs, nil
}

// Normalize merges adjacent non-sparse runs whose LCNs are contiguous in
// the forward direction. Sparse runs never merge with anything. The input
// slice is consumed and a (possibly shorter) slice is returned.
func Normalize(runs []DataRun) []DataRun {
	if len(runs) == 0 {
		return runs
	}

	result := make([]DataRun, 0, len(runs))
	result = append(result, runs[0])

	for _, next := range runs[1:] {
		prev := &result[len(result)-1]

		if prev.LCN != sparseLCN && next.LCN != sparseLCN &&
			prev.LCN+int64(prev.ClusterCount) == next.LCN {
			prev.ClusterCount += next.ClusterCount
			continue
		}

		result = append(result, next)
	}

	return result
}

// decodeUnsigned assembles an unsigned little-endian integer from up to 8
// bytes. NTFS never encodes a cluster count wider than 8 bytes; inputs are
// already bounds-checked by the caller.
func decodeUnsigned(b []byte) uint64 {
	var v uint64
	for i, c := range b {
		v |= uint64(c) << (8 * uint(i))
	}
	return v
}

// decodeSigned assembles a signed little-endian integer and sign-extends
// it from its declared width, matching the pad-to-8-bytes technique used
// by corebreaker/ntfstool and Velocidex/go-ntfs: the value is built up in
// an 8-byte buffer whose high bytes are filled with 0xFF when the most
// significant encoded byte has its top bit set.
func decodeSigned(b []byte) int64 {
	var buf [8]byte
	copy(buf[:], b)

	if len(b) > 0 && len(b) < 8 && b[len(b)-1]&0x80 != 0 {
		for i := len(b); i < 8; i++ {
			buf[i] = 0xFF
		}
	}

	return int64(decodeUnsigned(buf[:]))
}
