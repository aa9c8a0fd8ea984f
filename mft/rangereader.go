package mft

import "fmt"

// ReadRange fills buf[:length] with the logical byte range
// [fileOffset, fileOffset+length) of rec (spec section 4.6). Resident
// files short-circuit through rec.ResidentData. Otherwise the range is
// mapped to disk extents via MapRange and each fragment is read with a
// single random-access call; a short read from the device is always an
// error, since the range reader's policy (unlike the record parser's) is
// strict. Any portion of the request past rec.Size, and any sparse
// fragment, is zero-filled rather than read.
func ReadRange(reader Reader, rec *FileRecord, fileOffset, length uint64, buf []byte, clusterSize uint64) error {
	if uint64(len(buf)) < length {
		return fmt.Errorf("%w: buffer shorter than requested length", ErrInvalidArgument)
	}

	if len(rec.ResidentData) > 0 {
		readResidentRange(rec, fileOffset, length, buf)
		return nil
	}

	for i := uint64(0); i < length; i++ {
		buf[i] = 0
	}

	inBounds := uint64(0)
	if fileOffset < rec.Size {
		inBounds = rec.Size - fileOffset
		if inBounds > length {
			inBounds = length
		}
	}

	if inBounds == 0 {
		return nil
	}

	frags, err := MapRange(rec, fileOffset, inBounds, clusterSize)
	if err != nil {
		return err
	}

	pos := uint64(0)
	for _, frag := range frags {
		if frag.Zero {
			pos += frag.Length
			continue
		}

		dst := buf[pos : pos+frag.Length]
		n, err := reader.ReadAt(dst, frag.DiskOffset)
		if err != nil {
			return fmt.Errorf("mft: reading extent at %d: %w", frag.DiskOffset, err)
		}
		if uint64(n) < frag.Length {
			return fmt.Errorf("%w: got %d of %d bytes at disk offset %d",
				ErrShortRead, n, frag.Length, frag.DiskOffset)
		}

		pos += frag.Length
	}

	return nil
}

// readResidentRange copies from rec.ResidentData, zero-filling anything
// past its end (slack past a resident attribute's declared content, or a
// request extending past record.size).
func readResidentRange(rec *FileRecord, fileOffset, length uint64, buf []byte) {
	avail := uint64(len(rec.ResidentData))

	n := 0
	if fileOffset < avail {
		copyEnd := fileOffset + length
		if copyEnd > avail {
			copyEnd = avail
		}
		n = copy(buf, rec.ResidentData[fileOffset:copyEnd])
	}

	for i := n; uint64(i) < length; i++ {
		buf[i] = 0
	}
}
