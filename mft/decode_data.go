package mft

// decodeData applies one unnamed $DATA attribute to rec (spec section
// 4.3). It returns true if the attribute was accepted and populated
// rec.Size plus rec.ResidentData or rec.DataRuns; false if it was a named
// stream, if rec already holds data runs or resident bytes from an
// earlier $DATA (first accepted $DATA wins), or if its content/runlist
// could not be decoded. On a false return rec is left untouched, except
// that a non-resident attribute whose runlist is malformed still sets
// rec.Size from its header. Named streams (alternate data streams) are
// always skipped, per the unnamed-stream-only policy.
func decodeData(rec *FileRecord, attr *attributeView) bool {
	if attr.isNamed() {
		return false
	}

	if len(rec.DataRuns) > 0 || len(rec.ResidentData) > 0 {
		return false
	}

	if !attr.nonResident {
		content, ok := attr.residentContent()
		if !ok {
			return false
		}

		rec.ResidentData = content
		rec.Size = uint64(len(content))
		return true
	}

	size, ok := attr.nonResidentSize()
	if !ok {
		return false
	}

	runlist, ok := attr.runlistBytes()
	if !ok {
		return false
	}

	runs, err := DecodeRuns(runlist)
	if err != nil {
		// Malformed runlist: drop this attribute only (spec section 4.8).
		// The attribute header's declared size is still preserved.
		rec.Size = size
		return false
	}

	rec.Size = size
	rec.DataRuns = Normalize(runs)
	return true
}
