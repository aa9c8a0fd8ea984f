package mft

import "errors"

// Error taxonomy for the MFT core. Every decode failure is a value; nothing
// in this package panics or aborts the process (spec section 7).
var (
	// ErrShortRead is returned when the underlying reader produced fewer
	// bytes than were required for a full record or fragment.
	ErrShortRead = errors.New("mft: short read from disk reader")

	// ErrBadSignature means the 1024-byte buffer did not start with "FILE".
	ErrBadSignature = errors.New("mft: bad record signature")

	// ErrHeaderInvariant means a header field violated a declared
	// invariant (e.g. first-attribute offset outside the record).
	ErrHeaderInvariant = errors.New("mft: header invariant violated")

	// ErrMalformedRunlist means the runlist codec rejected its input.
	ErrMalformedRunlist = errors.New("mft: malformed data run")

	// ErrInvalidArgument is returned for fatal argument errors at
	// map/read time, such as a zero cluster size.
	ErrInvalidArgument = errors.New("mft: invalid argument")
)
