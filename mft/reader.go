package mft

import "io"

// Reader is the disk-image capability the core requires (spec section 6,
// "DiskReader"). It is satisfied by the diskio package's platform readers
// as well as any in-memory fixture used by tests. Embedding io.ReaderAt
// commits the core to the standard library's positional-read contract:
// ReadAt must not affect and must not be affected by any other
// concurrent call, which is exactly the thread-safety requirement of
// spec section 5 ("concurrent ReadAt calls at different offsets are
// safe").
type Reader interface {
	io.ReaderAt
	Close() error
}
