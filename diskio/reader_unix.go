//go:build !windows

package diskio

import (
	"os"

	"golang.org/x/sys/unix"
)

// pread issues a true positional read via the pread(2) system call, which
// takes an explicit offset and never touches the file descriptor's
// cursor.
func pread(f *os.File, buf []byte, off int64) (int, error) {
	return unix.Pread(int(f.Fd()), buf, off)
}
