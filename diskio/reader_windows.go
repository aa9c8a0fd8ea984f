//go:build windows

package diskio

import (
	"os"

	"golang.org/x/sys/windows"
)

// pread issues a positional read via ReadFile with an explicit
// OVERLAPPED offset, rather than SetFilePointer followed by ReadFile
// (the teacher's ntfsdump prototype uses the latter, which repositions a
// shared cursor and is unsafe across concurrent callers).
func pread(f *os.File, buf []byte, off int64) (int, error) {
	var done uint32
	ov := windows.Overlapped{
		Offset:     uint32(off & 0xFFFFFFFF),
		OffsetHigh: uint32(off >> 32),
	}

	err := windows.ReadFile(windows.Handle(f.Fd()), buf, &done, &ov)
	if err != nil {
		return int(done), err
	}

	return int(done), nil
}
