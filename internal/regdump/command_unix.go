//go:build darwin || linux || freebsd

package regdump

import (
	"golang.org/x/sys/unix"
)

// hostRelease reports the kernel name and release via uname(2).
func hostRelease() (string, string) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", ""
	}
	return unix.ByteSliceToString(uts.Sysname[:]), unix.ByteSliceToString(uts.Release[:])
}
