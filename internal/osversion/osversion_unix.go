//go:build unix

package osversion

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func requirement() Requirement {
	switch runtime.GOOS {
	case "linux":
		return Requirement{Minimum: "3.2", Description: "Linux kernel 3.2"}
	case "darwin":
		return Requirement{Minimum: "20.0", Description: "macOS 11"}
	default:
		return Requirement{}
	}
}

// current returns the kernel release.
func current() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}
