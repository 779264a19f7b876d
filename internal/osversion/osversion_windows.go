package osversion

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func requirement() Requirement {
	// build 7601 is Windows 7 with Service Pack 1
	return Requirement{Minimum: "6.1.7601", Description: "Windows 7 SP1"}
}

func current() (string, error) {
	v := windows.RtlGetVersion()
	return fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber), nil
}
