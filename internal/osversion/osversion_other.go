//go:build !unix && !windows

package osversion

func requirement() Requirement {
	return Requirement{}
}

func current() (string, error) {
	return "", nil
}
