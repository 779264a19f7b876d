// Package osversion checks whether the running operating system is recent enough.
package osversion

import (
	"fmt"
	"regexp"

	goversion "github.com/hashicorp/go-version"
)

// Requirement describes the oldest supported operating system release.
type Requirement struct {
	Minimum     string // Numeric version, e.g. "6.1.7601"
	Description string // Human readable, e.g. "Windows 7 SP1"
}

var numericCore = regexp.MustCompile(`^v?[0-9]+(\.[0-9]+)*`)

// parse reads the leading numeric part of a version string, ignoring any
// pre-release or vendor suffix ("5.15.0-91-generic" is read as 5.15.0).
func parse(s string) (*goversion.Version, error) {
	core := numericCore.FindString(s)
	if core == "" {
		return nil, fmt.Errorf("invalid version %q", s)
	}
	return goversion.NewVersion(core)
}

// AtLeast reports whether current is the same as or newer than minimum.
func AtLeast(current, minimum string) (bool, error) {
	c, err := parse(current)
	if err != nil {
		return false, err
	}
	m, err := parse(minimum)
	if err != nil {
		return false, err
	}
	return !c.LessThan(m), nil
}

// Supported reports whether the running OS satisfies the platform requirement.
// The requirement is returned for building error messages.
func Supported() (bool, Requirement, error) {
	req := requirement()
	if req.Minimum == "" {
		return true, req, nil
	}
	cur, err := current()
	if err != nil {
		return false, req, fmt.Errorf("determine OS version: %w", err)
	}
	ok, err := AtLeast(cur, req.Minimum)
	if err != nil {
		return false, req, err
	}
	return ok, req, nil
}
