package bootstrap

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies the failures reported by the bootstrap.
type Kind int

const (
	// KindUnknown is any failure that does not fit the other kinds.
	KindUnknown Kind = iota
	// KindUnsupportedPlatform means the minimum OS version is not met.
	KindUnsupportedPlatform
	// KindPayloadNotFound means the executable could not be mapped or carries no package.
	KindPayloadNotFound
	// KindExtractionFailed means the installer could not be extracted from the package.
	KindExtractionFailed
	// KindIO means the package could not be written to disk.
	KindIO
	// KindLaunchFailed means the installer process could not be started.
	KindLaunchFailed
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedPlatform:
		return "unsupported platform"
	case KindPayloadNotFound:
		return "payload not found"
	case KindExtractionFailed:
		return "extraction failed"
	case KindIO:
		return "io error"
	case KindLaunchFailed:
		return "launch failed"
	default:
		return "unknown error"
	}
}

// Error reports problems while bootstrapping the installer.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, cause error, format string, a ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, a...),
		Err:  cause,
	}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// UnsupportedPlatform returns the error shown when the running OS is too old.
func UnsupportedPlatform(requirement string) error {
	return newError(KindUnsupportedPlatform, nil,
		"This application requires %s or later and cannot be installed on this computer.", requirement)
}

// UserMessage renders err as the single sentence presented to the user.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindUnsupportedPlatform {
		return e.Msg
	}
	if err == nil || err.Error() == "" {
		return "An unknown error occurred while running setup. Please contact the application author."
	}
	return "An error occurred while running setup. " + strings.TrimSuffix(err.Error(), ".") + ". Please contact the application author."
}
