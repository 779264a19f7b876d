// Package bundling appends an installer package to a bootstrap executable and records its location
// in the executable's marker, so that the bootstrap can find the package at runtime.
package bundling

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zip"

	"github.com/maja42/bootstrap"
	"github.com/maja42/bootstrap/internal"
)

// PrintlnFunc is used for logging the bundling progress.
type PrintlnFunc func(format string, args ...interface{})

// Package is the content to bundle. *os.File and *bytes.Reader satisfy it.
type Package interface {
	io.ReadSeeker
	io.ReaderAt
}

// Bundle writes the bootstrap executable with the package appended to out.
//
// exe reads from the bootstrap executable. Bundle verifies that it carries the marker
// (compiled into every executable that imports bootstrap) and that no package has been bundled yet.
//
// pkg must be a zip archive containing an entry ending with bootstrap.InstallerSuffix.
//
// logger (optional) is used to report the progress during bundling.
//
// Both exe and pkg are seeked to their start before usage.
func Bundle(out io.Writer, exe io.ReadSeeker, pkg Package, logger PrintlnFunc) error {
	if logger == nil {
		logger = func(string, ...interface{}) {}
	}

	headerPos, err := locateHeader(exe)
	if err != nil {
		return fmt.Errorf("verify executable: %w", err)
	}
	exeSize, err := getSize(exe)
	if err != nil {
		return fmt.Errorf("verify executable: %w", err)
	}

	pkgSize, err := getSize(pkg)
	if err != nil {
		return fmt.Errorf("verify package: %w", err)
	}
	if err := verifyPackage(pkg, pkgSize); err != nil {
		return fmt.Errorf("verify package: %w", err)
	}

	header := internal.Header{
		Offset: exeSize,
		Length: pkgSize,
	}

	// Executable, with the header patched
	logger("Writing executable (%d bytes)", exeSize)
	if _, err := io.CopyN(out, exe, headerPos); err != nil {
		return fmt.Errorf("copy executable: %w", err)
	}
	logger("Writing header at %d (offset %d, length %d)", headerPos, header.Offset, header.Length)
	if _, err := out.Write(header.Encode()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := exe.Seek(headerPos+internal.HeaderSize, io.SeekStart); err != nil {
		return err
	}
	if _, err := io.Copy(out, exe); err != nil {
		return fmt.Errorf("copy executable: %w", err)
	}
	// Package
	logger("Adding package (%d bytes)", pkgSize)
	if _, err := io.Copy(out, pkg); err != nil {
		return fmt.Errorf("write package: %w", err)
	}
	return nil
}

// BundleFiles bundles the package file at pkgPath into the executable at exePath.
//
// See Bundle for more information.
func BundleFiles(out io.Writer, exePath, pkgPath string, logger PrintlnFunc) error {
	exe, err := os.Open(exePath)
	if err != nil {
		return fmt.Errorf("open executable %q: %w", exePath, err)
	}
	defer exe.Close()

	pkg, err := os.Open(pkgPath)
	if err != nil {
		return fmt.Errorf("open package %q: %w", pkgPath, err)
	}
	defer pkg.Close()

	return Bundle(out, exe, pkg, logger)
}

// Inspect returns the package location recorded in a bootstrap executable.
// Both values are zero if no package was bundled.
func Inspect(exe io.ReadSeeker) (offset, length int64, err error) {
	pos, err := seekHeader(exe)
	if err != nil {
		return 0, 0, err
	}
	h, err := readHeader(exe, pos)
	if err != nil {
		return 0, 0, err
	}
	return h.Offset, h.Length, nil
}

// locateHeader ensures that the executable is compatible and has no package bundled.
// Returns the position of the header. The reader is seeked to the beginning afterwards.
func locateHeader(exe io.ReadSeeker) (int64, error) {
	pos, err := seekHeader(exe)
	if err != nil {
		return 0, err
	}
	h, err := readHeader(exe, pos)
	if err != nil {
		return 0, err
	}
	if !h.IsZero() {
		return 0, errors.New("already contains a bundled package")
	}
	if _, err := exe.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return pos, nil
}

// seekHeader returns the position of the header in front of the marker signature.
func seekHeader(exe io.ReadSeeker) (int64, error) {
	// Rewind seeker to start-of-executable (just in case)
	if _, err := exe.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	end := internal.SeekSignature(exe)
	if end == -1 { // not a bootstrap executable
		return 0, errors.New("incompatible (marker signature not found)")
	}
	pos := end - int64(internal.SignatureSize) - internal.HeaderSize
	if pos < 0 {
		return 0, errors.New("incompatible (marker header truncated)")
	}
	return pos, nil
}

func readHeader(exe io.ReadSeeker, pos int64) (internal.Header, error) {
	if _, err := exe.Seek(pos, io.SeekStart); err != nil {
		return internal.Header{}, err
	}
	data := make([]byte, internal.HeaderSize)
	if _, err := io.ReadFull(exe, data); err != nil {
		return internal.Header{}, err
	}
	return internal.DecodeHeader(data)
}

// verifyPackage ensures that the package contains an installer.
// The reader is seeked to the beginning afterwards.
func verifyPackage(pkg Package, size int64) error {
	zr, err := zip.NewReader(pkg, size)
	if err != nil {
		return err
	}
	match := bootstrap.HasSuffix(bootstrap.InstallerSuffix)
	for i, f := range zr.File {
		if match(bootstrap.Entry{Index: i, Name: f.Name, Size: f.UncompressedSize64}) {
			_, err := pkg.Seek(0, io.SeekStart)
			return err
		}
	}
	return fmt.Errorf("no entry ending with %q", bootstrap.InstallerSuffix)
}

// getSize returns the size of the readable content.
// The reader is seeked to the beginning afterwards.
func getSize(r io.ReadSeeker) (int64, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return size, nil
}
