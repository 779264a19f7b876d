// Package bootstrap implements a self-extracting installer stub.
//
// The bootstrap executable carries a zip package appended to its own file. At runtime it maps
// its image, extracts the installer entry (the entry ending with InstallerSuffix) and the whole
// package to temporary files, and runs the installer as
//
//	"<installer>" --setup "<package>" <forwarded arguments>
//
// The package location is recorded in a marker compiled into the executable; see the bundling
// package for the build-time side.
package bootstrap

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	"github.com/maja42/bootstrap/internal/tempfile"
)

// File extensions of the temporary artifacts.
const (
	InstallerExt = "exe"
	PackageExt   = "nupkg"
)

// Bootstrap extracts the installer from the bundled package and hands off to it.
// All fields must be set; use New for the production configuration.
type Bootstrap struct {
	// Locate maps the executable image holding the package.
	Locate func() (*Image, error)
	// TempPath returns a unique, not yet existing file path with the given extension.
	TempPath func(ext string) (string, error)
	// Launcher runs the extracted installer.
	Launcher Launcher
	// Predicate selects the installer entry inside the package.
	Predicate Predicate
}

// New returns a Bootstrap for the running executable. Temporary files are placed in tempDir,
// or in the system's temporary directory if tempDir is empty.
func New(tempDir string) *Bootstrap {
	return &Bootstrap{
		Locate: Locate,
		TempPath: func(ext string) (string, error) {
			return tempfile.Path(tempDir, ext)
		},
		Launcher:  ExecLauncher{},
		Predicate: HasSuffix(InstallerSuffix),
	}
}

// Run extracts the installer and the package to temporary files, runs the installer with args
// and waits for it. The image and both temporary files are released before Run returns,
// whether it succeeded or not. Returned errors are always of type *Error.
func (b *Bootstrap) Run(args string) (err error) {
	defer func() {
		if err == nil {
			return
		}
		var e *Error
		if !errors.As(err, &e) {
			err = newError(KindUnknown, err, "")
		}
		log.Errorf("setup failed (%s): %v", KindOf(err), err)
	}()

	var artifacts []string
	defer func() {
		if cerr := removeArtifacts(artifacts); cerr != nil {
			log.Warnf("failed to clean up temporary files: %v", cerr)
		}
	}()

	installerPath, err := b.TempPath(InstallerExt)
	if err != nil {
		return fmt.Errorf("create temporary installer path: %w", err)
	}
	artifacts = append(artifacts, installerPath)

	packagePath, err := b.TempPath(PackageExt)
	if err != nil {
		return fmt.Errorf("create temporary package path: %w", err)
	}
	artifacts = append(artifacts, packagePath)

	img, err := b.Locate()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := img.Close(); cerr != nil {
			log.Warnf("failed to release executable image: %v", cerr)
		}
	}()
	log.Debugf("payload located at offset %d (%d bytes)", img.Offset(), img.Length())

	if err := ExtractOne(img.Payload(), b.Predicate, installerPath); err != nil {
		return err
	}
	log.Debugf("installer extracted to %q", installerPath)

	if err := Persist(img.Bytes(), img.Offset(), img.Length(), packagePath); err != nil {
		return err
	}
	log.Debugf("package persisted to %q", packagePath)

	if err := b.Launcher.Launch(installerPath, packagePath, args); err != nil {
		return err
	}
	log.Debugf("installer completed")
	return nil
}

// removeArtifacts deletes all given files. Files that do not exist are ignored.
func removeArtifacts(paths []string) error {
	var merr *multierror.Error
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			merr = multierror.Append(merr, err)
			continue
		}
		log.Debugf("removed temporary file %q", p)
	}
	return merr.ErrorOrNil()
}
