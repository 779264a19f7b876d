package bootstrap

import (
	"errors"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// ErrImageClosed is returned when an image is closed twice.
var ErrImageClosed = errors.New("image already closed")

// Image is an executable file mapped read-only into memory, together with the
// location of the package bundled into it.
// The caller must Close the image to release the mapping.
type Image struct {
	data   []byte
	offset int64
	length int64
	closed bool
}

// Locate maps the running executable and returns its bundled package location.
func Locate() (*Image, error) {
	path, err := os.Executable()
	if err != nil {
		return nil, newError(KindPayloadNotFound, err, "Unable to determine the executable path")
	}
	if p, err := filepath.EvalSymlinks(path); err == nil {
		// EvalSymlinks fails on Windows if the executable is located in the
		// remote SYSVOL volume from the domain controller.
		// It is therefore optional, any errors are ignored.
		path = p
	}
	offset, length := Marker()
	return LocateExe(path, offset, length)
}

// LocateExe maps an arbitrary executable and validates that [offset, offset+length) describes
// a package within it. On failure, nothing stays mapped.
func LocateExe(exePath string, offset, length int64) (*Image, error) {
	data, err := mapFile(exePath)
	if err != nil {
		return nil, newError(KindPayloadNotFound, err, "Unable to map executable to memory")
	}
	img := &Image{
		data:   data,
		offset: offset,
		length: length,
	}
	log.Debugf("mapped %q (%d bytes)", exePath, len(data))

	keep := false
	defer func() {
		if !keep {
			_ = img.Close()
		}
	}()

	if offset == 0 && length == 0 {
		return nil, newError(KindPayloadNotFound, nil, "The embedded package was not found")
	}
	if offset < 0 || length <= 0 || offset > int64(len(data)) || length > int64(len(data))-offset {
		return nil, newError(KindPayloadNotFound, nil,
			"The embedded package location is invalid (offset %d, length %d, image size %d)", offset, length, len(data))
	}

	keep = true
	return img, nil
}

// Bytes returns the whole mapped executable. The slice becomes invalid once the image is closed.
func (img *Image) Bytes() []byte {
	return img.data
}

// Offset returns the start of the bundled package within the executable.
func (img *Image) Offset() int64 {
	return img.offset
}

// Length returns the size of the bundled package in bytes.
func (img *Image) Length() int64 {
	return img.length
}

// Payload returns the bundled package. The slice becomes invalid once the image is closed.
func (img *Image) Payload() []byte {
	return img.data[img.offset : img.offset+img.length]
}

// Close releases the mapping.
// Close will return ErrImageClosed if it has already been called.
func (img *Image) Close() error {
	if img.closed {
		return ErrImageClosed
	}
	img.closed = true
	data := img.data
	img.data = nil
	return unmap(data)
}
