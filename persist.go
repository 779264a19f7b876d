package bootstrap

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Persist writes buf[offset:offset+length] to dest, replacing any existing file.
// The file is synced and closed before Persist returns.
func Persist(buf []byte, offset, length int64, dest string) error {
	if offset < 0 || length < 0 || offset > int64(len(buf)) || length > int64(len(buf))-offset {
		return newError(KindIO, nil, "Payload range out of bounds (offset %d, length %d, buffer %d)", offset, length, len(buf))
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return newError(KindIO, err, "Unable to create package file")
	}

	data := buf[offset : offset+length]
	n, err := out.Write(data)
	if err == nil && n != len(data) {
		err = io.ErrShortWrite
	}
	if err == nil {
		err = out.Sync()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return newError(KindIO, err, "Unable to write package file")
	}

	log.Debugf("persisted %d bytes to %q", length, dest)
	return nil
}
