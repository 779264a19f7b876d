package bootstrap

import (
	"github.com/maja42/bootstrap/internal"
)

// marker is compiled into the bootstrap executable.
// The leading 16 bytes are the package header (offset, length; little-endian), which the bundler
// patches in the executable file. The trailing 32 bytes are the signature used to find it.
var marker = [48]byte{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	'%', 'B', 'S', 0x0b, 0x1f, 'M', 'K', '%',
	'%', 'B', 'S', 0x0b, 0x1f, 'M', 'K', '%',
	'%', 'B', 'S', 0x0b, 0x1f, 'M', 'K', '%',
	'%', 'B', 'S', 0x0b, 0x1f, 'M', 'K', '%',
}

// Marker returns the location of the package bundled into the running executable.
// Both values are zero if no package was bundled.
func Marker() (offset, length int64) {
	h, err := internal.DecodeHeader(marker[:internal.HeaderSize])
	if err != nil {
		return 0, 0
	}
	return h.Offset, h.Length
}
