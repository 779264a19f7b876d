package internal

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the encoded size of a Header in bytes.
const HeaderSize = 16

// Header locates the bundled package inside a bootstrap executable.
// It is stored little-endian directly in front of the signature and is all-zero
// until the bundler patched it.
type Header struct {
	Offset int64 // Package start, relative to the start of the executable
	Length int64 // Package size in bytes
}

// IsZero reports whether the header was never written.
func (h Header) IsZero() bool {
	return h.Offset == 0 && h.Length == 0
}

// Encode returns the binary representation of the header.
func (h Header) Encode() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(h.Offset))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(h.Length))
	return buf
}

// DecodeHeader parses a header from its binary representation.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) != HeaderSize {
		return Header{}, fmt.Errorf("invalid header size %d", len(data))
	}
	return Header{
		Offset: int64(binary.LittleEndian.Uint64(data[0:8])),
		Length: int64(binary.LittleEndian.Uint64(data[8:16])),
	}, nil
}
