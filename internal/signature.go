package internal

import (
	"bufio"
	"bytes"
	"io"
)

// signaturePart is repeated signaturePartCount times and marks the location of the payload header
// inside a bootstrap executable. The header is stored directly in front of the signature.
var signaturePart = []byte{'%', 'B', 'S', 0x0b, 0x1f, 'M', 'K', '%'}

// signaturePartCount defines how often the signature part is repeated.
// This ensures that the pattern does not appear by accident within the executable.
const signaturePartCount = 4

// signature is "signaturePart" repeated "signaturePartCount" times.
// It is assembled at runtime so that binaries importing this package do not carry it verbatim.
var signature []byte

// SignatureSize contains the size of the complete signature pattern.
var SignatureSize int

func init() {
	partLen := len(signaturePart)
	SignatureSize = partLen * signaturePartCount

	signature = make([]byte, SignatureSize)
	for i := 0; i < signaturePartCount; i++ {
		copy(signature[i*partLen:], signaturePart)
	}
}

// Signature returns a copy of the marker signature.
func Signature() []byte {
	return append([]byte(nil), signature...)
}

// IsSignature checks if the given byte slice equals the signature.
func IsSignature(data []byte) bool {
	return bytes.Equal(signature, data)
}

// SeekSignature reads from the reader until the end of the signature.
// Returns the number of bytes (offset) that were read (including the pattern itself).
// Returns -1 if the signature was not found.
func SeekSignature(in io.ReadSeeker) int64 {
	return SeekPattern(in, signature)
}

// SeekPattern reads from the reader until the search pattern was found.
// The next byte coming from the reader will be the first byte after the pattern ended.
// Returns the number of bytes (offset) that were read (including the pattern itself).
// Returns -1 if the pattern was not found.
func SeekPattern(in io.ReadSeeker, pattern []byte) int64 {
	if len(pattern) == 0 {
		return 0
	}
	rPos, _ := in.Seek(0, io.SeekCurrent)

	fail := failureTable(pattern)

	var offset int64
	r := bufio.NewReader(in)

	nIdx := 0 // #bytes we already found
	for nIdx < len(pattern) {
		b, err := r.ReadByte()
		if err != nil { // not found
			return -1
		}
		for nIdx > 0 && pattern[nIdx] != b {
			nIdx = fail[nIdx-1]
		}
		if pattern[nIdx] == b {
			nIdx++
		}
		offset++
	}

	// seek the reader after the pattern (needed, because reading was done via the buffer)
	_, _ = in.Seek(rPos+offset, io.SeekStart)
	return offset
}

// failureTable holds, for every prefix of pattern, the length of its longest proper prefix that is also a suffix.
func failureTable(pattern []byte) []int {
	fail := make([]int, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = fail[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		fail[i] = k
	}
	return fail
}
