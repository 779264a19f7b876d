package bootstrap

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zip"
	log "github.com/sirupsen/logrus"
)

// InstallerSuffix identifies the installer entry inside a package.
const InstallerSuffix = "Squirrel.exe"

// Entry describes a single file inside an archive.
type Entry struct {
	Index int    // Position in the archive's central directory
	Name  string // Name as stored in the archive, using forward slashes
	Size  uint64 // Uncompressed size in bytes
}

// Predicate selects archive entries.
type Predicate func(Entry) bool

// HasSuffix returns a predicate matching entries whose name ends with suffix.
func HasSuffix(suffix string) Predicate {
	return func(e Entry) bool {
		return strings.HasSuffix(e.Name, suffix)
	}
}

// ExtractOne scans the zip archive in buf in archive order and writes the first entry
// matching pred to dest. Scanning stops at the first match, even if writing it fails.
// The archive is read in place; buf is not copied.
func ExtractOne(buf []byte, pred Predicate, dest string) error {
	zr, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return newError(KindExtractionFailed, err, "Unable to open embedded package")
	}

	extracted := false
	for i, f := range zr.File {
		entry := Entry{
			Index: i,
			Name:  f.Name,
			Size:  f.UncompressedSize64,
		}
		if !pred(entry) {
			continue
		}
		log.Debugf("extracting entry %d (%q, %d bytes) to %q", entry.Index, entry.Name, entry.Size, dest)
		if err := extractFile(f, dest); err != nil {
			log.Errorf("failed to extract %q: %v", entry.Name, err)
		} else {
			extracted = true
		}
		break
	}

	if !extracted {
		return newError(KindExtractionFailed, nil, "Unable to extract embedded package (predicate not found)")
	}
	return nil
}

func extractFile(f *zip.File, dest string) (err error) {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(dest)
		}
	}()

	_, err = io.Copy(out, rc)
	return err
}
