// Package tempfile generates unique paths for temporary files.
package tempfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Path returns a unique path in dir (or the system's temporary directory if dir is empty)
// with the given extension. The file itself is not created.
func Path(dir, ext string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if dir == "" {
		return "", errors.New("no temporary directory available")
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	name := id.String()
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		name += "." + ext
	}
	return filepath.Join(dir, name), nil
}
