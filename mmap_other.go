//go:build !unix && !windows

package bootstrap

import (
	"errors"
	"os"
)

// mapFile falls back to reading the whole file on platforms without mmap.
func mapFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("empty file")
	}
	return data, nil
}

func unmap([]byte) error {
	return nil
}
