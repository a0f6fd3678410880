//go:build !unix

package mmfile

import "os"

// Map reads the whole file on platforms without mmap support. Dump files are
// at most a few kilobytes, so the copy is harmless.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
