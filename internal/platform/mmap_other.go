//go:build !unix

package platform

import "os"

// Map reads the file at path into memory. Platforms without mmap support get
// a private copy with the same read-only contract.
func Map(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data, close: func() error { return nil }}, nil
}
