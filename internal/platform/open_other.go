//go:build !unix

package platform

import (
	"io/fs"
	"os"
)

// OpenFileNoFollow opens name inside root for reading without following a
// final symbolic link. It returns ErrSymlink if name is one.
func OpenFileNoFollow(root *os.Root, name string) (*os.File, error) {
	info, err := root.Lstat(name)
	if err != nil {
		return nil, err
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return nil, ErrSymlink
	}
	return root.Open(name)
}
