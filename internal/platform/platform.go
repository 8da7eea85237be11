// Package platform hides operating system differences in how archives are
// opened and mapped.
package platform

import "errors"

// ErrSymlink is returned when attempting to open a symbolic link.
var ErrSymlink = errors.New("symbolic links not supported")

// Mapping is a read-only view of a whole file.
//
// The bytes must not be modified and must not be used after Close.
type Mapping struct {
	data  []byte
	close func() error
}

// Bytes returns the file content.
func (m *Mapping) Bytes() []byte {
	return m.data
}

// Len returns the file size.
func (m *Mapping) Len() int {
	return len(m.data)
}

// Close releases the mapping. It is safe to call more than once.
func (m *Mapping) Close() error {
	if m.close == nil {
		return nil
	}
	err := m.close()
	m.close = nil
	m.data = nil
	return err
}
