// Package binread reads little-endian fields and NUL-terminated Shift-JIS
// strings at absolute offsets of a caller-owned buffer.
//
// Nothing here copies or retains the buffer.
package binread

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/fvpkit/fvp/internal/sizing"
	"github.com/fvpkit/fvp/internal/sjis"
)

// ErrOffsetOutOfRange is returned when a read extends past the buffer.
var ErrOffsetOutOfRange = errors.New("fvp: offset out of range")

// Uint16 reads a little-endian uint16 at off.
func Uint16(buf []byte, off int) (uint16, error) {
	b, err := Bytes(buf, off, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint32 reads a little-endian uint32 at off.
func Uint32(buf []byte, off int) (uint32, error) {
	b, err := Bytes(buf, off, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Bytes returns the n bytes at off without copying.
func Bytes(buf []byte, off, n int) ([]byte, error) {
	if !sizing.Range(off, n, len(buf)) {
		return nil, fmt.Errorf("%w: %d bytes at offset %d (buffer is %d bytes)", ErrOffsetOutOfRange, n, off, len(buf))
	}
	return buf[off : off+n : off+n], nil
}

// CString decodes the NUL-terminated Shift-JIS string starting at off.
// A missing terminator is ErrOffsetOutOfRange.
func CString(buf []byte, off int) (string, error) {
	if off < 0 || off >= len(buf) {
		return "", fmt.Errorf("%w: string at offset %d (buffer is %d bytes)", ErrOffsetOutOfRange, off, len(buf))
	}
	end := bytes.IndexByte(buf[off:], 0)
	if end < 0 {
		return "", fmt.Errorf("%w: unterminated string at offset %d", ErrOffsetOutOfRange, off)
	}
	s, err := sjis.Decode(buf[off : off+end])
	if err != nil {
		return "", fmt.Errorf("string at offset %d: %w", off, err)
	}
	return s, nil
}
