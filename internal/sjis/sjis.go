// Package sjis converts archive filenames between Shift-JIS bytes and Go
// strings.
//
// Conversions are strict in both directions: the decoder re-encodes its
// output and rejects any input whose bytes do not come back unchanged, so
// replacement characters never leak into entry names.
package sjis

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

var (
	// ErrDecode is returned when bytes are not valid Shift-JIS or do not
	// survive a decode/encode round trip.
	ErrDecode = errors.New("fvp: cannot decode Shift-JIS string")

	// ErrEncode is returned when a string has no Shift-JIS representation.
	ErrEncode = errors.New("fvp: cannot encode Shift-JIS string")
)

// Decode converts Shift-JIS bytes to a string.
func Decode(b []byte) (string, error) {
	if isASCII(b) {
		return string(b), nil
	}
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	back, err := japanese.ShiftJIS.NewEncoder().Bytes(out)
	if err != nil || !bytes.Equal(back, b) {
		return "", fmt.Errorf("%w: % x does not round-trip", ErrDecode, b)
	}
	return string(out), nil
}

// Encode converts s to Shift-JIS bytes. Strings containing NUL are
// rejected because names are stored NUL-terminated.
func Encode(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: invalid UTF-8 in %q", ErrEncode, s)
	}
	if strings.IndexByte(s, 0) >= 0 {
		return nil, fmt.Errorf("%w: NUL in %q", ErrEncode, s)
	}
	if isASCII([]byte(s)) {
		return []byte(s), nil
	}
	out, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrEncode, s, err)
	}
	return out, nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
