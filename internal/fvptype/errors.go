// Package fvptype holds the sentinel errors and progress types shared by the
// archive, codec and batch packages.
package fvptype

import "errors"

// ErrSizeOverflow is returned when a size or offset exceeds what the format
// or the configured limits can represent.
var ErrSizeOverflow = errors.New("fvp: size overflow")
