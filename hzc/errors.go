package hzc

import (
	"errors"
	"fmt"

	"github.com/fvpkit/fvp/internal/binread"
	"github.com/fvpkit/fvp/internal/fvptype"
)

// Sentinel errors. Typed errors below match them with errors.Is.
var (
	// ErrFormatMismatch is returned when a signature is wrong.
	ErrFormatMismatch = errors.New("fvp: format signature mismatch")

	// ErrDecompressLengthMismatch is returned when the payload does not
	// inflate to exactly the declared size.
	ErrDecompressLengthMismatch = errors.New("fvp: decompressed length mismatch")

	// ErrDecompression is returned when the zlib stream is corrupt.
	ErrDecompression = errors.New("fvp: decompression failed")

	// ErrUnsupportedLayout is returned for pixel layouts this package
	// cannot interpret.
	ErrUnsupportedLayout = errors.New("fvp: unsupported pixel layout")

	// ErrDimensionMismatch is returned when frame geometry or size does not
	// match its image.
	ErrDimensionMismatch = errors.New("fvp: frame dimension mismatch")

	// ErrPlacementMismatch is returned when a frame's placement does not
	// match its image.
	ErrPlacementMismatch = errors.New("fvp: frame placement mismatch")

	// ErrLayoutMismatch is returned when frames of different pixel layouts
	// are combined.
	ErrLayoutMismatch = errors.New("fvp: pixel layout mismatch")

	// ErrFramePartition is returned when the payload does not divide
	// evenly into the declared number of frames.
	ErrFramePartition = errors.New("fvp: payload does not divide into frames")

	// ErrOffsetOutOfRange is returned when the stream is truncated.
	ErrOffsetOutOfRange = binread.ErrOffsetOutOfRange

	// ErrSizeOverflow is returned when the declared size exceeds the
	// decoder's limit.
	ErrSizeOverflow = fvptype.ErrSizeOverflow
)

// FormatMismatchError reports a wrong signature with the bytes found.
type FormatMismatchError struct {
	Format   string
	Expected string
	Found    []byte
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("fvp: %s signature mismatch: expected % x (%q), found % x (%q)",
		e.Format, e.Expected, e.Expected, e.Found, e.Found)
}

// Is reports whether target is ErrFormatMismatch.
func (e *FormatMismatchError) Is(target error) bool {
	return target == ErrFormatMismatch
}

// DecompressLengthMismatchError reports a payload of the wrong size.
// When the stream is too long, inflation stops one byte past Expected, so
// Found is a lower bound (Expected+1) rather than the full length.
type DecompressLengthMismatchError struct {
	Expected int
	Found    int
}

func (e *DecompressLengthMismatchError) Error() string {
	if e.Found > e.Expected {
		return fmt.Sprintf("fvp: decompressed length mismatch: expected %d, found at least %d", e.Expected, e.Found)
	}
	return fmt.Sprintf("fvp: decompressed length mismatch: expected %d, found %d", e.Expected, e.Found)
}

// Is reports whether target is ErrDecompressLengthMismatch.
func (e *DecompressLengthMismatchError) Is(target error) bool {
	return target == ErrDecompressLengthMismatch
}

// UnsupportedLayoutError reports a layout tag without a decoder.
type UnsupportedLayoutError struct {
	Layout Layout
}

func (e *UnsupportedLayoutError) Error() string {
	return fmt.Sprintf("fvp: unsupported pixel layout %d (%s)", uint16(e.Layout), e.Layout)
}

// Is reports whether target is ErrUnsupportedLayout.
func (e *UnsupportedLayoutError) Is(target error) bool {
	return target == ErrUnsupportedLayout
}

// DimensionMismatchError reports frame geometry that disagrees with what
// the image or the pixel data requires.
type DimensionMismatchError struct {
	Field    string
	Expected int
	Found    int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("fvp: frame %s mismatch: expected %d, found %d", e.Field, e.Expected, e.Found)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// PlacementMismatchError reports a frame placed differently from its image.
type PlacementMismatchError struct {
	ExpectedX, ExpectedY int
	FoundX, FoundY       int
}

func (e *PlacementMismatchError) Error() string {
	return fmt.Sprintf("fvp: frame placement mismatch: expected (%d, %d), found (%d, %d)",
		e.ExpectedX, e.ExpectedY, e.FoundX, e.FoundY)
}

// Is reports whether target is ErrPlacementMismatch.
func (e *PlacementMismatchError) Is(target error) bool {
	return target == ErrPlacementMismatch
}
