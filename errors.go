package fvp

import (
	"errors"

	"github.com/fvpkit/fvp/bin"
	"github.com/fvpkit/fvp/hzc"
	"github.com/fvpkit/fvp/internal/platform"
	"github.com/fvpkit/fvp/tachie"
)

// ErrEntryNotFound is returned when an archive has no entry with the
// requested name.
var ErrEntryNotFound = errors.New("fvp: entry not found")

// Errors re-exported from bin.
var (
	// ErrOffsetOutOfRange is returned when a read extends past the buffer.
	ErrOffsetOutOfRange = bin.ErrOffsetOutOfRange

	// ErrStringDecode is returned when an entry name is not valid Shift-JIS.
	ErrStringDecode = bin.ErrStringDecode

	// ErrStringEncode is returned when an entry name cannot be encoded.
	ErrStringEncode = bin.ErrStringEncode

	// ErrNameTableLength is returned in strict mode when the declared name
	// table length is wrong.
	ErrNameTableLength = bin.ErrNameTableLength

	// ErrSizeOverflow is returned when a size value overflows.
	ErrSizeOverflow = bin.ErrSizeOverflow
)

// Errors re-exported from hzc.
var (
	// ErrFormatMismatch is returned when a signature is wrong.
	ErrFormatMismatch = hzc.ErrFormatMismatch

	// ErrDecompressLengthMismatch is returned when a payload does not
	// inflate to its declared size.
	ErrDecompressLengthMismatch = hzc.ErrDecompressLengthMismatch

	// ErrDecompression is returned when a zlib stream is corrupt.
	ErrDecompression = hzc.ErrDecompression

	// ErrUnsupportedLayout is returned for pixel layouts without a decoder.
	ErrUnsupportedLayout = hzc.ErrUnsupportedLayout

	// ErrDimensionMismatch is returned when frame geometry is inconsistent.
	ErrDimensionMismatch = hzc.ErrDimensionMismatch

	// ErrPlacementMismatch is returned when a frame placement is inconsistent.
	ErrPlacementMismatch = hzc.ErrPlacementMismatch

	// ErrFramePartition is returned when a payload does not divide into
	// its frames.
	ErrFramePartition = hzc.ErrFramePartition
)

// Errors re-exported from tachie.
var (
	// ErrMultipleBaseFrames is returned when a portrait base has more than
	// one frame.
	ErrMultipleBaseFrames = tachie.ErrMultipleBaseFrames

	// ErrLayoutMismatch is returned when base and expression layouts differ.
	ErrLayoutMismatch = tachie.ErrLayoutMismatch

	// ErrPlacementOutOfBounds is returned when an expression frame does not
	// fit inside the base.
	ErrPlacementOutOfBounds = tachie.ErrPlacementOutOfBounds
)

// ErrSymlink is returned when Pack encounters a symbolic link.
var ErrSymlink = platform.ErrSymlink
