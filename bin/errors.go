package bin

import (
	"errors"

	"github.com/fvpkit/fvp/internal/binread"
	"github.com/fvpkit/fvp/internal/fvptype"
	"github.com/fvpkit/fvp/internal/sjis"
)

// Sentinel errors re-exported from internal packages.
var (
	// ErrOffsetOutOfRange is returned when an index, name or data offset
	// points past the end of the buffer.
	ErrOffsetOutOfRange = binread.ErrOffsetOutOfRange

	// ErrStringDecode is returned when a name is not exact Shift-JIS.
	ErrStringDecode = sjis.ErrDecode

	// ErrStringEncode is returned when a name cannot be written as Shift-JIS.
	ErrStringEncode = sjis.ErrEncode

	// ErrSizeOverflow is returned when offsets do not fit the u32 fields.
	ErrSizeOverflow = fvptype.ErrSizeOverflow
)

// ErrNameTableLength is returned in strict mode when the header's name table
// length disagrees with the names actually stored.
var ErrNameTableLength = errors.New("fvp: name table length mismatch")
