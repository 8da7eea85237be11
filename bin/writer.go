package bin

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fvpkit/fvp/internal/sizing"
	"github.com/fvpkit/fvp/internal/sjis"
)

// WriteTo serializes the archive to w.
//
// Names are Shift-JIS encoded, offsets are recomputed from scratch and
// entries are written in order, so Parse(WriteTo(a)) reproduces a exactly.
// Nothing is written if any name fails to encode or an offset overflows.
func (a *Archive) WriteTo(w io.Writer) (int64, error) {
	names := make([][]byte, len(a.entries))
	var nameTableLen uint32
	for i, e := range a.entries {
		encoded, err := sjis.Encode(e.name)
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
		names[i] = encoded

		n, err := sizing.ToUint32(len(encoded)+1, ErrSizeOverflow)
		if err != nil {
			return 0, err
		}
		var ok bool
		if nameTableLen, ok = sizing.AddUint32(nameTableLen, n); !ok {
			return 0, ErrSizeOverflow
		}
	}

	count, err := sizing.ToUint32(len(a.entries), ErrSizeOverflow)
	if err != nil {
		return 0, err
	}
	indexLen, ok := sizing.Mul(len(a.entries), indexEntrySize)
	if !ok {
		return 0, ErrSizeOverflow
	}

	head := make([]byte, headerSize+indexLen)
	binary.LittleEndian.PutUint32(head[0:], count)
	binary.LittleEndian.PutUint32(head[4:], nameTableLen)

	dataStart, err := sizing.ToUint32(len(head), ErrSizeOverflow)
	if err != nil {
		return 0, err
	}
	dataOffset, ok := sizing.AddUint32(dataStart, nameTableLen)
	if !ok {
		return 0, ErrSizeOverflow
	}
	var nameOffset uint32
	for i, e := range a.entries {
		size, err := sizing.ToUint32(len(e.data), ErrSizeOverflow)
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
		slot := head[headerSize+i*indexEntrySize:]
		binary.LittleEndian.PutUint32(slot[0:], nameOffset)
		binary.LittleEndian.PutUint32(slot[4:], dataOffset)
		binary.LittleEndian.PutUint32(slot[8:], size)

		nameOffset += uint32(len(names[i]) + 1) //nolint:gosec // bounded by nameTableLen
		if dataOffset, ok = sizing.AddUint32(dataOffset, size); !ok && i < len(a.entries)-1 {
			return 0, fmt.Errorf("entry %d: %w", i+1, ErrSizeOverflow)
		}
	}

	cw := &countingWriter{w: w}
	if _, err := cw.Write(head); err != nil {
		return cw.n, err
	}
	for _, name := range names {
		if _, err := cw.Write(name); err != nil {
			return cw.n, err
		}
		if _, err := cw.Write([]byte{0}); err != nil {
			return cw.n, err
		}
	}
	for _, e := range a.entries {
		if _, err := cw.Write(e.data); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

// countingWriter tracks bytes written for io.WriterTo.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
