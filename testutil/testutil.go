// Package testutil builds container and hzc1 fixtures for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"

	"github.com/fvpkit/fvp/bin"
)

// Hzc describes an hzc1 stream to build. Zero values pick well-formed
// defaults so tests only set what they exercise.
type Hzc struct {
	Layout uint16
	Width  uint16
	Height uint16
	X      uint16
	Y      uint16

	// Count is stored verbatim; zero is valid and means one frame.
	Count uint32

	// Payload is the uncompressed frame data, frames concatenated.
	Payload []byte

	// SizeDelta is added to len(Payload) for the declared unpacked size.
	SizeDelta int

	// HeaderSize overrides the NVSG block size (default 32).
	HeaderSize int

	// Magic and HeaderMagic override the signatures.
	Magic       string
	HeaderMagic string
}

// Bytes encodes the stream.
func (h Hzc) Bytes(tb testing.TB) []byte {
	tb.Helper()

	magic := h.Magic
	if magic == "" {
		magic = "hzc1"
	}
	headerMagic := h.HeaderMagic
	if headerMagic == "" {
		headerMagic = "NVSG"
	}
	headerSize := h.HeaderSize
	if headerSize == 0 {
		headerSize = 32
	}

	header := make([]byte, max(headerSize, 32))
	copy(header, headerMagic)
	binary.LittleEndian.PutUint16(header[4:], 0x100)
	binary.LittleEndian.PutUint16(header[6:], h.Layout)
	binary.LittleEndian.PutUint16(header[8:], h.Width)
	binary.LittleEndian.PutUint16(header[10:], h.Height)
	binary.LittleEndian.PutUint16(header[12:], h.X)
	binary.LittleEndian.PutUint16(header[14:], h.Y)
	binary.LittleEndian.PutUint32(header[20:], h.Count)
	header = header[:headerSize]

	var out bytes.Buffer
	out.WriteString(magic)
	require.NoError(tb, binary.Write(&out, binary.LittleEndian, uint32(len(h.Payload)+h.SizeDelta))) //nolint:gosec // test fixture
	require.NoError(tb, binary.Write(&out, binary.LittleEndian, uint32(headerSize)))                 //nolint:gosec // test fixture
	out.Write(header)
	out.Write(Deflate(tb, h.Payload))
	return out.Bytes()
}

// Deflate compresses data as a zlib stream.
func Deflate(tb testing.TB, data []byte) []byte {
	tb.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(tb, err)
	require.NoError(tb, zw.Close())
	return buf.Bytes()
}

// Pixels returns n deterministic bytes derived from seed.
func Pixels(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i*7)
	}
	return b
}

// Fill returns n copies of the pixel px.
func Fill(n int, px ...byte) []byte {
	return bytes.Repeat(px, n)
}

// Archive builds a container holding the given entries in order.
func Archive(tb testing.TB, entries ...bin.Entry) []byte {
	tb.Helper()
	var arc bin.Archive
	for _, e := range entries {
		arc.Add(e)
	}
	var buf bytes.Buffer
	_, err := arc.WriteTo(&buf)
	require.NoError(tb, err)
	return buf.Bytes()
}
