package hzc

import (
	"fmt"

	"github.com/fvpkit/fvp/internal/binread"
)

// Signatures of the outer stream and of the inner header block.
const (
	Magic       = "hzc1"
	HeaderMagic = "NVSG"
)

const (
	// streamPrefixSize covers the magic, unpackedSize and headerSize.
	streamPrefixSize = 12

	// minHeaderSize covers the NVSG fields up to and including the frame
	// count. Real headers are 32 bytes; the tail is reserved.
	minHeaderSize = 24
)

// Header is the decoded NVSG header shared by every frame of an image.
type Header struct {
	Layout Layout
	Width  uint16
	Height uint16
	X      uint16
	Y      uint16

	// Count is the number of frames. A stored zero is read as one.
	Count uint32
}

// stream is an hzc1 buffer split into its parts.
type stream struct {
	header       Header
	unpackedSize uint32
	payload      []byte
}

// ReadHeader parses the signatures and the NVSG header of an hzc1 stream
// without inflating the payload. The layout is not validated.
func ReadHeader(buf []byte) (Header, error) {
	s, err := parseStream(buf)
	if err != nil {
		return Header{}, err
	}
	return s.header, nil
}

// UnpackedSize returns the payload size declared by an hzc1 stream.
func UnpackedSize(buf []byte) (int, error) {
	s, err := parseStream(buf)
	if err != nil {
		return 0, err
	}
	return int(s.unpackedSize), nil
}

func parseStream(buf []byte) (stream, error) {
	if err := checkMagic(buf, "hzc1 stream", Magic); err != nil {
		return stream{}, err
	}
	unpackedSize, err := binread.Uint32(buf, 4)
	if err != nil {
		return stream{}, fmt.Errorf("read unpacked size: %w", err)
	}
	headerSize, err := binread.Uint32(buf, 8)
	if err != nil {
		return stream{}, fmt.Errorf("read header size: %w", err)
	}
	block, err := binread.Bytes(buf, streamPrefixSize, int(headerSize))
	if err != nil {
		return stream{}, fmt.Errorf("read header block: %w", err)
	}
	header, err := parseHeader(block)
	if err != nil {
		return stream{}, err
	}
	return stream{
		header:       header,
		unpackedSize: unpackedSize,
		payload:      buf[streamPrefixSize+len(block):],
	}, nil
}

func parseHeader(block []byte) (Header, error) {
	if err := checkMagic(block, "NVSG header", HeaderMagic); err != nil {
		return Header{}, err
	}
	if len(block) < minHeaderSize {
		return Header{}, fmt.Errorf("%w: NVSG header is %d bytes, need %d", ErrOffsetOutOfRange, len(block), minHeaderSize)
	}

	var h Header
	fields := []struct {
		off int
		dst *uint16
	}{
		{6, (*uint16)(&h.Layout)},
		{8, &h.Width},
		{10, &h.Height},
		{12, &h.X},
		{14, &h.Y},
	}
	for _, f := range fields {
		v, err := binread.Uint16(block, f.off)
		if err != nil {
			return Header{}, err
		}
		*f.dst = v
	}
	count, err := binread.Uint32(block, 20)
	if err != nil {
		return Header{}, err
	}
	h.Count = max(count, 1)
	return h, nil
}

func checkMagic(buf []byte, format, magic string) error {
	found, err := binread.Bytes(buf, 0, len(magic))
	if err != nil {
		return fmt.Errorf("read %s signature: %w", format, err)
	}
	if string(found) != magic {
		return &FormatMismatchError{
			Format:   format,
			Expected: magic,
			Found:    append([]byte(nil), found...),
		}
	}
	return nil
}
