package hzc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/fvpkit/fvp/internal/sizing"
	"github.com/fvpkit/fvp/internal/zlibpool"
)

// DefaultMaxUnpackedSize is the default limit on a decoded payload (256MB).
const DefaultMaxUnpackedSize = 256 << 20

// Image is a decoded hzc1 stream: a header and its frames.
//
// A decoded image owns its inflated payload; its frames are sub-slices of
// it. Images assembled with NewImage hold whatever frames are added.
type Image struct {
	header Header
	frames []Frame
}

// NewImage creates an empty image whose frames must match h.
// h.Count is ignored; the count is the number of frames added.
func NewImage(h Header) (*Image, error) {
	if _, err := h.Layout.BytesPerPixel(); err != nil {
		return nil, err
	}
	h.Count = 0
	return &Image{header: h}, nil
}

// Header returns the image header. Count equals Len.
func (img *Image) Header() Header {
	return img.header
}

// Layout returns the pixel layout of every frame.
func (img *Image) Layout() Layout {
	return img.header.Layout
}

// Len returns the number of frames.
func (img *Image) Len() int {
	return len(img.frames)
}

// Frame returns frame i.
func (img *Image) Frame(i int) Frame {
	return img.frames[i]
}

// Frames returns all frames in stream order.
// The returned slice must not be modified.
func (img *Image) Frames() []Frame {
	return img.frames
}

// All returns an iterator over the frames in stream order.
func (img *Image) All() iter.Seq2[int, Frame] {
	return func(yield func(int, Frame) bool) {
		for i, f := range img.frames {
			if !yield(i, f) {
				return
			}
		}
	}
}

// AddFrame appends f after checking that its layout, size, placement and
// pixel length match the image.
func (img *Image) AddFrame(f Frame) error {
	h := img.header
	if f.Layout != h.Layout {
		return fmt.Errorf("%w: image is %s, frame is %s", ErrLayoutMismatch, h.Layout, f.Layout)
	}
	if f.Width != int(h.Width) {
		return &DimensionMismatchError{Field: "width", Expected: int(h.Width), Found: f.Width}
	}
	if f.Height != int(h.Height) {
		return &DimensionMismatchError{Field: "height", Expected: int(h.Height), Found: f.Height}
	}
	if f.X != int(h.X) || f.Y != int(h.Y) {
		return &PlacementMismatchError{ExpectedX: int(h.X), ExpectedY: int(h.Y), FoundX: f.X, FoundY: f.Y}
	}
	if err := f.Validate(); err != nil {
		return err
	}
	img.frames = append(img.frames, f)
	img.header.Count++
	return nil
}

// Decoder decodes hzc1 streams. It is safe for concurrent use.
type Decoder struct {
	pool            *zlibpool.Pool
	maxUnpackedSize int
	logger          *slog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithMaxUnpackedSize limits the declared payload size.
// Set limit to 0 to disable the limit.
func WithMaxUnpackedSize(limit int) Option {
	return func(d *Decoder) {
		d.maxUnpackedSize = limit
	}
}

// WithLogger sets the logger for decode diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// NewDecoder creates a Decoder with a private zlib reader pool.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		pool:            zlibpool.New(),
		maxUnpackedSize: DefaultMaxUnpackedSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// log returns the logger, falling back to a discard logger if nil.
func (d *Decoder) log() *slog.Logger {
	if d.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.logger
}

var defaultDecoder = NewDecoder()

// Decode decodes buf with a shared default Decoder.
func Decode(buf []byte) (*Image, error) {
	return defaultDecoder.Decode(buf)
}

// Decode parses the stream, inflates its payload and splits it into frames.
//
// The returned frames alias a freshly allocated payload, never buf.
func (d *Decoder) Decode(buf []byte) (*Image, error) {
	s, err := parseStream(buf)
	if err != nil {
		return nil, err
	}
	h := s.header
	bpp, err := h.Layout.BytesPerPixel()
	if err != nil {
		return nil, err
	}

	size, err := sizing.ToInt(uint64(s.unpackedSize), ErrSizeOverflow)
	if err != nil {
		return nil, err
	}
	if d.maxUnpackedSize > 0 && size > d.maxUnpackedSize {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds limit of %d", ErrSizeOverflow, size, d.maxUnpackedSize)
	}

	data, err := d.pool.Inflate(bytes.NewReader(s.payload), size)
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return nil, &DecompressLengthMismatchError{Expected: size, Found: len(data)}
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	case len(data) != size:
		return nil, &DecompressLengthMismatchError{Expected: size, Found: len(data)}
	}

	count := int(h.Count)
	if len(data)%count != 0 {
		return nil, fmt.Errorf("%w: %d bytes into %d frames", ErrFramePartition, len(data), count)
	}
	frameLen := len(data) / count
	if frameLen == 0 && count > 1 {
		// Empty frames would let Count alone size the frame table.
		return nil, fmt.Errorf("%w: %d bytes into %d frames", ErrFramePartition, len(data), count)
	}
	if want, ok := sizing.Mul(int(h.Width), int(h.Height), bpp); !ok || want != frameLen {
		return nil, &DimensionMismatchError{Field: "byte length", Expected: want, Found: frameLen}
	}

	img := &Image{header: h, frames: make([]Frame, count)}
	for i := range count {
		img.frames[i] = Frame{
			Layout: h.Layout,
			Width:  int(h.Width),
			Height: int(h.Height),
			X:      int(h.X),
			Y:      int(h.Y),
			Pix:    data[i*frameLen : (i+1)*frameLen : (i+1)*frameLen],
		}
	}
	d.log().Debug("decoded hzc image",
		"layout", h.Layout.String(),
		"width", h.Width,
		"height", h.Height,
		"frames", count)
	return img, nil
}
