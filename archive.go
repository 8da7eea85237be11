package fvp

import (
	"fmt"
	"log/slog"

	"github.com/fvpkit/fvp/bin"
	"github.com/fvpkit/fvp/hzc"
	"github.com/fvpkit/fvp/internal/platform"
)

// Archive is an opened .bin container.
//
// Entry data aliases the archive's input; it must not be used after Close.
// An Archive is safe for concurrent reads.
type Archive struct {
	mapping *platform.Mapping
	bin     *bin.Archive
	decoder *hzc.Decoder
	logger  *slog.Logger
}

// Option configures Open and New.
type Option func(*archiveConfig)

type archiveConfig struct {
	strictNameTable bool
	maxUnpackedSize int
	logger          *slog.Logger
}

// WithStrictNameTable rejects containers whose declared name table length
// does not match their names.
func WithStrictNameTable() Option {
	return func(c *archiveConfig) {
		c.strictNameTable = true
	}
}

// WithMaxUnpackedSize limits the decoded size of a single image entry.
// Set limit to 0 to disable the limit. Defaults to [hzc.DefaultMaxUnpackedSize].
func WithMaxUnpackedSize(limit int) Option {
	return func(c *archiveConfig) {
		c.maxUnpackedSize = limit
	}
}

// WithLogger sets the logger for archive operations.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *archiveConfig) {
		c.logger = logger
	}
}

// Open maps the file at path read-only and parses it as a container.
func Open(path string, opts ...Option) (*Archive, error) {
	m, err := platform.Map(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	a, err := New(m.Bytes(), opts...)
	if err != nil {
		_ = m.Close() //nolint:errcheck // parse error takes precedence
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	a.mapping = m
	a.log().Info("opened archive", "path", path, "entries", a.Len(), "bytes", m.Len())
	return a, nil
}

// New parses buf as a container. The archive aliases buf.
func New(buf []byte, opts ...Option) (*Archive, error) {
	cfg := archiveConfig{maxUnpackedSize: hzc.DefaultMaxUnpackedSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	parseOpts := []bin.ParseOption{bin.WithParseLogger(cfg.logger)}
	if cfg.strictNameTable {
		parseOpts = append(parseOpts, bin.WithStrictNameTable())
	}
	arc, err := bin.Parse(buf, parseOpts...)
	if err != nil {
		return nil, err
	}
	return &Archive{
		bin: arc,
		decoder: hzc.NewDecoder(
			hzc.WithMaxUnpackedSize(cfg.maxUnpackedSize),
			hzc.WithLogger(cfg.logger),
		),
		logger: cfg.logger,
	}, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (a *Archive) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.logger
}

// Close releases the mapped input, if any.
func (a *Archive) Close() error {
	if a.mapping == nil {
		return nil
	}
	return a.mapping.Close()
}

// Container returns the parsed container.
func (a *Archive) Container() *bin.Archive {
	return a.bin
}

// Len returns the number of entries.
func (a *Archive) Len() int {
	return a.bin.Len()
}

// Lookup returns the first entry named name.
func (a *Archive) Lookup(name string) (bin.Entry, error) {
	e, ok := a.bin.Lookup(name)
	if !ok {
		return bin.Entry{}, fmt.Errorf("%w: %q", ErrEntryNotFound, name)
	}
	return e, nil
}

// Decode decodes the image entry named name.
func (a *Archive) Decode(name string) (*hzc.Image, error) {
	e, err := a.Lookup(name)
	if err != nil {
		return nil, err
	}
	img, err := a.decoder.Decode(e.Data())
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

