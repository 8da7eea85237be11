package bin

import (
	"bytes"
	"fmt"
	"iter"
	"log/slog"

	"github.com/fvpkit/fvp/internal/binread"
	"github.com/fvpkit/fvp/internal/sizing"
)

const (
	headerSize     = 8
	indexEntrySize = 12
)

// Archive is an ordered sequence of entries.
//
// The zero value is an empty archive ready for [Archive.Add].
type Archive struct {
	entries []Entry
	byName  map[string]int
}

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	strictNameTable bool
	logger          *slog.Logger
}

// WithStrictNameTable rejects containers whose nameTableByteLength field
// does not match the size of the names actually referenced by the index.
//
// By default the field is read but not checked, matching the engine.
func WithStrictNameTable() ParseOption {
	return func(cfg *parseConfig) {
		cfg.strictNameTable = true
	}
}

// WithParseLogger sets the logger used during parsing.
func WithParseLogger(logger *slog.Logger) ParseOption {
	return func(cfg *parseConfig) {
		cfg.logger = logger
	}
}

// Parse reads a container from buf.
//
// The returned archive and its entries alias buf.
func Parse(buf []byte, opts ...ParseOption) (*Archive, error) {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	count, err := binread.Uint32(buf, 0)
	if err != nil {
		return nil, fmt.Errorf("read entry count: %w", err)
	}
	nameTableLen, err := binread.Uint32(buf, 4)
	if err != nil {
		return nil, fmt.Errorf("read name table length: %w", err)
	}

	// The index must fit before anything is allocated from count.
	indexLen, ok := sizing.Mul(int(count), indexEntrySize)
	if !ok || !sizing.Range(headerSize, indexLen, len(buf)) {
		return nil, fmt.Errorf("%w: index of %d entries (buffer is %d bytes)", ErrOffsetOutOfRange, count, len(buf))
	}
	namesBase := headerSize + indexLen

	a := &Archive{
		entries: make([]Entry, 0, count),
		byName:  make(map[string]int, count),
	}
	namesEnd := namesBase
	for i := range int(count) {
		entry, nameEnd, err := parseEntry(buf, i, namesBase)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		namesEnd = max(namesEnd, nameEnd)
		a.append(entry)
	}

	if actual := namesEnd - namesBase; actual != int(nameTableLen) {
		if cfg.strictNameTable {
			return nil, fmt.Errorf("%w: header says %d, names span %d", ErrNameTableLength, nameTableLen, actual)
		}
		log.Debug("name table length mismatch", "header", nameTableLen, "actual", actual)
	}

	log.Debug("parsed archive", "entries", len(a.entries), "bytes", len(buf))
	return a, nil
}

// parseEntry reads index slot i and resolves its name and data. It also
// returns the offset just past the name's terminator.
func parseEntry(buf []byte, i, namesBase int) (Entry, int, error) {
	slot := headerSize + i*indexEntrySize

	nameOffset, err := binread.Uint32(buf, slot)
	if err != nil {
		return Entry{}, 0, err
	}
	dataOffset, err := binread.Uint32(buf, slot+4)
	if err != nil {
		return Entry{}, 0, err
	}
	dataSize, err := binread.Uint32(buf, slot+8)
	if err != nil {
		return Entry{}, 0, err
	}

	nameAt := namesBase + int(nameOffset)
	name, err := binread.CString(buf, nameAt)
	if err != nil {
		return Entry{}, 0, err
	}
	data, err := binread.Bytes(buf, int(dataOffset), int(dataSize))
	if err != nil {
		return Entry{}, 0, fmt.Errorf("data of %q: %w", name, err)
	}

	// Names are stored encoded, so the terminator position is found from
	// the raw bytes rather than from len(name).
	nameEnd := nameAt + bytes.IndexByte(buf[nameAt:], 0) + 1
	return Entry{name: name, offset: dataOffset, data: data}, nameEnd, nil
}

// Add appends an entry. Order is preserved when writing.
func (a *Archive) Add(e Entry) {
	a.append(e)
}

func (a *Archive) append(e Entry) {
	if a.byName == nil {
		a.byName = make(map[string]int)
	}
	if _, dup := a.byName[e.name]; !dup {
		a.byName[e.name] = len(a.entries)
	}
	a.entries = append(a.entries, e)
}

// Len returns the number of entries.
func (a *Archive) Len() int {
	return len(a.entries)
}

// Entry returns the entry at index i.
func (a *Archive) Entry(i int) Entry {
	return a.entries[i]
}

// Entries returns the entries in container order.
// The returned slice must not be modified.
func (a *Archive) Entries() []Entry {
	return a.entries
}

// All returns an iterator over the entries in container order.
func (a *Archive) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range a.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Lookup returns the first entry with the given name.
func (a *Archive) Lookup(name string) (Entry, bool) {
	i, ok := a.byName[name]
	if !ok {
		return Entry{}, false
	}
	return a.entries[i], true
}
