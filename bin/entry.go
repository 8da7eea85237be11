package bin

// Entry is a named blob in a container.
//
// Entries returned by [Parse] alias the parsed buffer. Entries created with
// [NewEntry] own their data.
type Entry struct {
	name   string
	offset uint32
	data   []byte
}

// NewEntry creates an entry for writing. The archive takes ownership of
// data; callers must not modify it afterwards.
func NewEntry(name string, data []byte) Entry {
	return Entry{name: name, data: data}
}

// Name returns the decoded filename.
func (e Entry) Name() string {
	return e.name
}

// Data returns the entry's bytes.
func (e Entry) Data() []byte {
	return e.data
}

// Offset returns the absolute data offset the entry was parsed from.
// It is zero for entries created with NewEntry.
func (e Entry) Offset() uint32 {
	return e.offset
}

// Size returns the length of the entry's data in bytes.
func (e Entry) Size() int {
	return len(e.data)
}
