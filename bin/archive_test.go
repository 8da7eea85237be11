package bin

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleEntryBin is a container with one entry "filename" holding "data".
var singleEntryBin = []byte{
	0x01, 0x00, 0x00, 0x00, // entry count
	0x09, 0x00, 0x00, 0x00, // name table length
	0x00, 0x00, 0x00, 0x00, // name offset
	0x1d, 0x00, 0x00, 0x00, // data offset (29)
	0x04, 0x00, 0x00, 0x00, // data size
	'f', 'i', 'l', 'e', 'n', 'a', 'm', 'e', 0x00,
	'd', 'a', 't', 'a',
}

// multipleEntriesBin returns the golden three-entry container.
func multipleEntriesBin() []byte {
	var b []byte
	b = binary.LittleEndian.AppendUint32(b, 3)
	b = binary.LittleEndian.AppendUint32(b, 18)
	// name offset, data offset, data size
	b = binary.LittleEndian.AppendUint32(b, 0)
	b = binary.LittleEndian.AppendUint32(b, 62)
	b = binary.LittleEndian.AppendUint32(b, 18)
	b = binary.LittleEndian.AppendUint32(b, 6)
	b = binary.LittleEndian.AppendUint32(b, 80)
	b = binary.LittleEndian.AppendUint32(b, 12)
	b = binary.LittleEndian.AppendUint32(b, 12)
	b = binary.LittleEndian.AppendUint32(b, 92)
	b = binary.LittleEndian.AppendUint32(b, 14)
	b = append(b, "file1\x00file2\x00file3\x00"...)
	b = append(b, "The answer to life"...)
	b = append(b, "the universe"...)
	b = append(b, "and everything"...)
	return b
}

func TestParseSingleEntry(t *testing.T) {
	t.Parallel()

	arc, err := Parse(singleEntryBin)
	require.NoError(t, err)
	require.Equal(t, 1, arc.Len())

	entry := arc.Entry(0)
	assert.Equal(t, "filename", entry.Name())
	assert.Equal(t, []byte("data"), entry.Data())
	assert.Equal(t, uint32(29), entry.Offset())
	assert.Equal(t, 4, entry.Size())
}

func TestParseMultipleEntries(t *testing.T) {
	t.Parallel()

	arc, err := Parse(multipleEntriesBin())
	require.NoError(t, err)

	want := []struct {
		name string
		data string
	}{
		{"file1", "The answer to life"},
		{"file2", "the universe"},
		{"file3", "and everything"},
	}
	require.Equal(t, len(want), arc.Len())
	for i, w := range want {
		assert.Equal(t, w.name, arc.Entry(i).Name())
		assert.Equal(t, []byte(w.data), arc.Entry(i).Data())
	}
}

func TestParseEntriesAliasBuffer(t *testing.T) {
	t.Parallel()

	buf := bytes.Clone(singleEntryBin)
	arc, err := Parse(buf)
	require.NoError(t, err)

	buf[len(buf)-1] = 'A'
	assert.Equal(t, []byte("datA"), arc.Entry(0).Data())
}

func TestWriteSingleEntry(t *testing.T) {
	t.Parallel()

	var arc Archive
	arc.Add(NewEntry("filename", []byte("data")))

	var buf bytes.Buffer
	n, err := arc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(singleEntryBin)), n)
	assert.Equal(t, singleEntryBin, buf.Bytes())
}

func TestWriteMultipleEntries(t *testing.T) {
	t.Parallel()

	var arc Archive
	arc.Add(NewEntry("file1", []byte("The answer to life")))
	arc.Add(NewEntry("file2", []byte("the universe")))
	arc.Add(NewEntry("file3", []byte("and everything")))

	var buf bytes.Buffer
	_, err := arc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, multipleEntriesBin(), buf.Bytes())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty archive", nil},
		{"empty data", []Entry{NewEntry("a", nil), NewEntry("b", []byte{})}},
		{"japanese names", []Entry{
			NewEntry("CHR_雪々_喜_着物U", []byte{1, 2, 3}),
			NewEntry("CHR_雪々_喜_着物U_表情", bytes.Repeat([]byte{0xff}, 300)),
			NewEntry("bg01", []byte("background")),
		}},
		{"duplicate names keep order", []Entry{
			NewEntry("dup", []byte("first")),
			NewEntry("dup", []byte("second")),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var arc Archive
			for _, e := range tt.entries {
				arc.Add(e)
			}
			var first bytes.Buffer
			_, err := arc.WriteTo(&first)
			require.NoError(t, err)

			parsed, err := Parse(first.Bytes(), WithStrictNameTable())
			require.NoError(t, err)
			require.Equal(t, len(tt.entries), parsed.Len())
			for i, e := range tt.entries {
				assert.Equal(t, e.Name(), parsed.Entry(i).Name())
				assert.Equal(t, len(e.Data()), parsed.Entry(i).Size())
				if len(e.Data()) > 0 {
					assert.Equal(t, e.Data(), parsed.Entry(i).Data())
				}
			}

			var second bytes.Buffer
			_, err = parsed.WriteTo(&second)
			require.NoError(t, err)
			assert.Equal(t, first.Bytes(), second.Bytes())
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	var arc Archive
	arc.Add(NewEntry("dup", []byte("first")))
	arc.Add(NewEntry("other", []byte("x")))
	arc.Add(NewEntry("dup", []byte("second")))

	e, ok := arc.Lookup("dup")
	require.True(t, ok)
	assert.Equal(t, []byte("first"), e.Data())

	_, ok = arc.Lookup("missing")
	assert.False(t, ok)

	var names []string
	for i, e := range arc.All() {
		assert.Equal(t, arc.Entry(i), e)
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"dup", "other", "dup"}, names)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	truncatedData := bytes.Clone(singleEntryBin[:len(singleEntryBin)-1])

	hugeCount := bytes.Clone(singleEntryBin)
	binary.LittleEndian.PutUint32(hugeCount, 0xffffffff)

	badNameOffset := bytes.Clone(singleEntryBin)
	binary.LittleEndian.PutUint32(badNameOffset[8:], 1000)

	unterminatedName := bytes.Clone(singleEntryBin[:29])
	unterminatedName[28] = 'x'

	badName := bytes.Clone(singleEntryBin)
	badName[20] = 0x82
	badName[21] = 0x20

	tests := []struct {
		name string
		buf  []byte
		want error
	}{
		{"empty buffer", nil, ErrOffsetOutOfRange},
		{"short header", []byte{1, 0, 0, 0, 0}, ErrOffsetOutOfRange},
		{"truncated index", singleEntryBin[:12], ErrOffsetOutOfRange},
		{"huge entry count", hugeCount, ErrOffsetOutOfRange},
		{"truncated data", truncatedData, ErrOffsetOutOfRange},
		{"name offset past end", badNameOffset, ErrOffsetOutOfRange},
		{"unterminated name", unterminatedName, ErrOffsetOutOfRange},
		{"invalid shift-jis name", badName, ErrStringDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.buf)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseNameTableLength(t *testing.T) {
	t.Parallel()

	buf := bytes.Clone(singleEntryBin)
	binary.LittleEndian.PutUint32(buf[4:], 42)

	arc, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, "filename", arc.Entry(0).Name())

	_, err = Parse(buf, WithStrictNameTable())
	require.ErrorIs(t, err, ErrNameTableLength)

	_, err = Parse(singleEntryBin, WithStrictNameTable())
	require.NoError(t, err)
}

func TestWriteRejectsUnencodableName(t *testing.T) {
	t.Parallel()

	var arc Archive
	arc.Add(NewEntry("ok", []byte("1")))
	arc.Add(NewEntry("smile\U0001F600", []byte("2")))

	var buf bytes.Buffer
	_, err := arc.WriteTo(&buf)
	require.ErrorIs(t, err, ErrStringEncode)
	assert.Zero(t, buf.Len())
}
