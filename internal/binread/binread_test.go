package binread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fvpkit/fvp/internal/sjis"
)

func TestUint16(t *testing.T) {
	t.Parallel()

	buf := []byte{0x34, 0x12, 0xff}

	v, err := Uint16(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v)

	_, err = Uint16(buf, 2)
	require.ErrorIs(t, err, ErrOffsetOutOfRange)

	_, err = Uint16(buf, -1)
	require.ErrorIs(t, err, ErrOffsetOutOfRange)
}

func TestUint32(t *testing.T) {
	t.Parallel()

	buf := []byte{0, 0x78, 0x56, 0x34, 0x12}

	v, err := Uint32(buf, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), v)

	_, err = Uint32(buf, 2)
	require.ErrorIs(t, err, ErrOffsetOutOfRange)

	_, err = Uint32(buf, len(buf))
	require.ErrorIs(t, err, ErrOffsetOutOfRange)
}

func TestBytesDoesNotCopy(t *testing.T) {
	t.Parallel()

	buf := []byte("abcdef")
	view, err := Bytes(buf, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("cde"), view)

	buf[2] = 'X'
	assert.Equal(t, byte('X'), view[0])
	assert.Equal(t, 3, cap(view))
}

func TestCString(t *testing.T) {
	t.Parallel()

	name, err := sjis.Encode("CHR_雪々")
	require.NoError(t, err)
	buf := append([]byte("ab\x00"), name...)
	buf = append(buf, 0)

	s, err := CString(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "ab", s)

	s, err = CString(buf, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", s)

	s, err = CString(buf, 2)
	require.NoError(t, err)
	assert.Empty(t, s)

	s, err = CString(buf, 3)
	require.NoError(t, err)
	assert.Equal(t, "CHR_雪々", s)
}

func TestCStringErrors(t *testing.T) {
	t.Parallel()

	_, err := CString([]byte("abc"), 0)
	require.ErrorIs(t, err, ErrOffsetOutOfRange)

	_, err = CString([]byte("abc\x00"), 4)
	require.ErrorIs(t, err, ErrOffsetOutOfRange)

	_, err = CString([]byte{0x82, 0x20, 0}, 0)
	require.ErrorIs(t, err, sjis.ErrDecode)
}
