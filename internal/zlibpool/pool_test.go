package zlibpool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deflate(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestInflate(t *testing.T) {
	t.Parallel()

	want := bytes.Repeat([]byte("nvsg"), 1024)
	compressed := deflate(t, want)

	for _, p := range []*Pool{New(), nil} {
		got, err := p.Inflate(bytes.NewReader(compressed), len(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestInflateReadsAtMostOneExtraByte(t *testing.T) {
	t.Parallel()

	compressed := deflate(t, bytes.Repeat([]byte{7}, 100))

	got, err := New().Inflate(bytes.NewReader(compressed), 10)
	require.NoError(t, err)
	assert.Len(t, got, 11)
}

func TestInflateTruncated(t *testing.T) {
	t.Parallel()

	compressed := deflate(t, bytes.Repeat([]byte("abcdefgh"), 4096))

	_, err := New().Inflate(bytes.NewReader(compressed[:len(compressed)/2]), 8*4096)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestGetRejectsBadHeader(t *testing.T) {
	t.Parallel()

	p := New()
	_, _, err := p.Get(bytes.NewReader([]byte("not zlib at all")))
	require.Error(t, err)

	// The pool keeps working after a failed header.
	compressed := deflate(t, []byte("hello"))
	got, err := p.Inflate(bytes.NewReader(compressed), 5)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestPoolConcurrentReuse(t *testing.T) {
	t.Parallel()

	p := New()
	payloads := make([][]byte, 16)
	for i := range payloads {
		payloads[i] = bytes.Repeat([]byte{byte(i)}, 1000+i)
	}

	var wg sync.WaitGroup
	for i, payload := range payloads {
		compressed := deflate(t, payload)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 8 {
				got, err := p.Inflate(bytes.NewReader(compressed), len(payload))
				assert.NoError(t, err, "payload %d", i)
				assert.Equal(t, payload, got)
			}
		}()
	}
	wg.Wait()
}
