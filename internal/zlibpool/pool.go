// Package zlibpool manages reusable zlib readers for hzc payloads.
package zlibpool

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// resettableReader is the reader type returned by zlib.NewReader.
type resettableReader interface {
	io.ReadCloser
	zlib.Resetter
}

// Pool hands out zlib readers and takes them back once a payload has been
// inflated. The zero value is ready to use. A nil *Pool is also valid and
// creates a one-off reader for every Get.
type Pool struct {
	pool sync.Pool
}

// New creates an empty pool.
func New() *Pool {
	return &Pool{}
}

// Get returns a reader inflating r. The caller must call the returned
// release function when done. If an error is returned, no release function
// needs to be called.
func (p *Pool) Get(r io.Reader) (io.Reader, func(), error) {
	if p == nil {
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	}

	if zr, ok := p.pool.Get().(resettableReader); ok {
		if err := zr.Reset(r, nil); err != nil {
			// Reset failed on the stream header; the reader is reusable.
			p.pool.Put(zr)
			return nil, nil, err
		}
		return zr, p.releaseFunc(zr), nil
	}

	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	rr, ok := zr.(resettableReader)
	if !ok {
		return zr, func() { _ = zr.Close() }, nil
	}
	return rr, p.releaseFunc(rr), nil
}

func (p *Pool) releaseFunc(zr resettableReader) func() {
	return func() {
		_ = zr.Close() //nolint:errcheck // close only repeats stream errors already returned by Read
		p.pool.Put(zr)
	}
}

// Inflate decompresses src expecting size bytes of output. It reads at most
// size+1 bytes, so a result longer than size means the stream holds more
// data than expected. On error the bytes inflated so far are returned.
func (p *Pool) Inflate(src io.Reader, size int) ([]byte, error) {
	zr, release, err := p.Get(src)
	if err != nil {
		return nil, err
	}
	defer release()

	var buf bytes.Buffer
	buf.Grow(size)
	_, err = buf.ReadFrom(&io.LimitedReader{R: zr, N: int64(size) + 1})
	return buf.Bytes(), err
}
