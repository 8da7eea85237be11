package batch

import (
	"fmt"
	"io"
)

// Sink receives the output files produced by batch tasks.
//
// Implementations decide where content is written and can skip outputs
// that already exist.
type Sink interface {
	// ShouldProcess returns false if the output at path should be skipped.
	ShouldProcess(path string) bool

	// Writer returns a writer for the output at path. The returned
	// Committer must have Commit called after a successful write, or
	// Discard called on any error.
	Writer(path string) (Committer, error)
}

// Committer is a writer that can be committed or discarded.
//
// Implementations stage writes until Commit is called. A file-based
// implementation writes to a temp file and renames it on Commit, or
// deletes it on Discard.
type Committer interface {
	io.Writer

	// Commit finalizes the write, making content visible at its path.
	Commit() error

	// Discard aborts the write and cleans up any temporary resources.
	Discard() error
}

// Put writes one output through sink. fn receives the writer; if it fails
// the output is discarded and never appears at path.
//
// Outputs rejected by ShouldProcess are counted as skipped.
func Put(sink Sink, path string, fn func(io.Writer) error) (ProcessStats, error) {
	if !sink.ShouldProcess(path) {
		return ProcessStats{Skipped: 1}, nil
	}

	w, err := sink.Writer(path)
	if err != nil {
		return ProcessStats{}, err
	}
	cw := &countingWriter{w: w}
	if err := fn(cw); err != nil {
		_ = w.Discard() //nolint:errcheck // best-effort cleanup
		return ProcessStats{}, err
	}
	if err := w.Commit(); err != nil {
		return ProcessStats{}, fmt.Errorf("commit %s: %w", path, err)
	}
	return ProcessStats{Processed: 1, TotalBytes: uint64(cw.n)}, nil //nolint:gosec // n is never negative
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
