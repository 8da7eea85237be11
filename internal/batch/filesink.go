package batch

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// tempPrefix marks in-progress output files.
const tempPrefix = ".fvp-"

// FileSink writes outputs to the filesystem.
//
// Files are written to a temporary file in the same directory and renamed to
// the final path on Commit, so a partially written file is never visible at
// its final path.
type FileSink struct {
	destDir   string
	overwrite bool
}

// FileSinkOption configures a FileSink.
type FileSinkOption func(*FileSink)

// WithOverwrite allows overwriting existing files.
// By default, existing files are skipped.
func WithOverwrite(overwrite bool) FileSinkOption {
	return func(s *FileSink) {
		s.overwrite = overwrite
	}
}

// NewFileSink creates a FileSink that writes to destDir.
//
// Call Prepare once before handing the sink to concurrent writers.
func NewFileSink(destDir string, opts ...FileSinkOption) *FileSink {
	s := &FileSink{
		destDir: destDir,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the destination directory.
func (s *FileSink) Dir() string {
	return s.destDir
}

// Prepare creates the destination directory.
func (s *FileSink) Prepare() error {
	if err := os.MkdirAll(s.destDir, 0o750); err != nil {
		return fmt.Errorf("create directory %s: %w", s.destDir, err)
	}
	return nil
}

// ShouldProcess returns false if the file already exists and overwrite is disabled.
func (s *FileSink) ShouldProcess(path string) bool {
	if s.overwrite {
		return true
	}
	if !fs.ValidPath(path) {
		// Let Writer report the invalid path.
		return true
	}
	_, err := os.Stat(filepath.Join(s.destDir, filepath.FromSlash(path)))
	return errors.Is(err, fs.ErrNotExist)
}

// Writer returns a Committer that writes to a temp file and renames on Commit.
//
// path is slash-separated and relative to the destination directory; it may
// not escape it.
func (s *FileSink) Writer(path string) (Committer, error) {
	if !fs.ValidPath(path) || path == "." {
		return nil, &fs.PathError{Op: "write", Path: path, Err: fs.ErrInvalid}
	}
	destPath := filepath.Join(s.destDir, filepath.FromSlash(path))
	destRel := filepath.FromSlash(path)

	root, err := os.OpenRoot(s.destDir)
	if err != nil {
		return nil, fmt.Errorf("open destination root %s: %w", s.destDir, err)
	}
	if dir := filepath.Dir(destRel); dir != "." {
		if err := root.MkdirAll(dir, 0o750); err != nil {
			_ = root.Close() //nolint:errcheck // best-effort cleanup
			return nil, fmt.Errorf("create directory %s: %w", filepath.Dir(destPath), err)
		}
	}

	tempFile, tempRel, err := createTempFile(root, filepath.Dir(destRel), tempPrefix)
	if err != nil {
		_ = root.Close() //nolint:errcheck // best-effort cleanup
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	return &fileCommitter{
		destPath: destPath,
		destRel:  destRel,
		tempFile: tempFile,
		tempRel:  tempRel,
		root:     root,
	}, nil
}

// fileCommitter writes to a temp file and renames on Commit.
type fileCommitter struct {
	destPath string
	destRel  string
	tempFile *os.File
	tempRel  string
	root     *os.Root
}

// Write implements io.Writer.
func (c *fileCommitter) Write(p []byte) (int, error) {
	return c.tempFile.Write(p)
}

// Commit closes the temp file and renames it to the final path.
func (c *fileCommitter) Commit() error {
	if err := c.tempFile.Close(); err != nil {
		_ = c.root.Remove(c.tempRel) //nolint:errcheck // best-effort cleanup
		_ = c.root.Close()           //nolint:errcheck // best-effort cleanup
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := c.root.Rename(c.tempRel, c.destRel); err != nil {
		_ = c.root.Remove(c.tempRel) //nolint:errcheck // best-effort cleanup
		_ = c.root.Close()           //nolint:errcheck // best-effort cleanup
		return fmt.Errorf("rename to %s: %w", c.destPath, err)
	}

	return c.root.Close()
}

// Discard closes and removes the temp file.
func (c *fileCommitter) Discard() error {
	_ = c.tempFile.Close() //nolint:errcheck // we're cleaning up
	if err := c.root.Remove(c.tempRel); err != nil {
		_ = c.root.Close() //nolint:errcheck // best-effort cleanup
		return err
	}
	return c.root.Close()
}

func createTempFile(root *os.Root, dir, prefix string) (*os.File, string, error) {
	const attempts = 10
	for range attempts {
		name, err := randomSuffix()
		if err != nil {
			return nil, "", err
		}
		relPath := filepath.Join(dir, prefix+name)
		f, err := root.OpenFile(relPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644) //nolint:gosec // output images are meant to be readable
		if err == nil {
			return f, relPath, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", err
		}
	}
	return nil, "", errors.New("create temp file: exhausted retries")
}

func randomSuffix() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}
