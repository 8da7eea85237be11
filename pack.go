package fvp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fvpkit/fvp/bin"
	"github.com/fvpkit/fvp/internal/platform"
)

// PackOption configures Pack.
type PackOption func(*packConfig)

type packConfig struct {
	logger *slog.Logger
}

// PackWithLogger sets the logger for Pack.
// If not set, logging is disabled.
func PackWithLogger(logger *slog.Logger) PackOption {
	return func(c *packConfig) {
		c.logger = logger
	}
}

// Pack builds a container at out from the regular files under dir.
//
// Entries are named by their slash-separated path relative to dir and
// stored in lexical order. Symbolic links are skipped. out is replaced
// atomically. Pack returns the number of entries written.
func Pack(ctx context.Context, dir, out string, opts ...PackOption) (int, error) {
	var cfg packConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return 0, err
	}
	defer root.Close()

	logger.Info("packing directory", "dir", dir, "out", out)
	var arc bin.Archive
	err = fs.WalkDir(root.FS(), ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := readNoFollow(root, filepath.FromSlash(path))
		if errors.Is(err, platform.ErrSymlink) {
			logger.Debug("skipped symlink", "path", path)
			return nil
		}
		if err != nil {
			return err
		}
		arc.Add(bin.NewEntry(path, data))
		logger.Debug("added entry", "name", path, "size", len(data))
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := writeFileAtomic(out, arc.WriteTo); err != nil {
		return 0, fmt.Errorf("write %s: %w", out, err)
	}
	logger.Info("packed archive", "out", out, "entries", arc.Len())
	return arc.Len(), nil
}

// readNoFollow reads a regular file inside root without following symlinks.
func readNoFollow(root *os.Root, name string) ([]byte, error) {
	f, err := platform.OpenFileNoFollow(root, name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file: %s", name)
	}
	return io.ReadAll(f)
}

// writeFileAtomic streams the output of write to a temp file then renames
// it to target, ensuring atomic replacement of the target file.
func writeFileAtomic(target string, write func(io.Writer) (int64, error)) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), ".fvp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	bw := bufio.NewWriter(tmp)
	if _, err := write(bw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
