package fvp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/fvpkit/fvp/bin"
	"github.com/fvpkit/fvp/hzc"
	"github.com/fvpkit/fvp/internal/batch"
)

// Unpack writes the archive's entries to destDir.
//
// Every entry must be an hzc1 image; frame i of entry NAME is written to
// NAME-i.EXT. With UnpackWithRaw, entries are written verbatim to NAME.
//
// destDir is created if needed. Existing files are skipped unless
// UnpackWithOverwrite is set.
func (a *Archive) Unpack(ctx context.Context, destDir string, opts ...UnpackOption) (Stats, error) {
	var cfg unpackConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	sink := batch.NewFileSink(destDir, batch.WithOverwrite(cfg.overwrite))
	if err := sink.Prepare(); err != nil {
		return Stats{}, err
	}

	decoded := decodeReporter(cfg.progress, a.Len())
	tasks := make([]batch.Task, 0, a.Len())
	for _, e := range a.bin.All() {
		if cfg.raw {
			tasks = append(tasks, rawTask(e))
		} else {
			tasks = append(tasks, a.decodeTask(e, cfg.getFormat(), decoded))
		}
	}

	a.log().Info("unpacking archive", "dest", destDir, "entries", len(tasks), "raw", cfg.raw)
	s, err := a.processor(cfg.batchConfig, StageWriting).Process(ctx, tasks, sink)
	stats := statsFrom(s)
	a.log().Info("unpacked archive", "files", stats.Files, "skipped", stats.Skipped, "bytes", stats.Bytes)
	return stats, err
}

// rawTask writes one entry's stored bytes.
func rawTask(e bin.Entry) batch.Task {
	return batch.Task{
		Name: e.Name(),
		Run: func(_ context.Context, sink batch.Sink) (batch.ProcessStats, error) {
			return batch.Put(sink, e.Name(), func(w io.Writer) error {
				_, err := w.Write(e.Data())
				return err
			})
		},
	}
}

// decodeReporter returns a callback that reports a StageDecoding event each
// time an entry has been decoded. It returns nil when fn is nil.
func decodeReporter(fn ProgressFunc, total int) func(name string) {
	if fn == nil {
		return nil
	}
	var done atomic.Int64
	return func(name string) {
		fn(ProgressEvent{Stage: StageDecoding, Path: name, Done: int(done.Add(1)), Total: total})
	}
}

// decodeTask decodes one entry and writes each of its frames.
func (a *Archive) decodeTask(e bin.Entry, format Format, decoded func(name string)) batch.Task {
	cost := int64(e.Size())
	if n, err := hzc.UnpackedSize(e.Data()); err == nil {
		cost += int64(n)
	}
	return batch.Task{
		Name: e.Name(),
		Cost: cost,
		Run: func(ctx context.Context, sink batch.Sink) (batch.ProcessStats, error) {
			img, err := a.decoder.Decode(e.Data())
			if err != nil {
				return batch.ProcessStats{}, err
			}
			if decoded != nil {
				decoded(e.Name())
			}
			var stats batch.ProcessStats
			for i, f := range img.All() {
				if err := ctx.Err(); err != nil {
					return stats, err
				}
				s, err := writeFrame(sink, frameName(e.Name(), i, format), f, format)
				if err != nil {
					return stats, err
				}
				stats.Processed += s.Processed
				stats.Skipped += s.Skipped
				stats.TotalBytes += s.TotalBytes
			}
			return stats, nil
		},
	}
}

// frameName returns the output file name of frame i.
func frameName(base string, i int, format Format) string {
	return fmt.Sprintf("%s-%d.%s", base, i, format.Ext())
}

// writeFrame encodes f and commits it to sink under name.
func writeFrame(sink batch.Sink, name string, f hzc.Frame, format Format) (batch.ProcessStats, error) {
	return batch.Put(sink, name, func(w io.Writer) error {
		img, err := f.Image()
		if err != nil {
			return err
		}
		bw := bufio.NewWriter(w)
		if err := format.Encode(bw, img); err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		return bw.Flush()
	})
}

func (a *Archive) processor(cfg batchConfig, stage ProgressStage) *batch.Processor {
	return batch.NewProcessor(
		batch.WithWorkers(cfg.workers),
		batch.WithKeepGoing(cfg.keepGoing),
		batch.WithMaxInFlightBytes(cfg.maxInFlight),
		batch.WithProgress(stage, cfg.progress),
		batch.WithProcessorLogger(a.logger),
	)
}

func statsFrom(s batch.ProcessStats) Stats {
	return Stats{
		Entries: s.Tasks,
		Files:   s.Processed,
		Skipped: s.Skipped,
		Bytes:   s.TotalBytes,
	}
}
