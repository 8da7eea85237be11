package fvp

import (
	"context"
	"fmt"

	"github.com/fvpkit/fvp/hzc"
	"github.com/fvpkit/fvp/internal/batch"
	"github.com/fvpkit/fvp/tachie"
)

// Tachie builds the portraits of character and writes them to destDir.
//
// The base image is the entry named character; its expressions are the
// frames of the entry named [tachie.ExpressionName](character). Composite i
// is written to CHARACTER-i.EXT.
func (a *Archive) Tachie(ctx context.Context, destDir, character string, opts ...TachieOption) (Stats, error) {
	var cfg tachieConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	base, err := a.Decode(character)
	if err != nil {
		return Stats{}, fmt.Errorf("tachie %s: %w", character, err)
	}
	expr, err := a.Decode(tachie.ExpressionName(character))
	if err != nil {
		return Stats{}, fmt.Errorf("tachie %s: expressions: %w", character, err)
	}
	if err := tachie.Check(base, expr); err != nil {
		return Stats{}, fmt.Errorf("tachie %s: %w", character, err)
	}

	sink := batch.NewFileSink(destDir, batch.WithOverwrite(cfg.overwrite))
	if err := sink.Prepare(); err != nil {
		return Stats{}, err
	}

	format := cfg.getFormat()
	baseFrame := base.Frame(0)
	tasks := make([]batch.Task, 0, expr.Len())
	for i, f := range expr.All() {
		tasks = append(tasks, composeTask(character, i, baseFrame, f, format))
	}

	a.log().Info("building portraits", "character", character, "expressions", len(tasks), "dest", destDir)
	s, err := a.processor(cfg.batchConfig, StageCompositing).Process(ctx, tasks, sink)
	return statsFrom(s), err
}

// composeTask composites one expression frame onto the base and writes it.
func composeTask(character string, i int, base, expr hzc.Frame, format Format) batch.Task {
	name := frameName(character, i, format)
	return batch.Task{
		Name: name,
		Cost: int64(len(base.Pix)),
		Run: func(_ context.Context, sink batch.Sink) (batch.ProcessStats, error) {
			c, err := tachie.ComposeFrame(base, expr)
			if err != nil {
				return batch.ProcessStats{}, err
			}
			return writeFrame(sink, name, c, format)
		},
	}
}
