// Package batch runs independent units of work on a bounded worker pool and
// commits their output files atomically.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/fvpkit/fvp/internal/fvptype"
)

// Task is one independent unit of work, such as decoding an archive entry or
// building one composite. Tasks share no mutable state.
type Task struct {
	// Name identifies the task in errors, logs and progress events.
	Name string

	// Cost is the number of bytes the task holds in memory while running.
	// It is charged against the processor's in-flight byte budget.
	Cost int64

	// Run performs the work and writes its outputs to sink.
	Run func(ctx context.Context, sink Sink) (ProcessStats, error)
}

// Processor runs tasks concurrently with a bounded number of workers.
//
// By default processing is fail-fast: after the first error no new task is
// started, tasks already running finish, and the first error is returned.
// Outputs committed before the failure are kept.
type Processor struct {
	workers     int // 0 = GOMAXPROCS, <0 = serial, >0 = fixed count
	keepGoing   bool
	budgetBytes int64
	stage       fvptype.ProgressStage
	progress    fvptype.ProgressFunc
	logger      *slog.Logger
}

// log returns the logger, falling back to a discard logger if nil.
func (p *Processor) log() *slog.Logger {
	if p.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.logger
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithWorkers sets the number of workers.
// Values < 0 force serial processing. Zero uses GOMAXPROCS.
func WithWorkers(n int) ProcessorOption {
	return func(p *Processor) {
		p.workers = n
	}
}

// WithKeepGoing runs every task even after failures and returns all errors
// joined together.
func WithKeepGoing(enabled bool) ProcessorOption {
	return func(p *Processor) {
		p.keepGoing = enabled
	}
}

// WithMaxInFlightBytes caps the total Cost of running tasks.
// A task costing more than the limit runs alone. Zero disables the budget.
func WithMaxInFlightBytes(limit int64) ProcessorOption {
	return func(p *Processor) {
		p.budgetBytes = max(limit, 0)
	}
}

// WithProgress reports a progress event with the given stage after each
// task completes.
func WithProgress(stage fvptype.ProgressStage, fn fvptype.ProgressFunc) ProcessorOption {
	return func(p *Processor) {
		p.stage = stage
		p.progress = fn
	}
}

// WithProcessorLogger sets the logger for batch processing operations.
// If not set, logging is disabled.
func WithProcessorLogger(logger *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		p.logger = logger
	}
}

// NewProcessor creates a new batch processor.
func NewProcessor(opts ...ProcessorOption) *Processor {
	p := &Processor{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs tasks, writing their outputs to sink, and returns the
// accumulated stats of every task that succeeded.
func (p *Processor) Process(ctx context.Context, tasks []Task, sink Sink) (ProcessStats, error) {
	var stats ProcessStats
	if len(tasks) == 0 {
		return stats, nil
	}

	workers := p.workerCount(len(tasks))
	p.log().Debug("batch processing", "tasks", len(tasks), "workers", workers, "keep_going", p.keepGoing)

	var budget *semaphore.Weighted
	if p.budgetBytes > 0 {
		budget = semaphore.NewWeighted(p.budgetBytes)
	}

	// In fail-fast mode the group context is canceled by the first error,
	// which stops dispatch. In keep-going mode errors are collected instead.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	var (
		mu   sync.Mutex
		errs []error
		done int
	)
	finish := func(task Task, s ProcessStats, err error) error {
		mu.Lock()
		defer mu.Unlock()
		done++
		if err != nil {
			err = fmt.Errorf("batch: %s: %w", task.Name, err)
			p.log().Debug("task failed", "task", task.Name, "error", err)
			if p.keepGoing {
				errs = append(errs, err)
				return nil
			}
			return err
		}
		s.Tasks = 1
		stats.add(s)
		if p.progress != nil {
			p.progress(fvptype.ProgressEvent{Stage: p.stage, Path: task.Name, Done: done, Total: len(tasks)})
		}
		return nil
	}

	runCtx := egCtx
	if p.keepGoing {
		runCtx = ctx
	}

	var dispatchErr error
	for _, task := range tasks {
		if err := runCtx.Err(); err != nil {
			dispatchErr = err
			break
		}
		cost := p.clampCost(task.Cost)
		if budget != nil && cost > 0 {
			if err := budget.Acquire(runCtx, cost); err != nil {
				dispatchErr = err
				break
			}
		}
		eg.Go(func() error {
			if budget != nil && cost > 0 {
				defer budget.Release(cost)
			}
			if err := runCtx.Err(); err != nil {
				// Dispatched before an earlier task failed.
				return err
			}
			s, err := task.Run(runCtx, sink)
			return finish(task, s, err)
		})
	}

	err := eg.Wait()
	if p.keepGoing {
		if dispatchErr != nil {
			errs = append(errs, dispatchErr)
		}
		return stats, errors.Join(errs...)
	}
	if err == nil && dispatchErr != nil && ctx.Err() != nil {
		// The caller's context was canceled before every task was started.
		err = dispatchErr
	}
	return stats, err
}

// clampCost limits a task's cost to the whole budget so that oversized tasks
// still run, alone.
func (p *Processor) clampCost(cost int64) int64 {
	if p.budgetBytes == 0 || cost <= 0 {
		return 0
	}
	return min(cost, p.budgetBytes)
}

// workerCount determines the number of workers to use for n tasks.
func (p *Processor) workerCount(n int) int {
	if p.workers < 0 {
		return 1
	}
	workers := p.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return max(min(workers, n), 1)
}
