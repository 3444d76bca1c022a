// Package domain implements conditional-block filtering and the batch workflow around it.
package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/cpre/internal/adapter"
	"github.com/mouse-blink/cpre/internal/controller"
	m "github.com/mouse-blink/cpre/internal/model"
)

// ErrBatchFailed is returned when at least one file could not be processed.
// The other files in the batch are still processed.
var ErrBatchFailed = errors.New("some files failed")

// EstimateArgs selects the files and symbols for a run.
type EstimateArgs struct {
	Paths   []m.Path
	Filter  m.SourceFilter
	Symbols *Symbols
	Threads int
}

// FilterArgs configures a filtering run.
type FilterArgs struct {
	EstimateArgs
	// Stdout concatenates the filtered files to Output instead of
	// rewriting them in place.
	Stdout bool
	Output io.Writer
	// Trace logs every line with the scope stack after it.
	Trace bool
}

// DiffArgs configures a diff run.
type DiffArgs struct {
	EstimateArgs
	Output io.Writer
	// Context is the number of unchanged lines around each hunk.
	Context int
}

// Workflow runs the filter over batches of files.
type Workflow interface {
	// Filter rewrites each file in place, or streams them to Output.
	Filter(ctx context.Context, args FilterArgs) error
	// Estimate reports what Filter would do without writing anything.
	Estimate(ctx context.Context, args EstimateArgs) error
	// Diff prints a unified diff of each file that Filter would change.
	Diff(ctx context.Context, args DiffArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
	logger    *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI, logger *slog.Logger) Workflow {
	if logger == nil {
		logger = slog.Default()
	}

	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
		logger:    logger,
	}
}

func (w *workflow) Filter(ctx context.Context, args FilterArgs) error {
	sources, err := w.sources(args.EstimateArgs)
	if err != nil {
		return err
	}

	var trace func(m.Source) TraceFunc
	if args.Trace {
		trace = w.tracer
	}

	jobs, err := w.run(ctx, sources, args.EstimateArgs, trace)
	if err != nil {
		return err
	}

	if args.Stdout {
		for _, job := range jobs {
			if job.result.Failed() {
				continue
			}

			if _, err := args.Output.Write(job.result.Output); err != nil {
				return fmt.Errorf("write combined output: %w", err)
			}
		}

		return w.finish(jobs)
	}

	for i := range jobs {
		r := &jobs[i].result
		if r.Failed() || r.Status != m.StatusFiltered {
			continue
		}

		if err := w.fsAdapter.WriteFile(r.Source.Origin, r.Output); err != nil {
			r.Status = m.StatusIOError
			r.Err = fmt.Errorf("write %s: %w", r.Source.Origin, err)
			r.Output = nil

			w.logger.Error("write failed", slog.String("path", string(r.Source.Origin)), slog.Any("err", err))

			continue
		}

		w.logger.Info("filtered",
			slog.String("path", string(r.Source.Origin)),
			slog.Int("removed", r.Removed()),
		)
	}

	return w.report(jobs, args.Symbols, controller.WithFilterMode())
}

func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) error {
	sources, err := w.sources(args)
	if err != nil {
		return err
	}

	jobs, err := w.run(ctx, sources, args, nil)
	if err != nil {
		return err
	}

	return w.report(jobs, args.Symbols, controller.WithEstimateMode())
}

func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	sources, err := w.sources(args.EstimateArgs)
	if err != nil {
		return err
	}

	jobs, err := w.run(ctx, sources, args.EstimateArgs, nil)
	if err != nil {
		return err
	}

	contextLines := args.Context
	if contextLines <= 0 {
		contextLines = udiff.DefaultContextLines
	}

	for _, job := range jobs {
		r := job.result
		if r.Failed() || r.Status != m.StatusFiltered {
			continue
		}

		path := string(r.Source.Origin)
		edits := udiff.Strings(string(job.input), string(r.Output))

		unified, err := udiff.ToUnified(path, path, string(job.input), edits, contextLines)
		if err != nil {
			return fmt.Errorf("diff %s: %w", path, err)
		}

		if _, err := io.WriteString(args.Output, unified); err != nil {
			return fmt.Errorf("write diff: %w", err)
		}
	}

	return w.finish(jobs)
}

func (w *workflow) sources(args EstimateArgs) ([]m.Source, error) {
	sources, err := w.fsAdapter.Get(args.Paths, args.Filter)
	if err != nil {
		return nil, err
	}

	w.logger.Debug("collected sources", slog.Int("count", len(sources)))

	if args.Symbols.Empty() {
		w.logger.Warn("no symbols defined or undefined, every conditional block is kept")
	}

	return sources, nil
}

// fileJob carries a result together with the unmodified input.
type fileJob struct {
	result m.FileResult
	input  []byte
}

// run filters every source with its own Engine. Results keep the order of
// sources. Per-file failures are recorded, not returned.
func (w *workflow) run(
	ctx context.Context,
	sources []m.Source,
	args EstimateArgs,
	trace func(m.Source) TraceFunc,
) ([]fileJob, error) {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	jobs := make([]fileJob, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, source := range sources {
		i, source := i, source

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var tf TraceFunc
			if trace != nil {
				tf = trace(source)
			}

			jobs[i] = w.processSource(source, args.Symbols, tf)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func (w *workflow) processSource(source m.Source, symbols *Symbols, trace TraceFunc) fileJob {
	result := m.FileResult{Source: source}

	if source.Err != nil {
		result.Status = m.StatusIOError
		result.Err = source.Err
		w.logger.Error("cannot access path", slog.String("path", string(source.Origin)), slog.Any("err", source.Err))

		return fileJob{result: result}
	}

	content, err := w.fsAdapter.ReadFile(source.Origin)
	if err != nil {
		result.Status = m.StatusIOError
		result.Err = fmt.Errorf("read %s: %w", source.Origin, err)
		w.logger.Error("read failed", slog.String("path", string(source.Origin)), slog.Any("err", err))

		return fileJob{result: result}
	}

	result.BytesIn = len(content)

	out, stats, err := FilterContent(symbols, content, trace)
	result.LinesIn = stats.LinesIn

	if err != nil {
		result.Status = m.StatusMalformed
		result.Err = fmt.Errorf("%s: %w", source.Origin, err)
		w.logger.Error("malformed conditional",
			slog.String("path", string(source.Origin)),
			slog.Any("err", err),
		)

		return fileJob{result: result, input: content}
	}

	result.LinesKept = stats.LinesKept
	result.BytesOut = len(out)
	result.Output = out

	result.Status = m.StatusUnchanged
	if !bytes.Equal(out, content) {
		result.Status = m.StatusFiltered
	}

	return fileJob{result: result, input: content}
}

func (w *workflow) tracer(source m.Source) TraceFunc {
	logger := w.logger.With(slog.String("path", string(source.Origin)))

	return func(lineNo int, line string, emitted bool, stack []Scope) {
		names := make([]string, len(stack))
		for i, s := range stack {
			names[i] = s.String()
		}

		logger.Debug(strings.TrimRight(line, "\r\n"),
			slog.Int("line", lineNo),
			slog.Bool("emit", emitted),
			slog.String("stack", "["+strings.Join(names, ", ")+"]"),
		)
	}
}

func (w *workflow) report(jobs []fileJob, symbols *Symbols, mode controller.StartOption) error {
	if err := w.ui.Start(mode); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplaySymbols(symbols.Defined(), symbols.Undefined())

	results := make([]m.FileResult, len(jobs))
	for i, job := range jobs {
		results[i] = job.result
	}

	return w.ui.DisplayResults(results, batchError(results))
}

func (w *workflow) finish(jobs []fileJob) error {
	results := make([]m.FileResult, len(jobs))
	for i, job := range jobs {
		results[i] = job.result
	}

	return batchError(results)
}

func batchError(results []m.FileResult) error {
	failed := 0

	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}

	if failed == 0 {
		return nil
	}

	return fmt.Errorf("%w: %d of %d files", ErrBatchFailed, failed, len(results))
}
