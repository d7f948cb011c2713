package batch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/krishnasree5/outliner/internal/extract"
	"github.com/krishnasree5/outliner/internal/layout"
	"github.com/krishnasree5/outliner/internal/outline"
)

// Worker processes a single document job.
type Worker struct {
	log        *slog.Logger
	layoutCfg  layout.Config
	docTimeout time.Duration
	stats      *Stats
}

func NewWorker(log *slog.Logger, layoutCfg layout.Config, docTimeout time.Duration, stats *Stats) *Worker {
	return &Worker{
		log:        log,
		layoutCfg:  layoutCfg,
		docTimeout: docTimeout,
		stats:      stats,
	}
}

// Process runs the extraction pipeline for a job. Failures are recorded
// on the job; they never propagate to sibling documents.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	job.SetStatus(StatusExtracting)
	start := time.Now()

	out, err := w.extract(ctx, job.Filename, job.FileData())
	elapsed := time.Since(start)
	if w.stats != nil {
		w.stats.Record(elapsed)
	}

	if err != nil {
		log.Error("extraction failed", "error", err, "duration_ms", elapsed.Milliseconds())
		job.Fail(err.Error())
		return
	}

	log.Info("extraction complete",
		"title", out.Title,
		"headings", len(out.Entries),
		"duration_ms", elapsed.Milliseconds(),
	)
	job.Complete(out)
}

// extract runs a single outliner under the per-document deadline.
func (w *Worker) extract(ctx context.Context, filename string, data []byte) (outline.Outline, error) {
	o, err := extract.ForFile(filename, w.layoutCfg)
	if err != nil {
		return outline.Empty(), err
	}

	ctx, cancel := context.WithTimeout(ctx, w.docTimeout)
	defer cancel()

	type result struct {
		out outline.Outline
		err error
	}
	done := make(chan result, 1)
	go func() {
		r, err := o.Outline(bytes.NewReader(data), filename)
		done <- result{out: r, err: err}
	}()

	select {
	case <-ctx.Done():
		return outline.Empty(), fmt.Errorf("extraction timed out: %w", ctx.Err())
	case r := <-done:
		return r.out, r.err
	}
}
