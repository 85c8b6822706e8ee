package pipeline

import (
	"context"
	"io"

	"varanno/internal/annotator"
	"varanno/internal/evidence"
)

// Config controls the annotation pipeline.
type Config struct {
	// Window is how many positions a site may trail the stream head
	// before it is called and evicted. 0 calls every site immediately.
	Window int
}

// Run streams evidence from each file in order through the annotator.
// Each file is treated as an independent contig: all pending positions
// are drained at end of file. After the last file the annotator gate is
// suppressed, so stray dispatches become no-ops. Returns the first
// error encountered (including context cancellation).
func Run(ctx context.Context, cfg Config, files []string, a *annotator.Annotator) error {
	for _, f := range files {
		if err := runStream(ctx, cfg, f, nil, a); err != nil {
			return err
		}
	}
	a.Suppress()
	return ctx.Err()
}

// RunReader drives the annotator from a single evidence stream; used by
// tests and callers that already hold an open reader.
func RunReader(ctx context.Context, cfg Config, r io.Reader, a *annotator.Annotator) error {
	if err := runStream(ctx, cfg, "", r, a); err != nil {
		return err
	}
	a.Suppress()
	return ctx.Err()
}

func runStream(ctx context.Context, cfg Config, path string, r io.Reader, a *annotator.Annotator) error {
	if cfg.Window < 0 {
		cfg.Window = 0
	}

	var queue []int64

	// finish calls and evicts every queued position at or behind the
	// horizon. The pipeline, not the annotator, owns the eviction
	// trigger.
	finish := func(horizon int64, all bool) error {
		for len(queue) > 0 && (all || queue[0] <= horizon) {
			p := queue[0]
			queue = queue[1:]
			if err := a.Dispatch(annotator.StageCall, p); err != nil {
				return err
			}
			if err := a.Dispatch(annotator.StageCleanup, p); err != nil {
				return err
			}
		}
		return nil
	}

	emit := func(row evidence.Row) error {
		a.Observe(row)
		if err := a.Dispatch(annotator.StageCount, row.Pos); err != nil {
			return err
		}
		queue = append(queue, row.Pos)
		return finish(row.Pos-int64(cfg.Window), false)
	}

	var err error
	if r != nil {
		err = evidence.ForEachRow(ctx, r, emit)
	} else {
		err = evidence.ForEachRowPath(ctx, path, emit)
	}
	if err != nil {
		return err
	}
	return finish(0, true)
}
