package runners

import (
	"context"

	"github.com/Ahmed-Sermani/go-pagerank/pipeline"
	"golang.org/x/xerrors"
)

type fifo struct {
	proc pipeline.Processor
}

// FIFO returns a StageRunner that handles one corpus document at a time, in
// the order the documents reach the stage. The corpus loader runs link
// extraction this way so documents leave the stage in read order.
//
// A processing error is reported on the pipeline error channel and stops
// the runner; the failed document is released back to its pool first.
func FIFO(proc pipeline.Processor) pipeline.StageRunner {
	return fifo{proc: proc}
}

func (runner fifo) Run(ctx context.Context, params pipeline.StageParams) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, open := <-params.Input():
			if !open {
				return
			}
			processedPayload, err := runner.proc.Process(ctx, payload)
			if err != nil {
				emitError(
					xerrors.Errorf("pipeline stage %d: %w", params.StageIndex(), err),
					params.Error(),
				)
				payload.MarkAsProcessed()
				return
			}
			// A document the processor dropped is done; recycle it.
			if processedPayload == nil {
				payload.MarkAsProcessed()
				continue
			}

			select {
			case params.Output() <- processedPayload:
			case <-ctx.Done():
				return
			}
		}
	}
}
