package pipeline

import (
	"context"

	"golang.org/x/xerrors"
)

// sourceWorker pulls payloads from source and pushes them into outCh, the
// input of the first stage.
func sourceWorker(ctx context.Context, source Source, outCh chan<- Payload, errCh chan<- error) {
	for source.Next(ctx) {
		payload := source.Payload()
		select {
		case outCh <- payload:
		case <-ctx.Done():
			return
		}
	}

	if err := source.Error(); err != nil {
		wErr := xerrors.Errorf("pipeline source: %w", err)
		select {
		case errCh <- wErr:
		default: // error channel is full.
		}
	}
}

// sinkWorker hands every payload leaving the last stage to sink and marks
// it as processed afterwards.
func sinkWorker(ctx context.Context, sink Sink, inCh <-chan Payload, errCh chan<- error) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, open := <-inCh:
			if !open {
				return
			}
			if err := sink.Consume(ctx, payload); err != nil {
				wErr := xerrors.Errorf("pipeline sink: %w", err)
				select {
				case errCh <- wErr:
				default: // error channel is full.
				}
			}
			payload.MarkAsProcessed()
		}
	}
}
