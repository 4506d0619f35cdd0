package controller

import (
	"battgauge/model"
	"battgauge/stream"
	"context"
	"time"
)

func ticker(ctx context.Context, interval time.Duration, events *stream.Stream[model.Event]) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case tick := <-t.C:
			events.Push(model.Tick(tick))
		}
	}
}
