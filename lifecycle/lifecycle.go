package lifecycle

import (
	"context"
	"sync"
)

// Lifecycle tracks background goroutines so that Stop can cancel them and
// wait until they return.
type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New() *Lifecycle {
	ctx, cancel := context.WithCancel(context.Background())
	return &Lifecycle{ctx: ctx, cancel: cancel}
}

// Go runs fn in a goroutine tracked by the lifecycle.
func (lc *Lifecycle) Go(fn func(ctx context.Context)) {
	lc.wg.Add(1)
	go func() {
		defer lc.wg.Done()
		fn(lc.ctx)
	}()
}

func (lc *Lifecycle) Context() context.Context {
	return lc.ctx
}

func (lc *Lifecycle) ShouldStop() bool {
	select {
	case <-lc.ctx.Done():
		return true
	default:
		return false
	}
}

func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.wg.Wait()
}
