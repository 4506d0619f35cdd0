package lifecycle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStopWaitsForGoroutines(t *testing.T) {
	lc := New()
	stopped := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		lc.Go(func(ctx context.Context) {
			<-ctx.Done()
			stopped <- struct{}{}
		})
	}
	assert.False(t, lc.ShouldStop())

	lc.Stop()
	assert.True(t, lc.ShouldStop())
	assert.Len(t, stopped, 2)
	assert.Error(t, lc.Context().Err())
}
