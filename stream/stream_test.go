package stream

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPullKeepsOrder(t *testing.T) {
	s := NewStream[int]("test")
	assert.Equal(t, "test", s.Name())
	assert.Empty(t, s.PullAll())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, []int{1, 2, 3}, s.Pull())
	assert.Empty(t, s.PullAll())
}

func TestPullWaits(t *testing.T) {
	s := NewStream[string]("test")
	var wg sync.WaitGroup
	wg.Add(1)
	var got []string
	go func() {
		defer wg.Done()
		got = s.Pull()
	}()
	s.Push("a")
	wg.Wait()
	assert.Equal(t, []string{"a"}, got)
}

func TestConcurrentPush(t *testing.T) {
	s := NewStream[int]("test")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Push(j)
			}
		}()
	}
	wg.Wait()
	assert.Len(t, s.PullAll(), 800)
}
