package stream

import (
	"sync"
)

// Stream is an unbounded queue with one consumer. Producers never block.
type Stream[T any] struct {
	name     string
	elements []T
	*sync.Cond
}

func NewStream[T any](name string) *Stream[T] {
	return &Stream[T]{
		Cond: sync.NewCond(&sync.Mutex{}),
		name: name,
	}
}

func (s *Stream[T]) Name() string {
	return s.name
}

func (s *Stream[T]) Push(msg T) {
	s.Cond.L.Lock()
	s.elements = append(s.elements, msg)
	s.Cond.Signal()
	s.Cond.L.Unlock()
}

// Pull waits for at least one element and returns everything queued so
// that the consumer can handle a burst before rendering once.
func (s *Stream[T]) Pull() []T {
	s.Cond.L.Lock()
	for len(s.elements) == 0 {
		s.Cond.Wait()
	}
	msgs := s.elements
	s.elements = nil
	s.Cond.L.Unlock()
	return msgs
}

// PullAll returns whatever is queued without waiting.
func (s *Stream[T]) PullAll() []T {
	s.Cond.L.Lock()
	msgs := s.elements
	s.elements = nil
	s.Cond.L.Unlock()
	return msgs
}
