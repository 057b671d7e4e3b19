package telemetry

import (
	"context"
	"sync"
)

// Stream is the boundary between the external telemetry emitter and the
// ingestion adapter: sources publish raw NDJSON lines, subscribers receive
// them in arrival order
type Stream interface {
	Subscribe(ctx context.Context) <-chan []byte
	Publish(line []byte)
	Close()
}

// stream implements Stream with buffered fan-out channels
type stream struct {
	subscribers []chan []byte
	mu          sync.RWMutex
	bufferSize  int
	closed      bool
}

// NewStream creates a stream with the given per-subscriber buffer size
func NewStream(bufferSize int) Stream {
	return &stream{
		subscribers: make([]chan []byte, 0),
		bufferSize:  bufferSize,
	}
}

// Subscribe creates a new subscription channel, removed when ctx ends
func (s *stream) Subscribe(ctx context.Context) <-chan []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan []byte, s.bufferSize)
	s.subscribers = append(s.subscribers, ch)

	go func() {
		<-ctx.Done()
		s.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a line to all subscribers without blocking; a subscriber
// that falls behind loses lines rather than stalling the emitter
func (s *stream) Publish(line []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return
	}

	for _, ch := range s.subscribers {
		select {
		case ch <- line:
		default:
		}
	}
}

// Close closes all subscriber channels
func (s *stream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true

	for _, ch := range s.subscribers {
		close(ch)
	}

	s.subscribers = nil
}

func (s *stream) unsubscribe(ch chan []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subscribers {
		if sub == ch {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}
