package feed

import (
	"sync"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"
)

// Stream is the channel side of a subscription. It buffers a single snapshot:
// offering a new one discards any snapshot the reader has not taken yet.
type Stream struct {
	mu     sync.Mutex
	ch     chan []entities.Order
	done   chan struct{}
	closed bool
	stop   func()
	once   sync.Once
}

var _ interfaces.ISubscription = (*Stream)(nil)

// NewStream returns an open stream. stop is called once by Close and must
// make the producer call Finish.
func NewStream(stop func()) *Stream {
	return &Stream{
		ch:   make(chan []entities.Order, 1),
		done: make(chan struct{}),
		stop: stop,
	}
}

func (s *Stream) Snapshots() <-chan []entities.Order {
	return s.ch
}

// Done is closed together with the snapshot channel.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Offer publishes snapshot, replacing an unread one. No-op once finished.
func (s *Stream) Offer(snapshot []entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case <-s.ch:
	default:
	}
	s.ch <- snapshot
}

// Finish closes the snapshot channel. Safe to call more than once.
func (s *Stream) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
	close(s.done)
}

// Close tears the subscription down.
func (s *Stream) Close() {
	s.once.Do(func() {
		if s.stop != nil {
			s.stop()
			return
		}
		s.Finish()
	})
}

// Select returns the orders matching predicate in a new slice.
func Select(orders []entities.Order, predicate interfaces.OrderPredicate) []entities.Order {
	out := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if predicate == nil || predicate(o) {
			out = append(out, o)
		}
	}
	return out
}
