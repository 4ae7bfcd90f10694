// Package feed fans order snapshots out to live view subscribers.
package feed

import (
	"context"
	"sync"
	"time"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// Broker turns a plain order repository into a change feed. It reloads the
// collection after every write it is told about and on a fixed interval, and
// pushes the new snapshot to every subscriber.
type Broker struct {
	repo     interfaces.IOrderRepository
	interval time.Duration

	mu        sync.Mutex
	subs      map[uint64]subscriber
	nextID    uint64
	snapshot  []entities.Order
	loaded    bool
	seq       uint64
	published uint64
}

type subscriber struct {
	stream    *Stream
	predicate interfaces.OrderPredicate
}

var (
	_ interfaces.IOrderFeed      = (*Broker)(nil)
	_ interfaces.IChangeNotifier = (*Broker)(nil)
)

// NewBroker returns a broker over repo. A non-positive interval disables
// periodic reloads.
func NewBroker(repo interfaces.IOrderRepository, interval time.Duration) *Broker {
	return &Broker{
		repo:     repo,
		interval: interval,
		subs:     make(map[uint64]subscriber),
	}
}

// Subscribe delivers the current snapshot right away and every later one
// until ctx is done or the subscription is closed.
func (b *Broker) Subscribe(ctx context.Context, predicate interfaces.OrderPredicate) (interfaces.ISubscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	loaded := b.loaded
	b.mu.Unlock()
	if !loaded {
		if err := b.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	stream := NewStream(func() { b.unsubscribe(id) })
	b.subs[id] = subscriber{stream: stream, predicate: predicate}
	stream.Offer(Select(b.snapshot, predicate))
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			stream.Close()
		case <-stream.Done():
		}
	}()

	return stream, nil
}

func (b *Broker) unsubscribe(id uint64) {
	b.mu.Lock()
	sub, ok := b.subs[id]
	delete(b.subs, id)
	b.mu.Unlock()

	if ok {
		sub.stream.Finish()
	}
}

// Refresh reloads the collection and publishes it. When two reloads overlap,
// the one started last wins.
func (b *Broker) Refresh(ctx context.Context) error {
	b.mu.Lock()
	b.seq++
	seq := b.seq
	b.mu.Unlock()

	orders, err := b.repo.List(ctx)
	if err != nil {
		log.WithError(err).Warn("[order][feed] failed to reload orders")
		return err
	}
	b.publish(seq, orders)
	return nil
}

func (b *Broker) publish(seq uint64, orders []entities.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if seq < b.published {
		return
	}
	b.published = seq
	b.snapshot = orders
	b.loaded = true
	for _, sub := range b.subs {
		sub.stream.Offer(Select(orders, sub.predicate))
	}
}

// OrdersChanged reloads after a write. The reload outlives the caller's
// request context.
func (b *Broker) OrdersChanged(ctx context.Context, orderID string) error {
	log.WithField("order_id", orderID).Debug("[order][feed] change notified")
	return b.Refresh(context.WithoutCancel(ctx))
}

// Run reloads on the configured interval until ctx is done.
func (b *Broker) Run(ctx context.Context) {
	if b.interval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = b.Refresh(ctx)
		}
	}
}

// Subscribers reports how many subscriptions are open.
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
