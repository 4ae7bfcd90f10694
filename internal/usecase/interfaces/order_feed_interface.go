package interfaces

import (
	"context"

	"gashub/internal/domain/entities"
)

//go:generate mockgen -source=order_feed_interface.go -destination=mocks/order_feed_interface_mock.go -package=mock_interfaces

// OrderPredicate narrows a feed to the orders a view cares about. A nil predicate keeps everything.
type OrderPredicate func(entities.Order) bool

// IOrderFeed is the live order query. Every delivery is the complete set of
// matching orders at that instant; consumers never diff.
type IOrderFeed interface {
	Subscribe(ctx context.Context, predicate OrderPredicate) (ISubscription, error)
}

// ISubscription delivers snapshots until Close is called or the subscribe
// context ends, after which the channel is closed.
//
// A consumer that falls behind only receives the most recent snapshot.
type ISubscription interface {
	Snapshots() <-chan []entities.Order
	Close()
}

// IChangeNotifier is told about every successful write so live feeds can refresh.
type IChangeNotifier interface {
	OrdersChanged(ctx context.Context, orderID string) error
}
