package repository

import (
	"context"
	"time"

	"gashub/internal/adapter/feed"
	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"

	"cloud.google.com/go/firestore"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// OrderFirestoreRepository persists orders in a Firestore collection and
// serves the live order feed from Firestore's own query snapshots.
type OrderFirestoreRepository struct {
	client     *firestore.Client
	collection string
}

var (
	_ interfaces.IOrderRepository = (*OrderFirestoreRepository)(nil)
	_ interfaces.IOrderFeed       = (*OrderFirestoreRepository)(nil)
)

func NewOrderFirestoreRepository(client *firestore.Client, collection string) *OrderFirestoreRepository {
	if collection == "" {
		collection = defaultOrdersTableName
	}
	return &OrderFirestoreRepository{client: client, collection: collection}
}

func (r *OrderFirestoreRepository) col() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

func (r *OrderFirestoreRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	_, err := r.col().Doc(o.ID).Create(ctx, orderToDocument(o))
	if status.Code(err) == codes.AlreadyExists {
		return entities.Order{}, interfaces.ErrOrderAlreadyExists
	}
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderFirestoreRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}
	return decodeSnapshot(snap), nil
}

func (r *OrderFirestoreRepository) List(ctx context.Context) ([]entities.Order, error) {
	return r.getAll(r.col().Documents(ctx))
}

func (r *OrderFirestoreRepository) ListByPaymentMethod(ctx context.Context, method entities.PaymentMethod) ([]entities.Order, error) {
	return r.getAll(r.col().Where(fieldPaymentMethod, "==", string(method)).Documents(ctx))
}

func (r *OrderFirestoreRepository) MarkAsPaid(ctx context.Context, id string, paidAt time.Time) (entities.Order, error) {
	ref := r.col().Doc(id)
	paidAt = paidAt.UTC()

	var updated entities.Order
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		updated = entities.Order{}

		snap, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			return nil
		}
		if err != nil {
			return err
		}
		current := decodeSnapshot(snap)
		if current.PaymentMethod != entities.PaymentMethodFiado {
			return nil
		}

		if err := tx.Update(ref, []firestore.Update{
			{Path: fieldPaymentMethod, Value: string(entities.PaymentMethodPago)},
			{Path: fieldPendingValue, Value: "0"},
			{Path: fieldPaymentStatus, Value: string(entities.PaymentStatusPaid)},
			{Path: fieldPaymentDate, Value: paidAt},
			{Path: fieldDueDate, Value: firestore.Delete},
		}); err != nil {
			return err
		}
		updated = current.MarkedPaid(paidAt)
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

// Subscribe streams every collection snapshot Firestore pushes, filtered by predicate.
func (r *OrderFirestoreRepository) Subscribe(ctx context.Context, predicate interfaces.OrderPredicate) (interfaces.ISubscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	stream := feed.NewStream(cancel)
	it := r.col().Snapshots(ctx)

	go func() {
		defer stream.Finish()
		defer it.Stop()

		for {
			qs, err := it.Next()
			if err != nil {
				if ctx.Err() == nil && status.Code(err) != codes.Canceled {
					log.WithError(err).WithField("collection", r.collection).Error("[order][firestore] snapshot listener stopped")
				}
				return
			}
			orders, err := r.getAll(qs.Documents)
			if err != nil {
				log.WithError(err).WithField("collection", r.collection).Warn("[order][firestore] failed to read snapshot")
				continue
			}
			stream.Offer(feed.Select(orders, predicate))
		}
	}()

	return stream, nil
}

func (r *OrderFirestoreRepository) getAll(it *firestore.DocumentIterator) ([]entities.Order, error) {
	docs, err := it.GetAll()
	if err != nil {
		return nil, err
	}
	orders := make([]entities.Order, 0, len(docs))
	for _, snap := range docs {
		orders = append(orders, decodeSnapshot(snap))
	}
	return orders, nil
}

func decodeSnapshot(snap *firestore.DocumentSnapshot) entities.Order {
	return orderFromDocument(snap.Ref.ID, snap.Data())
}
