package repository

import (
	"context"
	"encoding/json"
	"time"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ReceivablePaymentFirestoreRepository keeps provider charges in their own
// Firestore collection, keyed by charge id.
type ReceivablePaymentFirestoreRepository struct {
	client     *firestore.Client
	collection string
}

var _ interfaces.IReceivablePaymentRepository = (*ReceivablePaymentFirestoreRepository)(nil)

func NewReceivablePaymentFirestoreRepository(client *firestore.Client, collection string) *ReceivablePaymentFirestoreRepository {
	if collection == "" {
		collection = defaultPaymentsTableName
	}
	return &ReceivablePaymentFirestoreRepository{client: client, collection: collection}
}

func (r *ReceivablePaymentFirestoreRepository) col() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

func (r *ReceivablePaymentFirestoreRepository) Create(ctx context.Context, p entities.ReceivablePayment) (entities.ReceivablePayment, error) {
	_, err := r.col().Doc(p.ID).Create(ctx, paymentToDocument(p))
	if status.Code(err) == codes.AlreadyExists {
		return entities.ReceivablePayment{}, interfaces.ErrReceivablePaymentAlreadyExists
	}
	if err != nil {
		return entities.ReceivablePayment{}, err
	}
	return p, nil
}

func (r *ReceivablePaymentFirestoreRepository) GetByID(ctx context.Context, id string) (entities.ReceivablePayment, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return entities.ReceivablePayment{}, nil
	}
	if err != nil {
		return entities.ReceivablePayment{}, err
	}
	return paymentFromDocument(snap.Ref.ID, snap.Data()), nil
}

// ListByOrderID filters on orderId only and sorts in process, so no composite
// index is needed.
func (r *ReceivablePaymentFirestoreRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.ReceivablePayment, error) {
	docs, err := r.col().Where(fieldPaymentOrderID, "==", orderID).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	payments := make([]entities.ReceivablePayment, 0, len(docs))
	for _, snap := range docs {
		payments = append(payments, paymentFromDocument(snap.Ref.ID, snap.Data()))
	}
	sortPaymentsByCreation(payments)
	return payments, nil
}

func (r *ReceivablePaymentFirestoreRepository) UpdateStatus(ctx context.Context, id string, providerStatus string, providerResponse json.RawMessage, at time.Time) (entities.ReceivablePayment, error) {
	ref := r.col().Doc(id)
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: fieldPaymentProviderStatus, Value: providerStatus},
		{Path: fieldPaymentProviderResponse, Value: string(providerResponse)},
		{Path: fieldPaymentUpdatedAt, Value: at.UTC()},
	})
	if status.Code(err) == codes.NotFound {
		return entities.ReceivablePayment{}, nil
	}
	if err != nil {
		return entities.ReceivablePayment{}, err
	}
	return r.GetByID(ctx, id)
}
