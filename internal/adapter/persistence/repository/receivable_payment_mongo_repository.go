package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReceivablePaymentMongoRepository keeps one document per provider charge with
// the charge id as _id.
type ReceivablePaymentMongoRepository struct {
	collection *mongo.Collection
}

var _ interfaces.IReceivablePaymentRepository = (*ReceivablePaymentMongoRepository)(nil)

func NewReceivablePaymentMongoRepository(db *mongo.Database, collection string) *ReceivablePaymentMongoRepository {
	if collection == "" {
		collection = defaultPaymentsTableName
	}
	return &ReceivablePaymentMongoRepository{collection: db.Collection(collection)}
}

func (r *ReceivablePaymentMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: fieldPaymentOrderID, Value: 1}, {Key: fieldPaymentCreatedAt, Value: 1}},
	})
	return err
}

func (r *ReceivablePaymentMongoRepository) Create(ctx context.Context, p entities.ReceivablePayment) (entities.ReceivablePayment, error) {
	doc := bson.M(paymentToDocument(p))
	doc["_id"] = p.ID

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entities.ReceivablePayment{}, interfaces.ErrReceivablePaymentAlreadyExists
		}
		return entities.ReceivablePayment{}, err
	}
	return p, nil
}

func (r *ReceivablePaymentMongoRepository) GetByID(ctx context.Context, id string) (entities.ReceivablePayment, error) {
	var raw bson.M
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.ReceivablePayment{}, nil
	}
	if err != nil {
		return entities.ReceivablePayment{}, err
	}
	return decodeMongoPayment(raw), nil
}

func (r *ReceivablePaymentMongoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.ReceivablePayment, error) {
	opts := options.Find().SetSort(bson.D{{Key: fieldPaymentCreatedAt, Value: 1}})
	cur, err := r.collection.Find(ctx, bson.M{fieldPaymentOrderID: orderID}, opts)
	if err != nil {
		return nil, err
	}

	var raws []bson.M
	if err := cur.All(ctx, &raws); err != nil {
		return nil, err
	}
	payments := make([]entities.ReceivablePayment, 0, len(raws))
	for _, raw := range raws {
		payments = append(payments, decodeMongoPayment(raw))
	}
	return payments, nil
}

func (r *ReceivablePaymentMongoRepository) UpdateStatus(ctx context.Context, id string, status string, providerResponse json.RawMessage, at time.Time) (entities.ReceivablePayment, error) {
	update := bson.M{"$set": bson.M{
		fieldPaymentProviderStatus:   status,
		fieldPaymentProviderResponse: string(providerResponse),
		fieldPaymentUpdatedAt:        at.UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var raw bson.M
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.ReceivablePayment{}, nil
	}
	if err != nil {
		return entities.ReceivablePayment{}, err
	}
	return decodeMongoPayment(raw), nil
}

func decodeMongoPayment(raw bson.M) entities.ReceivablePayment {
	return paymentFromDocument(coerceString(raw["_id"]), raw)
}
