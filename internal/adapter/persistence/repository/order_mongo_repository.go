package repository

import (
	"context"
	"errors"
	"time"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderMongoRepository persists orders in a MongoDB collection, one document
// per order with the order id as _id.
type OrderMongoRepository struct {
	collection *mongo.Collection
}

var _ interfaces.IOrderRepository = (*OrderMongoRepository)(nil)

func NewOrderMongoRepository(db *mongo.Database, collection string) *OrderMongoRepository {
	if collection == "" {
		collection = defaultOrdersTableName
	}
	return &OrderMongoRepository{collection: db.Collection(collection)}
}

// EnsureIndexes creates the secondary indexes used by the list queries.
func (r *OrderMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: fieldPaymentMethod, Value: 1}}},
		{Keys: bson.D{{Key: fieldTimestamp, Value: -1}}},
	})
	return err
}

func (r *OrderMongoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	doc := bson.M(orderToDocument(o))
	doc["_id"] = o.ID

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entities.Order{}, interfaces.ErrOrderAlreadyExists
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderMongoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var raw bson.M
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}
	return decodeMongoOrder(raw), nil
}

func (r *OrderMongoRepository) List(ctx context.Context) ([]entities.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderMongoRepository) ListByPaymentMethod(ctx context.Context, method entities.PaymentMethod) ([]entities.Order, error) {
	return r.find(ctx, bson.M{fieldPaymentMethod: string(method)})
}

func (r *OrderMongoRepository) MarkAsPaid(ctx context.Context, id string, paidAt time.Time) (entities.Order, error) {
	filter := bson.M{"_id": id, fieldPaymentMethod: string(entities.PaymentMethodFiado)}
	update := bson.M{
		"$set": bson.M{
			fieldPaymentMethod: string(entities.PaymentMethodPago),
			fieldPendingValue:  "0",
			fieldPaymentStatus: string(entities.PaymentStatusPaid),
			fieldPaymentDate:   paidAt.UTC(),
		},
		"$unset": bson.M{fieldDueDate: ""},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var raw bson.M
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}
	return decodeMongoOrder(raw), nil
}

func (r *OrderMongoRepository) find(ctx context.Context, filter bson.M) ([]entities.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: fieldTimestamp, Value: -1}})
	cur, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var raws []bson.M
	if err := cur.All(ctx, &raws); err != nil {
		return nil, err
	}
	orders := make([]entities.Order, 0, len(raws))
	for _, raw := range raws {
		orders = append(orders, decodeMongoOrder(raw))
	}
	return orders, nil
}

func decodeMongoOrder(raw bson.M) entities.Order {
	return orderFromDocument(coerceString(raw["_id"]), raw)
}
