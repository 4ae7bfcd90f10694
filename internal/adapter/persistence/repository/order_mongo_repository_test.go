package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func mongoOrderDoc(id, method string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: fieldCustomerName, Value: "Ana"},
		{Key: fieldPaymentMethod, Value: method},
		{Key: fieldTotalValue, Value: "100"},
		{Key: fieldPendingValue, Value: "100"},
		{Key: fieldPaymentStatus, Value: string(entities.PaymentStatusPending)},
		{Key: fieldTimestamp, Value: time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)},
		{Key: fieldProducts, Value: bson.A{
			bson.D{{Key: fieldProductName, Value: "Gás"}, {Key: fieldProductQuantity, Value: int32(1)}, {Key: fieldProductPrice, Value: "100"}},
		}},
	}
}

func TestOrderMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create stores the id as _id", func(mt *mtest.T) {
		r := NewOrderMongoRepository(mt.DB, mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		if _, err := r.Create(context.Background(), newFiado("o-1")); err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		docs := mt.GetStartedEvent().Command.Lookup("documents").Array()
		values, _ := docs.Values()
		if len(values) != 1 || values[0].Document().Lookup("_id").StringValue() != "o-1" {
			mt.Fatalf("unexpected insert: %v", docs)
		}
	})

	mt.Run("duplicate id", func(mt *mtest.T) {
		r := NewOrderMongoRepository(mt.DB, mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		if _, err := r.Create(context.Background(), newFiado("o-1")); !errors.Is(err, interfaces.ErrOrderAlreadyExists) {
			mt.Fatalf("expected ErrOrderAlreadyExists, got %v", err)
		}
	})

	mt.Run("get missing order", func(mt *mtest.T) {
		r := NewOrderMongoRepository(mt.DB, mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.pedidos", mtest.FirstBatch))

		got, err := r.GetByID(context.Background(), "nope")
		if err != nil || got.ID != "" {
			mt.Fatalf("expected zero order, got %+v %v", got, err)
		}
	})

	mt.Run("list by payment method decodes the cursor", func(mt *mtest.T) {
		r := NewOrderMongoRepository(mt.DB, mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.pedidos", mtest.FirstBatch,
			mongoOrderDoc("o-2", "Fiado"),
			mongoOrderDoc("o-1", "Fiado"),
		))

		got, err := r.ListByPaymentMethod(context.Background(), entities.PaymentMethodFiado)
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "o-2" || !got[1].IsReceivable() || got[1].Products[0].Quantity != 1 {
			mt.Fatalf("unexpected orders: %+v", got)
		}

		cmd := mt.GetStartedEvent().Command
		if cmd.Lookup("filter").Document().Lookup(fieldPaymentMethod).StringValue() != "Fiado" {
			mt.Fatalf("unexpected filter: %v", cmd.Lookup("filter"))
		}
		if cmd.Lookup("sort").Document().Lookup(fieldTimestamp).AsInt64() != -1 {
			mt.Fatalf("expected newest first: %v", cmd.Lookup("sort"))
		}
	})

	mt.Run("mark as paid only matches fiado orders", func(mt *mtest.T) {
		r := NewOrderMongoRepository(mt.DB, mt.Coll.Name())
		paid := bson.D{
			{Key: "_id", Value: "o-1"},
			{Key: fieldPaymentMethod, Value: "Pago"},
			{Key: fieldPendingValue, Value: "0"},
			{Key: fieldPaymentStatus, Value: "paid"},
		}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: paid}))

		got, err := r.MarkAsPaid(context.Background(), "o-1", time.Now())
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "o-1" || got.PaymentMethod != entities.PaymentMethodPago || !got.PendingValue.IsZero() {
			mt.Fatalf("unexpected order: %+v", got)
		}

		cmd := mt.GetStartedEvent().Command
		query := cmd.Lookup("query").Document()
		if query.Lookup("_id").StringValue() != "o-1" || query.Lookup(fieldPaymentMethod).StringValue() != "Fiado" {
			mt.Fatalf("unexpected filter: %v", query)
		}
		if !cmd.Lookup("new").Boolean() {
			mt.Fatalf("expected the updated document to be returned: %v", cmd)
		}
		if _, err := cmd.Lookup("update").Document().Lookup("$unset").Document().LookupErr(fieldDueDate); err != nil {
			mt.Fatalf("expected due date to be removed: %v", cmd.Lookup("update"))
		}
	})

	mt.Run("mark as paid without a match", func(mt *mtest.T) {
		r := NewOrderMongoRepository(mt.DB, mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		got, err := r.MarkAsPaid(context.Background(), "o-1", time.Now())
		if err != nil || got.ID != "" {
			mt.Fatalf("expected zero order, got %+v %v", got, err)
		}
	})
}

func TestReceivablePaymentMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list by order sorts oldest first", func(mt *mtest.T) {
		r := NewReceivablePaymentMongoRepository(mt.DB, mt.Coll.Name())
		created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.pagamentos", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "p-1"},
				{Key: fieldPaymentOrderID, Value: "o-1"},
				{Key: fieldPaymentProviderID, Value: "mp-1"},
				{Key: fieldPaymentProviderStatus, Value: "in_process"},
				{Key: fieldPaymentAmount, Value: "150"},
				{Key: fieldPaymentCreatedAt, Value: created},
				{Key: fieldPaymentProviderResponse, Value: `{"id":1}`},
			},
		))

		got, err := r.ListByOrderID(context.Background(), "o-1")
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p-1" || !got[0].IsOpen() || !got[0].CreatedAt.Equal(created) || string(got[0].ProviderResponse) != `{"id":1}` {
			mt.Fatalf("unexpected payments: %+v", got)
		}

		cmd := mt.GetStartedEvent().Command
		if cmd.Lookup("filter").Document().Lookup(fieldPaymentOrderID).StringValue() != "o-1" {
			mt.Fatalf("unexpected filter: %v", cmd.Lookup("filter"))
		}
		if cmd.Lookup("sort").Document().Lookup(fieldPaymentCreatedAt).AsInt64() != 1 {
			mt.Fatalf("expected oldest first: %v", cmd.Lookup("sort"))
		}
	})

	mt.Run("duplicate id", func(mt *mtest.T) {
		r := NewReceivablePaymentMongoRepository(mt.DB, mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		if _, err := r.Create(context.Background(), newCharge("p-1", "o-1", "pending")); !errors.Is(err, interfaces.ErrReceivablePaymentAlreadyExists) {
			mt.Fatalf("expected ErrReceivablePaymentAlreadyExists, got %v", err)
		}
	})

	mt.Run("update status returns the new document", func(mt *mtest.T) {
		r := NewReceivablePaymentMongoRepository(mt.DB, mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: "p-1"},
			{Key: fieldPaymentProviderStatus, Value: "approved"},
		}}))

		got, err := r.UpdateStatus(context.Background(), "p-1", "approved", []byte(`{}`), time.Now())
		if err != nil || got.ID != "p-1" || !got.IsApproved() {
			mt.Fatalf("unexpected update: %+v %v", got, err)
		}
		set := mt.GetStartedEvent().Command.Lookup("update").Document().Lookup("$set").Document()
		if set.Lookup(fieldPaymentProviderStatus).StringValue() != "approved" {
			mt.Fatalf("unexpected update: %v", set)
		}
	})

	mt.Run("update status of a missing charge", func(mt *mtest.T) {
		r := NewReceivablePaymentMongoRepository(mt.DB, mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		got, err := r.UpdateStatus(context.Background(), "nope", "approved", nil, time.Now())
		if err != nil || got.ID != "" {
			mt.Fatalf("expected zero payment, got %+v %v", got, err)
		}
	})
}
