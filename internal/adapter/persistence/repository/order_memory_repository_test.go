package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func newFiado(id string) entities.Order {
	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	return entities.Order{
		ID:            id,
		CustomerName:  "Ana",
		Products:      []entities.Product{{Name: "Gás", Quantity: 1, Price: decimal.NewFromInt(100)}},
		PaymentMethod: entities.PaymentMethodFiado,
		TotalValue:    decimal.NewFromInt(100),
		PendingValue:  decimal.NewFromInt(100),
		PaymentStatus: entities.PaymentStatusPending,
		DueDate:       &due,
		Timestamp:     time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestOrderMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewOrderMemoryRepository()

	if _, err := r.Create(ctx, newFiado("o-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Create(ctx, newFiado("o-1")); !errors.Is(err, interfaces.ErrOrderAlreadyExists) {
		t.Fatalf("expected ErrOrderAlreadyExists, got %v", err)
	}

	got, err := r.GetByID(ctx, "o-1")
	if err != nil || got.ID != "o-1" {
		t.Fatalf("unexpected get result: %+v %v", got, err)
	}

	missing, err := r.GetByID(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero order, got %+v %v", missing, err)
	}
}

func TestOrderMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewOrderMemoryRepository()
	_, _ = r.Create(ctx, newFiado("o-1"))

	got, _ := r.GetByID(ctx, "o-1")
	got.Products[0].Name = "changed"
	*got.DueDate = time.Time{}

	again, _ := r.GetByID(ctx, "o-1")
	if again.Products[0].Name != "Gás" || again.DueDate.IsZero() {
		t.Fatalf("stored order was mutated: %+v", again)
	}
}

func TestOrderMemoryRepository_Lists(t *testing.T) {
	ctx := context.Background()
	r := NewOrderMemoryRepository()

	cash := newFiado("o-2")
	cash.PaymentMethod = entities.PaymentMethodDinheiro
	_, _ = r.Create(ctx, newFiado("o-1"))
	_, _ = r.Create(ctx, cash)
	_, _ = r.Create(ctx, newFiado("o-3"))

	all, _ := r.List(ctx)
	if len(all) != 3 || all[0].ID != "o-1" || all[1].ID != "o-2" || all[2].ID != "o-3" {
		t.Fatalf("expected insertion order, got %+v", all)
	}

	fiado, _ := r.ListByPaymentMethod(ctx, entities.PaymentMethodFiado)
	if len(fiado) != 2 || fiado[0].ID != "o-1" || fiado[1].ID != "o-3" {
		t.Fatalf("unexpected fiado list: %+v", fiado)
	}
}

func TestOrderMemoryRepository_MarkAsPaid(t *testing.T) {
	ctx := context.Background()
	r := NewOrderMemoryRepository()
	paidAt := time.Date(2024, 4, 20, 9, 0, 0, 0, time.UTC)

	cash := newFiado("o-cash")
	cash.PaymentMethod = entities.PaymentMethodPix
	_, _ = r.Create(ctx, cash)
	_, _ = r.Create(ctx, newFiado("o-1"))

	t.Run("missing order", func(t *testing.T) {
		got, err := r.MarkAsPaid(ctx, "nope", paidAt)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero order, got %+v %v", got, err)
		}
	})

	t.Run("not fiado", func(t *testing.T) {
		got, err := r.MarkAsPaid(ctx, "o-cash", paidAt)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero order, got %+v %v", got, err)
		}
	})

	t.Run("fiado", func(t *testing.T) {
		got, err := r.MarkAsPaid(ctx, "o-1", paidAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentMethod != entities.PaymentMethodPago || !got.PendingValue.IsZero() ||
			got.PaymentStatus != entities.PaymentStatusPaid || got.DueDate != nil ||
			got.PaymentDate == nil || !got.PaymentDate.Equal(paidAt) {
			t.Fatalf("unexpected paid order: %+v", got)
		}
		if !got.TotalValue.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("total value must not change, got %s", got.TotalValue)
		}

		again, err := r.MarkAsPaid(ctx, "o-1", paidAt)
		if err != nil || again.ID != "" {
			t.Fatalf("second settlement must be rejected, got %+v %v", again, err)
		}
	})
}
