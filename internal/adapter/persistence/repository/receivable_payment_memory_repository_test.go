package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func newCharge(id, orderID, status string) entities.ReceivablePayment {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return entities.ReceivablePayment{
		ID:                id,
		OrderID:           orderID,
		ProviderPaymentID: "mp-" + id,
		ProviderStatus:    status,
		Amount:            decimal.RequireFromString("150.5"),
		CreatedAt:         created,
		UpdatedAt:         created,
		ProviderResponse:  json.RawMessage(`{"status":"` + status + `"}`),
	}
}

func TestReceivablePaymentMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewReceivablePaymentMemoryRepository()

	if _, err := r.Create(ctx, newCharge("p-1", "o-1", "in_process")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Create(ctx, newCharge("p-1", "o-1", "in_process")); !errors.Is(err, interfaces.ErrReceivablePaymentAlreadyExists) {
		t.Fatalf("expected ErrReceivablePaymentAlreadyExists, got %v", err)
	}

	got, err := r.GetByID(ctx, "p-1")
	if err != nil || got.ProviderPaymentID != "mp-p-1" || !got.Amount.Equal(decimal.RequireFromString("150.5")) {
		t.Fatalf("unexpected get result: %+v %v", got, err)
	}
	got.ProviderResponse[0] = 'x'
	again, _ := r.GetByID(ctx, "p-1")
	if string(again.ProviderResponse) != `{"status":"in_process"}` {
		t.Fatalf("stored payload was mutated: %s", again.ProviderResponse)
	}

	missing, err := r.GetByID(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero payment, got %+v %v", missing, err)
	}
}

func TestReceivablePaymentMemoryRepository_ListByOrderID(t *testing.T) {
	ctx := context.Background()
	r := NewReceivablePaymentMemoryRepository()
	_, _ = r.Create(ctx, newCharge("p-1", "o-1", "rejected"))
	_, _ = r.Create(ctx, newCharge("p-2", "o-2", "approved"))
	_, _ = r.Create(ctx, newCharge("p-3", "o-1", "in_process"))

	got, err := r.ListByOrderID(ctx, "o-1")
	if err != nil || len(got) != 2 || got[0].ID != "p-1" || got[1].ID != "p-3" {
		t.Fatalf("unexpected list: %+v %v", got, err)
	}

	none, err := r.ListByOrderID(ctx, "o-9")
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("expected empty list, got %+v %v", none, err)
	}
}

func TestReceivablePaymentMemoryRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	r := NewReceivablePaymentMemoryRepository()
	_, _ = r.Create(ctx, newCharge("p-1", "o-1", "in_process"))

	at := time.Date(2024, 6, 2, 9, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	updated, err := r.UpdateStatus(ctx, "p-1", "approved", json.RawMessage(`{"status":"approved"}`), at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ProviderStatus != "approved" || !updated.UpdatedAt.Equal(at) || updated.UpdatedAt.Location() != time.UTC {
		t.Fatalf("unexpected update: %+v", updated)
	}
	if !updated.CreatedAt.Equal(newCharge("p-1", "o-1", "").CreatedAt) {
		t.Fatalf("created_at changed: %v", updated.CreatedAt)
	}

	missing, err := r.UpdateStatus(ctx, "nope", "approved", nil, at)
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero payment, got %+v %v", missing, err)
	}
}
