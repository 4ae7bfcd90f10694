package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"
)

type ReceivablePaymentMemoryRepository struct {
	mu       sync.RWMutex
	payments map[string]entities.ReceivablePayment
	ids      []string
}

var _ interfaces.IReceivablePaymentRepository = (*ReceivablePaymentMemoryRepository)(nil)

func NewReceivablePaymentMemoryRepository() *ReceivablePaymentMemoryRepository {
	return &ReceivablePaymentMemoryRepository{payments: make(map[string]entities.ReceivablePayment)}
}

func (r *ReceivablePaymentMemoryRepository) Create(_ context.Context, p entities.ReceivablePayment) (entities.ReceivablePayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.payments[p.ID]; ok {
		return entities.ReceivablePayment{}, interfaces.ErrReceivablePaymentAlreadyExists
	}
	r.payments[p.ID] = clonePayment(p)
	r.ids = append(r.ids, p.ID)
	return clonePayment(p), nil
}

func (r *ReceivablePaymentMemoryRepository) GetByID(_ context.Context, id string) (entities.ReceivablePayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return clonePayment(r.payments[id]), nil
}

// ListByOrderID keeps insertion order, which is creation order.
func (r *ReceivablePaymentMemoryRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.ReceivablePayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.ReceivablePayment, 0)
	for _, id := range r.ids {
		if p := r.payments[id]; p.OrderID == orderID {
			out = append(out, clonePayment(p))
		}
	}
	return out, nil
}

func (r *ReceivablePaymentMemoryRepository) UpdateStatus(_ context.Context, id string, status string, providerResponse json.RawMessage, at time.Time) (entities.ReceivablePayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.payments[id]
	if !ok {
		return entities.ReceivablePayment{}, nil
	}
	p.ProviderStatus = status
	p.ProviderResponse = append(json.RawMessage(nil), providerResponse...)
	p.UpdatedAt = at.UTC()
	r.payments[id] = p
	return clonePayment(p), nil
}

func clonePayment(p entities.ReceivablePayment) entities.ReceivablePayment {
	if p.ProviderResponse != nil {
		p.ProviderResponse = append(json.RawMessage(nil), p.ProviderResponse...)
	}
	return p
}
