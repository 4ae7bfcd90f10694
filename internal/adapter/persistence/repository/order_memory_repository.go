package repository

import (
	"context"
	"sync"
	"time"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"
)

// OrderMemoryRepository keeps orders in process. It backs local runs and tests.
type OrderMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
	ids    []string
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{orders: make(map[string]entities.Order)}
}

func (r *OrderMemoryRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; ok {
		return entities.Order{}, interfaces.ErrOrderAlreadyExists
	}
	r.orders[o.ID] = cloneOrder(o)
	r.ids = append(r.ids, o.ID)
	return cloneOrder(o), nil
}

func (r *OrderMemoryRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	return cloneOrder(o), nil
}

func (r *OrderMemoryRepository) List(_ context.Context) ([]entities.Order, error) {
	return r.collect(func(entities.Order) bool { return true }), nil
}

func (r *OrderMemoryRepository) ListByPaymentMethod(_ context.Context, method entities.PaymentMethod) ([]entities.Order, error) {
	return r.collect(func(o entities.Order) bool { return o.PaymentMethod == method }), nil
}

func (r *OrderMemoryRepository) MarkAsPaid(_ context.Context, id string, paidAt time.Time) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok || o.PaymentMethod != entities.PaymentMethodFiado {
		return entities.Order{}, nil
	}
	updated := o.MarkedPaid(paidAt.UTC())
	r.orders[id] = updated
	return cloneOrder(updated), nil
}

// collect returns matching orders in insertion order.
func (r *OrderMemoryRepository) collect(keep func(entities.Order) bool) []entities.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Order, 0, len(r.ids))
	for _, id := range r.ids {
		if o := r.orders[id]; keep(o) {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

func cloneOrder(o entities.Order) entities.Order {
	if o.Products != nil {
		o.Products = append([]entities.Product(nil), o.Products...)
	}
	if o.DueDate != nil {
		d := *o.DueDate
		o.DueDate = &d
	}
	if o.PaymentDate != nil {
		p := *o.PaymentDate
		o.PaymentDate = &p
	}
	return o
}
