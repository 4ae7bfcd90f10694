package interfaces

import (
	"context"
	"errors"
	"time"

	"gashub/internal/domain/entities"
)

// ErrOrderAlreadyExists is returned by Create when the id is taken.
var ErrOrderAlreadyExists = errors.New("order already exists")

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_interface_mock.go -package=mock_interfaces

// IOrderRepository abstracts the document store holding the "pedidos" collection.
//
// Lookups follow the same convention for every backend: a missing document is
// reported as a zero Order (empty ID) and a nil error.
//   - MarkAsPaid only transitions fiado orders; otherwise it returns a zero Order.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListByPaymentMethod(ctx context.Context, method entities.PaymentMethod) ([]entities.Order, error)
	MarkAsPaid(ctx context.Context, id string, paidAt time.Time) (entities.Order, error)
}
