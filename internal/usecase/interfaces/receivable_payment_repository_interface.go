package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gashub/internal/domain/entities"
)

//go:generate mockgen -source=receivable_payment_repository_interface.go -destination=mocks/receivable_payment_repository_interface_mock.go -package=mock_interfaces

var ErrReceivablePaymentAlreadyExists = errors.New("receivable payment already exists")

// IReceivablePaymentRepository stores the provider charges made for fiado orders.
//
// GetByID and UpdateStatus report a missing record as a zero value with a nil
// error. ListByOrderID returns the oldest charge first.
type IReceivablePaymentRepository interface {
	Create(ctx context.Context, p entities.ReceivablePayment) (entities.ReceivablePayment, error)
	GetByID(ctx context.Context, id string) (entities.ReceivablePayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.ReceivablePayment, error)
	UpdateStatus(ctx context.Context, id string, status string, providerResponse json.RawMessage, at time.Time) (entities.ReceivablePayment, error)
}
