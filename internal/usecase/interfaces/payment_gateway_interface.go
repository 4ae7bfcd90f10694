package interfaces

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The order service uses it to charge the outstanding value of a fiado order
// when the customer settles it by Pix or card, and to poll a charge the
// provider has not decided yet.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
	GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, providerResponse json.RawMessage, err error)
}
