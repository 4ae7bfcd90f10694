package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Provider statuses a receivable payment can report (Mercado Pago vocabulary).
const (
	ProviderStatusPending     = "pending"
	ProviderStatusInProcess   = "in_process"
	ProviderStatusAuthorized  = "authorized"
	ProviderStatusInMediation = "in_mediation"
	ProviderStatusApproved    = "approved"
)

// ReceivablePayment is one charge sent to the payment provider to settle a
// fiado order. Every charge is stored, whatever the provider answered.
//
// Storage model:
//   - document id: ID
//   - secondary lookup by OrderID
//
// ProviderResponse keeps the provider body as returned, for audit.
type ReceivablePayment struct {
	ID                string          `json:"id"`
	OrderID           string          `json:"order_id"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	ProviderStatus    string          `json:"provider_status"`
	Amount            decimal.Decimal `json:"amount"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	ProviderResponse  json.RawMessage `json:"provider_response,omitempty"`
}

func (p ReceivablePayment) IsApproved() bool {
	return p.ProviderStatus == ProviderStatusApproved
}

// IsOpen reports whether the provider may still approve the charge.
func (p ReceivablePayment) IsOpen() bool {
	switch p.ProviderStatus {
	case ProviderStatusPending, ProviderStatusInProcess, ProviderStatusAuthorized, ProviderStatusInMediation:
		return true
	}
	return false
}
