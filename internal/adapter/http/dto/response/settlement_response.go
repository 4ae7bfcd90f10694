package response

import (
	"encoding/json"
	"time"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase"
	"gashub/pkg/format"
)

// SettlementResponse mirrors usecase.Settlement. Existing marks a charge sent
// earlier that is still open or was approved meanwhile; no new charge was made.
type SettlementResponse struct {
	Order             OrderResponse   `json:"order"`
	Settled           bool            `json:"settled"`
	Existing          bool            `json:"existing"`
	PaymentID         string          `json:"payment_id,omitempty"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	ProviderStatus    string          `json:"provider_status"`
	MPPayload         json.RawMessage `json:"mp_payload,omitempty"`
}

func FromSettlement(s usecase.Settlement, loc *time.Location) SettlementResponse {
	return SettlementResponse{
		Order:             FromOrder(s.Order, loc),
		Settled:           s.Settled,
		Existing:          s.Existing,
		PaymentID:         s.PaymentID,
		ProviderPaymentID: s.ProviderPaymentID,
		ProviderStatus:    s.ProviderStatus,
		MPPayload:         s.ProviderResponse,
	}
}

type PaymentResponse struct {
	ID                 string          `json:"id"`
	OrderID            string          `json:"order_id"`
	ProviderPaymentID  string          `json:"provider_payment_id"`
	ProviderStatus     string          `json:"provider_status"`
	Amount             string          `json:"amount"`
	AmountFormatted    string          `json:"amount_formatted"`
	CreatedAt          time.Time       `json:"created_at"`
	CreatedAtFormatted string          `json:"created_at_formatted"`
	UpdatedAt          time.Time       `json:"updated_at"`
	MPPayload          json.RawMessage `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.ReceivablePayment, loc *time.Location) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		OrderID:            p.OrderID,
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderStatus:     p.ProviderStatus,
		Amount:             p.Amount.StringFixed(2),
		AmountFormatted:    format.FormatBRL(p.Amount),
		CreatedAt:          p.CreatedAt,
		CreatedAtFormatted: format.FormatDateTime(p.CreatedAt, loc),
		UpdatedAt:          p.UpdatedAt,
		MPPayload:          p.ProviderResponse,
	}
}

func FromPayments(payments []entities.ReceivablePayment, loc *time.Location) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p, loc))
	}
	return out
}
