package repository

import (
	"encoding/json"

	"gashub/internal/domain/entities"
)

// Field names of a receivable payment document.
const (
	fieldPaymentOrderID          = "orderId"
	fieldPaymentProviderID       = "providerPaymentId"
	fieldPaymentProviderStatus   = "providerStatus"
	fieldPaymentAmount           = "amount"
	fieldPaymentCreatedAt        = "createdAt"
	fieldPaymentUpdatedAt        = "updatedAt"
	fieldPaymentProviderResponse = "providerResponse"
)

// paymentToDocument builds the stored form of p without its id. The provider
// body is kept as JSON text so every store can hold it unchanged.
func paymentToDocument(p entities.ReceivablePayment) map[string]any {
	doc := map[string]any{
		fieldPaymentOrderID:        p.OrderID,
		fieldPaymentProviderID:     p.ProviderPaymentID,
		fieldPaymentProviderStatus: p.ProviderStatus,
		fieldPaymentAmount:         p.Amount.String(),
		fieldPaymentCreatedAt:      p.CreatedAt.UTC(),
		fieldPaymentUpdatedAt:      p.UpdatedAt.UTC(),
	}
	if len(p.ProviderResponse) > 0 {
		doc[fieldPaymentProviderResponse] = string(p.ProviderResponse)
	}
	return doc
}

func paymentFromDocument(id string, doc map[string]any) entities.ReceivablePayment {
	p := entities.ReceivablePayment{
		ID:                id,
		OrderID:           coerceString(doc[fieldPaymentOrderID]),
		ProviderPaymentID: coerceString(doc[fieldPaymentProviderID]),
		ProviderStatus:    coerceString(doc[fieldPaymentProviderStatus]),
		Amount:            coerceAmount(doc[fieldPaymentAmount]),
		CreatedAt:         coerceTime(doc[fieldPaymentCreatedAt]),
		UpdatedAt:         coerceTime(doc[fieldPaymentUpdatedAt]),
	}
	if raw := coerceString(doc[fieldPaymentProviderResponse]); raw != "" && json.Valid([]byte(raw)) {
		p.ProviderResponse = json.RawMessage(raw)
	}
	return p
}
