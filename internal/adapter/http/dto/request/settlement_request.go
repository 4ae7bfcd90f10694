package request

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrInvalidSettlementPayload = errors.New("invalid settlement payload")

// SettlementRequest is the optional envelope of POST /receivables/{id}/payments.
// Clients may also send the provider payload unwrapped.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
type SettlementRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ParseSettlementPayload extracts the provider payload from a request body.
// An empty body yields "{}".
func ParseSettlementPayload(raw []byte) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidSettlementPayload
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			wrapped = bytes.TrimSpace(wrapped)
			if len(wrapped) == 0 || string(wrapped) == "null" {
				return nil, ErrInvalidSettlementPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
