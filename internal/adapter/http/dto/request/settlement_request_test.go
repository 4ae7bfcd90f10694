package request

import (
	"errors"
	"testing"
)

func TestParseSettlementPayload(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		got, err := ParseSettlementPayload([]byte("  "))
		if err != nil || string(got) != "{}" {
			t.Fatalf("expected {}, got %s %v", got, err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := ParseSettlementPayload([]byte("{")); !errors.Is(err, ErrInvalidSettlementPayload) {
			t.Fatalf("expected ErrInvalidSettlementPayload, got %v", err)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		got, err := ParseSettlementPayload([]byte(`{"mp_payload":{"payment_method_id":"pix"}}`))
		if err != nil || string(got) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected payload: %s %v", got, err)
		}
	})

	t.Run("wrapped null", func(t *testing.T) {
		if _, err := ParseSettlementPayload([]byte(`{"mp_payload":null}`)); !errors.Is(err, ErrInvalidSettlementPayload) {
			t.Fatalf("expected ErrInvalidSettlementPayload, got %v", err)
		}
	})

	t.Run("raw", func(t *testing.T) {
		got, err := ParseSettlementPayload([]byte(`{"token":"card-token"}`))
		if err != nil || string(got) != `{"token":"card-token"}` {
			t.Fatalf("unexpected payload: %s %v", got, err)
		}
	})
}
