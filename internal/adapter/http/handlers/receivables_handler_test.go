package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gashub/internal/adapter/http/handlers/mocks"
	"gashub/internal/domain/entities"
	"gashub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newReceivablesRouter(orders usecase.IOrderUseCase, views usecase.IOrderViewUseCase) *gin.Engine {
	h := NewReceivablesHandler(orders, views, time.UTC)
	r := gin.New()
	r.GET("/v1/receivables", h.ListReceivables)
	r.GET("/v1/receivables/stream", h.StreamReceivables)
	r.PATCH("/v1/receivables/:order_id/paid", h.MarkAsPaid)
	r.POST("/v1/receivables/:order_id/payments", h.SettleReceivable)
	r.GET("/v1/receivables/:order_id/payments", h.ListPayments)
	return r
}

func TestReceivablesHandler_ListReceivables(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	views := mocks.NewMockIOrderViewUseCase(ctrl)
	r := newReceivablesRouter(mocks.NewMockIOrderUseCase(ctrl), views)

	views.EXPECT().ListReceivables(gomock.Any(), "joão").Return(usecase.ReceivablesView{
		Orders: []entities.Order{
			{ID: "a", PaymentMethod: entities.PaymentMethodFiado, PendingValue: decimal.NewFromInt(30)},
			{ID: "b", PaymentMethod: entities.PaymentMethodFiado, PendingValue: decimal.NewFromInt(20)},
		},
		Total: decimal.NewFromInt(50),
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/receivables?customer=+jo%C3%A3o+", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["count"] != float64(2) || body["total"] != "50.00" || body["total_formatted"] != "R$ 50,00" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestReceivablesHandler_StreamReceivables(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	views := mocks.NewMockIOrderViewUseCase(ctrl)
	r := newReceivablesRouter(mocks.NewMockIOrderUseCase(ctrl), views)

	ch := make(chan usecase.ReceivablesView, 1)
	ch <- usecase.ReceivablesView{Total: decimal.NewFromInt(12)}
	close(ch)
	views.EXPECT().WatchReceivables(gomock.Any(), "").Return(ch, nil)

	w := newCloseNotifyRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/receivables/stream", nil))

	body := w.Body.String()
	if !strings.Contains(body, "event:receivables") || !strings.Contains(body, `"total":"12.00"`) {
		t.Fatalf("unexpected stream: %q", body)
	}
}

func TestReceivablesHandler_MarkAsPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", usecase.ErrOrderNotFound, http.StatusNotFound},
		{"not fiado", usecase.ErrOrderNotOnCredit, http.StatusConflict},
		{"already paid", usecase.ErrOrderAlreadyPaid, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIOrderUseCase(ctrl)
			r := newReceivablesRouter(uc, mocks.NewMockIOrderViewUseCase(ctrl))

			uc.EXPECT().MarkAsPaid(gomock.Any(), "o-1").Return(entities.Order{}, tc.err)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/receivables/o-1/paid", nil))
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newReceivablesRouter(uc, mocks.NewMockIOrderViewUseCase(ctrl))

		paidAt := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
		order := entities.Order{ID: "o-1", TotalValue: decimal.NewFromInt(80)}.MarkedPaid(paidAt)
		uc.EXPECT().MarkAsPaid(gomock.Any(), "o-1").Return(order, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/receivables/o-1/paid", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_method"] != "Pago" || body["pending_value"] != "0.00" || body["payment_status"] != "paid" {
			t.Fatalf("unexpected body: %v", body)
		}
		if _, ok := body["due_date"]; ok {
			t.Fatalf("due_date should be cleared: %v", body)
		}
	})
}

func TestReceivablesHandler_SettleReceivable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newReceivablesRouter(mocks.NewMockIOrderUseCase(ctrl), mocks.NewMockIOrderViewUseCase(ctrl))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/receivables/o-1/payments", bytes.NewBufferString("{")))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrapped payload is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newReceivablesRouter(uc, mocks.NewMockIOrderViewUseCase(ctrl))

		uc.EXPECT().SettleReceivable(gomock.Any(), "o-1", json.RawMessage(`{"payment_method_id":"pix"}`)).
			Return(usecase.Settlement{
				Order:             entities.Order{ID: "o-1"}.MarkedPaid(time.Now()),
				ProviderPaymentID: "123",
				ProviderStatus:    "approved",
				Settled:           true,
			}, nil)

		body := `{"mp_payload":{"payment_method_id":"pix"}}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/receivables/o-1/payments", bytes.NewBufferString(body)))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"provider_payment_id":"123"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not approved yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newReceivablesRouter(uc, mocks.NewMockIOrderViewUseCase(ctrl))

		uc.EXPECT().SettleReceivable(gomock.Any(), "o-1", json.RawMessage("{}")).
			Return(usecase.Settlement{Order: entities.Order{ID: "o-1"}, ProviderStatus: "pending"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/receivables/o-1/payments", nil))
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	t.Run("open charge is returned again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newReceivablesRouter(uc, mocks.NewMockIOrderViewUseCase(ctrl))

		uc.EXPECT().SettleReceivable(gomock.Any(), "o-1", gomock.Any()).
			Return(usecase.Settlement{
				Order:             entities.Order{ID: "o-1"},
				PaymentID:         "p-1",
				ProviderPaymentID: "mp-1",
				ProviderStatus:    "in_process",
				Existing:          true,
			}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/receivables/o-1/payments", bytes.NewBufferString(`{}`)))
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["existing"] != true || body["payment_id"] != "p-1" || body["provider_payment_id"] != "mp-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("unknown order without a gateway is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newReceivablesRouter(uc, mocks.NewMockIOrderViewUseCase(ctrl))

		uc.EXPECT().SettleReceivable(gomock.Any(), "missing", gomock.Any()).
			Return(usecase.Settlement{}, usecase.ErrOrderNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/receivables/missing/payments", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newReceivablesRouter(uc, mocks.NewMockIOrderViewUseCase(ctrl))

		uc.EXPECT().SettleReceivable(gomock.Any(), "o-1", gomock.Any()).
			Return(usecase.Settlement{}, usecase.ErrPaymentGatewayUnauthorized)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/receivables/o-1/payments", bytes.NewBufferString(`{}`)))
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestReceivablesHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newReceivablesRouter(uc, mocks.NewMockIOrderViewUseCase(ctrl))

		uc.EXPECT().ListPayments(gomock.Any(), "o-9").Return(nil, usecase.ErrOrderNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/receivables/o-9/payments", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("lists charges", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newReceivablesRouter(uc, mocks.NewMockIOrderViewUseCase(ctrl))

		uc.EXPECT().ListPayments(gomock.Any(), "o-1").Return([]entities.ReceivablePayment{
			{ID: "p-1", OrderID: "o-1", ProviderPaymentID: "mp-1", ProviderStatus: "rejected", Amount: decimal.NewFromInt(80)},
			{ID: "p-2", OrderID: "o-1", ProviderPaymentID: "mp-2", ProviderStatus: "in_process", Amount: decimal.NewFromInt(80)},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/receivables/o-1/payments", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 2 || body[1]["provider_payment_id"] != "mp-2" || body[0]["amount_formatted"] != "R$ 80,00" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
