package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gashub/internal/adapter/http/handlers/mocks"
	"gashub/internal/adapter/http/middleware"
	"gashub/internal/domain/aggregator"
	"gashub/internal/domain/entities"
	"gashub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// closeNotifyRecorder lets gin's Context.Stream run against a recorder.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyRecorder() *closeNotifyRecorder {
	return &closeNotifyRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
}

func (r *closeNotifyRecorder) CloseNotify() <-chan bool { return r.closed }

func newOrderRouter(orders usecase.IOrderUseCase, views usecase.IOrderViewUseCase) *gin.Engine {
	h := NewOrderHandler(orders, views, time.UTC)
	r := gin.New()
	r.Use(middleware.Session(nil))
	r.POST("/v1/orders", h.CreateOrder)
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/stream", h.StreamOrders)
	r.GET("/v1/orders/:order_id", h.GetOrder)
	return r
}

const validOrderBody = `{
	"customer_name": "Maria",
	"address": "Rua A, 1",
	"products": [{"name": "Gás P13", "quantity": 1, "price": "R$ 110,00"}],
	"payment_method": "Pix"
}`

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newOrderRouter(mocks.NewMockIOrderUseCase(ctrl), mocks.NewMockIOrderViewUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newOrderRouter(mocks.NewMockIOrderUseCase(ctrl), mocks.NewMockIOrderViewUseCase(ctrl))

		body := strings.Replace(validOrderBody, `"Pix"`, `"Boleto"`, 1)
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "INVALID_ORDER_INPUT") {
			t.Fatalf("expected 400 INVALID_ORDER_INPUT, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc, mocks.NewMockIOrderViewUseCase(ctrl))

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrMissingDueDate)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(validOrderBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(uc, mocks.NewMockIOrderViewUseCase(ctrl))

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.NewOrder) (entities.Order, error) {
				if in.UserID != entities.AnonymousUserID || in.PaymentMethod != entities.PaymentMethodPix {
					t.Fatalf("unexpected input: %+v", in)
				}
				if len(in.Products) != 1 || !in.Products[0].Price.Equal(decimal.NewFromInt(110)) {
					t.Fatalf("unexpected products: %+v", in.Products)
				}
				return entities.Order{ID: "o-1", TotalValue: decimal.NewFromInt(110), PaymentMethod: in.PaymentMethod}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(validOrderBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "o-1" || body["total_value"] != "110.00" || body["total_value_formatted"] != "R$ 110,00" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := newOrderRouter(uc, mocks.NewMockIOrderViewUseCase(ctrl))

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)
	uc.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/o-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("query is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		views := mocks.NewMockIOrderViewUseCase(ctrl)
		r := newOrderRouter(mocks.NewMockIOrderUseCase(ctrl), views)

		views.EXPECT().ListOrders(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, spec entities.FilterSpec) (usecase.OrdersView, error) {
				if spec.DateRange != entities.DateRangeThisWeek || spec.Status != entities.StatusFilterCredit ||
					spec.CustomerName != "ana" || spec.SortBy != entities.SortByValue {
					t.Fatalf("unexpected spec: %+v", spec)
				}
				return usecase.OrdersView{View: aggregator.View{
					Orders:  []entities.Order{{ID: "o-1"}},
					Metrics: aggregator.Metrics{TotalOrders: 1, TotalValue: decimal.NewFromInt(50)},
				}}, nil
			},
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders?date_range=this_week&status=credit&customer=ana&sort_by=value", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"total_orders":1`) || !strings.Contains(w.Body.String(), `"total_value":"50.00"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newOrderRouter(mocks.NewMockIOrderUseCase(ctrl), mocks.NewMockIOrderViewUseCase(ctrl))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders?date_range=custom&start_date=ontem", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid filter value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		views := mocks.NewMockIOrderViewUseCase(ctrl)
		r := newOrderRouter(mocks.NewMockIOrderUseCase(ctrl), views)

		views.EXPECT().ListOrders(gomock.Any(), gomock.Any()).Return(usecase.OrdersView{}, usecase.ErrInvalidFilter)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders?status=late", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_StreamOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		views := mocks.NewMockIOrderViewUseCase(ctrl)
		r := newOrderRouter(mocks.NewMockIOrderUseCase(ctrl), views)

		ch := make(chan usecase.OrdersView, 2)
		ch <- usecase.OrdersView{View: aggregator.View{Orders: []entities.Order{{ID: "first"}}}}
		ch <- usecase.OrdersView{View: aggregator.View{Orders: []entities.Order{{ID: "second"}}}}
		close(ch)
		views.EXPECT().WatchOrders(gomock.Any(), gomock.Any()).Return(ch, nil)

		w := newCloseNotifyRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/stream", nil))

		body := w.Body.String()
		if w.Code != http.StatusOK || strings.Count(body, "event:orders") != 2 {
			t.Fatalf("expected two order events, got %d %q", w.Code, body)
		}
		if !strings.Contains(body, `"id":"first"`) || !strings.Contains(body, `"id":"second"`) {
			t.Fatalf("unexpected body: %q", body)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
			t.Fatalf("unexpected content type %q", ct)
		}
	})

	t.Run("feed unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		views := mocks.NewMockIOrderViewUseCase(ctrl)
		r := newOrderRouter(mocks.NewMockIOrderUseCase(ctrl), views)

		views.EXPECT().WatchOrders(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrFeedNotConfigured)

		w := newCloseNotifyRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/stream", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestMapOrderError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidOrderID, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrEmptyProducts, http.StatusBadRequest, "INVALID_ORDER_INPUT"},
		{usecase.ErrInvalidFilter, http.StatusBadRequest, "INVALID_FILTER"},
		{usecase.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND"},
		{usecase.ErrOrderNotOnCredit, http.StatusConflict, "ORDER_NOT_ON_CREDIT"},
		{usecase.ErrOrderAlreadyPaid, http.StatusConflict, "ORDER_ALREADY_PAID"},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway, "PAYMENT_PROVIDER_UNAUTHORIZED"},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable, "PAYMENT_PROVIDER_UNAVAILABLE"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		appErr := mapOrderError(tc.err)
		if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
			t.Fatalf("%v: expected %d %s, got %d %s", tc.err, tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
		}
	}
}
