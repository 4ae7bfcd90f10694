package handlers

import (
	"net/http"
	"strings"
	"time"

	"gashub/internal/adapter/http/dto/request"
	"gashub/internal/adapter/http/dto/response"
	"gashub/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ReceivablesHandler serves the fiado (accounts receivable) screen and its settlement actions.
type ReceivablesHandler struct {
	orders   usecase.IOrderUseCase
	views    usecase.IOrderViewUseCase
	location *time.Location
}

func NewReceivablesHandler(orders usecase.IOrderUseCase, views usecase.IOrderViewUseCase, loc *time.Location) *ReceivablesHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ReceivablesHandler{orders: orders, views: views, location: loc}
}

// ListReceivables godoc
// @Summary  List unpaid fiado orders
// @Tags     receivables
// @Produce  json
// @Param    customer  query     string  false  "Case-insensitive customer name fragment"
// @Success  200       {object}  response.ReceivablesViewResponse
// @Router   /receivables [get]
func (h *ReceivablesHandler) ListReceivables(c *gin.Context) {
	view, err := h.views.ListReceivables(c.Request.Context(), strings.TrimSpace(c.Query("customer")))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReceivablesView(view, h.location))
}

// StreamReceivables godoc
// @Summary  Stream unpaid fiado orders
// @Tags     receivables
// @Produce  text/event-stream
// @Param    customer  query     string  false  "Case-insensitive customer name fragment"
// @Success  200       {object}  response.ReceivablesViewResponse
// @Router   /receivables/stream [get]
func (h *ReceivablesHandler) StreamReceivables(c *gin.Context) {
	views, err := h.views.WatchReceivables(c.Request.Context(), strings.TrimSpace(c.Query("customer")))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	streamEvents(c, "receivables", views, func(v usecase.ReceivablesView) any {
		return response.FromReceivablesView(v, h.location)
	})
}

// MarkAsPaid godoc
// @Summary      Mark a fiado order as paid
// @Description  Irreversible. The order's method becomes Pago and nothing remains pending.
// @Tags         receivables
// @Produce      json
// @Param        order_id  path      string  true  "Order id"
// @Success      200       {object}  response.OrderResponse
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /receivables/{order_id}/paid [patch]
func (h *ReceivablesHandler) MarkAsPaid(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.orders.MarkAsPaid(c.Request.Context(), orderID)
	if err != nil {
		log.WithError(err).WithField("order_id", orderID).Info("[receivables][handler] mark as paid failed")
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order, h.location))
}

// SettleReceivable godoc
// @Summary      Charge a fiado order through Mercado Pago
// @Description  The body is a Mercado Pago payment request, raw or wrapped in mp_payload. The amount always comes from the order.
// @Tags         receivables
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                     true   "Order id"
// @Param        payment   body      request.SettlementRequest  false  "Provider payload"
// @Success      200       {object}  response.SettlementResponse
// @Success      202       {object}  response.SettlementResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /receivables/{order_id}/payments [post]
func (h *ReceivablesHandler) SettleReceivable(c *gin.Context) {
	orderID := c.Param("order_id")

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidPaymentBody.HTTPStatus, errInvalidPaymentBody.ToHTTPError())
		return
	}
	payload, err := request.ParseSettlementPayload(raw)
	if err != nil {
		log.WithError(err).WithField("order_id", orderID).Info("[receivables][handler] invalid payment payload")
		c.JSON(errInvalidPaymentBody.HTTPStatus, errInvalidPaymentBody.ToHTTPError())
		return
	}

	settlement, err := h.orders.SettleReceivable(c.Request.Context(), orderID, payload)
	if err != nil {
		log.WithError(err).WithField("order_id", orderID).Info("[receivables][handler] settlement failed")
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if !settlement.Settled {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromSettlement(settlement, h.location))
}

// ListPayments godoc
// @Summary  List the Mercado Pago charges sent for an order
// @Tags     receivables
// @Produce  json
// @Param    order_id  path      string  true  "Order id"
// @Success  200       {array}   response.PaymentResponse
// @Failure  404       {object}  pkg.HTTPError
// @Router   /receivables/{order_id}/payments [get]
func (h *ReceivablesHandler) ListPayments(c *gin.Context) {
	orderID := c.Param("order_id")

	payments, err := h.orders.ListPayments(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments, h.location))
}
