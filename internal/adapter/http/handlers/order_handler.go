package handlers

import (
	"net/http"
	"time"

	"gashub/internal/adapter/http/dto/request"
	"gashub/internal/adapter/http/dto/response"
	"gashub/internal/adapter/http/middleware"
	"gashub/internal/domain/entities"
	"gashub/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// OrderHandler serves order creation, lookup and the dashboard views.
type OrderHandler struct {
	orders   usecase.IOrderUseCase
	views    usecase.IOrderViewUseCase
	location *time.Location
}

func NewOrderHandler(orders usecase.IOrderUseCase, views usecase.IOrderViewUseCase, loc *time.Location) *OrderHandler {
	if loc == nil {
		loc = time.Local
	}
	return &OrderHandler{orders: orders, views: views, location: loc}
}

// CreateOrder godoc
// @Summary      Create an order
// @Description  Fiado orders require due_date and stay pending; every other method is paid on creation.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        order  body      request.OrderCreateRequest  true  "Order"
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      401    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.WithError(err).Info("[order][handler] invalid create payload")
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), payload.ToNewOrder(middleware.UserID(c)))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order, h.location))
}

// GetOrder godoc
// @Summary  Get an order
// @Tags     orders
// @Produce  json
// @Param    order_id  path      string  true  "Order id"
// @Success  200       {object}  response.OrderResponse
// @Failure  404       {object}  pkg.HTTPError
// @Router   /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order, h.location))
}

// ListOrders godoc
// @Summary      List orders with dashboard metrics
// @Description  Defaults to today's orders, newest first.
// @Tags         orders
// @Produce      json
// @Param        date_range  query     string  false  "today | this_week | this_month | custom | all"
// @Param        start_date  query     string  false  "YYYY-MM-DD or RFC 3339, custom range only"
// @Param        end_date    query     string  false  "YYYY-MM-DD or RFC 3339, custom range only"
// @Param        status      query     string  false  "all | paid | credit | pending"
// @Param        customer    query     string  false  "Case-insensitive customer name fragment"
// @Param        sort_by     query     string  false  "date | value | customerName"
// @Param        sort_order  query     string  false  "asc | desc"
// @Success      200         {object}  response.OrdersViewResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	spec, ok := h.bindFilter(c)
	if !ok {
		return
	}

	view, err := h.views.ListOrders(c.Request.Context(), spec)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrdersView(view, h.location))
}

// StreamOrders godoc
// @Summary      Stream the order dashboard
// @Description  Server-sent "orders" events, one per change in the collection. Accepts the same query as GET /orders.
// @Tags         orders
// @Produce      text/event-stream
// @Success      200  {object}  response.OrdersViewResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders/stream [get]
func (h *OrderHandler) StreamOrders(c *gin.Context) {
	spec, ok := h.bindFilter(c)
	if !ok {
		return
	}

	views, err := h.views.WatchOrders(c.Request.Context(), spec)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	streamEvents(c, "orders", views, func(v usecase.OrdersView) any {
		return response.FromOrdersView(v, h.location)
	})
}

func (h *OrderHandler) bindFilter(c *gin.Context) (entities.FilterSpec, bool) {
	var query request.OrderFilterRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidFilterQuery.HTTPStatus, errInvalidFilterQuery.ToHTTPError())
		return entities.FilterSpec{}, false
	}
	spec, err := query.ToFilterSpec(h.location)
	if err != nil {
		c.JSON(errInvalidFilterQuery.HTTPStatus, errInvalidFilterQuery.ToHTTPError())
		return entities.FilterSpec{}, false
	}
	return spec, true
}
