package routes

import (
	"gashub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders      = "/orders"
	PathReceivables = "/receivables"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/stream", orderHandler.StreamOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
	}
}

func addReceivablesRoutes(rg *gin.RouterGroup, receivablesHandler *handlers.ReceivablesHandler) {
	receivables := rg.Group(PathReceivables)
	{
		receivables.GET("", receivablesHandler.ListReceivables)
		receivables.GET("/stream", receivablesHandler.StreamReceivables)
		receivables.PATCH("/:order_id/paid", receivablesHandler.MarkAsPaid)
		receivables.POST("/:order_id/payments", receivablesHandler.SettleReceivable)
		receivables.GET("/:order_id/payments", receivablesHandler.ListPayments)
	}
}
