package response

import (
	"time"

	"gashub/internal/domain/aggregator"
	"gashub/internal/usecase"
	"gashub/pkg/format"
)

type MetricsResponse struct {
	TotalOrders                int    `json:"total_orders"`
	TotalValue                 string `json:"total_value"`
	TotalValueFormatted        string `json:"total_value_formatted"`
	AverageOrderValue          string `json:"average_order_value"`
	AverageOrderValueFormatted string `json:"average_order_value_formatted"`
	CreditCount                int    `json:"credit_count"`
	PaidCount                  int    `json:"paid_count"`
	ConversionRate             string `json:"conversion_rate"`
}

type OrdersViewResponse struct {
	Orders      []OrderResponse `json:"orders"`
	Metrics     MetricsResponse `json:"metrics"`
	GeneratedAt time.Time       `json:"generated_at"`
}

type ReceivablesViewResponse struct {
	Orders         []OrderResponse `json:"orders"`
	Count          int             `json:"count"`
	Total          string          `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

func FromMetrics(m aggregator.Metrics) MetricsResponse {
	return MetricsResponse{
		TotalOrders:                m.TotalOrders,
		TotalValue:                 m.TotalValue.StringFixed(2),
		TotalValueFormatted:        format.FormatBRL(m.TotalValue),
		AverageOrderValue:          m.AverageOrderValue.StringFixed(2),
		AverageOrderValueFormatted: format.FormatBRL(m.AverageOrderValue),
		CreditCount:                m.CreditCount,
		PaidCount:                  m.PaidCount,
		ConversionRate:             m.ConversionRate.StringFixed(2),
	}
}

func FromOrdersView(v usecase.OrdersView, loc *time.Location) OrdersViewResponse {
	return OrdersViewResponse{
		Orders:      FromOrders(v.Orders, loc),
		Metrics:     FromMetrics(v.Metrics),
		GeneratedAt: v.GeneratedAt,
	}
}

func FromReceivablesView(v usecase.ReceivablesView, loc *time.Location) ReceivablesViewResponse {
	return ReceivablesViewResponse{
		Orders:         FromOrders(v.Orders, loc),
		Count:          len(v.Orders),
		Total:          v.Total.StringFixed(2),
		TotalFormatted: format.FormatBRL(v.Total),
		GeneratedAt:    v.GeneratedAt,
	}
}
