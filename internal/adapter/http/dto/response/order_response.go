package response

import (
	"time"

	"gashub/internal/domain/entities"
	"gashub/pkg/format"
)

type ProductResponse struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	Price          string `json:"price"`
	PriceFormatted string `json:"price_formatted"`
}

// OrderResponse carries amounts as fixed two-decimal strings next to their
// pt-BR rendering, and dates both as RFC 3339 and as dd/mm/yyyy text.
// TimeFormatted is the hh:mm of Timestamp shown on the delivery cards.
type OrderResponse struct {
	ID                    string            `json:"id"`
	CustomerName          string            `json:"customer_name"`
	Address               string            `json:"address"`
	Products              []ProductResponse `json:"products"`
	PaymentMethod         string            `json:"payment_method"`
	TotalValue            string            `json:"total_value"`
	TotalValueFormatted   string            `json:"total_value_formatted"`
	PendingValue          string            `json:"pending_value"`
	PendingValueFormatted string            `json:"pending_value_formatted"`
	PaymentStatus         string            `json:"payment_status"`
	Status                string            `json:"status"`
	DueDate               *time.Time        `json:"due_date,omitempty"`
	DueDateFormatted      string            `json:"due_date_formatted,omitempty"`
	PaymentDate           *time.Time        `json:"payment_date,omitempty"`
	Timestamp             time.Time         `json:"timestamp"`
	TimestampFormatted    string            `json:"timestamp_formatted"`
	TimeFormatted         string            `json:"time_formatted"`
	UserID                string            `json:"user_id"`
}

func FromOrder(o entities.Order, loc *time.Location) OrderResponse {
	products := make([]ProductResponse, 0, len(o.Products))
	for _, p := range o.Products {
		products = append(products, ProductResponse{
			Name:           p.Name,
			Quantity:       p.Quantity,
			Price:          p.Price.StringFixed(2),
			PriceFormatted: format.FormatBRL(p.Price),
		})
	}

	res := OrderResponse{
		ID:                    o.ID,
		CustomerName:          o.CustomerName,
		Address:               o.Address,
		Products:              products,
		PaymentMethod:         string(o.PaymentMethod),
		TotalValue:            o.TotalValue.StringFixed(2),
		TotalValueFormatted:   format.FormatBRL(o.TotalValue),
		PendingValue:          o.PendingValue.StringFixed(2),
		PendingValueFormatted: format.FormatBRL(o.PendingValue),
		PaymentStatus:         string(o.PaymentStatus),
		Status:                string(o.Status),
		DueDate:               o.DueDate,
		PaymentDate:           o.PaymentDate,
		Timestamp:             o.Timestamp,
		TimestampFormatted:    format.FormatDateTime(o.Timestamp, loc),
		TimeFormatted:         format.FormatTime(o.Timestamp, loc),
		UserID:                o.UserID,
	}
	if o.DueDate != nil {
		res.DueDateFormatted = format.FormatDate(*o.DueDate, loc)
	}
	return res
}

func FromOrders(orders []entities.Order, loc *time.Location) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o, loc))
	}
	return out
}
