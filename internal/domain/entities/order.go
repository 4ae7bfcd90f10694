package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how the customer pays for an order.
//
// Wire values follow the mobile app that writes the same collection:
//   - Dinheiro (cash), Cartão (card), Pix
//   - Fiado: pay-later, the business extends credit to the customer
//   - Pago: written by the mark-as-paid mutation on a settled fiado order

type PaymentMethod string

const (
	PaymentMethodDinheiro PaymentMethod = "Dinheiro"
	PaymentMethodCartao   PaymentMethod = "Cartão"
	PaymentMethodPix      PaymentMethod = "Pix"
	PaymentMethodFiado    PaymentMethod = "Fiado"
	PaymentMethodPago     PaymentMethod = "Pago"
)

// IsSelectable reports whether the method can be chosen when an order is created.
func (m PaymentMethod) IsSelectable() bool {
	switch m {
	case PaymentMethodDinheiro, PaymentMethodCartao, PaymentMethodPix, PaymentMethodFiado:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// OrderStatus is the record status assigned on creation.
type OrderStatus string

const OrderStatusPendente OrderStatus = "pendente"

// AnonymousUserID identifies orders created without an authenticated session.
const AnonymousUserID = "anonymous"

type Product struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Subtotal is price × quantity for the line.
func (p Product) Subtotal() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Order is one customer transaction stored in the "pedidos" collection.
//
// Storage model (document stores):
//   - document id: ID
//   - field names in camelCase, amounts as decimal strings
//
// TotalValue is computed once on creation and never recomputed on read.
// PendingValue equals TotalValue while a fiado order is unpaid and is zero otherwise.
type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	Address       string          `json:"address"`
	Products      []Product       `json:"products"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	TotalValue    decimal.Decimal `json:"total_value"`
	PendingValue  decimal.Decimal `json:"pending_value"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Status        OrderStatus     `json:"status"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
	UserID        string          `json:"user_id"`
}

// IsCredit reports whether the order was sold fiado.
func (o Order) IsCredit() bool {
	return o.PaymentMethod == PaymentMethodFiado
}

// IsReceivable reports whether the order is an unpaid fiado order.
func (o Order) IsReceivable() bool {
	return o.IsCredit() && o.PaymentStatus != PaymentStatusPaid
}

// RelevantValue is the amount still relevant to the order: the outstanding
// pending value when there is one, the full total otherwise.
func (o Order) RelevantValue() decimal.Decimal {
	if !o.PendingValue.IsZero() {
		return o.PendingValue
	}
	return o.TotalValue
}

// MarkedPaid returns the order as it reads after a fiado settlement at paidAt:
// the method becomes Pago, nothing is pending and the due date is gone.
func (o Order) MarkedPaid(paidAt time.Time) Order {
	o.PaymentMethod = PaymentMethodPago
	o.PendingValue = decimal.Zero
	o.PaymentStatus = PaymentStatusPaid
	o.DueDate = nil
	o.PaymentDate = &paidAt
	return o
}
