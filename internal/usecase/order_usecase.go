package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=order_usecase.go -destination=../adapter/http/handlers/mocks/order_usecase_mock.go -package=mocks

var (
	ErrInvalidOrderID              = errors.New("invalid order id")
	ErrOrderNotFound               = errors.New("order not found")
	ErrInvalidCustomerName         = errors.New("customer name is required")
	ErrInvalidAddress              = errors.New("address is required")
	ErrEmptyProducts               = errors.New("at least one product is required")
	ErrInvalidProduct              = errors.New("product needs a name and a quantity of at least 1")
	ErrInvalidProductPrice         = errors.New("product price must be greater than zero")
	ErrInvalidPaymentMethod        = errors.New("invalid payment method")
	ErrMissingDueDate              = errors.New("due date is required for fiado orders")
	ErrOrderNotOnCredit            = errors.New("order was not sold fiado")
	ErrOrderAlreadyPaid            = errors.New("order already paid")
	ErrInvalidPaymentPayload       = errors.New("invalid payment provider payload")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

// NewOrder is the input of CreateOrder. TotalValue is derived from Products.
type NewOrder struct {
	CustomerName  string
	Address       string
	Products      []entities.Product
	PaymentMethod entities.PaymentMethod
	DueDate       *time.Time
	UserID        string
}

// Settlement is the outcome of charging a receivable through the payment provider.
// Existing is set when a charge stored earlier was returned instead of a new one.
type Settlement struct {
	Order             entities.Order
	PaymentID         string
	ProviderPaymentID string
	ProviderStatus    string
	ProviderResponse  json.RawMessage
	Settled           bool
	Existing          bool
}

// IOrderUseCase covers every write on the order collection.
//
// Requested behavior:
//   - Non-fiado orders are paid on creation.
//   - Fiado orders stay pending until marked as paid, which happens once.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in NewOrder) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	MarkAsPaid(ctx context.Context, id string) (entities.Order, error)
	SettleReceivable(ctx context.Context, id string, providerPayload json.RawMessage) (Settlement, error)
	ListPayments(ctx context.Context, orderID string) ([]entities.ReceivablePayment, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	payments interfaces.IReceivablePaymentRepository
	notifier interfaces.IChangeNotifier
	gateway  interfaces.IPaymentGateway
	now      func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the use case. notifier and gateway may be nil.
func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	payments interfaces.IReceivablePaymentRepository,
	notifier interfaces.IChangeNotifier,
	gateway interfaces.IPaymentGateway,
) *OrderUseCase {
	return &OrderUseCase{repo: repo, payments: payments, notifier: notifier, gateway: gateway, now: time.Now}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, in NewOrder) (entities.Order, error) {
	o, err := u.buildOrder(in)
	if err != nil {
		log.WithError(err).WithField("payment_method", in.PaymentMethod).Info("[order][usecase] rejected new order")
		return entities.Order{}, err
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.WithError(err).WithField("order_id", o.ID).Error("[order][usecase] create failed")
		return entities.Order{}, err
	}
	log.WithFields(log.Fields{
		"order_id":       created.ID,
		"payment_method": created.PaymentMethod,
		"total_value":    created.TotalValue.String(),
		"user_id":        created.UserID,
	}).Info("[order][usecase] order created")

	u.notify(ctx, created.ID)
	return created, nil
}

func (u *OrderUseCase) buildOrder(in NewOrder) (entities.Order, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return entities.Order{}, ErrInvalidCustomerName
	}
	address := strings.TrimSpace(in.Address)
	if address == "" {
		return entities.Order{}, ErrInvalidAddress
	}
	if len(in.Products) == 0 {
		return entities.Order{}, ErrEmptyProducts
	}

	products := make([]entities.Product, 0, len(in.Products))
	total := decimal.Zero
	for _, p := range in.Products {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" || p.Quantity < 1 {
			return entities.Order{}, ErrInvalidProduct
		}
		if !p.Price.IsPositive() {
			return entities.Order{}, ErrInvalidProductPrice
		}
		products = append(products, p)
		total = total.Add(p.Subtotal())
	}

	if !in.PaymentMethod.IsSelectable() {
		return entities.Order{}, ErrInvalidPaymentMethod
	}

	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		userID = entities.AnonymousUserID
	}

	now := u.now().UTC()
	o := entities.Order{
		ID:            uuid.NewString(),
		CustomerName:  name,
		Address:       address,
		Products:      products,
		PaymentMethod: in.PaymentMethod,
		TotalValue:    total,
		PendingValue:  decimal.Zero,
		PaymentStatus: entities.PaymentStatusPaid,
		Status:        entities.OrderStatusPendente,
		Timestamp:     now,
		UserID:        userID,
	}

	if in.PaymentMethod == entities.PaymentMethodFiado {
		if in.DueDate == nil || in.DueDate.IsZero() {
			return entities.Order{}, ErrMissingDueDate
		}
		due := in.DueDate.UTC()
		o.DueDate = &due
		o.PendingValue = total
		o.PaymentStatus = entities.PaymentStatusPending
		return o, nil
	}

	o.PaymentDate = &now
	return o, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) MarkAsPaid(ctx context.Context, id string) (entities.Order, error) {
	current, err := u.loadReceivable(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	updated, err := u.settle(ctx, current.ID)
	if err != nil {
		return entities.Order{}, err
	}
	log.WithFields(log.Fields{
		"order_id":    updated.ID,
		"paid_amount": current.PendingValue.String(),
	}).Info("[order][usecase] fiado order marked as paid")
	return updated, nil
}

// SettleReceivable charges the pending value of a fiado order through the
// payment provider and marks the order paid once the provider approves it.
// The amount charged always comes from the stored order, never from the payload.
// While an earlier charge is still open at the provider no new charge is sent.
func (u *OrderUseCase) SettleReceivable(ctx context.Context, id string, providerPayload json.RawMessage) (Settlement, error) {
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	var req map[string]any
	if err := json.Unmarshal(providerPayload, &req); err != nil || req == nil {
		return Settlement{}, ErrInvalidPaymentPayload
	}

	current, err := u.loadReceivable(ctx, id)
	if err != nil {
		return Settlement{}, err
	}
	if u.gateway == nil {
		return Settlement{}, ErrPaymentGatewayNotConfigured
	}

	logger := log.WithField("order_id", current.ID)

	prior, err := u.pendingCharge(ctx, current.ID)
	if err != nil {
		return Settlement{}, err
	}
	if prior.ID != "" {
		logger.WithFields(log.Fields{
			"payment_id":      prior.ID,
			"provider_status": prior.ProviderStatus,
		}).Info("[order][usecase] reusing stored charge")
		return u.conclude(ctx, current, prior, true)
	}

	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = current.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Pedido %s - %s", current.ID, current.CustomerName)
	}
	if !hasNonEmptyString(req, "payment_method_id") {
		req["payment_method_id"] = "pix"
	}
	req["transaction_amount"] = current.PendingValue.InexactFloat64()

	payload, err := json.Marshal(req)
	if err != nil {
		return Settlement{}, err
	}

	logger.WithField("amount", current.PendingValue.String()).Info("[order][usecase] charging receivable")

	paymentID, status, resp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		logger.WithError(err).Warn("[order][usecase] payment gateway failed")
		switch {
		case isGatewayUnauthorized(err):
			return Settlement{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return Settlement{}, ErrPaymentGatewayBadRequest
		}
		return Settlement{}, err
	}

	now := u.now().UTC()
	record := entities.ReceivablePayment{
		ID:                uuid.NewString(),
		OrderID:           current.ID,
		ProviderPaymentID: paymentID,
		ProviderStatus:    status,
		Amount:            current.PendingValue,
		CreatedAt:         now,
		UpdatedAt:         now,
		ProviderResponse:  resp,
	}
	if u.payments != nil {
		stored, err := u.payments.Create(ctx, record)
		if err != nil {
			// The provider already holds the charge; the response must still reach the caller.
			logger.WithError(err).WithField("provider_payment_id", paymentID).Error("[order][usecase] failed to store charge")
		} else if stored.ID != "" {
			record = stored
		}
	}

	return u.conclude(ctx, current, record, false)
}

// ListPayments returns every charge stored for a receivable, oldest first.
func (u *OrderUseCase) ListPayments(ctx context.Context, orderID string) ([]entities.ReceivablePayment, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if u.payments == nil {
		return []entities.ReceivablePayment{}, nil
	}
	payments, err := u.payments.ListByOrderID(ctx, o.ID)
	if err != nil {
		log.WithError(err).WithField("order_id", o.ID).Error("[order][usecase] list payments failed")
		return nil, err
	}
	if payments == nil {
		payments = []entities.ReceivablePayment{}
	}
	return payments, nil
}

// pendingCharge returns the newest stored charge that blocks a new one: an
// approved charge, or one still open after asking the provider for its status.
// It returns a zero value when a new charge may be sent.
func (u *OrderUseCase) pendingCharge(ctx context.Context, orderID string) (entities.ReceivablePayment, error) {
	if u.payments == nil {
		return entities.ReceivablePayment{}, nil
	}
	payments, err := u.payments.ListByOrderID(ctx, orderID)
	if err != nil {
		log.WithError(err).WithField("order_id", orderID).Error("[order][usecase] list payments failed")
		return entities.ReceivablePayment{}, err
	}

	for i := len(payments) - 1; i >= 0; i-- {
		p := payments[i]
		if p.IsApproved() {
			return p, nil
		}
		if !p.IsOpen() {
			continue
		}

		status, resp, err := u.gateway.GetPayment(ctx, p.ProviderPaymentID)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"order_id":            orderID,
				"provider_payment_id": p.ProviderPaymentID,
			}).Warn("[order][usecase] could not refresh charge status")
			return p, nil
		}
		if status != p.ProviderStatus {
			updated, err := u.payments.UpdateStatus(ctx, p.ID, status, resp, u.now().UTC())
			if err != nil {
				return entities.ReceivablePayment{}, err
			}
			if updated.ID != "" {
				p = updated
			} else {
				p.ProviderStatus = status
				p.ProviderResponse = resp
			}
		}
		if p.IsApproved() || p.IsOpen() {
			return p, nil
		}
	}
	return entities.ReceivablePayment{}, nil
}

// conclude settles the order when the charge is approved.
func (u *OrderUseCase) conclude(ctx context.Context, current entities.Order, p entities.ReceivablePayment, existing bool) (Settlement, error) {
	logger := log.WithFields(log.Fields{
		"order_id":            current.ID,
		"provider_payment_id": p.ProviderPaymentID,
	})
	result := Settlement{
		Order:             current,
		PaymentID:         p.ID,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
		ProviderResponse:  p.ProviderResponse,
		Existing:          existing,
	}
	if !p.IsApproved() {
		logger.WithField("provider_status", p.ProviderStatus).Info("[order][usecase] payment not approved yet")
		return result, nil
	}

	updated, err := u.settle(ctx, current.ID)
	if err != nil {
		logger.WithError(err).Error("[order][usecase] payment approved but order not settled")
		return Settlement{}, err
	}
	result.Order = updated
	result.Settled = true
	logger.Info("[order][usecase] receivable settled")
	return result, nil
}

// loadReceivable returns the order id refers to when it is an unpaid fiado order.
func (u *OrderUseCase) loadReceivable(ctx context.Context, id string) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	switch {
	case o.PaymentMethod == entities.PaymentMethodPago:
		return entities.Order{}, ErrOrderAlreadyPaid
	case o.PaymentMethod != entities.PaymentMethodFiado:
		return entities.Order{}, ErrOrderNotOnCredit
	case o.PaymentStatus == entities.PaymentStatusPaid:
		return entities.Order{}, ErrOrderAlreadyPaid
	}
	return o, nil
}

func (u *OrderUseCase) settle(ctx context.Context, id string) (entities.Order, error) {
	updated, err := u.repo.MarkAsPaid(ctx, id, u.now().UTC())
	if err != nil {
		log.WithError(err).WithField("order_id", id).Error("[order][usecase] mark as paid failed")
		return entities.Order{}, err
	}
	if updated.ID == "" {
		// Another writer settled it between the read and the conditional update.
		return entities.Order{}, ErrOrderAlreadyPaid
	}
	u.notify(ctx, updated.ID)
	return updated, nil
}

func (u *OrderUseCase) notify(ctx context.Context, id string) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.OrdersChanged(ctx, id); err != nil {
		log.WithError(err).WithField("order_id", id).Warn("[order][usecase] change notification failed")
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
