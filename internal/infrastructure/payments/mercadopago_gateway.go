package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	appconfig "gashub/internal/config"
	"gashub/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	log "github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidProviderPaymentID = errors.New("invalid mercado pago payment id")

// MercadoPagoGateway charges Pix and card payments through Mercado Pago.
// In mock mode no request leaves the process and every payment is approved.
type MercadoPagoGateway struct {
	client     payment.Client
	mockMode   bool
	payerEmail string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.PaymentsConfig) (*MercadoPagoGateway, error) {
	if cfg.GatewayMock {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	token := strings.TrimSpace(cfg.MercadoPagoAccessToken)
	if token == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(token)
	if err != nil {
		log.WithError(err).Error("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		client:     payment.NewClient(sdkCfg),
		payerEmail: strings.TrimSpace(cfg.TestPayerEmail),
	}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return mockPayment(requestPayload)
	}
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.WithError(err).Warn("[payment][gateway] payload unmarshal failed")
		return "", "", nil, err
	}
	g.applyPayerDefaults(&req)

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.WithError(err).Warn("[payment][gateway] sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	log.WithFields(log.Fields{
		"provider_payment_id": id,
		"provider_status":     resp.Status,
		"external_reference":  req.ExternalReference,
	}).Info("[payment][gateway] payment created")

	return id, resp.Status, b, nil
}

// GetPayment reads the current status of a payment created earlier.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return mockPaymentStatus(providerPaymentID)
	}
	if g == nil || g.client == nil {
		return "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		return "", nil, ErrInvalidProviderPaymentID
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.WithError(err).WithField("provider_payment_id", providerPaymentID).Warn("[payment][gateway] sdk get failed")
		return "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", nil, err
	}
	log.WithFields(log.Fields{
		"provider_payment_id": providerPaymentID,
		"provider_status":     resp.Status,
	}).Debug("[payment][gateway] payment status read")
	return resp.Status, b, nil
}

// applyPayerDefaults fills the sandbox payer when the request carries none.
func (g *MercadoPagoGateway) applyPayerDefaults(req *payment.Request) {
	if g.payerEmail == "" {
		return
	}
	if req.Payer == nil {
		req.Payer = &payment.PayerRequest{}
	}
	if req.Payer.Email == "" {
		req.Payer.Email = g.payerEmail
	}
}

func mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.WithField("provider_payment_id", id).Info("[payment][gateway] mock payment approved")
	return id, "approved", b, nil
}

func mockPaymentStatus(providerPaymentID string) (string, json.RawMessage, error) {
	b, err := json.Marshal(map[string]any{
		"id":            providerPaymentID,
		"status":        "approved",
		"status_detail": "accredited",
	})
	if err != nil {
		return "", nil, err
	}
	return "approved", b, nil
}
