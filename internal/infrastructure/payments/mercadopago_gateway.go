package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	appconfig "mecanica_gestao/internal/infrastructure/config"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidProviderPaymentID        = errors.New("invalid provider payment id")
	ErrMockPaymentNotFound             = errors.New("mock payment not found")
)

// MercadoPagoGateway charges receivables through the Mercado Pago payments API.
// In mock mode every charge is approved locally and kept in memory.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool

	mu    sync.Mutex
	mocks map[string]json.RawMessage
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.PaymentsConfig) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		log.Info().Msg("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, mocks: map[string]json.RawMessage{}}, nil
	}

	if cfg.MercadoPagoAccessToken == "" {
		log.Warn().Msg("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	mpCfg, err := config.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(mpCfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}
	if g == nil || g.client == nil {
		log.Warn().Msg("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Info().Int("payload_len", len(requestPayload)).Msg("[payment][gateway] create start")

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Warn().Err(err).Msg("[payment][gateway] payload unmarshal failed")
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Info().Int("provider_payment_id", resp.ID).Str("provider_status", resp.Status).Msg("[payment][gateway] create success")
	return strconv.Itoa(resp.ID), resp.Status, b, nil
}

// GetPayment fetches the current provider status of a charge.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		g.mu.Lock()
		raw, ok := g.mocks[providerPaymentID]
		g.mu.Unlock()
		if !ok {
			return "", nil, ErrMockPaymentNotFound
		}
		return "approved", raw, nil
	}
	if g == nil || g.client == nil {
		return "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return "", nil, ErrInvalidProviderPaymentID
	}
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("provider_payment_id", providerPaymentID).Msg("[payment][gateway] sdk get failed")
		return "", nil, err
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", nil, err
	}
	return resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	log.Info().Int("payload_len", len(requestPayload)).Msg("[payment][gateway] mock create start")

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
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.mu.Lock()
	g.mocks[id] = b
	g.mu.Unlock()

	log.Info().Str("provider_payment_id", id).Msg("[payment][gateway] mock create success")
	return id, "approved", b, nil
}
