package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	appconfig "mecanica_gestao/internal/infrastructure/config"
)

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{}); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_Mock(t *testing.T) {
	g, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{Mock: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":100,"external_reference":"rec-1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" || status != "approved" {
		t.Fatalf("unexpected result id=%q status=%q", id, status)
	}
	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp["external_reference"] != "rec-1" || resp["status_detail"] != "accredited" {
		t.Fatalf("unexpected response %v", resp)
	}

	got, _, err := g.GetPayment(context.Background(), id)
	if err != nil || got != "approved" {
		t.Fatalf("unexpected get result status=%q err=%v", got, err)
	}
	if _, _, err := g.GetPayment(context.Background(), "404"); !errors.Is(err, ErrMockPaymentNotFound) {
		t.Fatalf("expected ErrMockPaymentNotFound, got %v", err)
	}
}

func TestMercadoPagoGateway_NilIsNotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), nil); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
