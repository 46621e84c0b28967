package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the online payment provider (Mercado Pago).
//
// Receivables charged online keep the provider response payload for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
	GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, providerResponse json.RawMessage, err error)
}
