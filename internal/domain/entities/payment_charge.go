package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ChargeStatus represents the payment provider outcome of an online charge.
type ChargeStatus string

const (
	ChargeStatusPending  ChargeStatus = "pendente"
	ChargeStatusApproved ChargeStatus = "aprovado"
	ChargeStatusDenied   ChargeStatus = "negado"
)

// PaymentCharge is an online charge of a receivable through Mercado Pago.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (receivable_id-index): receivable_id
//
// ProviderPayloadRaw keeps the provider response for traceability.
type PaymentCharge struct {
	ID                 string                 `json:"id"`
	ReceivableID       string                 `json:"receivable_id"`
	Amount             decimal.Decimal        `json:"amount"`
	Date               time.Time              `json:"date"`
	Status             ChargeStatus           `json:"status"`
	ProviderStatus     string                 `json:"provider_status"`
	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
