package response

import (
	"time"

	"mecanica_gestao/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentChargeResponse struct {
	ChargeID       string          `json:"charge_id"`
	ID             string          `json:"id"`
	ReceivableID   string          `json:"receivable_id"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentDate    time.Time       `json:"payment_date"`
	Status         string          `json:"status"`
	ProviderStatus string          `json:"provider_status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPaymentCharge(p entities.PaymentCharge) PaymentChargeResponse {
	return PaymentChargeResponse{
		ChargeID:       p.ID,
		ID:             p.ID,
		ReceivableID:   p.ReceivableID,
		Amount:         p.Amount,
		PaymentDate:    p.Date,
		Status:         string(p.Status),
		ProviderStatus: p.ProviderStatus,
		MPPayloadRaw:   string(p.ProviderPayloadRaw),
		MPPayload:      p.ProviderPayload,
	}
}

func FromPaymentCharges(list []entities.PaymentCharge) []PaymentChargeResponse {
	out := make([]PaymentChargeResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPaymentCharge(p))
	}
	return out
}
