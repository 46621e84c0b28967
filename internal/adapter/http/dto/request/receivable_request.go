package request

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrInvalidAmount = errors.New("amount must be a number or a string")

// AmountInput accepts 99.9, "99.90" or "99,90"; the use case parses it.
type AmountInput string

func (a *AmountInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = AmountInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrInvalidAmount
	}
	*a = AmountInput(n.String())
	return nil
}

type RegisterPaymentRequest struct {
	Amount        AmountInput `json:"amount" binding:"required"`
	PaymentMethod string      `json:"payment_method"`
}

// ChargeRequest wraps the raw Mercado Pago payment body.
//
// `mp_payload` is forwarded as-is to support varying Mercado Pago schemas.
type ChargeRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
