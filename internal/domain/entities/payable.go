package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayableStatus string

const (
	PayableStatusPending PayableStatus = "Pendente"
	PayableStatusPaid    PayableStatus = "Pago"
	PayableStatusOverdue PayableStatus = "Atrasado"
)

// Payable (conta a pagar) is money the shop owes a supplier.
type Payable struct {
	ID          string          `json:"id"`
	Supplier    string          `json:"supplier"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Status      PayableStatus   `json:"status"`
	DueDate     time.Time       `json:"due_date"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type PayableFilter struct {
	Status  PayableStatus
	DueFrom *time.Time
	DueTo   *time.Time
	Limit   int
	Offset  int
}
