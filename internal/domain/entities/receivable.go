package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReceivableStatus string

const (
	ReceivableStatusPending ReceivableStatus = "Pendente"
	ReceivableStatusPaid    ReceivableStatus = "Pago"
	ReceivableStatusOverdue ReceivableStatus = "Atrasado"
)

// Receivable (conta a receber) is money owed by a customer. Partial payments
// are recorded as installments.
type Receivable struct {
	ID             string           `json:"id"`
	CustomerID     string           `json:"customer_id"`
	ServiceOrderID string           `json:"service_order_id,omitempty"`
	Description    string           `json:"description"`
	Amount         decimal.Decimal  `json:"amount"`
	NetAmount      decimal.Decimal  `json:"net_amount"`
	Status         ReceivableStatus `json:"status"`
	DueDate        time.Time        `json:"due_date"`
	PaidAt         *time.Time       `json:"paid_at,omitempty"`
	Installments   []Installment    `json:"installments,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// Installment (parcela) is a child of a receivable with its own due date and status.
type Installment struct {
	ID            string           `json:"id"`
	ReceivableID  string           `json:"receivable_id"`
	Number        int              `json:"number"`
	Amount        decimal.Decimal  `json:"amount"`
	DueDate       time.Time        `json:"due_date"`
	Status        ReceivableStatus `json:"status"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	PaidAt        *time.Time       `json:"paid_at,omitempty"`
}

// PaymentRegistration is a single proposed payment against a receivable.
type PaymentRegistration struct {
	ReceivableID  string          `json:"receivable_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaidAt        time.Time       `json:"paid_at"`
	RegisteredBy  string          `json:"registered_by,omitempty"`
}

type ReceivableFilter struct {
	Status     ReceivableStatus
	CustomerID string
	DueFrom    *time.Time
	DueTo      *time.Time
	Limit      int
	Offset     int
}
