package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOrderStatus values mirror the backend's stored labels.
type ServiceOrderStatus string

const (
	ServiceOrderStatusOpen      ServiceOrderStatus = "Aberta"
	ServiceOrderStatusCompleted ServiceOrderStatus = "Concluida"
	ServiceOrderStatusCanceled  ServiceOrderStatus = "Cancelada"
)

// ServiceOrder (OS) is an authorized unit of work billed to a customer.
//
// Core fields are immutable after creation; only the status moves, and both
// Concluida and Cancelada are terminal.
type ServiceOrder struct {
	ID           string             `json:"id"`
	Number       int64              `json:"number"`
	BudgetID     string             `json:"budget_id,omitempty"`
	CustomerID   string             `json:"customer_id"`
	VehicleID    string             `json:"vehicle_id"`
	Status       ServiceOrderStatus `json:"status"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	Receivables  []Receivable       `json:"receivables,omitempty"`
	CancelReason string             `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
	CanceledAt   *time.Time         `json:"canceled_at,omitempty"`
}

type ServiceOrderFilter struct {
	Status     ServiceOrderStatus
	CustomerID string
	Limit      int
	Offset     int
}
