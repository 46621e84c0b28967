package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionStatus string

const (
	CommissionStatusPending CommissionStatus = "Pendente"
	CommissionStatusPaid    CommissionStatus = "Paga"
)

// Commission is the share of a service order owed to the employee who did the work.
type Commission struct {
	ID             string           `json:"id"`
	EmployeeID     string           `json:"employee_id"`
	EmployeeName   string           `json:"employee_name,omitempty"`
	ServiceOrderID string           `json:"service_order_id"`
	Percentage     decimal.Decimal  `json:"percentage"`
	Amount         decimal.Decimal  `json:"amount"`
	Status         CommissionStatus `json:"status"`
	PaidAt         *time.Time       `json:"paid_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

type CommissionFilter struct {
	EmployeeID string
	Status     CommissionStatus
	Limit      int
	Offset     int
}
