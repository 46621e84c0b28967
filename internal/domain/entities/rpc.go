package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Typed records for the backend stored procedures. Each request is validated
// with go-playground/validator tags before the call.

type ConvertBudgetRequest struct {
	BudgetID string `json:"budget_id" validate:"required,uuid"`
	UserID   string `json:"user_id,omitempty" validate:"omitempty,uuid"`
}

type ConvertBudgetResponse struct {
	ServiceOrderID string `json:"service_order_id"`
	OrderNumber    int64  `json:"order_number"`
}

type CancelOrderRequest struct {
	ServiceOrderID string `json:"service_order_id" validate:"required,uuid"`
	Reason         string `json:"reason" validate:"required,min=3,max=500"`
	UserID         string `json:"user_id,omitempty" validate:"omitempty,uuid"`
}

type CancelOrderResponse struct {
	ServiceOrderID string             `json:"service_order_id"`
	Status         ServiceOrderStatus `json:"status"`
}

// FinancialPayload describes how a finalized order is billed.
type FinancialPayload struct {
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=dinheiro pix cartao_credito cartao_debito boleto"`
	Installments  int             `json:"installments" validate:"required,min=1,max=24"`
	FirstDueDate  time.Time       `json:"first_due_date" validate:"required"`
	Discount      decimal.Decimal `json:"discount"`
}

type FinalizeBudgetRequest struct {
	BudgetID  string           `json:"budget_id" validate:"required,uuid"`
	UserID    string           `json:"user_id,omitempty" validate:"omitempty,uuid"`
	Financial FinancialPayload `json:"financial" validate:"required"`
}

type FinalizeBudgetResponse struct {
	ServiceOrderID string   `json:"service_order_id"`
	OrderNumber    int64    `json:"order_number"`
	ReceivableIDs  []string `json:"receivable_ids"`
}

type DateRangeRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
}

type DailySummaryRequest struct {
	Date time.Time `json:"date" validate:"required"`
}

// StockMetricsRequest carries no filters; the procedure still receives a jsonb argument.
type StockMetricsRequest struct{}
