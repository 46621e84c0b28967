package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Domain notes:
//   - Only an approved budget may be converted into a service order.
//   - Converted is terminal; the conversion itself happens in the backend RPC.
type BudgetStatus string

const (
	BudgetStatusDraft     BudgetStatus = "draft"
	BudgetStatusPending   BudgetStatus = "pending"
	BudgetStatusApproved  BudgetStatus = "approved"
	BudgetStatusRejected  BudgetStatus = "rejected"
	BudgetStatusConverted BudgetStatus = "converted"
)

func (s BudgetStatus) IsValid() bool {
	switch s {
	case BudgetStatusDraft, BudgetStatusPending, BudgetStatusApproved, BudgetStatusRejected, BudgetStatusConverted:
		return true
	}
	return false
}

type BudgetItemType string

const (
	BudgetItemProduct BudgetItemType = "product"
	BudgetItemService BudgetItemType = "service"
)

// BudgetItem is one line of a budget. Product lines reference a stock-keeping
// variant and the quantity the job requires.
type BudgetItem struct {
	ID          string          `json:"id"`
	BudgetID    string          `json:"budget_id"`
	ItemType    BudgetItemType  `json:"item_type"`
	Description string          `json:"description"`
	VariantID   string          `json:"variant_id,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (i BudgetItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(i.Quantity)
}

// Budget is the quote presented to a customer before work is authorized.
type Budget struct {
	ID         string          `json:"id"`
	Number     int64           `json:"number"`
	CustomerID string          `json:"customer_id"`
	VehicleID  string          `json:"vehicle_id"`
	Status     BudgetStatus    `json:"status"`
	Items      []BudgetItem    `json:"items"`
	Discount   decimal.Decimal `json:"discount"`
	Notes      string          `json:"notes,omitempty"`
	ValidUntil *time.Time      `json:"valid_until,omitempty"`
	CreatedBy  string          `json:"created_by,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Total sums all items and subtracts the discount, never going below zero.
func (b Budget) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range b.Items {
		total = total.Add(it.Total())
	}
	total = total.Sub(b.Discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// BudgetFilter narrows budget listings.
type BudgetFilter struct {
	Status     BudgetStatus
	CustomerID string
	Limit      int
	Offset     int
}
