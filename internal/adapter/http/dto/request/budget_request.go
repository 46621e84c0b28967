package request

import (
	"errors"
	"strings"
	"time"

	"mecanica_gestao/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidBudgetValue = errors.New("invalid budget value")

type BudgetItemRequest struct {
	ItemType    string          `json:"item_type" binding:"required,oneof=product service"`
	Description string          `json:"description" binding:"required"`
	VariantID   string          `json:"variant_id"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// BudgetRequest is the payload for creating a budget with its items.
type BudgetRequest struct {
	CustomerID string              `json:"customer_id" binding:"required"`
	VehicleID  string              `json:"vehicle_id" binding:"required"`
	Items      []BudgetItemRequest `json:"items" binding:"required,min=1,dive"`
	Discount   decimal.Decimal     `json:"discount"`
	Notes      string              `json:"notes"`
	ValidUntil *time.Time          `json:"valid_until"`
}

// ResolveTotal sums the items minus the discount and rejects non-positive budgets.
func (r BudgetRequest) ResolveTotal() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, it := range r.Items {
		if it.Quantity.IsPositive() && !it.UnitPrice.IsNegative() {
			total = total.Add(it.UnitPrice.Mul(it.Quantity))
		}
	}
	total = total.Sub(r.Discount)
	if !total.IsPositive() {
		return decimal.Zero, ErrInvalidBudgetValue
	}
	return total, nil
}

func (r BudgetRequest) ToEntity() entities.Budget {
	items := make([]entities.BudgetItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.BudgetItem{
			ItemType:    entities.BudgetItemType(it.ItemType),
			Description: strings.TrimSpace(it.Description),
			VariantID:   strings.TrimSpace(it.VariantID),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return entities.Budget{
		CustomerID: strings.TrimSpace(r.CustomerID),
		VehicleID:  strings.TrimSpace(r.VehicleID),
		Items:      items,
		Discount:   r.Discount,
		Notes:      strings.TrimSpace(r.Notes),
		ValidUntil: r.ValidUntil,
	}
}

type BudgetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// FinalizeBudgetRequest carries the billing terms of the order created from a budget.
type FinalizeBudgetRequest struct {
	PaymentMethod string          `json:"payment_method" binding:"required,oneof=dinheiro pix cartao_credito cartao_debito boleto"`
	Installments  int             `json:"installments" binding:"required,min=1,max=24"`
	FirstDueDate  time.Time       `json:"first_due_date" binding:"required"`
	Discount      decimal.Decimal `json:"discount"`
}

func (r FinalizeBudgetRequest) ToFinancial() entities.FinancialPayload {
	return entities.FinancialPayload{
		PaymentMethod: strings.TrimSpace(r.PaymentMethod),
		Installments:  r.Installments,
		FirstDueDate:  r.FirstDueDate,
		Discount:      r.Discount,
	}
}
