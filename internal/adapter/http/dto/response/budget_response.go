package response

import (
	"time"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/domain/format"

	"github.com/shopspring/decimal"
)

type BudgetItemResponse struct {
	ID          string          `json:"id"`
	ItemType    string          `json:"item_type"`
	Description string          `json:"description"`
	VariantID   string          `json:"variant_id,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

type BudgetResponse struct {
	BudgetID       string               `json:"budget_id"`
	ID             string               `json:"id"`
	Number         int64                `json:"number"`
	CustomerID     string               `json:"customer_id"`
	VehicleID      string               `json:"vehicle_id"`
	Status         string               `json:"status"`
	Items          []BudgetItemResponse `json:"items"`
	Discount       decimal.Decimal      `json:"discount"`
	Total          decimal.Decimal      `json:"total"`
	TotalFormatted string               `json:"total_formatted"`
	Notes          string               `json:"notes,omitempty"`
	ValidUntil     *time.Time           `json:"valid_until,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemResponse{
			ID:          it.ID,
			ItemType:    string(it.ItemType),
			Description: it.Description,
			VariantID:   it.VariantID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total(),
		})
	}
	total := b.Total()
	return BudgetResponse{
		BudgetID:       b.ID,
		ID:             b.ID,
		Number:         b.Number,
		CustomerID:     b.CustomerID,
		VehicleID:      b.VehicleID,
		Status:         string(b.Status),
		Items:          items,
		Discount:       b.Discount,
		Total:          total,
		TotalFormatted: format.FormatCurrency(total),
		Notes:          b.Notes,
		ValidUntil:     b.ValidUntil,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func FromBudgets(list []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBudget(b))
	}
	return out
}
