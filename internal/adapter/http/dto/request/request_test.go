package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBudgetRequest_ResolveTotal(t *testing.T) {
	r := BudgetRequest{
		Items: []BudgetItemRequest{
			{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("10.50")},
			{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(80)},
			{Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(999)},
			{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(-5)},
		},
		Discount: decimal.NewFromInt(1),
	}
	total, err := r.ResolveTotal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected 100, got %s", total)
	}

	r2 := BudgetRequest{Items: []BudgetItemRequest{{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)}}, Discount: decimal.NewFromInt(10)}
	if _, err := r2.ResolveTotal(); !errors.Is(err, ErrInvalidBudgetValue) {
		t.Fatalf("expected ErrInvalidBudgetValue, got %v", err)
	}
}

func TestBudgetRequest_ToEntity(t *testing.T) {
	r := BudgetRequest{
		CustomerID: " c-1 ",
		VehicleID:  "v-1",
		Items:      []BudgetItemRequest{{ItemType: "product", Description: " Filtro ", VariantID: " var-1 ", Quantity: decimal.NewFromInt(1)}},
		Notes:      "  urgente ",
	}
	b := r.ToEntity()
	if b.CustomerID != "c-1" || b.Notes != "urgente" {
		t.Fatalf("unexpected budget: %+v", b)
	}
	if len(b.Items) != 1 || b.Items[0].Description != "Filtro" || b.Items[0].VariantID != "var-1" || b.Items[0].ItemType != "product" {
		t.Fatalf("unexpected items: %+v", b.Items)
	}
}

func TestAmountInput_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"amount":99.9}`, "99.9"},
		{`{"amount":"99,90"}`, "99,90"},
		{`{"amount":"150"}`, "150"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var r RegisterPaymentRequest
			if err := json.Unmarshal([]byte(tt.in), &r); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(r.Amount) != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, r.Amount)
			}
		})
	}

	var r RegisterPaymentRequest
	if err := json.Unmarshal([]byte(`{"amount":true}`), &r); err == nil {
		t.Fatalf("expected error for boolean amount")
	}
}

func TestPayableRequest_ToEntity(t *testing.T) {
	p, err := PayableRequest{Supplier: " Auto Peças ", Description: "Pastilhas", Amount: decimal.NewFromInt(300), DueDate: "2026-04-05"}.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Supplier != "Auto Peças" || !p.DueDate.Equal(time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected payable: %+v", p)
	}

	if _, err := (PayableRequest{DueDate: "05/04/2026"}).ToEntity(); !errors.Is(err, ErrInvalidDueDate) {
		t.Fatalf("expected ErrInvalidDueDate, got %v", err)
	}
}
