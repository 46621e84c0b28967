package response

import (
	"encoding/json"
	"testing"
	"time"

	"mecanica_gestao/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromBudget(t *testing.T) {
	now := time.Now().UTC()
	b := entities.Budget{
		ID:     "b-1",
		Number: 7,
		Status: entities.BudgetStatusApproved,
		Items: []entities.BudgetItem{
			{ID: "i-1", ItemType: entities.BudgetItemService, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100)},
		},
		Discount:  decimal.NewFromInt(20),
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromBudget(b)
	if res.ID != "b-1" || res.BudgetID != "b-1" || res.Status != "approved" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.Total.Equal(decimal.NewFromInt(180)) || !res.Items[0].Total.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if res.TotalFormatted != "R$ 180,00" {
		t.Fatalf("unexpected formatted total %q", res.TotalFormatted)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if got := FromBudgets(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestFromPaymentCharge(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123}`)
	p := entities.PaymentCharge{
		ID:                 "123",
		ReceivableID:       "rec-1",
		Amount:             decimal.NewFromInt(100),
		Date:               now,
		Status:             entities.ChargeStatusApproved,
		ProviderStatus:     "approved",
		ProviderPayloadRaw: raw,
		ProviderPayload:    map[string]interface{}{"a": "b"},
	}

	res := FromPaymentCharge(p)
	if res.ID != "123" || res.ChargeID != "123" || res.ReceivableID != "rec-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "aprovado" || res.ProviderStatus != "approved" || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}

func TestFromReceivable_JSON(t *testing.T) {
	r := entities.Receivable{ID: "rec-1", Amount: decimal.RequireFromString("350.5"), Status: entities.ReceivableStatusPending,
		DueDate: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)}

	b, err := json.Marshal(FromReceivable(r))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["id"] != "rec-1" || body["amount_formatted"] != "R$ 350,50" || body["due_date_label"] != "31/03/2026" {
		t.Fatalf("unexpected body: %s", b)
	}
}

func TestFromSession(t *testing.T) {
	res := FromSession(entities.Session{AccessToken: "tok", User: entities.User{ID: "u-1"}}, nil)
	if res.TokenType != "Bearer" || res.AccessToken != "tok" || res.Permissions == nil {
		t.Fatalf("unexpected session response: %+v", res)
	}
}
