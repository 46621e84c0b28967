package rules

import (
	"testing"

	"mecanica_gestao/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func approvedBudget(items ...entities.BudgetItem) *entities.Budget {
	return &entities.Budget{ID: "b-1", Status: entities.BudgetStatusApproved, Items: items}
}

func product(desc, variant, qty string) entities.BudgetItem {
	return entities.BudgetItem{ItemType: entities.BudgetItemProduct, Description: desc, VariantID: variant, Quantity: dec(qty), UnitPrice: dec("10")}
}

func TestValidateOSCreation(t *testing.T) {
	t.Run("nil budget", func(t *testing.T) {
		res := ValidateOSCreation(nil, nil)
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 1)
	})

	t.Run("non approved statuses fail regardless of stock", func(t *testing.T) {
		stock := map[string]decimal.Decimal{"v-1": dec("0")}
		for _, st := range []entities.BudgetStatus{
			entities.BudgetStatusDraft, entities.BudgetStatusPending,
			entities.BudgetStatusRejected, entities.BudgetStatusConverted,
		} {
			b := &entities.Budget{Status: st, Items: []entities.BudgetItem{product("Filtro", "v-1", "5")}}
			res := ValidateOSCreation(b, stock)
			require.False(t, res.Valid, "status %s", st)
			require.Len(t, res.Errors, 1)
			assert.Contains(t, res.Errors[0], string(st))
			assert.NotContains(t, res.Errors[0], "Estoque")
		}
	})

	t.Run("enough stock", func(t *testing.T) {
		b := approvedBudget(product("Filtro", "v-1", "2"), product("Óleo", "v-2", "4"))
		res := ValidateOSCreation(b, map[string]decimal.Decimal{"v-1": dec("2"), "v-2": dec("10")})
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("one error per short item", func(t *testing.T) {
		b := approvedBudget(
			product("Filtro", "v-1", "3"),
			product("Óleo", "v-2", "4.5"),
			product("Vela", "v-3", "1"),
		)
		res := ValidateOSCreation(b, map[string]decimal.Decimal{"v-1": dec("1"), "v-2": dec("4"), "v-3": dec("8")})
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 2)
		assert.Contains(t, res.Errors[0], "Filtro")
		assert.Contains(t, res.Errors[0], "disponível 1")
		assert.Contains(t, res.Errors[0], "necessário 3")
		assert.Contains(t, res.Errors[1], "Óleo")
		assert.Contains(t, res.Errors[1], "necessário 4,5")
	})

	t.Run("unknown variants and services are not flagged", func(t *testing.T) {
		svc := entities.BudgetItem{ItemType: entities.BudgetItemService, Description: "Mão de obra", Quantity: dec("100")}
		b := approvedBudget(product("Filtro", "v-unknown", "50"), svc)
		res := ValidateOSCreation(b, map[string]decimal.Decimal{"v-1": dec("0")})
		assert.True(t, res.Valid)
	})

	t.Run("nil stock map skips check", func(t *testing.T) {
		res := ValidateOSCreation(approvedBudget(product("Filtro", "v-1", "50")), nil)
		assert.True(t, res.Valid)
	})
}

func TestValidateOSCancellation(t *testing.T) {
	t.Run("nil order", func(t *testing.T) {
		assert.False(t, ValidateOSCancellation(nil).Valid)
	})

	t.Run("non open status names the status", func(t *testing.T) {
		for _, st := range []entities.ServiceOrderStatus{entities.ServiceOrderStatusCompleted, entities.ServiceOrderStatusCanceled} {
			res := ValidateOSCancellation(&entities.ServiceOrder{Status: st})
			require.False(t, res.Valid)
			assert.Contains(t, res.Message(), string(st))
		}
	})

	t.Run("paid receivable blocks", func(t *testing.T) {
		o := &entities.ServiceOrder{Status: entities.ServiceOrderStatusOpen, Receivables: []entities.Receivable{
			{Status: entities.ReceivableStatusPending},
			{Status: entities.ReceivableStatusPaid},
		}}
		assert.False(t, ValidateOSCancellation(o).Valid)
	})

	t.Run("open without paid receivables", func(t *testing.T) {
		o := &entities.ServiceOrder{Status: entities.ServiceOrderStatusOpen, Receivables: []entities.Receivable{
			{Status: entities.ReceivableStatusPending},
			{Status: entities.ReceivableStatusOverdue},
		}}
		assert.True(t, ValidateOSCancellation(o).Valid)
	})
}

func TestValidateOSEditing(t *testing.T) {
	inputs := []*entities.ServiceOrder{
		nil,
		{Status: entities.ServiceOrderStatusOpen},
		{Status: entities.ServiceOrderStatusCompleted},
	}
	for _, o := range inputs {
		res := ValidateOSEditing(o)
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 1)
	}
}

func TestValidateOSCompletion(t *testing.T) {
	assert.True(t, ValidateOSCompletion(&entities.ServiceOrder{Status: entities.ServiceOrderStatusOpen}).Valid)
	assert.False(t, ValidateOSCompletion(&entities.ServiceOrder{Status: entities.ServiceOrderStatusCanceled}).Valid)
	assert.False(t, ValidateOSCompletion(nil).Valid)
}

func TestValidatePaymentRegistration(t *testing.T) {
	pending := &entities.Receivable{Status: entities.ReceivableStatusPending, Amount: dec("100")}

	t.Run("exceeding amount", func(t *testing.T) {
		res := ValidatePaymentRegistration(pending, dec("150"))
		require.False(t, res.Valid)
		assert.Contains(t, res.Message(), "excede")
	})

	t.Run("full amount", func(t *testing.T) {
		assert.True(t, ValidatePaymentRegistration(pending, dec("100")).Valid)
	})

	t.Run("partial amount", func(t *testing.T) {
		assert.True(t, ValidatePaymentRegistration(pending, dec("0.01")).Valid)
	})

	t.Run("zero and negative", func(t *testing.T) {
		assert.False(t, ValidatePaymentRegistration(pending, dec("0")).Valid)
		assert.False(t, ValidatePaymentRegistration(pending, dec("-1")).Valid)
	})

	t.Run("not pending", func(t *testing.T) {
		for _, st := range []entities.ReceivableStatus{entities.ReceivableStatusPaid, entities.ReceivableStatusOverdue} {
			r := &entities.Receivable{Status: st, Amount: dec("100")}
			assert.False(t, ValidatePaymentRegistration(r, dec("10")).Valid)
		}
	})

	t.Run("nil receivable", func(t *testing.T) {
		assert.False(t, ValidatePaymentRegistration(nil, dec("10")).Valid)
	})
}

func TestValidatePaymentAmountInput(t *testing.T) {
	pending := &entities.Receivable{Status: entities.ReceivableStatusPending, Amount: dec("1500")}

	amount, res := ValidatePaymentAmountInput(pending, "1.234,50")
	require.True(t, res.Valid)
	assert.True(t, amount.Equal(dec("1234.5")))

	amount, res = ValidatePaymentAmountInput(pending, " 99.9 ")
	require.True(t, res.Valid)
	assert.True(t, amount.Equal(dec("99.9")))

	for _, raw := range []string{"", "abc", "12a", "R$ 10"} {
		_, res := ValidatePaymentAmountInput(pending, raw)
		assert.False(t, res.Valid, "input %q", raw)
	}
}

func TestValidateBudgetTransition(t *testing.T) {
	allowed := [][2]entities.BudgetStatus{
		{entities.BudgetStatusDraft, entities.BudgetStatusPending},
		{entities.BudgetStatusDraft, entities.BudgetStatusApproved},
		{entities.BudgetStatusPending, entities.BudgetStatusRejected},
		{entities.BudgetStatusApproved, entities.BudgetStatusPending},
		{entities.BudgetStatusRejected, entities.BudgetStatusDraft},
	}
	for _, tr := range allowed {
		assert.True(t, ValidateBudgetTransition(tr[0], tr[1]).Valid, "%s -> %s", tr[0], tr[1])
	}

	denied := [][2]entities.BudgetStatus{
		{entities.BudgetStatusConverted, entities.BudgetStatusDraft},
		{entities.BudgetStatusApproved, entities.BudgetStatusConverted},
		{entities.BudgetStatusRejected, entities.BudgetStatusApproved},
		{entities.BudgetStatusDraft, entities.BudgetStatus("bogus")},
	}
	for _, tr := range denied {
		assert.False(t, ValidateBudgetTransition(tr[0], tr[1]).Valid, "%s -> %s", tr[0], tr[1])
	}
}
