// Package rules holds the client-side workflow rules for budgets, service orders
// and receivables. Every function is pure; the backend re-enforces all of them.
package rules

import (
	"fmt"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/domain/format"

	"github.com/shopspring/decimal"
)

// ValidateOSCreation checks whether budget may be converted into a service order.
//
// stock maps variant id to available quantity. A nil map skips the stock check;
// variants missing from the map are not flagged. Each short item yields one error.
func ValidateOSCreation(budget *entities.Budget, stock map[string]decimal.Decimal) Result {
	if budget == nil {
		return fail("Orçamento não encontrado")
	}
	if budget.Status != entities.BudgetStatusApproved {
		return fail(fmt.Sprintf("Apenas orçamentos aprovados podem gerar uma OS (status atual: %s)", budget.Status))
	}
	if stock == nil {
		return pass()
	}

	var errs []string
	for _, item := range budget.Items {
		if item.ItemType != entities.BudgetItemProduct || item.VariantID == "" {
			continue
		}
		available, known := stock[item.VariantID]
		if !known {
			continue
		}
		if item.Quantity.GreaterThan(available) {
			errs = append(errs, fmt.Sprintf("Estoque insuficiente para %s: disponível %s, necessário %s",
				item.Description, format.FormatQuantity(available), format.FormatQuantity(item.Quantity)))
		}
	}
	if len(errs) > 0 {
		return fail(errs...)
	}
	return pass()
}

// ValidateOSCancellation allows cancelling only open orders without paid receivables.
func ValidateOSCancellation(order *entities.ServiceOrder) Result {
	if order == nil {
		return fail("Ordem de serviço não encontrada")
	}
	if order.Status != entities.ServiceOrderStatusOpen {
		return fail(fmt.Sprintf("Apenas OS com status Aberta podem ser canceladas (status atual: %s)", order.Status))
	}
	for _, r := range order.Receivables {
		if r.Status == entities.ReceivableStatusPaid {
			return fail("OS possui contas a receber pagas; estorne os pagamentos antes de cancelar")
		}
	}
	return pass()
}

// ValidateOSEditing always fails: orders are immutable once created.
func ValidateOSEditing(_ *entities.ServiceOrder) Result {
	return fail("Ordens de serviço não podem ser editadas após a criação; cancele e crie uma nova OS")
}

func ValidateOSCompletion(order *entities.ServiceOrder) Result {
	if order == nil {
		return fail("Ordem de serviço não encontrada")
	}
	if order.Status != entities.ServiceOrderStatusOpen {
		return fail(fmt.Sprintf("Apenas OS com status Aberta podem ser concluídas (status atual: %s)", order.Status))
	}
	return pass()
}
