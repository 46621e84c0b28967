package rules

import (
	"fmt"

	"mecanica_gestao/internal/domain/entities"
)

// budgetTransitions lists the manual status moves. Converted is reached only
// through the conversion procedure and is terminal.
var budgetTransitions = map[entities.BudgetStatus][]entities.BudgetStatus{
	entities.BudgetStatusDraft:    {entities.BudgetStatusPending, entities.BudgetStatusApproved, entities.BudgetStatusRejected},
	entities.BudgetStatusPending:  {entities.BudgetStatusDraft, entities.BudgetStatusApproved, entities.BudgetStatusRejected},
	entities.BudgetStatusApproved: {entities.BudgetStatusPending, entities.BudgetStatusRejected},
	entities.BudgetStatusRejected: {entities.BudgetStatusDraft},
}

func ValidateBudgetTransition(from, to entities.BudgetStatus) Result {
	if !to.IsValid() {
		return fail(fmt.Sprintf("Status de orçamento inválido: %s", to))
	}
	if from == entities.BudgetStatusConverted {
		return fail("Orçamento já convertido em OS não pode mudar de status")
	}
	if to == entities.BudgetStatusConverted {
		return fail("Use a conversão em OS para marcar o orçamento como convertido")
	}
	for _, allowed := range budgetTransitions[from] {
		if allowed == to {
			return pass()
		}
	}
	return fail(fmt.Sprintf("Transição de status não permitida: %s -> %s", from, to))
}
