package rules

import (
	"strings"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/domain/format"

	"github.com/shopspring/decimal"
)

// ValidatePaymentRegistration accepts a single payment iff the receivable is
// pending and 0 < amount <= receivable.Amount. Earlier installments are not
// accumulated.
func ValidatePaymentRegistration(receivable *entities.Receivable, amount decimal.Decimal) Result {
	if receivable == nil {
		return fail("Conta a receber não encontrada")
	}
	if receivable.Status != entities.ReceivableStatusPending {
		return fail("Apenas contas com status Pendente podem receber pagamentos (status atual: " + string(receivable.Status) + ")")
	}
	if !amount.IsPositive() {
		return fail("O valor do pagamento deve ser maior que zero")
	}
	if amount.GreaterThan(receivable.Amount) {
		return fail("O valor do pagamento (" + format.FormatCurrency(amount) + ") excede o valor da conta (" + format.FormatCurrency(receivable.Amount) + ")")
	}
	return pass()
}

// ValidatePaymentAmountInput parses raw user input (dot or comma decimal) before
// delegating to ValidatePaymentRegistration.
func ValidatePaymentAmountInput(receivable *entities.Receivable, raw string) (decimal.Decimal, Result) {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	amount, err := decimal.NewFromString(s)
	if err != nil || s == "" {
		return decimal.Zero, fail("Valor de pagamento inválido: " + raw)
	}
	return amount, ValidatePaymentRegistration(receivable, amount)
}
