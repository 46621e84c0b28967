package response

import (
	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/domain/format"
)

// ReceivableResponse adds display strings the console shows as-is.
type ReceivableResponse struct {
	entities.Receivable
	AmountFormatted string `json:"amount_formatted"`
	DueDateLabel    string `json:"due_date_label"`
}

func FromReceivable(r entities.Receivable) ReceivableResponse {
	return ReceivableResponse{
		Receivable:      r,
		AmountFormatted: format.FormatCurrency(r.Amount),
		DueDateLabel:    format.FormatDate(r.DueDate),
	}
}

func FromReceivables(list []entities.Receivable) []ReceivableResponse {
	out := make([]ReceivableResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromReceivable(r))
	}
	return out
}

type ServiceOrderResponse struct {
	entities.ServiceOrder
	TotalFormatted string `json:"total_formatted"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{ServiceOrder: o, TotalFormatted: format.FormatCurrency(o.TotalAmount)}
}

func FromServiceOrders(list []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
