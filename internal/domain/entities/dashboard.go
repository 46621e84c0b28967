package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type FinancialKPIs struct {
	Revenue            decimal.Decimal `json:"revenue"`
	Expenses           decimal.Decimal `json:"expenses"`
	Profit             decimal.Decimal `json:"profit"`
	ReceivablesOpen    decimal.Decimal `json:"receivables_open"`
	ReceivablesOverdue decimal.Decimal `json:"receivables_overdue"`
	PayablesOpen       decimal.Decimal `json:"payables_open"`
}

type OSMetrics struct {
	Open          int             `json:"open"`
	Completed     int             `json:"completed"`
	Canceled      int             `json:"canceled"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
}

type StockMetrics struct {
	TotalItems    int             `json:"total_items"`
	LowStockItems int             `json:"low_stock_items"`
	StockValue    decimal.Decimal `json:"stock_value"`
}

type DailyFinancialSummary struct {
	Date     time.Time       `json:"date"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}
