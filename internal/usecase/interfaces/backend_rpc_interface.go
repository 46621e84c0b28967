package interfaces

import (
	"context"
	"errors"

	"mecanica_gestao/internal/domain/entities"
)

// IBackendRPC exposes the backend stored procedures as typed calls.
// Each call is atomic on the backend side; no call is retried.
type IBackendRPC interface {
	ConvertBudgetToOS(ctx context.Context, req entities.ConvertBudgetRequest) (entities.ConvertBudgetResponse, error)
	CancelServiceOrder(ctx context.Context, req entities.CancelOrderRequest) (entities.CancelOrderResponse, error)
	CreateOSFromBudget(ctx context.Context, req entities.FinalizeBudgetRequest) (entities.FinalizeBudgetResponse, error)
	GetFinancialKPIs(ctx context.Context, req entities.DateRangeRequest) (entities.FinancialKPIs, error)
	GetOSMetrics(ctx context.Context, req entities.DateRangeRequest) (entities.OSMetrics, error)
	GetStockMetrics(ctx context.Context) (entities.StockMetrics, error)
	GetDailyFinancialSummary(ctx context.Context, req entities.DailySummaryRequest) (entities.DailyFinancialSummary, error)
}

// ErrInvalidRPCRequest is returned, wrapped with the validator details, when a
// request record fails its validate tags. No call reaches the backend.
var ErrInvalidRPCRequest = errors.New("invalid rpc request")

// ErrBackendRejected matches every *BackendRejectedError.
var ErrBackendRejected = errors.New("backend rejected the operation")

// BackendRejectedError is a business rule enforced by a stored procedure
// (raise exception). Message is the text the procedure raised.
type BackendRejectedError struct {
	Function string
	Message  string
}

func (e *BackendRejectedError) Error() string { return e.Function + ": " + e.Message }

func (e *BackendRejectedError) Is(target error) bool { return target == ErrBackendRejected }
