package usecase

import (
	"context"
	"errors"
	"time"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"
)

var ErrInvalidDateRange = errors.New("invalid date range")

// Dashboard holds every KPI block the console home screen shows.
type Dashboard struct {
	Financial entities.FinancialKPIs         `json:"financial"`
	Orders    entities.OSMetrics             `json:"orders"`
	Stock     entities.StockMetrics          `json:"stock"`
	Today     entities.DailyFinancialSummary `json:"today"`
}

type IDashboardUseCase interface {
	Overview(ctx context.Context, start time.Time, end time.Time) (Dashboard, error)
	FinancialKPIs(ctx context.Context, start time.Time, end time.Time) (entities.FinancialKPIs, error)
	OSMetrics(ctx context.Context, start time.Time, end time.Time) (entities.OSMetrics, error)
	StockMetrics(ctx context.Context) (entities.StockMetrics, error)
	DailySummary(ctx context.Context, day time.Time) (entities.DailyFinancialSummary, error)
}

type DashboardUseCase struct {
	rpc interfaces.IBackendRPC
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(rpc interfaces.IBackendRPC) *DashboardUseCase {
	return &DashboardUseCase{rpc: rpc}
}

// Overview calls each aggregation in turn; the first failure aborts.
func (u *DashboardUseCase) Overview(ctx context.Context, start time.Time, end time.Time) (Dashboard, error) {
	var d Dashboard
	var err error
	if d.Financial, err = u.FinancialKPIs(ctx, start, end); err != nil {
		return Dashboard{}, err
	}
	if d.Orders, err = u.OSMetrics(ctx, start, end); err != nil {
		return Dashboard{}, err
	}
	if d.Stock, err = u.StockMetrics(ctx); err != nil {
		return Dashboard{}, err
	}
	if d.Today, err = u.DailySummary(ctx, end); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}

func (u *DashboardUseCase) FinancialKPIs(ctx context.Context, start time.Time, end time.Time) (entities.FinancialKPIs, error) {
	req, err := dateRange(start, end)
	if err != nil {
		return entities.FinancialKPIs{}, err
	}
	return u.rpc.GetFinancialKPIs(ctx, req)
}

func (u *DashboardUseCase) OSMetrics(ctx context.Context, start time.Time, end time.Time) (entities.OSMetrics, error) {
	req, err := dateRange(start, end)
	if err != nil {
		return entities.OSMetrics{}, err
	}
	return u.rpc.GetOSMetrics(ctx, req)
}

func (u *DashboardUseCase) StockMetrics(ctx context.Context) (entities.StockMetrics, error) {
	return u.rpc.GetStockMetrics(ctx)
}

func (u *DashboardUseCase) DailySummary(ctx context.Context, day time.Time) (entities.DailyFinancialSummary, error) {
	if day.IsZero() {
		return entities.DailyFinancialSummary{}, ErrInvalidDateRange
	}
	y, m, d := day.Date()
	return u.rpc.GetDailyFinancialSummary(ctx, entities.DailySummaryRequest{Date: time.Date(y, m, d, 0, 0, 0, 0, day.Location())})
}

func dateRange(start, end time.Time) (entities.DateRangeRequest, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return entities.DateRangeRequest{}, ErrInvalidDateRange
	}
	return entities.DateRangeRequest{StartDate: start, EndDate: end}, nil
}
