package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/infrastructure/metrics"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// Stored procedure names. Each takes one jsonb argument and returns jsonb.
const (
	fnConvertBudgetToOS        = "convert_budget_to_os"
	fnCancelServiceOrder       = "cancel_service_order"
	fnCreateOSFromBudget       = "create_os_from_budget"
	fnGetFinancialKPIs         = "get_financial_kpis"
	fnGetOSMetrics             = "get_os_metrics"
	fnGetStockMetrics          = "get_stock_metrics"
	fnGetDailyFinancialSummary = "get_daily_financial_summary"
)

type BackendRPC struct {
	q        Querier
	validate *validator.Validate
	metrics  *metrics.Metrics
}

var _ interfaces.IBackendRPC = (*BackendRPC)(nil)

func NewBackendRPC(q Querier, m *metrics.Metrics) *BackendRPC {
	return &BackendRPC{q: q, validate: validator.New(), metrics: m}
}

// call validates req, invokes fn(req::jsonb) and decodes the jsonb result into resp.
func (c *BackendRPC) call(ctx context.Context, fn string, req any, resp any) (err error) {
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s: %v", interfaces.ErrInvalidRPCRequest, fn, err)
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", fn, err)
	}

	start := time.Now()
	defer func() { c.metrics.ObserveRPC(fn, err, time.Since(start)) }()

	var raw []byte
	if err = c.q.QueryRow(ctx, `SELECT public.`+fn+`($1::jsonb)`, payload).Scan(&raw); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "P0001" {
			log.Info().Str("function", fn).Str("message", pgErr.Message).Msg("[backend][rpc] rejected")
			return &interfaces.BackendRejectedError{Function: fn, Message: pgErr.Message}
		}
		log.Error().Err(err).Str("function", fn).Msg("[backend][rpc] call failed")
		return fmt.Errorf("%s: %w", fn, err)
	}
	if err = json.Unmarshal(raw, resp); err != nil {
		return fmt.Errorf("%s: decode response: %w", fn, err)
	}
	return nil
}

func (c *BackendRPC) ConvertBudgetToOS(ctx context.Context, req entities.ConvertBudgetRequest) (entities.ConvertBudgetResponse, error) {
	var resp entities.ConvertBudgetResponse
	err := c.call(ctx, fnConvertBudgetToOS, req, &resp)
	return resp, err
}

func (c *BackendRPC) CancelServiceOrder(ctx context.Context, req entities.CancelOrderRequest) (entities.CancelOrderResponse, error) {
	var resp entities.CancelOrderResponse
	err := c.call(ctx, fnCancelServiceOrder, req, &resp)
	return resp, err
}

func (c *BackendRPC) CreateOSFromBudget(ctx context.Context, req entities.FinalizeBudgetRequest) (entities.FinalizeBudgetResponse, error) {
	var resp entities.FinalizeBudgetResponse
	err := c.call(ctx, fnCreateOSFromBudget, req, &resp)
	return resp, err
}

func (c *BackendRPC) GetFinancialKPIs(ctx context.Context, req entities.DateRangeRequest) (entities.FinancialKPIs, error) {
	var resp entities.FinancialKPIs
	err := c.call(ctx, fnGetFinancialKPIs, req, &resp)
	return resp, err
}

func (c *BackendRPC) GetOSMetrics(ctx context.Context, req entities.DateRangeRequest) (entities.OSMetrics, error) {
	var resp entities.OSMetrics
	err := c.call(ctx, fnGetOSMetrics, req, &resp)
	return resp, err
}

func (c *BackendRPC) GetStockMetrics(ctx context.Context) (entities.StockMetrics, error) {
	var resp entities.StockMetrics
	err := c.call(ctx, fnGetStockMetrics, entities.StockMetricsRequest{}, &resp)
	return resp, err
}

func (c *BackendRPC) GetDailyFinancialSummary(ctx context.Context, req entities.DailySummaryRequest) (entities.DailyFinancialSummary, error) {
	var resp entities.DailyFinancialSummary
	err := c.call(ctx, fnGetDailyFinancialSummary, req, &resp)
	return resp, err
}
