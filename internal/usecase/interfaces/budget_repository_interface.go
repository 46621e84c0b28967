package interfaces

import (
	"context"

	"mecanica_gestao/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IBudgetRepository abstracts Postgres persistence for budgets and their items.
//
// GetByID returns a zero Budget (empty ID) when the row does not exist.
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error)
	UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error)
}

// IStockRepository reads available quantities per product variant.
// Variants without a stock row are absent from the result.
type IStockRepository interface {
	AvailableByVariants(ctx context.Context, variantIDs []string) (map[string]decimal.Decimal, error)
}
