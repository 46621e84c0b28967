package postgres

import (
	"context"
	"errors"
	"fmt"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const budgetColumns = `id, number, customer_id, vehicle_id, status, discount, notes, valid_until, created_by, created_at, updated_at`

// BudgetRepo stores budgets with their items. Number comes from the budgets_number_seq sequence.
type BudgetRepo struct {
	db DB
}

var _ interfaces.IBudgetRepository = (*BudgetRepo)(nil)

func NewBudgetRepository(db DB) *BudgetRepo {
	return &BudgetRepo{db: db}
}

func scanBudget(row pgx.Row) (entities.Budget, error) {
	var b entities.Budget
	var notes, createdBy *string
	err := row.Scan(&b.ID, &b.Number, &b.CustomerID, &b.VehicleID, &b.Status, &b.Discount, &notes, &b.ValidUntil, &createdBy, &b.CreatedAt, &b.UpdatedAt)
	b.Notes, b.CreatedBy = derefString(notes), derefString(createdBy)
	return b, err
}

func (r *BudgetRepo) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO budgets (id, customer_id, vehicle_id, status, discount, notes, valid_until, created_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING number`,
			b.ID, b.CustomerID, b.VehicleID, b.Status, b.Discount, nullString(b.Notes), b.ValidUntil, nullString(b.CreatedBy), b.CreatedAt, b.UpdatedAt,
		).Scan(&b.Number)
		if err != nil {
			return fmt.Errorf("insert budget: %w", err)
		}

		batch := &pgx.Batch{}
		for i, it := range b.Items {
			batch.Queue(`
				INSERT INTO budget_items (id, budget_id, position, item_type, description, variant_id, quantity, unit_price)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				it.ID, b.ID, i, it.ItemType, it.Description, nullString(it.VariantID), it.Quantity, it.UnitPrice,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert budget items: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Budget{}, err
	}
	for i := range b.Items {
		b.Items[i].BudgetID = b.ID
	}
	return b, nil
}

func (r *BudgetRepo) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	b, err := scanBudget(r.db.QueryRow(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, fmt.Errorf("get budget: %w", err)
	}

	items, err := r.items(ctx, []string{b.ID})
	if err != nil {
		return entities.Budget{}, err
	}
	b.Items = items[b.ID]
	return b, nil
}

func (r *BudgetRepo) List(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error) {
	var w where
	if filter.Status != "" {
		w.add("status = $%d", filter.Status)
	}
	if filter.CustomerID != "" {
		w.add("customer_id = $%d", filter.CustomerID)
	}
	query := `SELECT ` + budgetColumns + ` FROM budgets` + w.sql() + ` ORDER BY number DESC` + w.page(filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	var list []entities.Budget
	var ids []string
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		list = append(list, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	items, err := r.items(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Items = items[list[i].ID]
	}
	return list, nil
}

func (r *BudgetRepo) UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	tag, err := r.db.Exec(ctx, `UPDATE budgets SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return entities.Budget{}, fmt.Errorf("update budget status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.Budget{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *BudgetRepo) items(ctx context.Context, budgetIDs []string) (map[string][]entities.BudgetItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, budget_id, item_type, description, variant_id, quantity, unit_price
		FROM budget_items WHERE budget_id = ANY($1) ORDER BY budget_id, position`, budgetIDs)
	if err != nil {
		return nil, fmt.Errorf("list budget items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entities.BudgetItem, len(budgetIDs))
	for rows.Next() {
		var it entities.BudgetItem
		var variant *string
		if err := rows.Scan(&it.ID, &it.BudgetID, &it.ItemType, &it.Description, &variant, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan budget item: %w", err)
		}
		it.VariantID = derefString(variant)
		out[it.BudgetID] = append(out[it.BudgetID], it)
	}
	return out, rows.Err()
}

// StockRepo reads product_variants.stock_quantity.
type StockRepo struct {
	q Querier
}

var _ interfaces.IStockRepository = (*StockRepo)(nil)

func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

func (r *StockRepo) AvailableByVariants(ctx context.Context, variantIDs []string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(variantIDs))
	if len(variantIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT id, stock_quantity FROM product_variants WHERE id = ANY($1)`, variantIDs)
	if err != nil {
		return nil, fmt.Errorf("stock by variants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var qty decimal.Decimal
		if err := rows.Scan(&id, &qty); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		out[id] = qty
	}
	return out, rows.Err()
}
