package postgres

import (
	"context"
	"errors"
	"fmt"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const serviceOrderColumns = `id, number, budget_id, customer_id, vehicle_id, status, total_amount, cancel_reason, created_at, completed_at, canceled_at`

type ServiceOrderRepo struct {
	q           Querier
	receivables *ReceivableRepo
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderRepo)(nil)

func NewServiceOrderRepository(q Querier, receivables *ReceivableRepo) *ServiceOrderRepo {
	return &ServiceOrderRepo{q: q, receivables: receivables}
}

func scanServiceOrder(row pgx.Row) (entities.ServiceOrder, error) {
	var o entities.ServiceOrder
	var budgetID, reason *string
	err := row.Scan(&o.ID, &o.Number, &budgetID, &o.CustomerID, &o.VehicleID, &o.Status, &o.TotalAmount, &reason, &o.CreatedAt, &o.CompletedAt, &o.CanceledAt)
	o.BudgetID, o.CancelReason = derefString(budgetID), derefString(reason)
	return o, err
}

// GetByID loads the order with its linked receivables.
func (r *ServiceOrderRepo) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	o, err := scanServiceOrder(r.q.QueryRow(ctx, `SELECT `+serviceOrderColumns+` FROM service_orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, fmt.Errorf("get service order: %w", err)
	}

	o.Receivables, err = r.receivables.ListByServiceOrder(ctx, o.ID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderRepo) List(ctx context.Context, filter entities.ServiceOrderFilter) ([]entities.ServiceOrder, error) {
	var w where
	if filter.Status != "" {
		w.add("status = $%d", filter.Status)
	}
	if filter.CustomerID != "" {
		w.add("customer_id = $%d", filter.CustomerID)
	}
	query := `SELECT ` + serviceOrderColumns + ` FROM service_orders` + w.sql() + ` ORDER BY number DESC` + w.page(filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	defer rows.Close()

	var list []entities.ServiceOrder
	for rows.Next() {
		o, err := scanServiceOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// UpdateStatus only moves open orders; terminal orders are left untouched.
func (r *ServiceOrderRepo) UpdateStatus(ctx context.Context, id string, status entities.ServiceOrderStatus) (entities.ServiceOrder, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE service_orders
		SET status = $2,
		    completed_at = CASE WHEN $2::text = 'Concluida' THEN now() ELSE completed_at END
		WHERE id = $1 AND status = 'Aberta'`, id, status)
	if err != nil {
		return entities.ServiceOrder{}, fmt.Errorf("update service order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ServiceOrder{}, nil
	}
	return r.GetByID(ctx, id)
}
