package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const receivableColumns = `id, customer_id, service_order_id, description, amount, net_amount, status, due_date, paid_at, created_at`

type ReceivableRepo struct {
	db DB
}

var _ interfaces.IReceivableRepository = (*ReceivableRepo)(nil)

func NewReceivableRepository(db DB) *ReceivableRepo {
	return &ReceivableRepo{db: db}
}

func scanReceivable(row pgx.Row) (entities.Receivable, error) {
	var r entities.Receivable
	var orderID *string
	err := row.Scan(&r.ID, &r.CustomerID, &orderID, &r.Description, &r.Amount, &r.NetAmount, &r.Status, &r.DueDate, &r.PaidAt, &r.CreatedAt)
	r.ServiceOrderID = derefString(orderID)
	return r, err
}

func (r *ReceivableRepo) GetByID(ctx context.Context, id string) (entities.Receivable, error) {
	return r.getByID(ctx, r.db, id)
}

func (r *ReceivableRepo) getByID(ctx context.Context, q Querier, id string) (entities.Receivable, error) {
	rec, err := scanReceivable(q.QueryRow(ctx, `SELECT `+receivableColumns+` FROM receivables WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Receivable{}, nil
		}
		return entities.Receivable{}, fmt.Errorf("get receivable: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT id, receivable_id, number, amount, due_date, status, payment_method, paid_at
		FROM receivable_installments WHERE receivable_id = $1 ORDER BY number`, id)
	if err != nil {
		return entities.Receivable{}, fmt.Errorf("list installments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var in entities.Installment
		var method *string
		if err := rows.Scan(&in.ID, &in.ReceivableID, &in.Number, &in.Amount, &in.DueDate, &in.Status, &method, &in.PaidAt); err != nil {
			return entities.Receivable{}, fmt.Errorf("scan installment: %w", err)
		}
		in.PaymentMethod = derefString(method)
		rec.Installments = append(rec.Installments, in)
	}
	return rec, rows.Err()
}

func (r *ReceivableRepo) List(ctx context.Context, filter entities.ReceivableFilter) ([]entities.Receivable, error) {
	var w where
	if filter.Status != "" {
		w.add("status = $%d", filter.Status)
	}
	if filter.CustomerID != "" {
		w.add("customer_id = $%d", filter.CustomerID)
	}
	if filter.DueFrom != nil {
		w.add("due_date >= $%d", *filter.DueFrom)
	}
	if filter.DueTo != nil {
		w.add("due_date <= $%d", *filter.DueTo)
	}
	query := `SELECT ` + receivableColumns + ` FROM receivables` + w.sql() + ` ORDER BY due_date` + w.page(filter.Limit, filter.Offset)
	return r.list(ctx, query, w.args...)
}

func (r *ReceivableRepo) ListByServiceOrder(ctx context.Context, serviceOrderID string) ([]entities.Receivable, error) {
	return r.list(ctx, `SELECT `+receivableColumns+` FROM receivables WHERE service_order_id = $1 ORDER BY due_date`, serviceOrderID)
}

func (r *ReceivableRepo) list(ctx context.Context, query string, args ...any) ([]entities.Receivable, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list receivables: %w", err)
	}
	defer rows.Close()

	var list []entities.Receivable
	for rows.Next() {
		rec, err := scanReceivable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receivable: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// RegisterPayment records the payment and settles the receivable once the
// recorded payments reach its amount.
func (r *ReceivableRepo) RegisterPayment(ctx context.Context, p entities.PaymentRegistration) (entities.Receivable, error) {
	var out entities.Receivable
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO receivable_payments (receivable_id, amount, payment_method, paid_at, registered_by)
			VALUES ($1, $2, $3, $4, $5)`,
			p.ReceivableID, p.Amount, p.PaymentMethod, p.PaidAt, nullString(p.RegisteredBy),
		)
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE receivables rc
			SET status = 'Pago', paid_at = $2
			WHERE rc.id = $1
			  AND (SELECT COALESCE(SUM(amount), 0) FROM receivable_payments WHERE receivable_id = rc.id) >= rc.amount`,
			p.ReceivableID, p.PaidAt,
		)
		if err != nil {
			return fmt.Errorf("settle receivable: %w", err)
		}

		out, err = r.getByID(ctx, tx, p.ReceivableID)
		return err
	})
	if err != nil {
		return entities.Receivable{}, err
	}
	return out, nil
}

func (r *ReceivableRepo) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE receivables SET status = 'Atrasado' WHERE status = 'Pendente' AND due_date < $1`, asOf)
	if err != nil {
		return 0, fmt.Errorf("mark overdue receivables: %w", err)
	}
	return tag.RowsAffected(), nil
}

const payableColumns = `id, supplier, description, category, amount, status, due_date, paid_at, created_at`

type PayableRepo struct {
	q Querier
}

var _ interfaces.IPayableRepository = (*PayableRepo)(nil)

func NewPayableRepository(q Querier) *PayableRepo {
	return &PayableRepo{q: q}
}

func scanPayable(row pgx.Row) (entities.Payable, error) {
	var p entities.Payable
	var category *string
	err := row.Scan(&p.ID, &p.Supplier, &p.Description, &category, &p.Amount, &p.Status, &p.DueDate, &p.PaidAt, &p.CreatedAt)
	p.Category = derefString(category)
	return p, err
}

func (r *PayableRepo) Create(ctx context.Context, p entities.Payable) (entities.Payable, error) {
	_, err := r.q.Exec(ctx, `
		INSERT INTO payables (id, supplier, description, category, amount, status, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Supplier, p.Description, nullString(p.Category), p.Amount, p.Status, p.DueDate, p.CreatedAt,
	)
	if err != nil {
		return entities.Payable{}, fmt.Errorf("insert payable: %w", err)
	}
	return p, nil
}

func (r *PayableRepo) GetByID(ctx context.Context, id string) (entities.Payable, error) {
	p, err := scanPayable(r.q.QueryRow(ctx, `SELECT `+payableColumns+` FROM payables WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Payable{}, nil
		}
		return entities.Payable{}, fmt.Errorf("get payable: %w", err)
	}
	return p, nil
}

func (r *PayableRepo) List(ctx context.Context, filter entities.PayableFilter) ([]entities.Payable, error) {
	var w where
	if filter.Status != "" {
		w.add("status = $%d", filter.Status)
	}
	if filter.DueFrom != nil {
		w.add("due_date >= $%d", *filter.DueFrom)
	}
	if filter.DueTo != nil {
		w.add("due_date <= $%d", *filter.DueTo)
	}
	query := `SELECT ` + payableColumns + ` FROM payables` + w.sql() + ` ORDER BY due_date` + w.page(filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list payables: %w", err)
	}
	defer rows.Close()

	var list []entities.Payable
	for rows.Next() {
		p, err := scanPayable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payable: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PayableRepo) MarkPaid(ctx context.Context, id string, paidAt time.Time) (entities.Payable, error) {
	tag, err := r.q.Exec(ctx, `UPDATE payables SET status = 'Pago', paid_at = $2 WHERE id = $1 AND status <> 'Pago'`, id, paidAt)
	if err != nil {
		return entities.Payable{}, fmt.Errorf("pay payable: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.Payable{}, nil
	}
	return r.GetByID(ctx, id)
}

const commissionColumns = `c.id, c.employee_id, u.name, c.service_order_id, c.percentage, c.amount, c.status, c.paid_at, c.created_at`

type CommissionRepo struct {
	q Querier
}

var _ interfaces.ICommissionRepository = (*CommissionRepo)(nil)

func NewCommissionRepository(q Querier) *CommissionRepo {
	return &CommissionRepo{q: q}
}

func scanCommission(row pgx.Row) (entities.Commission, error) {
	var c entities.Commission
	var name *string
	err := row.Scan(&c.ID, &c.EmployeeID, &name, &c.ServiceOrderID, &c.Percentage, &c.Amount, &c.Status, &c.PaidAt, &c.CreatedAt)
	c.EmployeeName = derefString(name)
	return c, err
}

func (r *CommissionRepo) GetByID(ctx context.Context, id string) (entities.Commission, error) {
	c, err := scanCommission(r.q.QueryRow(ctx, `
		SELECT `+commissionColumns+` FROM commissions c LEFT JOIN users u ON u.id = c.employee_id
		WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Commission{}, nil
		}
		return entities.Commission{}, fmt.Errorf("get commission: %w", err)
	}
	return c, nil
}

func (r *CommissionRepo) List(ctx context.Context, filter entities.CommissionFilter) ([]entities.Commission, error) {
	var w where
	if filter.EmployeeID != "" {
		w.add("c.employee_id = $%d", filter.EmployeeID)
	}
	if filter.Status != "" {
		w.add("c.status = $%d", filter.Status)
	}
	query := `SELECT ` + commissionColumns + ` FROM commissions c LEFT JOIN users u ON u.id = c.employee_id` +
		w.sql() + ` ORDER BY c.created_at DESC` + w.page(filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list commissions: %w", err)
	}
	defer rows.Close()

	var list []entities.Commission
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan commission: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CommissionRepo) MarkPaid(ctx context.Context, id string, paidAt time.Time) (entities.Commission, error) {
	tag, err := r.q.Exec(ctx, `UPDATE commissions SET status = 'Paga', paid_at = $2 WHERE id = $1 AND status <> 'Paga'`, id, paidAt)
	if err != nil {
		return entities.Commission{}, fmt.Errorf("pay commission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.Commission{}, nil
	}
	return r.GetByID(ctx, id)
}
