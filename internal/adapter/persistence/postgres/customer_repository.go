package postgres

import (
	"context"
	"errors"
	"fmt"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const customerColumns = `id, name, document, email, phone, address, created_at, updated_at`

type CustomerRepo struct {
	q Querier
}

var _ interfaces.ICustomerRepository = (*CustomerRepo)(nil)

func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (entities.Customer, error) {
	var c entities.Customer
	var document, email, phone, address *string
	err := row.Scan(&c.ID, &c.Name, &document, &email, &phone, &address, &c.CreatedAt, &c.UpdatedAt)
	c.Document, c.Email, c.Phone, c.Address = derefString(document), derefString(email), derefString(phone), derefString(address)
	return c, err
}

func (r *CustomerRepo) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	_, err := r.q.Exec(ctx, `
		INSERT INTO customers (id, name, document, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Name, nullString(c.Document), nullString(c.Email), nullString(c.Phone), nullString(c.Address), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.Customer{}, interfaces.ErrDuplicate
		}
		return entities.Customer{}, fmt.Errorf("insert customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List matches search against name, document and phone.
func (r *CustomerRepo) List(ctx context.Context, search string, limit int, offset int) ([]entities.Customer, error) {
	var w where
	if search != "" {
		w.add("(name ILIKE $%[1]d OR document ILIKE $%[1]d OR phone ILIKE $%[1]d)", "%"+search+"%")
	}
	query := `SELECT ` + customerColumns + ` FROM customers` + w.sql() + ` ORDER BY name` + w.page(limit, offset)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []entities.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE customers SET name = $2, document = $3, email = $4, phone = $5, address = $6, updated_at = $7
		WHERE id = $1`,
		c.ID, c.Name, nullString(c.Document), nullString(c.Email), nullString(c.Phone), nullString(c.Address), c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.Customer{}, interfaces.ErrDuplicate
		}
		return entities.Customer{}, fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.Customer{}, nil
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

const vehicleColumns = `id, customer_id, plate, brand, model, year, color, mileage, created_at, updated_at`

type VehicleRepo struct {
	q Querier
}

var _ interfaces.IVehicleRepository = (*VehicleRepo)(nil)

func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

func scanVehicle(row pgx.Row) (entities.Vehicle, error) {
	var v entities.Vehicle
	var year, mileage *int
	var color *string
	err := row.Scan(&v.ID, &v.CustomerID, &v.Plate, &v.Brand, &v.Model, &year, &color, &mileage, &v.CreatedAt, &v.UpdatedAt)
	if year != nil {
		v.Year = *year
	}
	if mileage != nil {
		v.Mileage = *mileage
	}
	v.Color = derefString(color)
	return v, err
}

func (r *VehicleRepo) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	_, err := r.q.Exec(ctx, `
		INSERT INTO vehicles (id, customer_id, plate, brand, model, year, color, mileage, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		v.ID, v.CustomerID, v.Plate, v.Brand, v.Model, v.Year, nullString(v.Color), v.Mileage, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.Vehicle{}, interfaces.ErrDuplicate
		}
		return entities.Vehicle{}, fmt.Errorf("insert vehicle: %w", err)
	}
	return v, nil
}

func (r *VehicleRepo) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	v, err := scanVehicle(r.q.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, fmt.Errorf("get vehicle: %w", err)
	}
	return v, nil
}

func (r *VehicleRepo) ListByCustomer(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	rows, err := r.q.Query(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE customer_id = $1 ORDER BY plate`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var list []entities.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r *VehicleRepo) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE vehicles SET plate = $2, brand = $3, model = $4, year = $5, color = $6, mileage = $7, updated_at = $8
		WHERE id = $1`,
		v.ID, v.Plate, v.Brand, v.Model, v.Year, nullString(v.Color), v.Mileage, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.Vehicle{}, interfaces.ErrDuplicate
		}
		return entities.Vehicle{}, fmt.Errorf("update vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.Vehicle{}, nil
	}
	return r.GetByID(ctx, v.ID)
}

func (r *VehicleRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}
