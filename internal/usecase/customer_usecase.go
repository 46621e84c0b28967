package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidCustomer  = errors.New("invalid customer")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrInvalidVehicle   = errors.New("invalid vehicle")
)

type ICustomerUseCase interface {
	Create(ctx context.Context, actorID string, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, search string, limit int, offset int) ([]entities.Customer, error)
	Update(ctx context.Context, actorID string, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, actorID string, id string) error
	AddVehicle(ctx context.Context, actorID string, v entities.Vehicle) (entities.Vehicle, error)
	ListVehicles(ctx context.Context, customerID string) ([]entities.Vehicle, error)
	UpdateVehicle(ctx context.Context, actorID string, v entities.Vehicle) (entities.Vehicle, error)
	DeleteVehicle(ctx context.Context, actorID string, id string) error
}

type CustomerUseCase struct {
	repo        interfaces.ICustomerRepository
	vehicleRepo interfaces.IVehicleRepository
	audit       interfaces.IAuditLogger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, vehicleRepo interfaces.IVehicleRepository, audit interfaces.IAuditLogger) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, vehicleRepo: vehicleRepo, audit: audit}
}

func (u *CustomerUseCase) Create(ctx context.Context, actorID string, c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}
	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	u.audit.Log(actorID, "create_customer", map[string]any{"customer_id": created.ID, "name": created.Name})
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	c, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context, search string, limit int, offset int) ([]entities.Customer, error) {
	return u.repo.List(ctx, strings.TrimSpace(search), limit, offset)
}

func (u *CustomerUseCase) Update(ctx context.Context, actorID string, c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}
	existing, err := u.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Customer{}, err
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	u.audit.Log(actorID, "update_customer", map[string]any{"customer_id": c.ID})
	return updated, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, actorID string, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.audit.Log(actorID, "delete_customer", map[string]any{"customer_id": id})
	return nil
}

func (u *CustomerUseCase) AddVehicle(ctx context.Context, actorID string, v entities.Vehicle) (entities.Vehicle, error) {
	v.Plate = normalizePlate(v.Plate)
	if v.Plate == "" || strings.TrimSpace(v.Model) == "" {
		return entities.Vehicle{}, ErrInvalidVehicle
	}
	if _, err := u.GetByID(ctx, v.CustomerID); err != nil {
		return entities.Vehicle{}, err
	}
	now := time.Now().UTC()
	v.ID = uuid.NewString()
	v.CreatedAt = now
	v.UpdatedAt = now

	created, err := u.vehicleRepo.Create(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	u.audit.Log(actorID, "create_vehicle", map[string]any{"vehicle_id": created.ID, "customer_id": v.CustomerID, "plate": v.Plate})
	return created, nil
}

func (u *CustomerUseCase) ListVehicles(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	if _, err := u.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return u.vehicleRepo.ListByCustomer(ctx, customerID)
}

func (u *CustomerUseCase) UpdateVehicle(ctx context.Context, actorID string, v entities.Vehicle) (entities.Vehicle, error) {
	v.Plate = normalizePlate(v.Plate)
	if v.Plate == "" || strings.TrimSpace(v.Model) == "" {
		return entities.Vehicle{}, ErrInvalidVehicle
	}
	existing, err := u.vehicleRepo.GetByID(ctx, v.ID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if existing.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	v.CustomerID = existing.CustomerID
	v.CreatedAt = existing.CreatedAt
	v.UpdatedAt = time.Now().UTC()

	updated, err := u.vehicleRepo.Update(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	u.audit.Log(actorID, "update_vehicle", map[string]any{"vehicle_id": v.ID})
	return updated, nil
}

func (u *CustomerUseCase) DeleteVehicle(ctx context.Context, actorID string, id string) error {
	existing, err := u.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrVehicleNotFound
	}
	if err := u.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}
	u.audit.Log(actorID, "delete_vehicle", map[string]any{"vehicle_id": id})
	return nil
}

// normalizePlate uppercases and strips separators: "abc-1d23" -> "ABC1D23".
func normalizePlate(p string) string {
	p = strings.ToUpper(strings.TrimSpace(p))
	return strings.NewReplacer("-", "", " ", "").Replace(p)
}
