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
	ErrPayableNotFound       = errors.New("payable not found")
	ErrInvalidPayable        = errors.New("invalid payable")
	ErrPayableAlreadyPaid    = errors.New("payable already paid")
	ErrCommissionNotFound    = errors.New("commission not found")
	ErrCommissionAlreadyPaid = errors.New("commission already paid")
)

// IPayableUseCase covers contas a pagar and employee commissions.
type IPayableUseCase interface {
	Create(ctx context.Context, actorID string, p entities.Payable) (entities.Payable, error)
	List(ctx context.Context, filter entities.PayableFilter) ([]entities.Payable, error)
	Pay(ctx context.Context, actorID string, id string) (entities.Payable, error)
	ListCommissions(ctx context.Context, filter entities.CommissionFilter) ([]entities.Commission, error)
	PayCommission(ctx context.Context, actorID string, id string) (entities.Commission, error)
}

type PayableUseCase struct {
	repo           interfaces.IPayableRepository
	commissionRepo interfaces.ICommissionRepository
	audit          interfaces.IAuditLogger
}

var _ IPayableUseCase = (*PayableUseCase)(nil)

func NewPayableUseCase(repo interfaces.IPayableRepository, commissionRepo interfaces.ICommissionRepository, audit interfaces.IAuditLogger) *PayableUseCase {
	return &PayableUseCase{repo: repo, commissionRepo: commissionRepo, audit: audit}
}

func (u *PayableUseCase) Create(ctx context.Context, actorID string, p entities.Payable) (entities.Payable, error) {
	p.Supplier = strings.TrimSpace(p.Supplier)
	p.Description = strings.TrimSpace(p.Description)
	if p.Supplier == "" || p.Description == "" || !p.Amount.IsPositive() || p.DueDate.IsZero() {
		return entities.Payable{}, ErrInvalidPayable
	}
	p.ID = uuid.NewString()
	p.Status = entities.PayableStatusPending
	p.PaidAt = nil
	p.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Payable{}, err
	}
	u.audit.Log(actorID, "create_payable", map[string]any{"payable_id": created.ID, "amount": created.Amount})
	return created, nil
}

func (u *PayableUseCase) List(ctx context.Context, filter entities.PayableFilter) ([]entities.Payable, error) {
	return u.repo.List(ctx, filter)
}

func (u *PayableUseCase) Pay(ctx context.Context, actorID string, id string) (entities.Payable, error) {
	p, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Payable{}, err
	}
	if p.ID == "" {
		return entities.Payable{}, ErrPayableNotFound
	}
	if p.Status == entities.PayableStatusPaid {
		return entities.Payable{}, ErrPayableAlreadyPaid
	}

	paid, err := u.repo.MarkPaid(ctx, p.ID, time.Now().UTC())
	if err != nil {
		return entities.Payable{}, err
	}
	u.audit.Log(actorID, "pay_payable", map[string]any{"payable_id": p.ID, "amount": p.Amount})
	return paid, nil
}

func (u *PayableUseCase) ListCommissions(ctx context.Context, filter entities.CommissionFilter) ([]entities.Commission, error) {
	return u.commissionRepo.List(ctx, filter)
}

func (u *PayableUseCase) PayCommission(ctx context.Context, actorID string, id string) (entities.Commission, error) {
	c, err := u.commissionRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Commission{}, err
	}
	if c.ID == "" {
		return entities.Commission{}, ErrCommissionNotFound
	}
	if c.Status == entities.CommissionStatusPaid {
		return entities.Commission{}, ErrCommissionAlreadyPaid
	}

	paid, err := u.commissionRepo.MarkPaid(ctx, c.ID, time.Now().UTC())
	if err != nil {
		return entities.Commission{}, err
	}
	u.audit.Log(actorID, "pay_commission", map[string]any{"commission_id": c.ID, "employee_id": c.EmployeeID, "amount": c.Amount})
	return paid, nil
}
