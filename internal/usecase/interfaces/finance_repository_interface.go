package interfaces

import (
	"context"
	"time"

	"mecanica_gestao/internal/domain/entities"
)

type IReceivableRepository interface {
	GetByID(ctx context.Context, id string) (entities.Receivable, error)
	List(ctx context.Context, filter entities.ReceivableFilter) ([]entities.Receivable, error)
	RegisterPayment(ctx context.Context, p entities.PaymentRegistration) (entities.Receivable, error)
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

type IPayableRepository interface {
	Create(ctx context.Context, p entities.Payable) (entities.Payable, error)
	GetByID(ctx context.Context, id string) (entities.Payable, error)
	List(ctx context.Context, filter entities.PayableFilter) ([]entities.Payable, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (entities.Payable, error)
}

type ICommissionRepository interface {
	GetByID(ctx context.Context, id string) (entities.Commission, error)
	List(ctx context.Context, filter entities.CommissionFilter) ([]entities.Commission, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (entities.Commission, error)
}
