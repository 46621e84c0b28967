package interfaces

import (
	"context"

	"mecanica_gestao/internal/domain/entities"
)

// IPaymentChargeRepository abstracts DynamoDB persistence for online charges.
type IPaymentChargeRepository interface {
	Create(ctx context.Context, c entities.PaymentCharge) (entities.PaymentCharge, error)
	GetByID(ctx context.Context, id string) (entities.PaymentCharge, error)
	ListByReceivableID(ctx context.Context, receivableID string) ([]entities.PaymentCharge, error)
	// Update overwrites an existing charge's provider status and payload.
	Update(ctx context.Context, c entities.PaymentCharge) (entities.PaymentCharge, error)
}
