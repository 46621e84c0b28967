package interfaces

import (
	"context"

	"mecanica_gestao/internal/domain/entities"
)

// IServiceOrderRepository reads service orders with their linked receivables.
// Creation and cancellation go through IBackendRPC.
type IServiceOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, filter entities.ServiceOrderFilter) ([]entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.ServiceOrderStatus) (entities.ServiceOrder, error)
}
