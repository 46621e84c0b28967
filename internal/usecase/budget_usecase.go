package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/domain/rules"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotFound    = errors.New("budget not found")
	ErrInvalidBudgetID   = errors.New("invalid budget id")
	ErrInvalidBudget     = errors.New("invalid budget")
	ErrInvalidBudgetItem = errors.New("invalid budget item")
)

// IBudgetUseCase exposes budget (orçamento) operations.
//
//   - Create/List/GetByID: plain gateway calls.
//   - UpdateStatus: manual moves checked by rules.ValidateBudgetTransition.
//   - ConvertToOrder / FinalizeToOrder: rules.ValidateOSCreation against current
//     stock, then the backend procedure does the atomic conversion.
type IBudgetUseCase interface {
	Create(ctx context.Context, actorID string, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	List(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error)
	UpdateStatus(ctx context.Context, actorID string, id string, status entities.BudgetStatus) (entities.Budget, error)
	ConvertToOrder(ctx context.Context, actorID string, id string) (entities.ConvertBudgetResponse, error)
	FinalizeToOrder(ctx context.Context, actorID string, id string, financial entities.FinancialPayload) (entities.FinalizeBudgetResponse, error)
}

type BudgetUseCase struct {
	repo      interfaces.IBudgetRepository
	stockRepo interfaces.IStockRepository
	rpc       interfaces.IBackendRPC
	audit     interfaces.IAuditLogger
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, stockRepo interfaces.IStockRepository, rpc interfaces.IBackendRPC, audit interfaces.IAuditLogger) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, stockRepo: stockRepo, rpc: rpc, audit: audit}
}

func (u *BudgetUseCase) Create(ctx context.Context, actorID string, b entities.Budget) (entities.Budget, error) {
	b.CustomerID = strings.TrimSpace(b.CustomerID)
	b.VehicleID = strings.TrimSpace(b.VehicleID)
	if b.CustomerID == "" || b.VehicleID == "" || len(b.Items) == 0 || b.Discount.IsNegative() {
		return entities.Budget{}, ErrInvalidBudget
	}

	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.Status = entities.BudgetStatusDraft
	b.CreatedBy = actorID
	b.CreatedAt = now
	b.UpdatedAt = now
	for i := range b.Items {
		it := &b.Items[i]
		it.Description = strings.TrimSpace(it.Description)
		if it.Description == "" || !it.Quantity.IsPositive() || it.UnitPrice.IsNegative() {
			return entities.Budget{}, ErrInvalidBudgetItem
		}
		switch it.ItemType {
		case entities.BudgetItemProduct:
			if strings.TrimSpace(it.VariantID) == "" {
				return entities.Budget{}, ErrInvalidBudgetItem
			}
		case entities.BudgetItemService:
			it.VariantID = ""
		default:
			return entities.Budget{}, ErrInvalidBudgetItem
		}
		it.ID = uuid.NewString()
		it.BudgetID = b.ID
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		log.Error().Err(err).Str("customer_id", b.CustomerID).Msg("[budget][usecase] create failed")
		return entities.Budget{}, err
	}
	u.audit.Log(actorID, "create_budget", map[string]any{"budget_id": created.ID, "number": created.Number, "total": created.Total()})
	return created, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) List(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, ErrInvalidBudget
	}
	return u.repo.List(ctx, filter)
}

func (u *BudgetUseCase) UpdateStatus(ctx context.Context, actorID string, id string, status entities.BudgetStatus) (entities.Budget, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if err := violation(rules.ValidateBudgetTransition(b.Status, status)); err != nil {
		log.Info().Str("budget_id", b.ID).Str("from", string(b.Status)).Str("to", string(status)).Msg("[budget][usecase] transition rejected")
		return entities.Budget{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, b.ID, status)
	if err != nil {
		log.Error().Err(err).Str("budget_id", b.ID).Msg("[budget][usecase] update status failed")
		return entities.Budget{}, err
	}
	u.audit.Log(actorID, "update_budget_status", map[string]any{"budget_id": b.ID, "from": b.Status, "to": status})
	return updated, nil
}

func (u *BudgetUseCase) ConvertToOrder(ctx context.Context, actorID string, id string) (entities.ConvertBudgetResponse, error) {
	b, err := u.checkConvertible(ctx, id)
	if err != nil {
		return entities.ConvertBudgetResponse{}, err
	}

	res, err := u.rpc.ConvertBudgetToOS(ctx, entities.ConvertBudgetRequest{BudgetID: b.ID, UserID: actorID})
	if err != nil {
		rpcFailureEvent(err).Str("budget_id", b.ID).Msg("[budget][usecase] convert rpc failed")
		return entities.ConvertBudgetResponse{}, err
	}
	log.Info().Str("budget_id", b.ID).Str("service_order_id", res.ServiceOrderID).Msg("[budget][usecase] converted")
	u.audit.Log(actorID, "convert_budget_to_os", map[string]any{"budget_id": b.ID, "service_order_id": res.ServiceOrderID, "order_number": res.OrderNumber})
	return res, nil
}

func (u *BudgetUseCase) FinalizeToOrder(ctx context.Context, actorID string, id string, financial entities.FinancialPayload) (entities.FinalizeBudgetResponse, error) {
	b, err := u.checkConvertible(ctx, id)
	if err != nil {
		return entities.FinalizeBudgetResponse{}, err
	}

	res, err := u.rpc.CreateOSFromBudget(ctx, entities.FinalizeBudgetRequest{BudgetID: b.ID, UserID: actorID, Financial: financial})
	if err != nil {
		rpcFailureEvent(err).Str("budget_id", b.ID).Msg("[budget][usecase] finalize rpc failed")
		return entities.FinalizeBudgetResponse{}, err
	}
	u.audit.Log(actorID, "create_os_from_budget", map[string]any{
		"budget_id":        b.ID,
		"service_order_id": res.ServiceOrderID,
		"installments":     financial.Installments,
		"payment_method":   financial.PaymentMethod,
	})
	return res, nil
}

// checkConvertible loads the budget and its stock snapshot and applies the
// conversion rule. Stock lookup failures are returned; the backend stays the
// authority on stock.
func (u *BudgetUseCase) checkConvertible(ctx context.Context, id string) (entities.Budget, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status != entities.BudgetStatusApproved {
		return entities.Budget{}, violation(rules.ValidateOSCreation(&b, nil))
	}

	variantIDs := productVariantIDs(b.Items)
	var stock map[string]decimal.Decimal
	if len(variantIDs) > 0 {
		stock, err = u.stockRepo.AvailableByVariants(ctx, variantIDs)
		if err != nil {
			log.Error().Err(err).Str("budget_id", b.ID).Msg("[budget][usecase] stock lookup failed")
			return entities.Budget{}, err
		}
	}
	if err := violation(rules.ValidateOSCreation(&b, stock)); err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func productVariantIDs(items []entities.BudgetItem) []string {
	seen := make(map[string]struct{}, len(items))
	var ids []string
	for _, it := range items {
		if it.ItemType != entities.BudgetItemProduct || it.VariantID == "" {
			continue
		}
		if _, ok := seen[it.VariantID]; ok {
			continue
		}
		seen[it.VariantID] = struct{}{}
		ids = append(ids, it.VariantID)
	}
	return ids
}
