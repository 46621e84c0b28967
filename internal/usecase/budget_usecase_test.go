package usecase

import (
	"context"
	"errors"
	"testing"

	"mecanica_gestao/internal/domain/entities"
	mock_interfaces "mecanica_gestao/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const budgetID = "5f0c8a3e-3b7e-4c1a-9a57-2d1f6f1f0a11"

type budgetMocks struct {
	repo  *mock_interfaces.MockIBudgetRepository
	stock *mock_interfaces.MockIStockRepository
	rpc   *mock_interfaces.MockIBackendRPC
	audit *mock_interfaces.MockIAuditLogger
}

func newBudgetUC(t *testing.T) (*BudgetUseCase, budgetMocks) {
	ctrl := gomock.NewController(t)
	m := budgetMocks{
		repo:  mock_interfaces.NewMockIBudgetRepository(ctrl),
		stock: mock_interfaces.NewMockIStockRepository(ctrl),
		rpc:   mock_interfaces.NewMockIBackendRPC(ctrl),
		audit: mock_interfaces.NewMockIAuditLogger(ctrl),
	}
	return NewBudgetUseCase(m.repo, m.stock, m.rpc, m.audit), m
}

func approved(items ...entities.BudgetItem) entities.Budget {
	return entities.Budget{ID: budgetID, Number: 42, Status: entities.BudgetStatusApproved, Items: items}
}

func productItem(desc, variant string, qty int64) entities.BudgetItem {
	return entities.BudgetItem{ItemType: entities.BudgetItemProduct, Description: desc, VariantID: variant, Quantity: decimal.NewFromInt(qty), UnitPrice: decimal.NewFromInt(30)}
}

func TestBudgetUseCase_Create(t *testing.T) {
	t.Run("missing customer", func(t *testing.T) {
		uc, _ := newBudgetUC(t)
		_, err := uc.Create(context.Background(), "", entities.Budget{VehicleID: "v", Items: []entities.BudgetItem{productItem("Filtro", "var-1", 1)}})
		if !errors.Is(err, ErrInvalidBudget) {
			t.Fatalf("expected ErrInvalidBudget, got %v", err)
		}
	})

	t.Run("product without variant", func(t *testing.T) {
		uc, _ := newBudgetUC(t)
		_, err := uc.Create(context.Background(), "", entities.Budget{CustomerID: "c", VehicleID: "v", Items: []entities.BudgetItem{productItem("Filtro", "", 1)}})
		if !errors.Is(err, ErrInvalidBudgetItem) {
			t.Fatalf("expected ErrInvalidBudgetItem, got %v", err)
		}
	})

	t.Run("success starts as draft", func(t *testing.T) {
		uc, m := newBudgetUC(t)
		svc := entities.BudgetItem{ItemType: entities.BudgetItemService, Description: "Troca de óleo", VariantID: "ignored", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(80)}

		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.ID == "" || b.Status != entities.BudgetStatusDraft || b.CreatedBy != "actor" {
					t.Fatalf("unexpected budget: %+v", b)
				}
				if b.Items[1].VariantID != "" || b.Items[0].BudgetID != b.ID {
					t.Fatalf("unexpected items: %+v", b.Items)
				}
				b.Number = 7
				return b, nil
			},
		)
		m.audit.EXPECT().Log("actor", "create_budget", gomock.Any())

		res, err := uc.Create(context.Background(), "actor", entities.Budget{
			CustomerID: " c-1 ", VehicleID: "v-1",
			Items: []entities.BudgetItem{productItem("Filtro", "var-1", 1), svc},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Number != 7 || res.CustomerID != "c-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestBudgetUseCase_UpdateStatus(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newBudgetUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), budgetID).Return(entities.Budget{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "", budgetID, entities.BudgetStatusApproved)
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("converted is terminal", func(t *testing.T) {
		uc, m := newBudgetUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), budgetID).Return(entities.Budget{ID: budgetID, Status: entities.BudgetStatusConverted}, nil)

		_, err := uc.UpdateStatus(context.Background(), "", budgetID, entities.BudgetStatusDraft)
		if !errors.Is(err, ErrRuleViolation) {
			t.Fatalf("expected ErrRuleViolation, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newBudgetUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), budgetID).Return(entities.Budget{ID: budgetID, Status: entities.BudgetStatusPending}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), budgetID, entities.BudgetStatusApproved).Return(entities.Budget{ID: budgetID, Status: entities.BudgetStatusApproved}, nil)
		m.audit.EXPECT().Log("actor", "update_budget_status", gomock.Any())

		res, err := uc.UpdateStatus(context.Background(), "actor", budgetID, entities.BudgetStatusApproved)
		if err != nil || res.Status != entities.BudgetStatusApproved {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})
}

func TestBudgetUseCase_ConvertToOrder(t *testing.T) {
	t.Run("draft budget skips stock lookup", func(t *testing.T) {
		uc, m := newBudgetUC(t)
		b := approved(productItem("Filtro", "var-1", 2))
		b.Status = entities.BudgetStatusDraft
		m.repo.EXPECT().GetByID(gomock.Any(), budgetID).Return(b, nil)

		_, err := uc.ConvertToOrder(context.Background(), "", budgetID)
		var rv *RuleViolationError
		if !errors.As(err, &rv) || len(rv.Result.Errors) != 1 {
			t.Fatalf("expected single rule violation, got %v", err)
		}
	})

	t.Run("stock shortage reports each item", func(t *testing.T) {
		uc, m := newBudgetUC(t)
		b := approved(productItem("Filtro", "var-1", 2), productItem("Vela", "var-2", 4), productItem("Pastilha", "var-1", 1))
		m.repo.EXPECT().GetByID(gomock.Any(), budgetID).Return(b, nil)
		m.stock.EXPECT().AvailableByVariants(gomock.Any(), []string{"var-1", "var-2"}).Return(map[string]decimal.Decimal{
			"var-1": decimal.NewFromInt(1),
			"var-2": decimal.NewFromInt(1),
		}, nil)

		_, err := uc.ConvertToOrder(context.Background(), "", budgetID)
		var rv *RuleViolationError
		if !errors.As(err, &rv) {
			t.Fatalf("expected rule violation, got %v", err)
		}
		if len(rv.Result.Errors) != 2 {
			t.Fatalf("expected 2 shortage errors, got %v", rv.Result.Errors)
		}
	})

	t.Run("stock lookup error", func(t *testing.T) {
		uc, m := newBudgetUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), budgetID).Return(approved(productItem("Filtro", "var-1", 2)), nil)
		m.stock.EXPECT().AvailableByVariants(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.ConvertToOrder(context.Background(), "", budgetID)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("rpc rejection is returned", func(t *testing.T) {
		uc, m := newBudgetUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), budgetID).Return(approved(), nil)
		m.rpc.EXPECT().ConvertBudgetToOS(gomock.Any(), gomock.Any()).Return(entities.ConvertBudgetResponse{}, errors.New("rejected"))

		if _, err := uc.ConvertToOrder(context.Background(), "", budgetID); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("success audits conversion", func(t *testing.T) {
		uc, m := newBudgetUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), budgetID).Return(approved(productItem("Filtro", "var-1", 2)), nil)
		m.stock.EXPECT().AvailableByVariants(gomock.Any(), []string{"var-1"}).Return(map[string]decimal.Decimal{"var-1": decimal.NewFromInt(5)}, nil)
		m.rpc.EXPECT().ConvertBudgetToOS(gomock.Any(), entities.ConvertBudgetRequest{BudgetID: budgetID, UserID: "actor"}).
			Return(entities.ConvertBudgetResponse{ServiceOrderID: "os-1", OrderNumber: 100}, nil)
		m.audit.EXPECT().Log("actor", "convert_budget_to_os", gomock.Any())

		res, err := uc.ConvertToOrder(context.Background(), "actor", budgetID)
		if err != nil || res.ServiceOrderID != "os-1" {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})
}

func TestBudgetUseCase_FinalizeToOrder(t *testing.T) {
	uc, m := newBudgetUC(t)
	financial := entities.FinancialPayload{PaymentMethod: "pix", Installments: 2}
	m.repo.EXPECT().GetByID(gomock.Any(), budgetID).Return(approved(), nil)
	m.rpc.EXPECT().CreateOSFromBudget(gomock.Any(), entities.FinalizeBudgetRequest{BudgetID: budgetID, UserID: "actor", Financial: financial}).
		Return(entities.FinalizeBudgetResponse{ServiceOrderID: "os-2", ReceivableIDs: []string{"r-1", "r-2"}}, nil)
	m.audit.EXPECT().Log("actor", "create_os_from_budget", gomock.Any())

	res, err := uc.FinalizeToOrder(context.Background(), "actor", budgetID, financial)
	if err != nil || len(res.ReceivableIDs) != 2 {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}
}
