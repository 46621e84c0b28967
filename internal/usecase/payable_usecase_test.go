package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_gestao/internal/domain/entities"
	mock_interfaces "mecanica_gestao/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type payableMocks struct {
	repo        *mock_interfaces.MockIPayableRepository
	commissions *mock_interfaces.MockICommissionRepository
	audit       *mock_interfaces.MockIAuditLogger
}

func newPayableUC(t *testing.T) (*PayableUseCase, payableMocks) {
	ctrl := gomock.NewController(t)
	m := payableMocks{
		repo:        mock_interfaces.NewMockIPayableRepository(ctrl),
		commissions: mock_interfaces.NewMockICommissionRepository(ctrl),
		audit:       mock_interfaces.NewMockIAuditLogger(ctrl),
	}
	return NewPayableUseCase(m.repo, m.commissions, m.audit), m
}

func TestPayableUseCase_Create(t *testing.T) {
	due := time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)

	t.Run("non positive amount", func(t *testing.T) {
		uc, _ := newPayableUC(t)
		_, err := uc.Create(context.Background(), "actor", entities.Payable{Supplier: "Auto Peças", Description: "Filtros", Amount: decimal.Zero, DueDate: due})
		if !errors.Is(err, ErrInvalidPayable) {
			t.Fatalf("expected ErrInvalidPayable, got %v", err)
		}
	})

	t.Run("starts pending", func(t *testing.T) {
		uc, m := newPayableUC(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payable) (entities.Payable, error) {
				if p.Status != entities.PayableStatusPending || p.ID == "" || p.PaidAt != nil {
					t.Fatalf("unexpected payable: %+v", p)
				}
				return p, nil
			},
		)
		m.audit.EXPECT().Log("actor", "create_payable", gomock.Any())

		paidAt := time.Now()
		_, err := uc.Create(context.Background(), "actor", entities.Payable{
			Supplier: "Auto Peças", Description: "Filtros", Amount: decimal.NewFromInt(120), DueDate: due,
			Status: entities.PayableStatusPaid, PaidAt: &paidAt,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPayableUseCase_Pay(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newPayableUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payable{}, nil)

		if _, err := uc.Pay(context.Background(), "actor", "p-1"); !errors.Is(err, ErrPayableNotFound) {
			t.Fatalf("expected ErrPayableNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		uc, m := newPayableUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payable{ID: "p-1", Status: entities.PayableStatusPaid}, nil)

		if _, err := uc.Pay(context.Background(), "actor", "p-1"); !errors.Is(err, ErrPayableAlreadyPaid) {
			t.Fatalf("expected ErrPayableAlreadyPaid, got %v", err)
		}
	})

	t.Run("overdue can be paid", func(t *testing.T) {
		uc, m := newPayableUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payable{ID: "p-1", Status: entities.PayableStatusOverdue}, nil)
		m.repo.EXPECT().MarkPaid(gomock.Any(), "p-1", gomock.Any()).Return(entities.Payable{ID: "p-1", Status: entities.PayableStatusPaid}, nil)
		m.audit.EXPECT().Log("actor", "pay_payable", gomock.Any())

		p, err := uc.Pay(context.Background(), "actor", " p-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PayableStatusPaid {
			t.Fatalf("expected paid, got %s", p.Status)
		}
	})
}

func TestPayableUseCase_PayCommission(t *testing.T) {
	t.Run("already paid", func(t *testing.T) {
		uc, m := newPayableUC(t)
		m.commissions.EXPECT().GetByID(gomock.Any(), "cm-1").Return(entities.Commission{ID: "cm-1", Status: entities.CommissionStatusPaid}, nil)

		if _, err := uc.PayCommission(context.Background(), "actor", "cm-1"); !errors.Is(err, ErrCommissionAlreadyPaid) {
			t.Fatalf("expected ErrCommissionAlreadyPaid, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newPayableUC(t)
		m.commissions.EXPECT().GetByID(gomock.Any(), "cm-1").Return(entities.Commission{ID: "cm-1", Status: entities.CommissionStatusPending}, nil)
		m.commissions.EXPECT().MarkPaid(gomock.Any(), "cm-1", gomock.Any()).Return(entities.Commission{ID: "cm-1", Status: entities.CommissionStatusPaid}, nil)
		m.audit.EXPECT().Log("actor", "pay_commission", gomock.Any())

		if _, err := uc.PayCommission(context.Background(), "actor", "cm-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
