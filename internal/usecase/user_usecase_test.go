package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"
	mock_interfaces "mecanica_gestao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type userMocks struct {
	auth      *mock_interfaces.MockIAuthBackend
	storage   *mock_interfaces.MockIObjectStorage
	email     *mock_interfaces.MockIEmailSender
	auditRepo *mock_interfaces.MockIAuditLogRepository
	audit     *mock_interfaces.MockIAuditLogger
}

func newUserUC(t *testing.T) (*UserUseCase, userMocks) {
	ctrl := gomock.NewController(t)
	m := userMocks{
		auth:      mock_interfaces.NewMockIAuthBackend(ctrl),
		storage:   mock_interfaces.NewMockIObjectStorage(ctrl),
		email:     mock_interfaces.NewMockIEmailSender(ctrl),
		auditRepo: mock_interfaces.NewMockIAuditLogRepository(ctrl),
		audit:     mock_interfaces.NewMockIAuditLogger(ctrl),
	}
	return NewUserUseCase(m.auth, m.storage, m.email, m.auditRepo, m.audit, "https://console.local/reset"), m
}

func TestUserUseCase_Create(t *testing.T) {
	t.Run("rejects unknown role", func(t *testing.T) {
		uc, _ := newUserUC(t)
		_, err := uc.Create(context.Background(), "admin-1", interfaces.NewUser{Email: "a@b.c", Name: "Ana", Role: "root", Password: "12345678"})
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("rejects short password", func(t *testing.T) {
		uc, _ := newUserUC(t)
		_, err := uc.Create(context.Background(), "admin-1", interfaces.NewUser{Email: "a@b.c", Name: "Ana", Role: entities.RoleMechanic, Password: "123"})
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("normalizes email and audits", func(t *testing.T) {
		uc, m := newUserUC(t)
		m.auth.EXPECT().AdminCreateUser(gomock.Any(), interfaces.NewUser{Email: "ana@oficina.com", Name: "Ana", Role: entities.RoleAttendant, Password: "segredo123"}).
			Return(entities.User{ID: "u-1", Email: "ana@oficina.com", Role: entities.RoleAttendant}, nil)
		m.audit.EXPECT().Log("admin-1", "create_user", gomock.Any())

		u, err := uc.Create(context.Background(), "admin-1", interfaces.NewUser{Email: " Ana@Oficina.com ", Name: "Ana ", Role: entities.RoleAttendant, Password: "segredo123"})
		if err != nil || u.ID != "u-1" {
			t.Fatalf("unexpected result: %+v err=%v", u, err)
		}
	})
}

func TestUserUseCase_UploadAvatar(t *testing.T) {
	t.Run("rejects unsupported type", func(t *testing.T) {
		uc, _ := newUserUC(t)
		if _, err := uc.UploadAvatar(context.Background(), "u-1", "u-1", "image/gif", strings.NewReader("x")); !errors.Is(err, ErrInvalidAvatar) {
			t.Fatalf("expected ErrInvalidAvatar, got %v", err)
		}
	})

	t.Run("stores under user folder", func(t *testing.T) {
		uc, m := newUserUC(t)
		m.auth.EXPECT().AdminGetUser(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Name: "Ana"}, nil)
		var stored string
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", gomock.Any()).DoAndReturn(func(_ context.Context, p, _ string, _ any) error {
			stored = p
			return nil
		})
		m.storage.EXPECT().PublicURL(gomock.Any()).DoAndReturn(func(p string) string { return "https://cdn/" + p })
		m.auth.EXPECT().AdminUpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
			return u, nil
		})
		m.audit.EXPECT().Log("u-1", "upload_avatar", gomock.Any())

		u, err := uc.UploadAvatar(context.Background(), "u-1", "u-1", "image/png", strings.NewReader("png"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(stored, "avatars/u-1/") || !strings.HasSuffix(stored, ".png") {
			t.Fatalf("unexpected path %q", stored)
		}
		if u.AvatarURL != "https://cdn/"+stored {
			t.Fatalf("unexpected avatar url %q", u.AvatarURL)
		}
	})
}

func TestUserUseCase_RequestPasswordReset(t *testing.T) {
	t.Run("unknown email is silent", func(t *testing.T) {
		uc, m := newUserUC(t)
		m.auth.EXPECT().RequestPasswordReset(gomock.Any(), "ghost@x.com").Return("", interfaces.ErrUserNotFound)

		if err := uc.RequestPasswordReset(context.Background(), "ghost@x.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("emails the link", func(t *testing.T) {
		uc, m := newUserUC(t)
		m.auth.EXPECT().RequestPasswordReset(gomock.Any(), "ana@x.com").Return("tok", nil)
		m.email.EXPECT().Send(gomock.Any(), "ana@x.com", gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _, _, body string) error {
			if !strings.Contains(body, "https://console.local/reset?token=tok") {
				t.Fatalf("unexpected body %q", body)
			}
			return nil
		})

		if err := uc.RequestPasswordReset(context.Background(), "ANA@x.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_AuditTrail(t *testing.T) {
	uc, m := newUserUC(t)
	if _, err := uc.AuditTrail(context.Background(), "not-a-uuid", 10); !errors.Is(err, ErrInvalidAuditUserID) {
		t.Fatalf("expected ErrInvalidAuditUserID, got %v", err)
	}

	m.auditRepo.EXPECT().ListByUser(gomock.Any(), budgetID, 50).Return(nil, nil)
	if _, err := uc.AuditTrail(context.Background(), budgetID, 1000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDashboardUseCase(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 18, 30, 0, 0, time.UTC)

	t.Run("rejects inverted range", func(t *testing.T) {
		uc := NewDashboardUseCase(mock_interfaces.NewMockIBackendRPC(gomock.NewController(t)))
		if _, err := uc.FinancialKPIs(context.Background(), end, start); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("overview aggregates every block", func(t *testing.T) {
		rpc := mock_interfaces.NewMockIBackendRPC(gomock.NewController(t))
		uc := NewDashboardUseCase(rpc)
		rng := entities.DateRangeRequest{StartDate: start, EndDate: end}
		rpc.EXPECT().GetFinancialKPIs(gomock.Any(), rng).Return(entities.FinancialKPIs{}, nil)
		rpc.EXPECT().GetOSMetrics(gomock.Any(), rng).Return(entities.OSMetrics{}, nil)
		rpc.EXPECT().GetStockMetrics(gomock.Any()).Return(entities.StockMetrics{}, nil)
		rpc.EXPECT().GetDailyFinancialSummary(gomock.Any(), entities.DailySummaryRequest{Date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)}).
			Return(entities.DailyFinancialSummary{}, nil)

		if _, err := uc.Overview(context.Background(), start, end); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("overview stops at first failure", func(t *testing.T) {
		rpc := mock_interfaces.NewMockIBackendRPC(gomock.NewController(t))
		uc := NewDashboardUseCase(rpc)
		rpc.EXPECT().GetFinancialKPIs(gomock.Any(), gomock.Any()).Return(entities.FinancialKPIs{}, errors.New("boom"))

		if _, err := uc.Overview(context.Background(), start, end); err == nil {
			t.Fatalf("expected error")
		}
	})
}
