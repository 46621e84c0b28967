package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"mecanica_gestao/internal/domain/entities"
	mock_interfaces "mecanica_gestao/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type receivableMocks struct {
	repo      *mock_interfaces.MockIReceivableRepository
	charges   *mock_interfaces.MockIPaymentChargeRepository
	customers *mock_interfaces.MockICustomerRepository
	gateway   *mock_interfaces.MockIPaymentGateway
	audit     *mock_interfaces.MockIAuditLogger
	sheet     *mock_interfaces.MockIReceivableSpreadsheet
}

func newReceivableUC(t *testing.T) (*ReceivableUseCase, receivableMocks) {
	ctrl := gomock.NewController(t)
	m := receivableMocks{
		repo:      mock_interfaces.NewMockIReceivableRepository(ctrl),
		charges:   mock_interfaces.NewMockIPaymentChargeRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
		audit:     mock_interfaces.NewMockIAuditLogger(ctrl),
		sheet:     mock_interfaces.NewMockIReceivableSpreadsheet(ctrl),
	}
	return NewReceivableUseCase(m.repo, m.charges, m.customers, m.gateway, m.audit, m.sheet), m
}

func pendingReceivable() entities.Receivable {
	return entities.Receivable{ID: "rec-1", CustomerID: "c-1", Amount: decimal.NewFromInt(100), Status: entities.ReceivableStatusPending}
}

func TestReceivableUseCase_RegisterPayment(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		valid bool
	}{
		{name: "above total", raw: "150"},
		{name: "exact total", raw: "100", valid: true},
		{name: "zero", raw: "0"},
		{name: "not a number", raw: "abc"},
		{name: "comma decimal", raw: "99,90", valid: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newReceivableUC(t)
			m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(pendingReceivable(), nil)
			if tc.valid {
				m.repo.EXPECT().RegisterPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.PaymentRegistration) (entities.Receivable, error) {
					if p.PaymentMethod != "dinheiro" || p.RegisteredBy != "actor" {
						t.Fatalf("unexpected registration: %+v", p)
					}
					r := pendingReceivable()
					r.Status = entities.ReceivableStatusPaid
					return r, nil
				})
				m.audit.EXPECT().Log("actor", "register_payment", gomock.Any())
			}

			_, err := uc.RegisterPayment(context.Background(), "actor", "rec-1", tc.raw, "")
			if tc.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrRuleViolation) {
				t.Fatalf("expected ErrRuleViolation, got %v", err)
			}
		})
	}

	t.Run("already paid", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		r := pendingReceivable()
		r.Status = entities.ReceivableStatusPaid
		m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(r, nil)

		if _, err := uc.RegisterPayment(context.Background(), "actor", "rec-1", "10", "pix"); !errors.Is(err, ErrRuleViolation) {
			t.Fatalf("expected ErrRuleViolation, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "rec-x").Return(entities.Receivable{}, nil)

		if _, err := uc.RegisterPayment(context.Background(), "actor", "rec-x", "10", ""); !errors.Is(err, ErrReceivableNotFound) {
			t.Fatalf("expected ErrReceivableNotFound, got %v", err)
		}
	})
}

func TestReceivableUseCase_ChargeOnline(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewReceivableUseCase(mock_interfaces.NewMockIReceivableRepository(ctrl), nil, nil, nil, nil, nil)
		if _, err := uc.ChargeOnline(context.Background(), "", "rec-1", nil); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		uc, _ := newReceivableUC(t)
		if _, err := uc.ChargeOnline(context.Background(), "", "rec-1", json.RawMessage("{bad")); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(pendingReceivable(), nil)
		m.charges.EXPECT().ListByReceivableID(gomock.Any(), "rec-1").Return(nil, nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)

		if _, err := uc.ChargeOnline(context.Background(), "", "rec-1", nil); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("approved charge registers payment", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(pendingReceivable(), nil)
		m.charges.EXPECT().ListByReceivableID(gomock.Any(), "rec-1").Return(nil, nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1", Email: "cliente@example.com"}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("payload is not json: %v", err)
			}
			if req["transaction_amount"] != float64(100) || req["payment_method_id"] != "pix" || req["external_reference"] != "rec-1" {
				t.Fatalf("unexpected payload: %s", payload)
			}
			payer := req["payer"].(map[string]any)
			if payer["email"] != "cliente@example.com" {
				t.Fatalf("unexpected payer: %v", payer)
			}
			return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
		})
		m.charges.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.PaymentCharge) (entities.PaymentCharge, error) {
			return c, nil
		})
		m.repo.EXPECT().RegisterPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.PaymentRegistration) (entities.Receivable, error) {
			if p.PaymentMethod != "mercado_pago" || !p.Amount.Equal(decimal.NewFromInt(100)) {
				t.Fatalf("unexpected registration: %+v", p)
			}
			return entities.Receivable{ID: "rec-1", Status: entities.ReceivableStatusPaid}, nil
		})
		m.audit.EXPECT().Log("actor", "charge_receivable", gomock.Any())

		c, err := uc.ChargeOnline(context.Background(), "actor", "rec-1", json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Status != entities.ChargeStatusApproved || c.ID != "mp-1" {
			t.Fatalf("unexpected charge: %+v", c)
		}
	})

	t.Run("pending charge leaves receivable open after a denied one", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(pendingReceivable(), nil)
		m.charges.EXPECT().ListByReceivableID(gomock.Any(), "rec-1").Return([]entities.PaymentCharge{{ID: "mp-0", Status: entities.ChargeStatusDenied}}, nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, errors.New("db down"))
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "in_process", json.RawMessage(`{}`), nil)
		m.charges.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.PaymentCharge) (entities.PaymentCharge, error) {
			return c, nil
		})
		m.audit.EXPECT().Log("actor", "charge_receivable", gomock.Any())

		payload := json.RawMessage(`{"payer":{"email":"outro@example.com"},"payment_method_id":"visa"}`)
		c, err := uc.ChargeOnline(context.Background(), "actor", "rec-1", payload)
		if err != nil || c.Status != entities.ChargeStatusPending {
			t.Fatalf("unexpected result: %+v err=%v", c, err)
		}
	})

	t.Run("retry after failed registration settles the approved charge", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		approved := entities.PaymentCharge{
			ID: "mp-1", ReceivableID: "rec-1", Amount: decimal.NewFromInt(100),
			Date: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), Status: entities.ChargeStatusApproved, ProviderStatus: "approved",
		}
		m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(pendingReceivable(), nil)
		m.charges.EXPECT().ListByReceivableID(gomock.Any(), "rec-1").Return([]entities.PaymentCharge{approved}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)
		m.charges.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		m.repo.EXPECT().RegisterPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.PaymentRegistration) (entities.Receivable, error) {
			if p.PaymentMethod != "mercado_pago" || !p.PaidAt.Equal(approved.Date) || p.RegisteredBy != "actor" {
				t.Fatalf("unexpected registration: %+v", p)
			}
			return entities.Receivable{ID: "rec-1", Status: entities.ReceivableStatusPaid}, nil
		})
		m.audit.EXPECT().Log("actor", "settle_charge", gomock.Any())

		c, err := uc.ChargeOnline(context.Background(), "actor", "rec-1", json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "mp-1" {
			t.Fatalf("expected the existing charge, got %+v", c)
		}
	})

	t.Run("pending charge blocks a new one", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(pendingReceivable(), nil)
		m.charges.EXPECT().ListByReceivableID(gomock.Any(), "rec-1").Return([]entities.PaymentCharge{
			{ID: "mp-3", ReceivableID: "rec-1", Status: entities.ChargeStatusPending},
		}, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)

		if _, err := uc.ChargeOnline(context.Background(), "actor", "rec-1", nil); !errors.Is(err, ErrPaymentChargePending) {
			t.Fatalf("expected ErrPaymentChargePending, got %v", err)
		}
	})

	t.Run("ledger error stops the charge", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(pendingReceivable(), nil)
		m.charges.EXPECT().ListByReceivableID(gomock.Any(), "rec-1").Return(nil, errors.New("dynamo down"))

		if _, err := uc.ChargeOnline(context.Background(), "actor", "rec-1", nil); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("gateway error mapping", func(t *testing.T) {
		cases := []struct {
			msg  string
			want error
		}{
			{msg: `{"status":400,"error":"bad_request"}`, want: ErrPaymentGatewayBadRequest},
			{msg: `{"status":401,"error":"unauthorized"}`, want: ErrPaymentGatewayUnauthorized},
			{msg: `Invalid users involved`, want: ErrPaymentGatewayInvalidUsers},
			{msg: `{"code":2002,"message":"Customer not found"}`, want: ErrPaymentGatewayCustomerNotFound},
		}
		for _, tc := range cases {
			uc, m := newReceivableUC(t)
			m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(pendingReceivable(), nil)
			m.charges.EXPECT().ListByReceivableID(gomock.Any(), "rec-1").Return(nil, nil)
			m.customers.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{Email: "a@b.c"}, nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(tc.msg))

			if _, err := uc.ChargeOnline(context.Background(), "actor", "rec-1", nil); !errors.Is(err, tc.want) {
				t.Fatalf("%s: expected %v, got %v", tc.msg, tc.want, err)
			}
		}
	})
}

func TestReceivableUseCase_RefreshCharge(t *testing.T) {
	pendingCharge := func() entities.PaymentCharge {
		return entities.PaymentCharge{
			ID: "mp-7", ReceivableID: "rec-1", Amount: decimal.NewFromInt(100),
			Date: time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC), Status: entities.ChargeStatusPending, ProviderStatus: "in_process",
		}
	}

	t.Run("approved at the provider settles the receivable", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(pendingReceivable(), nil)
		m.charges.EXPECT().GetByID(gomock.Any(), "mp-7").Return(pendingCharge(), nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "mp-7").Return("approved", json.RawMessage(`{"id":"mp-7","status":"approved"}`), nil)
		m.charges.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.PaymentCharge) (entities.PaymentCharge, error) {
			if c.Status != entities.ChargeStatusApproved || c.ProviderStatus != "approved" || c.ProviderPayload["id"] != "mp-7" {
				t.Fatalf("unexpected update: %+v", c)
			}
			return c, nil
		})
		m.audit.EXPECT().Log("actor", "refresh_charge", gomock.Any())
		m.repo.EXPECT().RegisterPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.PaymentRegistration) (entities.Receivable, error) {
			if p.ReceivableID != "rec-1" || !p.Amount.Equal(decimal.NewFromInt(100)) {
				t.Fatalf("unexpected registration: %+v", p)
			}
			return entities.Receivable{ID: "rec-1", Status: entities.ReceivableStatusPaid}, nil
		})

		c, err := uc.RefreshCharge(context.Background(), "actor", "rec-1", " mp-7 ")
		if err != nil || c.Status != entities.ChargeStatusApproved {
			t.Fatalf("unexpected result: %+v err=%v", c, err)
		}
	})

	t.Run("unchanged provider status is not persisted", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(pendingReceivable(), nil)
		m.charges.EXPECT().GetByID(gomock.Any(), "mp-7").Return(pendingCharge(), nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "mp-7").Return("in_process", json.RawMessage(`{}`), nil)

		c, err := uc.RefreshCharge(context.Background(), "actor", "rec-1", "mp-7")
		if err != nil || c.Status != entities.ChargeStatusPending {
			t.Fatalf("unexpected result: %+v err=%v", c, err)
		}
	})

	t.Run("approved charge on a paid receivable is a no-op", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		paid := pendingReceivable()
		paid.Status = entities.ReceivableStatusPaid
		approved := pendingCharge()
		approved.Status = entities.ChargeStatusApproved
		m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(paid, nil)
		m.charges.EXPECT().GetByID(gomock.Any(), "mp-7").Return(approved, nil)

		if _, err := uc.RefreshCharge(context.Background(), "actor", "rec-1", "mp-7"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("charge of another receivable", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		other := pendingCharge()
		other.ReceivableID = "rec-2"
		m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(pendingReceivable(), nil)
		m.charges.EXPECT().GetByID(gomock.Any(), "mp-7").Return(other, nil)

		if _, err := uc.RefreshCharge(context.Background(), "actor", "rec-1", "mp-7"); !errors.Is(err, ErrPaymentChargeNotFound) {
			t.Fatalf("expected ErrPaymentChargeNotFound, got %v", err)
		}
	})

	t.Run("unknown charge", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(pendingReceivable(), nil)
		m.charges.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.PaymentCharge{}, nil)

		if _, err := uc.RefreshCharge(context.Background(), "actor", "rec-1", "nope"); !errors.Is(err, ErrPaymentChargeNotFound) {
			t.Fatalf("expected ErrPaymentChargeNotFound, got %v", err)
		}
	})

	t.Run("provider error is mapped", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "rec-1").Return(pendingReceivable(), nil)
		m.charges.EXPECT().GetByID(gomock.Any(), "mp-7").Return(pendingCharge(), nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "mp-7").Return("", nil, errors.New(`{"status":401,"error":"unauthorized"}`))

		if _, err := uc.RefreshCharge(context.Background(), "actor", "rec-1", "mp-7"); !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})
}

func TestReceivableUseCase_RefreshOverdue(t *testing.T) {
	now := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)

	t.Run("audits when rows change", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		m.repo.EXPECT().MarkOverdue(gomock.Any(), now).Return(int64(3), nil)
		m.audit.EXPECT().Log("", "mark_overdue_receivables", gomock.Any())

		if n, err := uc.RefreshOverdue(context.Background(), now); err != nil || n != 3 {
			t.Fatalf("unexpected result n=%d err=%v", n, err)
		}
	})

	t.Run("quiet when nothing is overdue", func(t *testing.T) {
		uc, m := newReceivableUC(t)
		m.repo.EXPECT().MarkOverdue(gomock.Any(), now).Return(int64(0), nil)

		if n, err := uc.RefreshOverdue(context.Background(), now); err != nil || n != 0 {
			t.Fatalf("unexpected result n=%d err=%v", n, err)
		}
	})
}

func TestReceivableUseCase_ExportXLSX(t *testing.T) {
	uc, m := newReceivableUC(t)
	m.repo.EXPECT().List(gomock.Any(), entities.ReceivableFilter{Status: entities.ReceivableStatusOverdue}).Return([]entities.Receivable{pendingReceivable()}, nil)
	m.sheet.EXPECT().Render(gomock.Len(1)).Return([]byte("PK"), nil)

	b, err := uc.ExportXLSX(context.Background(), entities.ReceivableFilter{Status: entities.ReceivableStatusOverdue})
	if err != nil || !strings.HasPrefix(string(b), "PK") {
		t.Fatalf("unexpected result: %q err=%v", b, err)
	}
}
