package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mecanica_gestao/internal/adapter/http/handlers/mocks"
	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/domain/rules"
	"mecanica_gestao/internal/usecase"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const validBudgetBody = `{
	"customer_id": "cust-1",
	"vehicle_id": "veh-1",
	"items": [{"item_type":"service","description":"Troca de óleo","quantity":1,"unit_price":"150.00"}]
}`

func TestBudgetHandler_CreateBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		body       string
		setup      func(uc *mocks.MockIBudgetUseCase)
		wantStatus int
	}{
		{
			name:       "invalid json",
			body:       "{",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no items",
			body:       `{"customer_id":"c","vehicle_id":"v","items":[]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "discount wipes the total",
			body:       `{"customer_id":"c","vehicle_id":"v","discount":500,"items":[{"item_type":"service","description":"x","quantity":1,"unit_price":100}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "backend rejection",
			body: validBudgetBody,
			setup: func(uc *mocks.MockIBudgetUseCase) {
				uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(entities.Budget{}, &interfaces.BackendRejectedError{Function: "create_budget", Message: "Veículo não pertence ao cliente"})
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "unexpected error",
			body: validBudgetBody,
			setup: func(uc *mocks.MockIBudgetUseCase) {
				uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Budget{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "success",
			body: validBudgetBody,
			setup: func(uc *mocks.MockIBudgetUseCase) {
				uc.EXPECT().Create(gomock.Any(), "", gomock.Any()).
					DoAndReturn(func(_ any, _ string, b entities.Budget) (entities.Budget, error) {
						if b.CustomerID != "cust-1" || len(b.Items) != 1 || b.Items[0].ItemType != entities.BudgetItemService {
							t.Fatalf("unexpected budget: %+v", b)
						}
						b.ID = "b-1"
						b.Status = entities.BudgetStatusDraft
						return b, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIBudgetUseCase(ctrl)
			if tt.setup != nil {
				tt.setup(uc)
			}
			h := NewBudgetHandler(uc)

			r := gin.New()
			r.POST("/v1/budgets", h.CreateBudget)

			req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestBudgetHandler_StatusTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/v1/budgets/:id/approve", h.ApproveBudget)

		uc.EXPECT().UpdateStatus(gomock.Any(), "", "b-1", entities.BudgetStatusApproved).
			Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusApproved, Discount: decimal.Zero}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/approve", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/v1/budgets/:id/status", h.UpdateStatus)

		res := rules.ValidateBudgetTransition(entities.BudgetStatusConverted, entities.BudgetStatusDraft)
		uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "b-1", entities.BudgetStatusDraft).
			Return(entities.Budget{}, &usecase.RuleViolationError{Result: res})

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/status", bytes.NewBufferString(`{"status":"draft"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.PATCH("/v1/budgets/:id/reject", h.RejectBudget)

		uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "b-404", entities.BudgetStatusRejected).Return(entities.Budget{}, usecase.ErrBudgetNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-404/reject", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_FinalizeBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("installments out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets/:id/finalize", h.FinalizeBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/b-1/finalize",
			bytes.NewBufferString(`{"payment_method":"boleto","installments":30,"first_due_date":"2026-11-01T00:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets/:id/finalize", h.FinalizeBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/b-1/finalize",
			bytes.NewBufferString(`{"payment_method":"cheque","installments":1,"first_due_date":"2026-11-01T00:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/v1/budgets/:id/finalize", h.FinalizeBudget)

		uc.EXPECT().FinalizeToOrder(gomock.Any(), gomock.Any(), "b-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, _ string, f entities.FinancialPayload) (entities.FinalizeBudgetResponse, error) {
				if f.PaymentMethod != "boleto" || f.Installments != 3 {
					t.Fatalf("unexpected financial payload: %+v", f)
				}
				return entities.FinalizeBudgetResponse{ServiceOrderID: "os-1", OrderNumber: 12, ReceivableIDs: []string{"r1", "r2", "r3"}}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets/b-1/finalize",
			bytes.NewBufferString(`{"payment_method":"boleto","installments":3,"first_due_date":"2026-11-01T00:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body entities.FinalizeBudgetResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.ServiceOrderID != "os-1" || len(body.ReceivableIDs) != 3 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
