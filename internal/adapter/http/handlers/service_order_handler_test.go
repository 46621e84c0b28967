package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mecanica_gestao/internal/adapter/http/handlers/mocks"
	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/domain/rules"
	"mecanica_gestao/internal/usecase"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newServiceOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceOrderUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	h := NewServiceOrderHandler(uc)

	r := gin.New()
	r.GET("/v1/service-orders/:id", h.GetServiceOrder)
	r.PUT("/v1/service-orders/:id", h.EditServiceOrder)
	r.POST("/v1/service-orders/:id/cancel", h.CancelServiceOrder)
	r.POST("/v1/service-orders/:id/complete", h.CompleteServiceOrder)
	r.POST("/v1/service-orders/:id/notify", h.NotifyCustomer)
	r.GET("/v1/service-orders/:id/pdf", h.ExportPDF)
	return r, uc
}

func TestServiceOrderHandler_Edit(t *testing.T) {
	r, uc := newServiceOrderRouter(t)
	uc.EXPECT().Edit(gomock.Any(), "os-1").Return(&usecase.RuleViolationError{Result: rules.ValidateOSEditing(nil)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/v1/service-orders/os-1", bytes.NewBufferString(`{}`)))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["code"] != "SERVICE_ORDER_IMMUTABLE" || body["details"] == nil {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestServiceOrderHandler_Cancel(t *testing.T) {
	t.Run("missing reason", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), gomock.Any(), "os-1", "").Return(entities.CancelOrderResponse{}, usecase.ErrCancelReasonRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/os-1/cancel", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "CANCEL_REASON_REQUIRED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("reason too short", func(t *testing.T) {
		r, _ := newServiceOrderRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/os-1/cancel", bytes.NewBufferString(`{"reason":"ok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("backend record rejected by validator", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), gomock.Any(), "os-1", "  a ").
			Return(entities.CancelOrderResponse{}, fmt.Errorf("%w: cancel_service_order: min", interfaces.ErrInvalidRPCRequest))

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/os-1/cancel", bytes.NewBufferString(`{"reason":"  a "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "VALIDATION_FAILED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), gomock.Any(), "os-1", "Cliente desistiu").
			Return(entities.CancelOrderResponse{ServiceOrderID: "os-1", Status: entities.ServiceOrderStatusCanceled}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/os-1/cancel", bytes.NewBufferString(`{"reason":"Cliente desistiu"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_Notify(t *testing.T) {
	t.Run("unknown channel", func(t *testing.T) {
		r, _ := newServiceOrderRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/os-1/notify", bytes.NewBufferString(`{"channel":"sms"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("customer without phone", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().Notify(gomock.Any(), gomock.Any(), "os-1", usecase.NotifyWhatsApp).Return(usecase.NotifyResult{}, usecase.ErrCustomerContactMissing)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/os-1/notify", bytes.NewBufferString(`{"channel":"whatsapp"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("whatsapp link", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().Notify(gomock.Any(), gomock.Any(), "os-1", usecase.NotifyWhatsApp).
			Return(usecase.NotifyResult{Channel: usecase.NotifyWhatsApp, URL: "https://wa.me/5511999998888?text=oi"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-orders/os-1/notify", bytes.NewBufferString(`{"channel":"whatsapp"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body usecase.NotifyResult
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.URL == "" || body.Sent {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestServiceOrderHandler_ExportPDF(t *testing.T) {
	r, uc := newServiceOrderRouter(t)
	uc.EXPECT().ExportPDF(gomock.Any(), "os-1").Return([]byte("%PDF-1.4"), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/service-orders/os-1/pdf", nil))

	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("unexpected response: %d %v", w.Code, w.Header())
	}
	if w.Header().Get("Content-Disposition") != `attachment; filename="os-os-1.pdf"` {
		t.Fatalf("unexpected disposition: %s", w.Header().Get("Content-Disposition"))
	}
}

func TestServiceOrderHandler_GetNotFound(t *testing.T) {
	r, uc := newServiceOrderRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "os-404").Return(entities.ServiceOrder{}, usecase.ErrServiceOrderNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/service-orders/os-404", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
