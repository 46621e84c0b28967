package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mecanica_gestao/internal/adapter/http/dto/request"
	"mecanica_gestao/internal/adapter/http/dto/response"
	"mecanica_gestao/internal/adapter/http/middleware"
	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReceivableHandler serves contas a receber: manual settlement, Mercado Pago
// charges and the spreadsheet export.
type ReceivableHandler struct {
	usecase      usecase.IReceivableUseCase
	mockPayments bool
}

// NewReceivableHandler builds the handler. With mockPayments an unreadable
// charge body falls back to an empty payload instead of failing.
func NewReceivableHandler(uc usecase.IReceivableUseCase, mockPayments bool) *ReceivableHandler {
	return &ReceivableHandler{usecase: uc, mockPayments: mockPayments}
}

func (h *ReceivableHandler) GetReceivable(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "receivable", err)
		return
	}
	c.JSON(http.StatusOK, response.FromReceivable(r))
}

func (h *ReceivableHandler) ListReceivables(c *gin.Context) {
	filter, ok := receivableFilter(c)
	if !ok {
		return
	}
	list, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "receivable", err)
		return
	}
	c.JSON(http.StatusOK, response.FromReceivables(list))
}

// RegisterPayment settles a receivable manually (cash, pix, card machine).
func (h *ReceivableHandler) RegisterPayment(c *gin.Context) {
	var payload request.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	r, err := h.usecase.RegisterPayment(c.Request.Context(), middleware.ActorID(c), c.Param("id"), string(payload.Amount), payload.PaymentMethod)
	if err != nil {
		respondError(c, "receivable", err)
		return
	}
	c.JSON(http.StatusOK, response.FromReceivable(r))
}

// ChargeOnline creates a Mercado Pago payment for the receivable.
func (h *ReceivableHandler) ChargeOnline(c *gin.Context) {
	id := c.Param("id")
	logger := zerolog.Ctx(c.Request.Context())
	logger.Info().Str("receivable_id", id).Msg("[payment][handler] charge start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockPayments {
			logger.Warn().Err(err).Str("receivable_id", id).Msg("[payment][handler] invalid payload")
			respondInvalid(c, err.Error())
			return
		}
		logger.Info().Err(err).Str("receivable_id", id).Msg("[payment][handler] invalid payload in mock mode; using empty payload")
		mpPayload = json.RawMessage("{}")
	}

	charge, err := h.usecase.ChargeOnline(c.Request.Context(), middleware.ActorID(c), id, mpPayload)
	if err != nil {
		respondError(c, "payment", err)
		return
	}
	logger.Info().Str("receivable_id", id).Str("charge_id", charge.ID).Str("status", string(charge.Status)).Msg("[payment][handler] charge success")
	c.JSON(http.StatusOK, response.FromPaymentCharge(charge))
}

// RefreshCharge re-reads a pending charge from Mercado Pago and settles the
// receivable when it has been approved meanwhile.
func (h *ReceivableHandler) RefreshCharge(c *gin.Context) {
	id, chargeID := c.Param("id"), c.Param("charge_id")
	charge, err := h.usecase.RefreshCharge(c.Request.Context(), middleware.ActorID(c), id, chargeID)
	if err != nil {
		respondError(c, "payment", err)
		return
	}
	zerolog.Ctx(c.Request.Context()).Info().Str("receivable_id", id).Str("charge_id", charge.ID).
		Str("status", string(charge.Status)).Msg("[payment][handler] charge refreshed")
	c.JSON(http.StatusOK, response.FromPaymentCharge(charge))
}

// ListCharges returns every online charge of the receivable, newest first.
func (h *ReceivableHandler) ListCharges(c *gin.Context) {
	charges, err := h.usecase.ListCharges(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentCharges(charges))
}

// LatestCharge returns the most recent online charge of the receivable.
func (h *ReceivableHandler) LatestCharge(c *gin.Context) {
	charges, err := h.usecase.ListCharges(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "payment", err)
		return
	}
	if len(charges) == 0 {
		respondError(c, "payment", usecase.ErrPaymentChargeNotFound)
		return
	}

	latest := charges[0]
	for _, p := range charges[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromPaymentCharge(latest))
}

func (h *ReceivableHandler) ExportXLSX(c *gin.Context) {
	filter, ok := receivableFilter(c)
	if !ok {
		return
	}
	b, err := h.usecase.ExportXLSX(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "receivable", err)
		return
	}
	name := fmt.Sprintf("contas-a-receber-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, xlsxContentType, b)
}

func receivableFilter(c *gin.Context) (entities.ReceivableFilter, bool) {
	from, err := dateQuery(c, "due_from")
	if err != nil {
		respondInvalid(c, "due_from: "+err.Error())
		return entities.ReceivableFilter{}, false
	}
	to, err := dateQuery(c, "due_to")
	if err != nil {
		respondInvalid(c, "due_to: "+err.Error())
		return entities.ReceivableFilter{}, false
	}
	limit, offset := pagination(c)
	return entities.ReceivableFilter{
		Status:     entities.ReceivableStatus(c.Query("status")),
		CustomerID: c.Query("customer_id"),
		DueFrom:    from,
		DueTo:      to,
		Limit:      limit,
		Offset:     offset,
	}, true
}

// readMPPayload accepts either the raw Mercado Pago body or {"mp_payload": {...}}.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.ChargeRequest
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err == nil {
		if _, ok := fields["mp_payload"]; ok {
			_ = json.Unmarshal(raw, &envelope)
			wrapped := strings.TrimSpace(string(envelope.MPPayload))
			if wrapped == "" || wrapped == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return envelope.MPPayload, nil
		}
	}
	return json.RawMessage(raw), nil
}
