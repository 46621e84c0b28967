package handlers

import (
	"net/http"

	"mecanica_gestao/internal/adapter/http/dto/request"
	"mecanica_gestao/internal/adapter/http/middleware"
	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PayableHandler serves contas a pagar and mechanic commissions.
type PayableHandler struct {
	usecase usecase.IPayableUseCase
}

func NewPayableHandler(uc usecase.IPayableUseCase) *PayableHandler {
	return &PayableHandler{usecase: uc}
}

func (h *PayableHandler) CreatePayable(c *gin.Context) {
	var payload request.PayableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	p, err := payload.ToEntity()
	if err != nil {
		respondInvalid(c, err.Error())
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), middleware.ActorID(c), p)
	if err != nil {
		respondError(c, "payable", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PayableHandler) ListPayables(c *gin.Context) {
	from, err := dateQuery(c, "due_from")
	if err != nil {
		respondInvalid(c, "due_from: "+err.Error())
		return
	}
	to, err := dateQuery(c, "due_to")
	if err != nil {
		respondInvalid(c, "due_to: "+err.Error())
		return
	}
	limit, offset := pagination(c)
	list, err := h.usecase.List(c.Request.Context(), entities.PayableFilter{
		Status:  entities.PayableStatus(c.Query("status")),
		DueFrom: from,
		DueTo:   to,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		respondError(c, "payable", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PayableHandler) PayPayable(c *gin.Context) {
	p, err := h.usecase.Pay(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		respondError(c, "payable", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PayableHandler) ListCommissions(c *gin.Context) {
	limit, offset := pagination(c)
	list, err := h.usecase.ListCommissions(c.Request.Context(), entities.CommissionFilter{
		EmployeeID: c.Query("employee_id"),
		Status:     entities.CommissionStatus(c.Query("status")),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondError(c, "commission", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PayableHandler) PayCommission(c *gin.Context) {
	cm, err := h.usecase.PayCommission(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		respondError(c, "commission", err)
		return
	}
	c.JSON(http.StatusOK, cm)
}
