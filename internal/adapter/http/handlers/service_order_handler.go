package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"mecanica_gestao/internal/adapter/http/dto/request"
	"mecanica_gestao/internal/adapter/http/dto/response"
	"mecanica_gestao/internal/adapter/http/middleware"
	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "service_order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	limit, offset := pagination(c)
	list, err := h.usecase.List(c.Request.Context(), entities.ServiceOrderFilter{
		Status:     entities.ServiceOrderStatus(c.Query("status")),
		CustomerID: c.Query("customer_id"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondError(c, "service_order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(list))
}

// CancelServiceOrder cancels the order and its pending receivables.
func (h *ServiceOrderHandler) CancelServiceOrder(c *gin.Context) {
	var payload request.CancelOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	res, err := h.usecase.Cancel(c.Request.Context(), middleware.ActorID(c), c.Param("id"), payload.Reason)
	if err != nil {
		respondError(c, "service_order", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ServiceOrderHandler) CompleteServiceOrder(c *gin.Context) {
	o, err := h.usecase.Complete(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		respondError(c, "service_order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

// EditServiceOrder always refuses: an issued order is immutable.
func (h *ServiceOrderHandler) EditServiceOrder(c *gin.Context) {
	err := h.usecase.Edit(c.Request.Context(), c.Param("id"))
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}
	var ruleErr *usecase.RuleViolationError
	if errors.As(err, &ruleErr) {
		appErr := mapError(err)
		appErr.Code = "SERVICE_ORDER_IMMUTABLE"
		appErr.HTTPStatus = http.StatusConflict
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	respondError(c, "service_order", err)
}

// NotifyCustomer sends the order summary by e-mail or returns a wa.me link.
func (h *ServiceOrderHandler) NotifyCustomer(c *gin.Context) {
	var payload request.NotifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	res, err := h.usecase.Notify(c.Request.Context(), middleware.ActorID(c), c.Param("id"), usecase.NotifyChannel(payload.Channel))
	if err != nil {
		respondError(c, "service_order", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ServiceOrderHandler) ExportPDF(c *gin.Context) {
	id := c.Param("id")
	b, err := h.usecase.ExportPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, "service_order", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="os-%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", b)
}
