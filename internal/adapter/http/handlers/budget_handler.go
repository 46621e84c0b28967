package handlers

import (
	"context"
	"net/http"

	"mecanica_gestao/internal/adapter/http/dto/request"
	"mecanica_gestao/internal/adapter/http/dto/response"
	"mecanica_gestao/internal/adapter/http/middleware"
	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BudgetHandler handles HTTP requests for budgets (orçamentos).
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget godoc
// @Summary  Create a budget
// @Tags     budgets
// @Accept   json
// @Produce  json
// @Param    body body request.BudgetRequest true "budget"
// @Success  201 {object} response.BudgetResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Security Bearer
// @Router   /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	if _, err := payload.ResolveTotal(); err != nil {
		respondInvalid(c, err.Error())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.ActorID(c), payload.ToEntity())
	if err != nil {
		respondError(c, "budget", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(created))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "budget", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// ListBudgets accepts ?status, ?customer_id, ?limit and ?offset.
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	limit, offset := pagination(c)
	list, err := h.usecase.List(c.Request.Context(), entities.BudgetFilter{
		Status:     entities.BudgetStatus(c.Query("status")),
		CustomerID: c.Query("customer_id"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondError(c, "budget", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(list))
}

func (h *BudgetHandler) UpdateStatus(c *gin.Context) {
	var payload request.BudgetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	h.patchStatus(c, func(ctx context.Context, actorID, id string) (entities.Budget, error) {
		return h.usecase.UpdateStatus(ctx, actorID, id, entities.BudgetStatus(payload.Status))
	})
}

func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	h.patchStatus(c, h.statusUpdater(entities.BudgetStatusApproved))
}

func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	h.patchStatus(c, h.statusUpdater(entities.BudgetStatusRejected))
}

func (h *BudgetHandler) statusUpdater(status entities.BudgetStatus) func(ctx context.Context, actorID, id string) (entities.Budget, error) {
	return func(ctx context.Context, actorID, id string) (entities.Budget, error) {
		return h.usecase.UpdateStatus(ctx, actorID, id, status)
	}
}

func (h *BudgetHandler) patchStatus(
	c *gin.Context,
	updater func(ctx context.Context, actorID, id string) (entities.Budget, error),
) {
	b, err := updater(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		respondError(c, "budget", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(b))
}

// ConvertBudget turns an approved budget into a service order through the backend.
func (h *BudgetHandler) ConvertBudget(c *gin.Context) {
	res, err := h.usecase.ConvertToOrder(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		respondError(c, "budget", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// FinalizeBudget converts the budget and generates its receivables in one call.
func (h *BudgetHandler) FinalizeBudget(c *gin.Context) {
	var payload request.FinalizeBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	res, err := h.usecase.FinalizeToOrder(c.Request.Context(), middleware.ActorID(c), c.Param("id"), payload.ToFinancial())
	if err != nil {
		respondError(c, "budget", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
