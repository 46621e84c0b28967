package handlers

import (
	"net/http"
	"strings"

	"mecanica_gestao/internal/adapter/http/dto/request"
	"mecanica_gestao/internal/adapter/http/middleware"
	"mecanica_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves customers and their vehicles.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), middleware.ActorID(c), payload.ToEntity(""))
	if err != nil {
		respondError(c, "customer", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	cust, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "customer", err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// ListCustomers searches by name, document or phone through ?q.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	limit, offset := pagination(c)
	list, err := h.usecase.List(c.Request.Context(), strings.TrimSpace(c.Query("q")), limit, offset)
	if err != nil {
		respondError(c, "customer", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), middleware.ActorID(c), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, "customer", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		respondError(c, "customer", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) AddVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	v, err := h.usecase.AddVehicle(c.Request.Context(), middleware.ActorID(c), payload.ToEntity("", c.Param("id")))
	if err != nil {
		respondError(c, "vehicle", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *CustomerHandler) ListVehicles(c *gin.Context) {
	list, err := h.usecase.ListVehicles(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "vehicle", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CustomerHandler) UpdateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	v, err := h.usecase.UpdateVehicle(c.Request.Context(), middleware.ActorID(c), payload.ToEntity(c.Param("vehicle_id"), c.Param("id")))
	if err != nil {
		respondError(c, "vehicle", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *CustomerHandler) DeleteVehicle(c *gin.Context) {
	if err := h.usecase.DeleteVehicle(c.Request.Context(), middleware.ActorID(c), c.Param("vehicle_id")); err != nil {
		respondError(c, "vehicle", err)
		return
	}
	c.Status(http.StatusNoContent)
}
