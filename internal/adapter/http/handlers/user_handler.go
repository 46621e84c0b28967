package handlers

import (
	"net/http"
	"strconv"

	"mecanica_gestao/internal/adapter/http/dto/request"
	"mecanica_gestao/internal/adapter/http/middleware"
	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
)

// maxAvatarBytes caps the multipart avatar upload.
const maxAvatarBytes = 2 << 20

// UserHandler is the admin surface over accounts and their audit trail.
type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, "user", err)
		return
	}
	if list == nil {
		list = []entities.User{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	u, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "user", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload request.UserCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	u, err := h.usecase.Create(c.Request.Context(), middleware.ActorID(c), payload.ToNewUser())
	if err != nil {
		respondError(c, "user", err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var payload request.UserUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	u, err := h.usecase.Update(c.Request.Context(), middleware.ActorID(c), entities.User{
		ID:   c.Param("id"),
		Name: payload.Name,
		Role: payload.Role,
	})
	if err != nil {
		respondError(c, "user", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		respondError(c, "user", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadAvatar expects a multipart "avatar" file field.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAvatarBytes)
	fh, err := c.FormFile("avatar")
	if err != nil {
		respondInvalid(c, "avatar: "+err.Error())
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondInvalid(c, "avatar: "+err.Error())
		return
	}
	defer f.Close()

	u, err := h.usecase.UploadAvatar(c.Request.Context(), middleware.ActorID(c), c.Param("id"), fh.Header.Get("Content-Type"), f)
	if err != nil {
		respondError(c, "user", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// AuditTrail lists the latest audit entries of a user, ?limit defaults to 50.
func (h *UserHandler) AuditTrail(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit <= 0 {
		limit = defaultPageSize
	}
	entries, err := h.usecase.AuditTrail(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, "audit", err)
		return
	}
	if entries == nil {
		entries = []entities.AuditLogEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
