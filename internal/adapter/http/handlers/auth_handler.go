package handlers

import (
	"context"
	"errors"
	"net/http"

	"mecanica_gestao/internal/adapter/http/dto/request"
	"mecanica_gestao/internal/adapter/http/dto/response"
	"mecanica_gestao/internal/adapter/http/middleware"
	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/session"
	"mecanica_gestao/internal/usecase"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// ISessionStore is the part of session.Store the auth endpoints drive.
type ISessionStore interface {
	SignIn(ctx context.Context, email string, password string) (*session.Provider, entities.Session, error)
	SignUp(ctx context.Context, input interfaces.NewUser) (session.SignUpResult, error)
	SignOut(ctx context.Context, token string) error
	Notifications(token string) []session.Notification
}

var _ ISessionStore = (*session.Store)(nil)

type AuthHandler struct {
	sessions ISessionStore
	users    usecase.IUserUseCase
}

func NewAuthHandler(sessions ISessionStore, users usecase.IUserUseCase) *AuthHandler {
	return &AuthHandler{sessions: sessions, users: users}
}

type signUpResponse struct {
	User              *entities.User `json:"user,omitempty"`
	AlreadyRegistered bool           `json:"already_registered"`
}

type meResponse struct {
	State       session.State          `json:"state"`
	User        entities.User          `json:"user"`
	Permissions entities.PermissionMap `json:"permissions"`
}

// SignIn godoc
// @Summary  Sign in with e-mail and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.SignInRequest true "credentials"
// @Success  200 {object} response.SessionResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	p, sess, err := h.sessions.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		var failed *session.SignInError
		var messages []string
		if errors.As(err, &failed) {
			for _, n := range failed.Notifications {
				messages = append(messages, n.Message)
			}
		}
		respondError(c, "auth", err, messages...)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(sess, p.Permissions()))
}

// SignUp reports an existing e-mail as already_registered instead of failing.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	res, err := h.sessions.SignUp(c.Request.Context(), payload.ToNewUser())
	if err != nil {
		respondError(c, "auth", err)
		return
	}
	if res.AlreadyRegistered {
		c.JSON(http.StatusOK, signUpResponse{AlreadyRegistered: true})
		return
	}
	c.JSON(http.StatusCreated, signUpResponse{User: &res.User})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.sessions.SignOut(c.Request.Context(), middleware.AccessToken(c)); err != nil {
		respondError(c, "auth", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := middleware.SessionProvider(c)
	if !ok {
		respondError(c, "auth", interfaces.ErrSessionNotFound)
		return
	}
	u, _ := p.User()
	c.JSON(http.StatusOK, meResponse{State: p.State(), User: u, Permissions: p.Permissions()})
}

// Notifications drains the toasts queued for the caller's session.
func (h *AuthHandler) Notifications(c *gin.Context) {
	list := h.sessions.Notifications(middleware.AccessToken(c))
	if list == nil {
		list = []session.Notification{}
	}
	c.JSON(http.StatusOK, list)
}

// ForgotPassword answers 202 whether or not the e-mail exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var payload request.PasswordResetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	if err := h.users.RequestPasswordReset(c.Request.Context(), payload.Email); err != nil {
		respondError(c, "auth", err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var payload request.ResetPasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	if err := h.users.ResetPassword(c.Request.Context(), payload.Token, payload.Password); err != nil {
		respondError(c, "auth", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var payload request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	if err := h.users.ChangePassword(c.Request.Context(), middleware.AccessToken(c), payload.Password); err != nil {
		respondError(c, "auth", err)
		return
	}
	c.Status(http.StatusNoContent)
}
