package routes

import (
	"mecanica_gestao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPublicAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.POST("/sign-in", h.SignIn)
	rg.POST("/sign-up", h.SignUp)
	rg.POST("/password/forgot", h.ForgotPassword)
	rg.POST("/password/reset", h.ResetPassword)
}

// addSessionRoutes needs an authenticated session but no module permission.
func addSessionRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.POST("/sign-out", h.SignOut)
	rg.GET("/me", h.Me)
	rg.GET("/notifications", h.Notifications)
	rg.PUT("/password", h.ChangePassword)
}
