package middleware

import (
	"mecanica_gestao/internal/session"

	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	requestIDKey = contextKey("request_id")
	providerKey  = contextKey("session_provider")
	tokenKey     = contextKey("access_token")
)

// RequestID returns the id assigned by RequestLogger.
func RequestID(c *gin.Context) string {
	return c.GetString(string(requestIDKey))
}

// SessionProvider returns the authenticated provider set by Authenticate.
func SessionProvider(c *gin.Context) (*session.Provider, bool) {
	v, ok := c.Get(string(providerKey))
	if !ok {
		return nil, false
	}
	p, ok := v.(*session.Provider)
	return p, ok && p != nil
}

// ActorID is the signed-in user id, or "" on public routes.
func ActorID(c *gin.Context) string {
	p, ok := SessionProvider(c)
	if !ok {
		return ""
	}
	u, _ := p.User()
	return u.ID
}

func AccessToken(c *gin.Context) string {
	return c.GetString(string(tokenKey))
}
