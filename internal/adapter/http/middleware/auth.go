package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/session"
	"mecanica_gestao/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sessão inválida ou expirada", http.StatusUnauthorized)
	errForbidden       = pkg.NewDomainErrorSimple("FORBIDDEN", "Você não tem permissão para esta ação", http.StatusForbidden)
	errSessionFailure  = pkg.NewDomainErrorSimple("SESSION_UNAVAILABLE", "Não foi possível validar a sessão", http.StatusServiceUnavailable)
)

// SessionResolver hands out the live provider behind an access token.
type SessionResolver interface {
	Get(ctx context.Context, token string) (*session.Provider, error)
}

// Authenticate requires "Authorization: Bearer <token>" and an authenticated session.
func Authenticate(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		p, err := resolver.Get(c.Request.Context(), token)
		if err != nil {
			logger := zerolog.Ctx(c.Request.Context())
			if errors.Is(err, session.ErrNoSession) {
				logger.Info().Msg("[http][auth] no session for token")
				c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
				return
			}
			logger.Error().Err(err).Msg("[http][auth] session lookup failed")
			c.AbortWithStatusJSON(errSessionFailure.HTTPStatus, errSessionFailure.ToHTTPError())
			return
		}

		c.Set(string(providerKey), p)
		c.Set(string(tokenKey), token)
		if u, ok := p.User(); ok {
			zl := zerolog.Ctx(c.Request.Context()).With().Str("user_id", u.ID).Logger()
			c.Request = c.Request.WithContext(zl.WithContext(c.Request.Context()))
		}
		c.Next()
	}
}

// RequirePermission checks the session's permission map. It must run after Authenticate.
func RequirePermission(module entities.Module, action entities.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := SessionProvider(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		if !p.Can(module, action) {
			zerolog.Ctx(c.Request.Context()).Warn().
				Str("module", string(module)).
				Str("action", string(action)).
				Msg("[http][auth] permission denied")
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
