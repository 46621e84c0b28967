package middleware

import (
	"net/http"

	"mecanica_gestao/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

var errTooManyRequests = pkg.NewDomainErrorSimple("TOO_MANY_REQUESTS", "Muitas tentativas. Tente novamente em instantes.", http.StatusTooManyRequests)

// NewRateLimiter builds an in-memory limiter from a formatted rate such as "20-M".
func NewRateLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit limits requests per client IP.
func RateLimit(l *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		lctx, err := l.Get(c.Request.Context(), ip)
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("ip", ip).Msg("[http][ratelimit] limiter failed")
			c.Next()
			return
		}
		if lctx.Reached {
			zerolog.Ctx(c.Request.Context()).Warn().Str("ip", ip).Int64("limit", lctx.Limit).Msg("[http][ratelimit] limit reached")
			c.AbortWithStatusJSON(errTooManyRequests.HTTPStatus, errTooManyRequests.ToHTTPError())
			return
		}
		c.Next()
	}
}
