package mid

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faseops/membership/scheduled-tasks/framework/web"
	"github.com/faseops/membership/scheduled-tasks/logger"
)

const apiKeyHeader = "x-api-key"

// APIKeyProvider returns the secret the x-api-key header is compared against.
// An empty secret means the key is not configured and callers must be rejected.
type APIKeyProvider func(ctx *gin.Context) string

// APIKey guards administrative routes with a shared secret passed in the
// x-api-key header. It fails closed: when no secret is configured every
// request is rejected with 401.
func APIKey(provider APIKeyProvider) web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			log := logger.FromContext(ctx)

			secret := provider(ctx)
			if secret == "" {
				log.Warning("api key middleware: no secret configured, rejecting request")
				return web.NewRequestError(web.ErrAuthenticationFailure, http.StatusUnauthorized)
			}

			key := ctx.GetHeader(apiKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				return web.NewRequestError(web.ErrAuthenticationFailure, http.StatusUnauthorized)
			}

			return before(ctx)
		}

		return h
	}

	return f
}
