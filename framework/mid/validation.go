package mid

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faseops/membership/scheduled-tasks/framework/web"
)

// ValidatePathParamNotEmpty rejects requests with an empty value for the
// given path parameter before the handler runs.
func ValidatePathParamNotEmpty(paramName string) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			if paramValue := ctx.Param(paramName); paramValue == "" {
				return web.NewRequestError(errors.New("error: "+paramName+" cannot be empty"), http.StatusBadRequest)
			}

			return handler(ctx)
		}

		return h
	}

	return f
}
