package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-manager/internal/shared/response"
)

// Recovery turns a handler panic into a 500 response instead of tearing
// down the connection. The panic value is logged with the request id.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("panic", rec).
					Msg("Panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
					Success: false,
					Error: &response.Error{
						Code:    "SYS_001",
						Message: "Internal server error",
					},
				})
			}
		}()

		c.Next()
	}
}
