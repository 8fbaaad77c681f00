package middleware

import (
	"crypto/subtle"

	"writings-api/helper"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const bearerPrefix = "Bearer "

// BearerTokenAuth allows the request through only when the Authorization
// header is exactly "Bearer <token>". It runs before any body parsing.
func BearerTokenAuth(token string, h *helper.HTTPHelper) gin.HandlerFunc {
	expected := []byte(bearerPrefix + token)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if subtle.ConstantTimeCompare([]byte(authHeader), expected) != 1 {
			log.Warn().
				Str("request_id", c.GetString("request_id")).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Bool("header_present", authHeader != "").
				Msg("Rejected unauthorized request")
			h.SendUnauthorizedError(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
