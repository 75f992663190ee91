package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CallerIdentity copies the caller principal set by the fronting
// gateway (X-Caller-Id) into the context as "caller_id". It does not
// reject anonymous requests: read-only routes stay public, and
// handlers that mutate state enforce the identity themselves.
func CallerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader("X-Caller-Id")); id != "" {
			c.Set("caller_id", id)
		}
		c.Next()
	}
}
