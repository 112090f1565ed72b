package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// AdminPIN is a confirmation gate for bulk-destructive admin operations
// (period reset, hard delete). It is NOT an authorization mechanism: the
// caller must already hold an admin JWT, this only forces a second,
// deliberate input before irreversible writes.
func AdminPIN() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := os.Getenv("ADMIN_PIN")
		if expected == "" {
			response.Error(c, http.StatusServiceUnavailable, "PIN_NOT_CONFIGURED", "Admin PIN is not configured", nil)
			c.Abort()
			return
		}

		got := c.GetHeader("X-Admin-Pin")
		if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			response.Error(c, http.StatusForbidden, "INVALID_PIN", "Admin PIN confirmation failed", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
