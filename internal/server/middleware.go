package server

import (
	"net/http"
	"time"

	handler "resale-market/services/market/handler"
	"resale-market/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// IdentityMiddleware extracts the authenticated caller ID placed in
// the X-User-ID header by the upstream auth layer. Requests without
// it are rejected; the core never authenticates, it only consumes an
// already-resolved identity.
func IdentityMiddleware(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, errMissingIdentity, "authentication required")
		c.Abort()
		return
	}

	c.Set(handler.CallerIDKey, userID)
	c.Next()
}
