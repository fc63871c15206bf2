package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cupcycle/go-leads-backend/internal/http/middleware"
)

// ErrorResponse is the uniform JSON error envelope. Error is a stable
// machine-readable code, Message an optional human-readable detail.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// fail writes the error envelope with the request id attached and aborts the
// chain. Server-side failures are logged with the request-scoped logger.
func fail(c *gin.Context, status int, code, message string) {
	id := middleware.RequestIDFrom(c)

	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", message).
			Msg("request failed")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: id,
	})
}

// Fail is the exported variant used by router-level fallbacks (NoRoute,
// NoMethod).
func Fail(c *gin.Context, status int, code, message string) {
	fail(c, status, code, message)
}
