package respond

import (
	"github.com/gin-gonic/gin"

	"annadata-backend/internal/shared/telemetry"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	if isGuest, ok := c.Get("isGuest"); ok {
		fields["is_guest"] = isGuest
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// LegacyResponse is the flat {message, error} body the grocery, fitness and
// user endpoints have always returned.
type LegacyResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Legacy sends a {message, error} response. err may be nil.
func Legacy(c *gin.Context, status int, message string, err error) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	body := LegacyResponse{Message: message}
	if err != nil {
		fields["err"] = err.Error()
		body.Error = err.Error()
	}
	telemetry.Error("http.error", fields)
	c.AbortWithStatusJSON(status, body)
}
