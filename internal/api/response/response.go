package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "request_id"

type Response struct {
	Success   bool   `json:"success"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id,omitempty"`
	Extras    any    `json:"extras"`
}

func NewResponse(c *gin.Context, success bool, code int, extras any) Response {
	return Response{
		Success:   success,
		Code:      code,
		RequestID: c.GetString(RequestIDKey),
		Extras:    extras,
	}
}

// SuccessResponse returns a JSON response with a success message with no type limitation
func SuccessResponse(c *gin.Context, extras any) {
	c.JSON(
		http.StatusOK,
		NewResponse(
			c,
			true,
			http.StatusOK,
			extras,
		))
}

func ErrorResponse(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(
		code,
		NewResponse(
			c,
			false,
			code,
			map[string]any{
				"message": message,
			},
		))
}
