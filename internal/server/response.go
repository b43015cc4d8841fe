package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ntauth/orderkey"
)

// Response is the envelope every endpoint answers with. Code 0 means
// success; otherwise it mirrors the HTTP status.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "success", Data: data})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Message: msg})
}

// failure maps order key errors to 400; anything else is a server fault.
func failure(c *gin.Context, err error) {
	if isKeyError(err) {
		badRequest(c, err.Error())
		return
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
		Code:    http.StatusInternalServerError,
		Message: "internal error",
	})
}

func isKeyError(err error) bool {
	for _, target := range []error{
		orderkey.ErrInvalidHead,
		orderkey.ErrTruncatedKey,
		orderkey.ErrMalformedInteger,
		orderkey.ErrReservedKey,
		orderkey.ErrTrailingZero,
		orderkey.ErrInvalidDigit,
		orderkey.ErrOrderViolation,
		orderkey.ErrExhausted,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
