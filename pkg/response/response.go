package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "care-schedule/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Error sends an error response. The status comes from a pkg/errors.HTTPError
// when err is one, 400 otherwise. The status doubles as the error code.
func Error(c *gin.Context, err error) {
	status := pkgErrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		InternalError(c, err)
		return
	}
	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
	})
}

// ValidationError sends 400 with per-field details in Errors.
func ValidationError(c *gin.Context, err error, details any) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
		Errors:    details,
	})
}

// InternalError sends 500 internal server error. The cause is never echoed.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}
