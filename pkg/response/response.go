package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
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

// Error sends a 400 error response with the error message.
func Error(c *gin.Context, err error) {
	ErrorWithStatus(c, http.StatusBadRequest, err)
}

// ErrorWithStatus sends an error response with the given HTTP status code.
// The status code doubles as the error_code in the body.
func ErrorWithStatus(c *gin.Context, status int, err error) {
	msg := DefaultErrorMessage
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   msg,
	})
}

// InternalError sends 500 without leaking internal details.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}
