package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse is the body returned by delete operations.
type JSONResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse carries a single human readable error.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondStatus(c *gin.Context, message string) {
	c.JSON(http.StatusOK, JSONResponse{
		Status:  true,
		Message: message,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{Detail: err.Error()})
}
