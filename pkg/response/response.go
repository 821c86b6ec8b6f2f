// Package response holds the JSON shapes shared by every handler. Success
// bodies are endpoint specific; failures share one envelope so the dashboard
// can always render a message.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the failure envelope. Status and Upstream are populated when
// the failure originated in the remote event store; Detail carries transport
// errors.
type ErrorBody struct {
	Message  string `json:"message"`
	Status   int    `json:"status,omitempty"`
	Upstream any    `json:"upstream,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Fail(c *gin.Context, status int, body *ErrorBody) {
	c.JSON(status, body)
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, &ErrorBody{Message: message})
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, &ErrorBody{Message: message})
}

func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, &ErrorBody{Message: message})
}

func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, &ErrorBody{Message: message})
}

func BadGateway(c *gin.Context, message, detail string) {
	Fail(c, http.StatusBadGateway, &ErrorBody{Message: message, Detail: detail})
}
