// Package httperr carries HTTP error payloads through gin's error stack so
// the error middleware can render the API's flat {"error": "..."} body.
package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// Attach records a public error on the context; the error middleware
// renders it if the handler has not written a response itself.
func Attach(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("httperr.Attach: err cannot be nil")
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: Response{Status: status, Message: msg},
	})
	c.Abort()
}
