// Package httperr shapes every error body the API returns. The client shows
// Error.Message as an error toast next to whatever the usecase recorded.
package httperr

import (
	"slices"

	"solar-dispatch/internal/pkg/notify"

	"github.com/gin-gonic/gin"
)

type Body struct {
	Message string `json:"message"`
}

type Response struct {
	Status        int              `json:"-"`
	Error         Body             `json:"error"`
	Detail        any              `json:"detail,omitempty"`
	Notifications []notify.Message `json:"notifications"`
}

// New builds the body for c with the toasts recorded so far. msg becomes an
// error toast only when the usecase did not record one itself.
func New(c *gin.Context, status int, msg string, detail any) Response {
	toasts := notify.MessagesFrom(c.Request.Context())
	if !slices.ContainsFunc(toasts, func(m notify.Message) bool { return m.Level == notify.LevelError }) {
		toasts = append(toasts, notify.Message{Level: notify.LevelError, Message: msg})
	}
	return Response{
		Status:        status,
		Error:         Body{Message: msg},
		Detail:        detail,
		Notifications: toasts,
	}
}

// AbortWithError writes the response and keeps err on the context for the
// request logger.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	resp := New(c, status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
