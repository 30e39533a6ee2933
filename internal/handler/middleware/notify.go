package middleware

import (
	"solar-dispatch/internal/pkg/notify"

	"github.com/gin-gonic/gin"
)

// NotificationRecorder attaches a per-request notify.Recorder so usecases can
// queue toast messages for the response body.
func NotificationRecorder() gin.HandlerFunc {
	return func(c *gin.Context) {
		rec := notify.NewRecorder()
		c.Request = c.Request.WithContext(notify.WithRecorder(c.Request.Context(), rec))
		c.Next()
	}
}

// Notifications returns what has been recorded for this request so far.
func Notifications(c *gin.Context) []notify.Message {
	return notify.MessagesFrom(c.Request.Context())
}
