package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// streamEvents writes every value received on views as a server-sent event
// until the channel closes. The producer closes it when the client goes away.
func streamEvents[T any](c *gin.Context, event string, views <-chan T, render func(T) any) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	c.Stream(func(_ io.Writer) bool {
		v, ok := <-views
		if !ok {
			return false
		}
		c.SSEvent(event, render(v))
		return true
	})
}
