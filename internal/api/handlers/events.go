package handlers

import (
	"io"

	"team-schedule-backend/internal/logger"
	"team-schedule-backend/internal/notify"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams document-update events to SSE clients
type EventsHandler struct {
	broadcaster *notify.Broadcaster
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(broadcaster *notify.Broadcaster) *EventsHandler {
	return &EventsHandler{broadcaster: broadcaster}
}

// Stream handles GET /schedule/events
// @Summary Subscribe to schedule updates
// @Description Server-sent events; each event carries the new updatedAt token
// @Tags schedule
// @Produce text/event-stream
// @Success 200 {string} string "SSE stream"
// @Security BearerAuth
// @Router /schedule/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	events, unsubscribe := h.broadcaster.Subscribe()
	defer unsubscribe()

	log := logger.WithContext(c.Request.Context())
	log.Info("sse client connected")
	defer log.Info("sse client disconnected")

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case updatedAt, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("update", gin.H{"updatedAt": updatedAt})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
