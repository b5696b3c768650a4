package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xiaoyuanzhu-com/list-filter/log"
	"github.com/xiaoyuanzhu-com/list-filter/notifications"
)

var notifLogger = log.GetLogger("ApiNotifications")

// NotificationStream handles GET /api/notifications/stream (SSE)
func NotificationStream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	// Subscribe to notifications
	events, unsubscribe := notifications.GetService().Subscribe()
	defer unsubscribe()

	// Send initial connected event
	sendSSEEvent(c, notifications.Event{
		Type:      notifications.EventConnected,
		Timestamp: time.Now().UnixMilli(),
	})
	c.Writer.Flush()

	notifLogger.Debug().Msg("client connected to notification stream")

	// Heartbeat ticker
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	// Stream events
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			sendSSEEvent(c, event)
			c.Writer.Flush()

		case <-ticker.C:
			// Send heartbeat comment
			fmt.Fprintf(c.Writer, ": heartbeat\n\n")
			c.Writer.Flush()

		case <-c.Request.Context().Done():
			notifLogger.Debug().Msg("client disconnected from notification stream")
			return
		}
	}
}

func sendSSEEvent(c *gin.Context, event notifications.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		notifLogger.Error().Err(err).Msg("failed to marshal event")
		return
	}
	fmt.Fprintf(c.Writer, "data: %s\n\n", data)
}
