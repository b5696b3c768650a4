package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine) {
	// Legacy list_filter routes, path-compatible with the original extension
	r.POST("/list_filter/apply", ApplyFilter)
	r.GET("/list_filter/health", Health)

	// API group
	api := r.Group("/api")

	// Session routes
	api.GET("/sessions", ListSessions)
	api.POST("/sessions", CreateSession)
	api.GET("/sessions/:id", GetSession)
	api.PUT("/sessions/:id", UpdateSession)
	api.DELETE("/sessions/:id", DeleteSession)
	api.POST("/sessions/:id/toggle", ToggleEntry)
	api.POST("/sessions/:id/select-all", SelectAllEntries)
	api.POST("/sessions/:id/deselect-all", DeselectAllEntries)
	api.POST("/sessions/:id/reconcile", ReconcileSession)
	api.GET("/sessions/:id/active", GetActive)

	// Notifications (SSE)
	api.GET("/notifications/stream", NotificationStream)

	// Node registry
	api.GET("/nodes", GetNodes)

	// Settings
	api.GET("/settings", GetSettings)
	api.PUT("/settings", UpdateSettings)

	// Stats
	api.GET("/stats", GetStats)
}
