package api

import (
	"github.com/gin-gonic/gin"
	"github.com/xiaoyuanzhu-com/list-filter/db"
	"github.com/xiaoyuanzhu-com/list-filter/log"
	"github.com/xiaoyuanzhu-com/list-filter/node"
	"github.com/xiaoyuanzhu-com/list-filter/notifications"
)

var statsLogger = log.GetLogger("ApiStats")

type statsResponse struct {
	Sessions      int64 `json:"sessions"`
	Subscribers   int   `json:"subscribers"`
	SchemaVersion int   `json:"schemaVersion"`
}

// GetStats handles GET /api/stats
func GetStats(c *gin.Context) {
	sessions, err := db.CountSessions()
	if err != nil {
		statsLogger.Error().Err(err).Msg("failed to count sessions")
		RespondInternalError(c, "Failed to collect stats")
		return
	}

	version, err := db.GetCurrentVersion()
	if err != nil {
		statsLogger.Error().Err(err).Msg("failed to get schema version")
		RespondInternalError(c, "Failed to collect stats")
		return
	}

	RespondData(c, statsResponse{
		Sessions:      sessions,
		Subscribers:   notifications.GetService().SubscriberCount(),
		SchemaVersion: version,
	})
}

// GetNodes handles GET /api/nodes
//
// Lists the node types this module registers, the way a host enumerates
// them for its node picker.
func GetNodes(c *gin.Context) {
	RespondList(c, node.GlobalRegistry.GetAll())
}
