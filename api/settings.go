package api

import (
	"github.com/gin-gonic/gin"
	"github.com/xiaoyuanzhu-com/list-filter/db"
	"github.com/xiaoyuanzhu-com/list-filter/log"
)

var settingsLogger = log.GetLogger("ApiSettings")

// GetSettings handles GET /api/settings
func GetSettings(c *gin.Context) {
	settings, err := db.GetAllSettings()
	if err != nil {
		settingsLogger.Error().Err(err).Msg("failed to get settings")
		RespondInternalError(c, "Failed to get settings")
		return
	}

	RespondData(c, settings)
}

// UpdateSettings handles PUT /api/settings
func UpdateSettings(c *gin.Context) {
	var updates map[string]string
	if err := c.ShouldBindJSON(&updates); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}

	if err := db.UpdateSettings(updates); err != nil {
		settingsLogger.Error().Err(err).Msg("failed to update settings")
		RespondInternalError(c, "Failed to update settings")
		return
	}

	// Apply log level immediately when it changes
	if level, ok := updates["log_level"]; ok && level != "" {
		log.SetLevel(level)
	}

	settings, err := db.GetAllSettings()
	if err != nil {
		settingsLogger.Error().Err(err).Msg("failed to reload settings")
		RespondInternalError(c, "Failed to reload settings")
		return
	}

	RespondData(c, settings)
}
