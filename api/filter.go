package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xiaoyuanzhu-com/list-filter/filter"
	"github.com/xiaoyuanzhu-com/list-filter/log"
)

var filterLogger = log.GetLogger("ApiFilter")

// applyFilterRequest is the legacy index-based filter request body.
// Fields stay raw so validation can produce precise messages instead of
// generic unmarshal errors.
type applyFilterRequest struct {
	Items           json.RawMessage `json:"items"`
	SelectedIndices json.RawMessage `json:"selected_indices"`
}

// ApplyFilter handles POST /list_filter/apply
//
// Request:  {"items": [...], "selected_indices": [0, 2]}
// Response: {"filtered": [...], "count": 2}
//
// This is the legacy exact-replication contract: responses are flat (not
// wrapped in a data envelope) and errors are {"error": message} with 400.
func ApplyFilter(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	var req applyFilterRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON in request body"})
		return
	}

	result, err := filter.Apply(req.Items, req.SelectedIndices)
	if err != nil {
		filterLogger.Warn().Err(err).Msg("filter request rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Health handles GET /list_filter/health
//
// Liveness probe used by hosts to verify the service is loaded.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
