package api

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/xiaoyuanzhu-com/list-filter/db"
	"github.com/xiaoyuanzhu-com/list-filter/log"
	"github.com/xiaoyuanzhu-com/list-filter/models"
	"github.com/xiaoyuanzhu-com/list-filter/notifications"
	"github.com/xiaoyuanzhu-com/list-filter/source"
	"github.com/xiaoyuanzhu-com/list-filter/togglelist"
)

var sessionsLogger = log.GetLogger("ApiSessions")

type createSessionRequest struct {
	Name   string          `json:"name"`
	Source string          `json:"source"`
	Items  json.RawMessage `json:"items"`
}

type updateSessionRequest struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

type toggleRequest struct {
	Name  *string `json:"name"`
	Index *int    `json:"index"`
}

type reconcileRequest struct {
	Items json.RawMessage `json:"items"`
}

type activeResponse struct {
	Active []string `json:"active"`
	Count  int      `json:"count"`
}

// ListSessions handles GET /api/sessions
func ListSessions(c *gin.Context) {
	records, err := db.ListSessions()
	if err != nil {
		sessionsLogger.Error().Err(err).Msg("failed to list sessions")
		RespondInternalError(c, "Failed to list sessions")
		return
	}

	summaries := make([]models.SessionSummary, 0, len(records))
	for _, rec := range records {
		state := togglelist.Deserialize(rec.State)
		summaries = append(summaries, models.SessionSummary{
			ID:        rec.ID,
			Name:      rec.Name,
			Source:    rec.Source,
			Total:     state.Len(),
			Count:     state.Count(),
			UpdatedAt: rec.UpdatedAt,
		})
	}

	RespondList(c, summaries)
}

// CreateSession handles POST /api/sessions
//
// Items may arrive as a JSON array or as a string in any form the engine
// decodes; unparsable input creates an empty session rather than failing.
func CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}
	if req.Name == "" {
		RespondValidationError(c, "name is required")
		return
	}

	state := togglelist.NewFromRaw(rawItemsText(req.Items))

	rec, err := db.CreateSession(req.Name, req.Source, state.Serialize())
	if err != nil {
		sessionsLogger.Error().Err(err).Msg("failed to create session")
		RespondInternalError(c, "Failed to create session")
		return
	}

	// A fresh source binding picks up the file's current items right away
	// instead of waiting for the next write event
	if req.Source != "" && len(req.Items) == 0 {
		if w := source.GetWorker(); w != nil {
			w.ReconcileNow(req.Source)
			if rec, err = db.GetSession(rec.ID); err != nil {
				RespondInternalError(c, "Failed to load session")
				return
			}
		}
	}

	notifications.GetService().NotifySessionChanged(rec.ID, "create")
	RespondCreated(c, sessionView(rec), "/api/sessions/"+rec.ID)
}

// GetSession handles GET /api/sessions/:id
func GetSession(c *gin.Context) {
	rec, err := db.GetSession(c.Param("id"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	RespondData(c, sessionView(rec))
}

// UpdateSession handles PUT /api/sessions/:id (name and source binding)
func UpdateSession(c *gin.Context) {
	var req updateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}
	if req.Name == "" {
		RespondValidationError(c, "name is required")
		return
	}

	id := c.Param("id")
	if err := db.UpdateSessionMeta(id, req.Name, req.Source); err != nil {
		respondSessionError(c, err)
		return
	}

	rec, err := db.GetSession(id)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	notifications.GetService().NotifySessionChanged(id, "update")
	RespondData(c, sessionView(rec))
}

// DeleteSession handles DELETE /api/sessions/:id
func DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if err := db.DeleteSession(id); err != nil {
		respondSessionError(c, err)
		return
	}

	notifications.GetService().NotifySessionChanged(id, "delete")
	RespondNoContent(c)
}

// ToggleEntry handles POST /api/sessions/:id/toggle
//
// The target is either an entry name or a positional index. A target that
// no longer exists is a no-op, not an error: click targets race against
// source-driven reconciles, so the session is returned unchanged.
func ToggleEntry(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}
	if req.Name == nil && req.Index == nil {
		RespondValidationError(c, "name or index is required")
		return
	}

	mutateSession(c, "toggle", func(state *togglelist.State) {
		var err error
		if req.Name != nil {
			_, err = state.Toggle(*req.Name)
		} else {
			_, err = state.ToggleIndex(*req.Index)
		}
		if errors.Is(err, togglelist.ErrEntryNotFound) {
			sessionsLogger.Debug().Str("session", c.Param("id")).Msg("toggle target not found, ignoring")
		}
	})
}

// SelectAllEntries handles POST /api/sessions/:id/select-all
func SelectAllEntries(c *gin.Context) {
	mutateSession(c, "select-all", func(state *togglelist.State) {
		state.SelectAll()
	})
}

// DeselectAllEntries handles POST /api/sessions/:id/deselect-all
func DeselectAllEntries(c *gin.Context) {
	mutateSession(c, "deselect-all", func(state *togglelist.State) {
		state.DeselectAll()
	})
}

// ReconcileSession handles POST /api/sessions/:id/reconcile
//
// Re-derives the session's entries from a newly supplied item list while
// preserving prior flags by name.
func ReconcileSession(c *gin.Context) {
	var req reconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "Invalid request body")
		return
	}

	mutateSession(c, "reconcile", func(state *togglelist.State) {
		state.ReconcileRaw(rawItemsText(req.Items))
	})
}

// GetActive handles GET /api/sessions/:id/active
//
// Returns the filtered output: the ordered names of active entries and
// their count.
func GetActive(c *gin.Context) {
	rec, err := db.GetSession(c.Param("id"))
	if err != nil {
		respondSessionError(c, err)
		return
	}

	state := togglelist.Deserialize(rec.State)
	RespondData(c, activeResponse{Active: state.ActiveNames(), Count: state.Count()})
}

// mutateSession loads a session's state, applies fn, persists the result,
// notifies subscribers, and responds with the updated session
func mutateSession(c *gin.Context, operation string, fn func(*togglelist.State)) {
	id := c.Param("id")
	rec, err := db.GetSession(id)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	state := togglelist.Deserialize(rec.State)
	fn(state)

	if err := db.UpdateSessionState(id, state.Serialize()); err != nil {
		respondSessionError(c, err)
		return
	}

	rec, err = db.GetSession(id)
	if err != nil {
		respondSessionError(c, err)
		return
	}

	notifications.GetService().NotifySessionChanged(id, operation)
	RespondData(c, sessionView(rec))
}

// sessionView converts a session record to its API representation
func sessionView(rec *db.SessionRecord) *models.Session {
	state := togglelist.Deserialize(rec.State)
	return &models.Session{
		ID:        rec.ID,
		Name:      rec.Name,
		Source:    rec.Source,
		Entries:   state.Entries(),
		Active:    state.ActiveNames(),
		Count:     state.Count(),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

// rawItemsText normalizes an items field that may arrive either as a JSON
// array or as a JSON string holding one of the engine's decodable forms
func rawItemsText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func respondSessionError(c *gin.Context, err error) {
	if errors.Is(err, db.ErrSessionNotFound) {
		RespondNotFound(c, "Session not found")
		return
	}
	sessionsLogger.Error().Err(err).Msg("session operation failed")
	RespondInternalError(c, "Session operation failed")
}
