// README: Query history and user profile handlers.
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"safar/internal/modules/queries"
)

// HistoryStore reads and writes query history and user profiles.
type HistoryStore interface {
	RecentQueries(ctx context.Context, limit int) ([]queries.TravelQuery, error)
	SaveProfile(ctx context.Context, p *queries.UserProfile) error
}

type QueryHandler struct {
	store HistoryStore
}

func NewQueryHandler(store HistoryStore) *QueryHandler {
	return &QueryHandler{store: store}
}

// History handles GET /api/queries/history.
func (h *QueryHandler) History(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	recent, err := h.store.RecentQueries(c.Request.Context(), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if recent == nil {
		recent = []queries.TravelQuery{}
	}
	writeJSON(c, http.StatusOK, gin.H{"queries": recent, "count": len(recent)})
}

type profileCreateReq struct {
	Gender      string            `json:"gender"`
	TravelGroup string            `json:"travel_group"`
	Preferences map[string]string `json:"preferences"`
}

// CreateProfile handles POST /api/user/profile.
func (h *QueryHandler) CreateProfile(c *gin.Context) {
	var req profileCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	p := &queries.UserProfile{
		Gender:      req.Gender,
		TravelGroup: req.TravelGroup,
		Preferences: req.Preferences,
		CreatedAt:   time.Now(),
	}
	if err := h.store.SaveProfile(c.Request.Context(), p); err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, p)
}
