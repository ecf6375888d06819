// README: Travel query handler (AI-backed natural language answers).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"safar/internal/interpret"
	"safar/internal/modules/quota"
	"safar/internal/service"
)

// Adviser answers resolved travel queries.
type Adviser interface {
	Answer(ctx context.Context, req interpret.Request) (*service.Answer, error)
}

// QuotaConsumer deducts one AI query from a user's monthly allowance.
type QuotaConsumer interface {
	Consume(ctx context.Context, uid string) error
}

type TravelHandler struct {
	advisor Adviser
	quota   QuotaConsumer
}

// NewTravelHandler wires the travel-query handler. quota may be nil to
// disable per-user limits.
func NewTravelHandler(advisor Adviser, quotaSvc QuotaConsumer) *TravelHandler {
	return &TravelHandler{advisor: advisor, quota: quotaSvc}
}

type profileReq struct {
	Gender          string `json:"gender"`
	TravelGroup     string `json:"travel_group"`
	HomeCity        string `json:"home_city"`
	PreferredBudget string `json:"preferred_budget"`
}

type conversationMessage struct {
	Type    string `json:"type"` // "user" or "ai"
	Role    string `json:"role"` // alias for Type: "user" or "assistant"
	Content string `json:"content"`
}

type travelQueryReq struct {
	Query       string                `json:"query"`
	Origin      string                `json:"origin"`
	Destination string                `json:"destination"`
	TravelDate  string                `json:"travel_date"`
	UserID      string                `json:"user_id"`
	UserProfile *profileReq           `json:"user_profile"`
	History     []conversationMessage `json:"conversation_history"`
}

// Query handles POST /api/travel/query.
func (h *TravelHandler) Query(c *gin.Context) {
	var req travelQueryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		writeError(c, http.StatusBadRequest, "query is required")
		return
	}

	if h.quota != nil && req.UserID != "" {
		if err := h.quota.Consume(c.Request.Context(), req.UserID); err != nil {
			if errors.Is(err, quota.ErrQuotaExhausted) {
				writeError(c, http.StatusTooManyRequests, err.Error())
				return
			}
			writeServiceError(c, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	answer, err := h.advisor.Answer(ctx, interpret.Request{
		Query:       req.Query,
		Origin:      req.Origin,
		Destination: req.Destination,
		TravelDate:  req.TravelDate,
		Profile:     req.UserProfile.toProfile(),
		History:     toTurns(req.History),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, answer)
}

func (p *profileReq) toProfile() *interpret.Profile {
	if p == nil {
		return nil
	}
	return &interpret.Profile{
		Gender:      p.Gender,
		TravelGroup: p.TravelGroup,
		HomeCity:    p.HomeCity,
		Budget:      p.PreferredBudget,
	}
}

func toTurns(messages []conversationMessage) []interpret.Turn {
	if len(messages) == 0 {
		return nil
	}
	turns := make([]interpret.Turn, 0, len(messages))
	for _, m := range messages {
		kind := m.Type
		if kind == "" {
			kind = m.Role
		}
		role := interpret.RoleAssistant
		if kind == "user" {
			role = interpret.RoleUser
		}
		turns = append(turns, interpret.Turn{Role: role, Content: m.Content})
	}
	return turns
}
