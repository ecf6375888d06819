// README: Trip planning handlers (itinerary, quick-plan, destination info).
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"safar/internal/ai"
	"safar/internal/plan"
)

// TripPlanner generates itineraries from structured or natural language requests.
type TripPlanner interface {
	Generate(ctx context.Context, req ai.TripRequest) (*plan.TripPlan, error)
	QuickPlan(ctx context.Context, query string) (*plan.TripPlan, error)
}

type TripHandler struct {
	planner TripPlanner
}

func NewTripHandler(planner TripPlanner) *TripHandler {
	return &TripHandler{planner: planner}
}

type tripPlanReq struct {
	Destination         string   `json:"destination"`
	DurationDays        int      `json:"duration_days"`
	TravelType          string   `json:"travel_type"`
	NumPeople           int      `json:"num_people"`
	BudgetPKR           int      `json:"budget_pkr"`
	TravelStyle         string   `json:"travel_style"`
	OriginCity          string   `json:"origin_city"`
	StartDate           string   `json:"start_date"`
	SpecialRequirements []string `json:"special_requirements"`
}

// Plan handles POST /api/trip/plan.
func (h *TripHandler) Plan(c *gin.Context) {
	var req tripPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Destination) == "" {
		writeError(c, http.StatusBadRequest, "destination is required")
		return
	}
	if req.DurationDays < 1 || req.DurationDays > 30 {
		writeError(c, http.StatusBadRequest, "duration_days must be between 1 and 30")
		return
	}
	if req.BudgetPKR < 10000 {
		writeError(c, http.StatusBadRequest, "budget_pkr must be at least 10000")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	out, err := h.planner.Generate(ctx, ai.TripRequest{
		Destination:         req.Destination,
		DurationDays:        req.DurationDays,
		TravelType:          req.TravelType,
		NumPeople:           req.NumPeople,
		BudgetPKR:           req.BudgetPKR,
		TravelStyle:         req.TravelStyle,
		OriginCity:          req.OriginCity,
		StartDate:           req.StartDate,
		SpecialRequirements: req.SpecialRequirements,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, out)
}

type quickPlanReq struct {
	Query string `json:"query"`
}

// QuickPlan handles POST /api/trip/quick-plan.
func (h *TripHandler) QuickPlan(c *gin.Context) {
	var req quickPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(c, http.StatusBadRequest, "query is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	out, err := h.planner.QuickPlan(ctx, req.Query)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, out)
}

// Destinations handles GET /api/trip/destinations.
func (h *TripHandler) Destinations(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"destinations": plan.Destinations})
}

// PackingChecklist handles GET /api/trip/packing-checklist.
func (h *TripHandler) PackingChecklist(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		writeError(c, http.StatusBadRequest, "destination is required")
		return
	}
	durationDays := 5
	if v := c.Query("duration_days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			durationDays = n
		}
	}
	travelType := c.DefaultQuery("travel_type", "family")

	writeJSON(c, http.StatusOK, gin.H{
		"destination": destination,
		"checklist":   plan.BuildChecklist(destination, durationDays, travelType),
	})
}

// EmergencyInfo handles GET /api/trip/emergency-info.
func (h *TripHandler) EmergencyInfo(c *gin.Context) {
	region := strings.ToLower(c.Query("region"))
	if contacts, ok := plan.EmergencyInfo[region]; ok {
		writeJSON(c, http.StatusOK, gin.H{
			"region":   region,
			"contacts": contacts,
			"general":  plan.EmergencyInfo["general"],
			"tips":     plan.EmergencyTips,
		})
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"all_regions": plan.EmergencyInfo,
		"tips":        plan.EmergencyTips,
	})
}
