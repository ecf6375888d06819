// README: Trip planning handler tests.
package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"safar/internal/ai"
	"safar/internal/plan"
)

type fakePlanner struct {
	plan    *plan.TripPlan
	err     error
	lastReq ai.TripRequest
}

func (f *fakePlanner) Generate(ctx context.Context, req ai.TripRequest) (*plan.TripPlan, error) {
	f.lastReq = req
	return f.plan, f.err
}

func (f *fakePlanner) QuickPlan(ctx context.Context, query string) (*plan.TripPlan, error) {
	return f.plan, f.err
}

func newTripRouter(planner TripPlanner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTripHandler(planner)
	r.POST("/api/trip/plan", h.Plan)
	r.POST("/api/trip/quick-plan", h.QuickPlan)
	r.GET("/api/trip/destinations", h.Destinations)
	r.GET("/api/trip/packing-checklist", h.PackingChecklist)
	r.GET("/api/trip/emergency-info", h.EmergencyInfo)
	return r
}

func getPath(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTripPlan_Validation(t *testing.T) {
	r := newTripRouter(&fakePlanner{plan: &plan.TripPlan{}})

	cases := []struct {
		name string
		body string
	}{
		{"missing destination", `{"duration_days": 5, "budget_pkr": 100000}`},
		{"duration too long", `{"destination": "Hunza", "duration_days": 45, "budget_pkr": 100000}`},
		{"budget too low", `{"destination": "Hunza", "duration_days": 5, "budget_pkr": 500}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/trip/plan", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestTripPlan_OK(t *testing.T) {
	planner := &fakePlanner{plan: &plan.TripPlan{TripTitle: "Hunza Escape", Destination: "Hunza"}}
	r := newTripRouter(planner)

	w := postJSON(t, r, "/api/trip/plan", `{
		"destination": "Hunza", "duration_days": 5, "travel_type": "family",
		"num_people": 4, "budget_pkr": 200000, "origin_city": "Lahore"
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Hunza Escape") {
		t.Errorf("body = %s", w.Body.String())
	}
	if planner.lastReq.OriginCity != "Lahore" || planner.lastReq.NumPeople != 4 {
		t.Errorf("planner request = %+v", planner.lastReq)
	}
}

func TestQuickPlan_MissingQuery(t *testing.T) {
	r := newTripRouter(&fakePlanner{plan: &plan.TripPlan{}})
	w := postJSON(t, r, "/api/trip/quick-plan", `{"query": ""}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDestinations(t *testing.T) {
	r := newTripRouter(&fakePlanner{})
	w := getPath(t, r, "/api/trip/destinations")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Hunza") || !strings.Contains(w.Body.String(), "Skardu") {
		t.Errorf("destination catalog incomplete: %s", w.Body.String())
	}
}

func TestPackingChecklist(t *testing.T) {
	r := newTripRouter(&fakePlanner{})

	w := getPath(t, r, "/api/trip/packing-checklist")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without destination, got %d", w.Code)
	}

	w = getPath(t, r, "/api/trip/packing-checklist?destination=hunza&duration_days=7&travel_type=family")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Warm jacket", "Kids snacks", "Laundry bag", "CNIC/Passport"} {
		if !strings.Contains(body, want) {
			t.Errorf("checklist missing %q", want)
		}
	}
}

func TestEmergencyInfo(t *testing.T) {
	r := newTripRouter(&fakePlanner{})

	w := getPath(t, r, "/api/trip/emergency-info?region=gilgit_baltistan")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "1122") || !strings.Contains(w.Body.String(), "tips") {
		t.Errorf("body = %s", w.Body.String())
	}

	w = getPath(t, r, "/api/trip/emergency-info")
	if !strings.Contains(w.Body.String(), "all_regions") {
		t.Errorf("fallback must return all regions: %s", w.Body.String())
	}
}
