// README: Trip planner tests with stubbed LLM and data providers.
package plan

import (
	"context"
	"errors"
	"testing"

	"safar/internal/ai"
	"safar/internal/modules/routes"
	"safar/internal/modules/weather"
)

type stubLLM struct {
	parseResult  *ai.TripRequest
	parseErr     error
	itinerary    string
	itineraryErr error
	lastInput    ai.ItineraryInput
}

func (s *stubLLM) ParseTripRequest(ctx context.Context, query string) (*ai.TripRequest, error) {
	return s.parseResult, s.parseErr
}

func (s *stubLLM) GenerateItinerary(ctx context.Context, input ai.ItineraryInput) (string, error) {
	s.lastInput = input
	return s.itinerary, s.itineraryErr
}

type stubRouteData struct{}

func (stubRouteData) Info(ctx context.Context, origin, destination string) (*routes.RouteInfo, error) {
	dist := 670.0
	hours := 11.2
	return &routes.RouteInfo{
		Origin: origin, Destination: destination,
		DistanceKM: &dist, EstimatedTimeHours: &hours,
		Region: "northern_areas",
	}, nil
}

func (stubRouteData) TransportOptions(ctx context.Context, origin, destination string, distanceKM float64) ([]routes.TransportOption, error) {
	return []routes.TransportOption{
		{Mode: "bus", EstimatedFarePKR: 1725, EstimatedTimeHours: 11.2, Availability: "always"},
	}, nil
}

type stubWeatherData struct{}

func (stubWeatherData) CityRisk(ctx context.Context, city string) weather.RiskAssessment {
	return weather.RiskAssessment{RiskLevel: weather.RiskLow, Risks: []string{}, Warnings: []string{}}
}

func (stubWeatherData) ActiveAlerts(ctx context.Context, region string) ([]weather.SafetyAlert, error) {
	return nil, nil
}

const validItinerary = `{
	"trip_title": "Enchanting Hunza Valley Adventure",
	"best_time_to_visit": "April to October",
	"weather_summary": "Mild days, cold nights",
	"daily_plan": [
		{"day": 1, "title": "Journey to Chilas", "transport": "Hiace", "transport_cost": 25000, "activities": []}
	],
	"cost_breakdown": {"transport": 70000, "total": 170000, "per_person": 42500},
	"budget_status": "under_budget"
}`

func TestGenerate_DecodesPlanAndAttachesMetadata(t *testing.T) {
	llm := &stubLLM{itinerary: validItinerary}
	p := NewPlanner(llm, stubRouteData{}, stubWeatherData{}, nil)

	got, err := p.Generate(context.Background(), ai.TripRequest{
		Destination: "Hunza", DurationDays: 5, TravelType: "family",
		NumPeople: 4, BudgetPKR: 200000, OriginCity: "Islamabad",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.TripTitle != "Enchanting Hunza Valley Adventure" {
		t.Errorf("title = %q", got.TripTitle)
	}
	if len(got.DailyPlan) != 1 || got.DailyPlan[0].TransportCost != 25000 {
		t.Errorf("daily plan = %+v", got.DailyPlan)
	}
	if got.Destination != "Hunza" || got.BudgetPKR != 200000 {
		t.Errorf("metadata not attached: %+v", got)
	}
	if llm.lastInput.RouteData == "" || llm.lastInput.TransportOptions == "none" {
		t.Error("gathered data must reach the prompt input")
	}
}

func TestGenerate_BadModelOutputYieldsSkeleton(t *testing.T) {
	llm := &stubLLM{itinerary: "sorry, I cannot do that"}
	p := NewPlanner(llm, stubRouteData{}, stubWeatherData{}, nil)

	got, err := p.Generate(context.Background(), ai.TripRequest{Destination: "Skardu"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.TripTitle != "Trip Plan" || got.BudgetStatus != "unknown" {
		t.Errorf("want skeleton plan, got %+v", got)
	}
	if got.Destination != "Skardu" {
		t.Errorf("metadata missing on skeleton: %q", got.Destination)
	}
}

func TestGenerate_LLMErrorPropagates(t *testing.T) {
	llm := &stubLLM{itineraryErr: errors.New("quota exhausted")}
	p := NewPlanner(llm, stubRouteData{}, stubWeatherData{}, nil)

	if _, err := p.Generate(context.Background(), ai.TripRequest{Destination: "Swat"}); err == nil {
		t.Fatal("want error when the model call fails")
	}
}

func TestQuickPlan_ParseFallback(t *testing.T) {
	llm := &stubLLM{parseErr: errors.New("bad json"), itinerary: validItinerary}
	p := NewPlanner(llm, stubRouteData{}, stubWeatherData{}, nil)

	got, err := p.QuickPlan(context.Background(), "solo budget trip skardu under 50k")
	if err != nil {
		t.Fatalf("QuickPlan: %v", err)
	}
	if got.ParsedRequest == nil {
		t.Fatal("quick plan must echo the parsed request")
	}
	if got.ParsedRequest.Destination != "Skardu" || got.ParsedRequest.BudgetPKR != 50000 {
		t.Errorf("fallback parse = %+v", got.ParsedRequest)
	}
}

func TestQuickPlan_LLMParseWins(t *testing.T) {
	llm := &stubLLM{
		parseResult: &ai.TripRequest{Destination: "Naran", DurationDays: 3, TravelType: "couple", NumPeople: 2, BudgetPKR: 90000},
		itinerary:   validItinerary,
	}
	p := NewPlanner(llm, stubRouteData{}, stubWeatherData{}, nil)

	got, err := p.QuickPlan(context.Background(), "romantic 3 day naran getaway")
	if err != nil {
		t.Fatalf("QuickPlan: %v", err)
	}
	if got.ParsedRequest.Destination != "Naran" || got.ParsedRequest.OriginCity != "Islamabad" {
		t.Errorf("parsed request = %+v, want LLM values with defaults filled", got.ParsedRequest)
	}
}
