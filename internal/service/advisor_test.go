package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"safar/internal/ai"
	"safar/internal/interpret"
	"safar/internal/modules/queries"
	"safar/internal/modules/routes"
	"safar/internal/modules/weather"
)

type stubLLM struct {
	advice    string
	adviceErr error
	lastInput ai.AdviceInput
	calls     int
}

func (s *stubLLM) TravelAdvice(ctx context.Context, input ai.AdviceInput) (string, error) {
	s.calls++
	s.lastInput = input
	return s.advice, s.adviceErr
}

func (s *stubLLM) ParseTripRequest(ctx context.Context, query string) (*ai.TripRequest, error) {
	return nil, errors.New("not used")
}

func (s *stubLLM) GenerateItinerary(ctx context.Context, input ai.ItineraryInput) (string, error) {
	return "", errors.New("not used")
}

type fakeRoutes struct {
	info *routes.RouteInfo
	err  error
}

func (f *fakeRoutes) Info(ctx context.Context, origin, destination string) (*routes.RouteInfo, error) {
	return f.info, f.err
}

type fakeWeather struct {
	risk   weather.RiskAssessment
	alerts []weather.SafetyAlert
}

func (f *fakeWeather) RouteRisk(ctx context.Context, origin, destination string) weather.RiskAssessment {
	return f.risk
}

func (f *fakeWeather) ActiveAlerts(ctx context.Context, region string) ([]weather.SafetyAlert, error) {
	return f.alerts, nil
}

type memRecorder struct {
	saved []queries.TravelQuery
}

func (m *memRecorder) SaveQuery(ctx context.Context, q *queries.TravelQuery) error {
	m.saved = append(m.saved, *q)
	return nil
}

func hunzaRoute() *routes.RouteInfo {
	dist := 670.0
	hours := 13.4
	return &routes.RouteInfo{
		Origin:             "islamabad",
		Destination:        "hunza",
		DistanceKM:         &dist,
		EstimatedTimeHours: &hours,
		SafetyScore:        85,
		RiskLevel:          "recommended",
		Region:             "northern_areas",
		TransportOptions: []routes.TransportOption{
			{Mode: "bus", EstimatedFarePKR: 2000, EstimatedTimeHours: 13.4, RiskLevel: "caution"},
			{Mode: "car", EstimatedFarePKR: 1500, EstimatedTimeHours: 11.2, RiskLevel: "recommended"},
		},
	}
}

func clearWeather() weather.RiskAssessment {
	return weather.RiskAssessment{RiskLevel: weather.RiskLow, Risks: []string{}, Warnings: []string{}}
}

func TestAnswer_FullEnrichedPath(t *testing.T) {
	llm := &stubLLM{advice: "Hunza is stunning in autumn. Take the KKH via Besham."}
	rec := &memRecorder{}
	adv := NewAdvisor(llm, &fakeRoutes{info: hunzaRoute()}, &fakeWeather{risk: clearWeather()}, rec, nil)

	got, err := adv.Answer(context.Background(), interpret.Request{
		Query: "tell me everything about traveling from Islamabad to Hunza",
	})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got.Response != llm.advice {
		t.Errorf("response = %q", got.Response)
	}
	if len(got.Routes) != 1 {
		t.Fatalf("routes = %d, want 1", len(got.Routes))
	}
	r := got.Routes[0]
	if r.RouteName != "Islamabad to Hunza" {
		t.Errorf("route name = %q", r.RouteName)
	}
	if r.DistanceKM != 670 || r.EstimatedTimeHours != 13.4 {
		t.Errorf("distance/time = %v/%v", r.DistanceKM, r.EstimatedTimeHours)
	}
	if r.RiskLevel != "recommended" {
		t.Errorf("risk level = %q", r.RiskLevel)
	}
	if got.CostEstimate == nil || got.CostEstimate.Cheapest != 1500 || got.CostEstimate.MostExpensive != 2000 || got.CostEstimate.Average != 1750 {
		t.Errorf("cost estimate = %+v", got.CostEstimate)
	}
	if len(got.Recommendations) == 0 {
		t.Error("want safety recommendations")
	}

	in := llm.lastInput
	if in.Origin != "islamabad" || in.Destination != "hunza" {
		t.Errorf("prompt endpoints = %q/%q", in.Origin, in.Destination)
	}
	if in.IsFollowUp {
		t.Error("fresh question must not be marked follow-up")
	}
	if in.RiskLevel != "Great conditions for travel" {
		t.Errorf("risk level not humanized: %q", in.RiskLevel)
	}
	if !strings.Contains(in.TransportOptions, "BUS: PKR 2000") {
		t.Errorf("transport block = %q", in.TransportOptions)
	}

	if len(rec.saved) != 1 || rec.saved[0].Destination != "hunza" || rec.saved[0].Response != llm.advice {
		t.Errorf("saved query = %+v", rec.saved)
	}
}

func TestAnswer_GreetingShortCircuitsWithoutEnrichment(t *testing.T) {
	llm := &stubLLM{advice: "should not be called"}
	rec := &memRecorder{}
	adv := NewAdvisor(llm, &fakeRoutes{err: errors.New("must not be reached")}, &fakeWeather{}, rec, nil)

	got, err := adv.Answer(context.Background(), interpret.Request{Query: "hi"})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !strings.Contains(got.Response, "travel consultant") {
		t.Errorf("want onboarding response, got %q", got.Response)
	}
	if llm.calls != 0 {
		t.Errorf("model was called %d times on a short-circuit", llm.calls)
	}
	if got.Routes == nil || got.SafetyAlerts == nil || got.Recommendations == nil {
		t.Error("short-circuit payload must have empty, non-nil slices")
	}
	if len(rec.saved) != 1 {
		t.Errorf("short-circuit responses must still be recorded, saved=%d", len(rec.saved))
	}
}

func TestAnswer_RecordsQueryTimestamp(t *testing.T) {
	llm := &stubLLM{advice: "ok"}
	rec := &memRecorder{}
	adv := NewAdvisor(llm, &fakeRoutes{info: hunzaRoute()}, &fakeWeather{risk: clearWeather()}, rec, nil)
	when := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	adv.now = func() time.Time { return when }

	for _, query := range []string{"hi", "how do I get from Islamabad to Hunza"} {
		if _, err := adv.Answer(context.Background(), interpret.Request{Query: query}); err != nil {
			t.Fatalf("Answer(%q): %v", query, err)
		}
	}

	if len(rec.saved) != 2 {
		t.Fatalf("saved = %d, want 2", len(rec.saved))
	}
	for i, q := range rec.saved {
		if q.CreatedAt.IsZero() {
			t.Errorf("saved[%d].CreatedAt is zero", i)
		}
		if !q.CreatedAt.Equal(when) {
			t.Errorf("saved[%d].CreatedAt = %v, want %v", i, q.CreatedAt, when)
		}
	}
}

func TestAnswer_PayloadEmitsNullUncertainty(t *testing.T) {
	llm := &stubLLM{advice: "clear skies all the way"}
	adv := NewAdvisor(llm, &fakeRoutes{info: hunzaRoute()}, &fakeWeather{risk: clearWeather()}, nil, nil)

	got, err := adv.Answer(context.Background(), interpret.Request{
		Query: "how do I get from Islamabad to Hunza",
	})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got.UncertaintyNotes != nil {
		t.Fatalf("UncertaintyNotes = %q, want nil with clear weather", *got.UncertaintyNotes)
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"uncertainty_notes":null`) {
		t.Errorf("payload must carry an explicit null uncertainty_notes, got %s", raw)
	}
}

func TestAnswer_OriginOnlyListsDestinations(t *testing.T) {
	llm := &stubLLM{}
	adv := NewAdvisor(llm, &fakeRoutes{}, &fakeWeather{}, nil, nil)

	got, err := adv.Answer(context.Background(), interpret.Request{Query: "leaving soon", Origin: "Lahore"})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !strings.Contains(got.Response, "popular destinations") {
		t.Errorf("want destination suggestions, got %q", got.Response)
	}
	if len(got.Recommendations) != 3 {
		t.Errorf("recommendations = %d, want 3", len(got.Recommendations))
	}
}

func TestAnswer_UnknownRouteDegrades(t *testing.T) {
	llm := &stubLLM{advice: "should not be called"}
	adv := NewAdvisor(llm, &fakeRoutes{err: routes.ErrNotFound}, &fakeWeather{}, nil, nil)

	got, err := adv.Answer(context.Background(), interpret.Request{
		Query:       "how do I get there",
		Origin:      "islamabad",
		Destination: "hunza",
	})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !strings.Contains(got.Response, "I don't have route information for Islamabad to Hunza") {
		t.Errorf("response = %q", got.Response)
	}
	if got.UncertaintyNotes == nil || *got.UncertaintyNotes == "" {
		t.Error("missing uncertainty note on unknown route")
	}
	if llm.calls != 0 {
		t.Error("model must not be called without route data")
	}
}

func TestAnswer_LLMFailureUsesFallbackMarkdown(t *testing.T) {
	llm := &stubLLM{adviceErr: errors.New("deadline exceeded")}
	adv := NewAdvisor(llm, &fakeRoutes{info: hunzaRoute()}, &fakeWeather{risk: clearWeather()}, nil, nil)

	got, err := adv.Answer(context.Background(), interpret.Request{
		Query: "tell me everything about traveling from Islamabad to Hunza",
	})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !strings.Contains(got.Response, "## 🧭 Trip from Islamabad to Hunza") {
		t.Errorf("fallback header missing: %q", got.Response)
	}
	if !strings.Contains(got.Response, "Rescue 1122") {
		t.Error("fallback must include emergency contact")
	}
	if !strings.Contains(got.Response, "Budget-friendly option: Car at PKR 1500") {
		t.Errorf("cheapest option missing: %q", got.Response)
	}
}

func TestAnswer_FallbackTipsFollowGroupType(t *testing.T) {
	llm := &stubLLM{adviceErr: errors.New("unavailable")}
	murree := hunzaRoute()
	murree.Destination = "murree"
	adv := NewAdvisor(llm, &fakeRoutes{info: murree}, &fakeWeather{risk: clearWeather()}, nil, nil)

	got, err := adv.Answer(context.Background(), interpret.Request{
		Query: "4 girls going to Murree - what do we need to know?",
	})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !strings.Contains(got.Response, "Travel during daylight hours only") {
		t.Errorf("want female-group safety tips, got %q", got.Response)
	}
	if strings.Contains(got.Response, "Avoid night travel on mountain roads") {
		t.Error("generic tips must not appear for a female group")
	}
}

func TestAnswer_FollowUpCarriesConversationContext(t *testing.T) {
	llm := &stubLLM{advice: "Serena Altit and Hard Rock Hunza are solid picks."}
	adv := NewAdvisor(llm, &fakeRoutes{info: hunzaRoute()}, &fakeWeather{risk: clearWeather()}, nil, nil)

	history := []interpret.Turn{
		{Role: interpret.RoleUser, Content: "tell me everything about hunza"},
		{Role: interpret.RoleAssistant, Content: "Hunza is a valley in Gilgit-Baltistan known for Rakaposhi views."},
	}
	if _, err := adv.Answer(context.Background(), interpret.Request{
		Query:   "what about hotels there",
		History: history,
	}); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	in := llm.lastInput
	if !in.IsFollowUp {
		t.Fatal("want follow-up detection")
	}
	if in.Destination != "hunza" {
		t.Errorf("inherited destination = %q", in.Destination)
	}
	if !strings.Contains(in.ConversationContext, "PREVIOUS CONVERSATION:") ||
		!strings.Contains(in.ConversationContext, "User: tell me everything about hunza") {
		t.Errorf("conversation context = %q", in.ConversationContext)
	}
}

func TestProfileSummary(t *testing.T) {
	got := profileSummary(&interpret.Profile{Gender: "female", TravelGroup: "solo", HomeCity: "Lahore"},
		interpret.GroupFemaleTraveler, "3 girls planning a trip")
	for _, want := range []string{
		"Female solo traveler",
		"Number of people: 3",
		"Gender: female",
		"Home city: Lahore",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary %q missing %q", got, want)
		}
	}

	if got := profileSummary(nil, interpret.GroupGeneral, "trip to swat"); got != "Group Type: General travelers" {
		t.Errorf("bare summary = %q", got)
	}
}

func TestFormatWeatherRisks(t *testing.T) {
	if got := formatWeatherRisks(weather.RiskAssessment{RiskLevel: weather.RiskUnknown}); got != "Weather data not available" {
		t.Errorf("unknown = %q", got)
	}
	if got := formatWeatherRisks(clearWeather()); got != "No significant weather risks" {
		t.Errorf("clear = %q", got)
	}
	risky := weather.RiskAssessment{
		RiskLevel: weather.RiskHigh,
		Warnings:  []string{"Heavy rainfall expected", "Strong winds"},
	}
	if got := formatWeatherRisks(risky); got != "- Heavy rainfall expected\n- Strong winds" {
		t.Errorf("risky = %q", got)
	}
}

func TestCostEstimate_NoOptions(t *testing.T) {
	if got := costEstimate(nil); got != nil {
		t.Errorf("want nil estimate, got %+v", got)
	}
}
