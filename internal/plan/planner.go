// README: Trip planner: itinerary generation with data gathering and fallbacks.
package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"safar/internal/ai"
	"safar/internal/modules/routes"
	"safar/internal/modules/weather"
)

// Activity is one scheduled item in a day plan.
type Activity struct {
	Time          string  `json:"time"`
	Activity      string  `json:"activity"`
	Location      string  `json:"location"`
	DurationHours float64 `json:"duration_hours"`
	CostPKR       float64 `json:"cost_pkr"`
	Notes         string  `json:"notes,omitempty"`
}

// DayPlan is one day of the itinerary.
type DayPlan struct {
	Day           int        `json:"day"`
	Date          string     `json:"date,omitempty"`
	Title         string     `json:"title"`
	Route         string     `json:"route,omitempty"`
	Transport     string     `json:"transport,omitempty"`
	TransportCost float64    `json:"transport_cost"`
	Hotel         string     `json:"hotel,omitempty"`
	HotelCost     float64    `json:"hotel_cost"`
	MealsCost     float64    `json:"meals_cost"`
	Activities    []Activity `json:"activities"`
	ActivitiesCost float64   `json:"activities_cost"`
	WeatherNote   string     `json:"weather_note,omitempty"`
	SafetyNote    string     `json:"safety_note,omitempty"`
	Tips          []string   `json:"tips,omitempty"`
}

// CostBreakdown totals the trip budget in PKR.
type CostBreakdown struct {
	Transport     float64 `json:"transport"`
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Activities    float64 `json:"activities"`
	Miscellaneous float64 `json:"miscellaneous"`
	Total         float64 `json:"total"`
	PerPerson     float64 `json:"per_person"`
	Buffer        float64 `json:"buffer"`
}

// EmergencyContact is a named phone number.
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// TripPlan is the complete generated itinerary.
type TripPlan struct {
	TripTitle       string          `json:"trip_title"`
	BestTimeToVisit string          `json:"best_time_to_visit"`
	WeatherSummary  string          `json:"weather_summary"`
	DailyPlan       []DayPlan       `json:"daily_plan"`
	CostBreakdown   CostBreakdown   `json:"cost_breakdown"`
	BudgetStatus    string          `json:"budget_status"`
	CostSavingTips  []string        `json:"cost_saving_tips"`
	SafetyNotes     []string        `json:"safety_notes"`
	WeatherWarnings []string        `json:"weather_warnings"`
	RoadConditions  []string        `json:"road_conditions"`
	AltitudeWarnings []string       `json:"altitude_warnings"`
	ConnectivityNotes []string      `json:"connectivity_notes"`
	FuelStops       []string        `json:"fuel_stops"`
	PackingChecklist []ChecklistItem `json:"packing_checklist"`
	DocumentsRequired []string      `json:"documents_required"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`
	LocalTips       []string        `json:"local_tips"`
	FoodRecommendations []string    `json:"food_recommendations"`
	MustVisitSpots  []string        `json:"must_visit_spots"`
	UncertaintyNotes string         `json:"uncertainty_notes,omitempty"`
	DataFreshness   string          `json:"data_freshness,omitempty"`

	// Request metadata echoed back to the caller.
	Destination  string `json:"destination"`
	DurationDays int    `json:"duration_days"`
	TravelType   string `json:"travel_type"`
	NumPeople    int    `json:"num_people"`
	BudgetPKR    int    `json:"budget_pkr"`
	TravelStyle  string `json:"travel_style"`
	OriginCity   string `json:"origin_city"`

	// ParsedRequest is set on quick plans for transparency.
	ParsedRequest *ai.TripRequest `json:"parsed_request,omitempty"`
}

// LLM is the planner's view of the AI provider.
type LLM interface {
	ParseTripRequest(ctx context.Context, query string) (*ai.TripRequest, error)
	GenerateItinerary(ctx context.Context, input ai.ItineraryInput) (string, error)
}

// RouteData provides route and transport lookups.
type RouteData interface {
	Info(ctx context.Context, origin, destination string) (*routes.RouteInfo, error)
	TransportOptions(ctx context.Context, origin, destination string, distanceKM float64) ([]routes.TransportOption, error)
}

// WeatherData provides destination risk and active alerts.
type WeatherData interface {
	CityRisk(ctx context.Context, city string) weather.RiskAssessment
	ActiveAlerts(ctx context.Context, region string) ([]weather.SafetyAlert, error)
}

type Planner struct {
	llm     LLM
	routes  RouteData
	weather WeatherData
	log     *zap.Logger
	now     func() time.Time
}

func NewPlanner(llm LLM, routeData RouteData, weatherData WeatherData, log *zap.Logger) *Planner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Planner{llm: llm, routes: routeData, weather: weatherData, log: log, now: time.Now}
}

// Generate produces a complete day-by-day trip plan for a structured
// request. LLM output that fails to decode degrades to a skeleton plan
// rather than an error.
func (p *Planner) Generate(ctx context.Context, req ai.TripRequest) (*TripPlan, error) {
	applyDefaults(&req)
	p.log.Info("generating trip plan",
		zap.String("destination", req.Destination),
		zap.Int("duration_days", req.DurationDays),
		zap.Int("budget_pkr", req.BudgetPKR))

	input := ai.ItineraryInput{
		Destination:         req.Destination,
		DurationDays:        req.DurationDays,
		TravelType:          req.TravelType,
		NumPeople:           req.NumPeople,
		BudgetPKR:           req.BudgetPKR,
		TravelStyle:         req.TravelStyle,
		OriginCity:          req.OriginCity,
		StartDate:           req.StartDate,
		SpecialRequirements: req.SpecialRequirements,
		RouteData:           p.gatherRouteData(ctx, req.OriginCity, req.Destination),
		WeatherData:         p.gatherWeatherData(ctx, req.Destination),
		SafetyAlerts:        p.gatherAlerts(ctx, req.Destination),
		TransportOptions:    p.gatherTransport(ctx, req.OriginCity, req.Destination),
		CurrentDate:         p.now().Format("2006-01-02"),
	}

	raw, err := p.llm.GenerateItinerary(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("trip plan generation: %w", err)
	}

	var out TripPlan
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		p.log.Warn("trip plan decode failed, using skeleton", zap.Error(err))
		out = skeletonPlan(err, p.now())
	}

	out.Destination = req.Destination
	out.DurationDays = req.DurationDays
	out.TravelType = req.TravelType
	out.NumPeople = req.NumPeople
	out.BudgetPKR = req.BudgetPKR
	out.TravelStyle = req.TravelStyle
	out.OriginCity = req.OriginCity

	p.log.Info("trip plan ready", zap.Int("days", len(out.DailyPlan)))
	return &out, nil
}

// QuickPlan parses a natural language trip request and generates a plan
// from it. LLM parse failures fall back to the heuristic parser.
func (p *Planner) QuickPlan(ctx context.Context, query string) (*TripPlan, error) {
	req, err := p.llm.ParseTripRequest(ctx, query)
	if err != nil {
		p.log.Warn("quick-parse failed, using heuristics", zap.Error(err))
		req = parseFallback(query)
	}
	applyDefaults(req)

	out, err := p.Generate(ctx, *req)
	if err != nil {
		return nil, err
	}
	out.ParsedRequest = req
	return out, nil
}

func (p *Planner) gatherRouteData(ctx context.Context, origin, destination string) string {
	type intermediateRoute struct {
		From       string   `json:"from"`
		To         string   `json:"to"`
		DistanceKM *float64 `json:"distance_km"`
		TimeHours  *float64 `json:"time_hours"`
	}
	payload := struct {
		MainRoute          *routes.RouteInfo   `json:"main_route"`
		IntermediateRoutes []intermediateRoute `json:"intermediate_routes"`
		DestinationInfo    DestinationNotes    `json:"destination_info"`
	}{
		DestinationInfo: NotesFor(destination),
	}

	if info, err := p.routes.Info(ctx, origin, destination); err == nil {
		payload.MainRoute = info
	}
	for _, city := range IntermediateCities(destination) {
		info, err := p.routes.Info(ctx, origin, city)
		if err != nil || info.DistanceKM == nil {
			continue
		}
		payload.IntermediateRoutes = append(payload.IntermediateRoutes, intermediateRoute{
			From: origin, To: city,
			DistanceKM: info.DistanceKM, TimeHours: info.EstimatedTimeHours,
		})
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return string(raw)
}

func (p *Planner) gatherWeatherData(ctx context.Context, destination string) string {
	payload := struct {
		Risks           weather.RiskAssessment `json:"risks"`
		ForecastSummary string                 `json:"forecast_summary"`
	}{
		Risks:           p.weather.CityRisk(ctx, destination),
		ForecastSummary: "Check local weather before travel",
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return string(raw)
}

func (p *Planner) gatherAlerts(ctx context.Context, destination string) string {
	alerts, err := p.weather.ActiveAlerts(ctx, destination)
	if err != nil || len(alerts) == 0 {
		return "none"
	}
	raw, err := json.Marshal(alerts)
	if err != nil {
		return "none"
	}
	return string(raw)
}

func (p *Planner) gatherTransport(ctx context.Context, origin, destination string) string {
	opts, err := p.routes.TransportOptions(ctx, origin, destination, 0)
	if err != nil || len(opts) == 0 {
		return "none"
	}
	var b strings.Builder
	for _, o := range opts {
		fmt.Fprintf(&b, "- %s: PKR %.0f, ~%.1f hours (%s)\n",
			o.Mode, o.EstimatedFarePKR, o.EstimatedTimeHours, o.Availability)
	}
	return b.String()
}

// skeletonPlan is returned when the model output cannot be decoded.
func skeletonPlan(decodeErr error, now time.Time) TripPlan {
	return TripPlan{
		TripTitle:       "Trip Plan",
		BestTimeToVisit: "Varies by season",
		WeatherSummary:  "Check local conditions",
		DailyPlan:       []DayPlan{},
		BudgetStatus:    "unknown",
		SafetyNotes:     []string{"Unable to generate detailed plan. Please try again."},
		UncertaintyNotes: fmt.Sprintf("Plan generation error: %v", decodeErr),
		DataFreshness:   now.Format("2006-01-02"),
	}
}
