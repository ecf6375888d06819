package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"safar/internal/ai"
	"safar/internal/interpret"
	"safar/internal/modules/queries"
	"safar/internal/modules/routes"
	"safar/internal/modules/safety"
	"safar/internal/modules/weather"
)

// RouteProvider supplies the assembled route answer for a city pair.
type RouteProvider interface {
	Info(ctx context.Context, origin, destination string) (*routes.RouteInfo, error)
}

// WeatherProvider supplies weather risk and active alerts for a route.
type WeatherProvider interface {
	RouteRisk(ctx context.Context, origin, destination string) weather.RiskAssessment
	ActiveAlerts(ctx context.Context, region string) ([]weather.SafetyAlert, error)
}

// QueryRecorder persists answered queries for history. May be nil.
type QueryRecorder interface {
	SaveQuery(ctx context.Context, q *queries.TravelQuery) error
}

// CostEstimate summarizes transport fares across the available options.
type CostEstimate struct {
	Cheapest      float64 `json:"cheapest"`
	MostExpensive float64 `json:"most_expensive"`
	Average       float64 `json:"average"`
}

// RouteAnswer is the per-route block of an answer payload.
type RouteAnswer struct {
	RouteName          string                   `json:"route_name"`
	DistanceKM         float64                  `json:"distance_km"`
	EstimatedTimeHours float64                  `json:"estimated_time_hours"`
	SafetyScore        float64                  `json:"safety_score"`
	RiskLevel          string                   `json:"risk_level"`
	TransportOptions   []routes.TransportOption `json:"transport_options"`
	Warnings           []string                 `json:"warnings"`
	Alternatives       []string                 `json:"alternatives"`
}

// Answer is the complete response to one travel query.
type Answer struct {
	Query            string                `json:"query"`
	Response         string                `json:"response"`
	Routes           []RouteAnswer         `json:"routes"`
	SafetyAlerts     []weather.SafetyAlert `json:"safety_alerts"`
	CostEstimate     *CostEstimate         `json:"cost_estimate"`
	Recommendations  []string              `json:"recommendations"`
	UncertaintyNotes *string               `json:"uncertainty_notes"`
}

// Advisor answers natural language travel queries: it resolves the intent,
// enriches it with route, weather and safety data, and asks the model for
// conversational advice. Every failure mode degrades to a useful response
// rather than an error.
type Advisor struct {
	resolver *interpret.Resolver
	llm      ai.LLMProvider
	routes   RouteProvider
	weather  WeatherProvider
	history  QueryRecorder
	log      *zap.Logger
	now      func() time.Time
}

// NewAdvisor wires an Advisor. history may be nil when persistence is not
// wanted (answers are then not recorded).
func NewAdvisor(llm ai.LLMProvider, routeData RouteProvider, weatherData WeatherProvider, history QueryRecorder, log *zap.Logger) *Advisor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Advisor{
		resolver: interpret.NewResolver(),
		llm:      llm,
		routes:   routeData,
		weather:  weatherData,
		history:  history,
		log:      log,
		now:      time.Now,
	}
}

// Answer processes one travel query end to end.
func (a *Advisor) Answer(ctx context.Context, req interpret.Request) (*Answer, error) {
	a.log.Info("processing travel query", zap.String("query", truncate(req.Query, 50)))

	intent := a.resolver.Resolve(req)
	if intent.ShortCircuit() {
		ans := &Answer{
			Query:           intent.Query,
			Response:        intent.Response,
			Routes:          []RouteAnswer{},
			SafetyAlerts:    []weather.SafetyAlert{},
			Recommendations: intent.Recommendations,
		}
		if ans.Recommendations == nil {
			ans.Recommendations = []string{}
		}
		a.record(ctx, intent, ans.Response)
		return ans, nil
	}

	if intent.TravelDate == "" {
		if d := interpret.ParseTravelDate(intent.Query, a.now()); !d.IsZero() {
			intent.TravelDate = d.Format("2006-01-02")
		}
	}

	info, err := a.routes.Info(ctx, intent.Origin, intent.Destination)
	if err != nil || info == nil || info.DistanceKM == nil {
		a.log.Warn("no route data",
			zap.String("origin", intent.Origin),
			zap.String("destination", intent.Destination))
		note := "Route database is incomplete; add more city pairs to improve coverage."
		ans := &Answer{
			Query: intent.Query,
			Response: fmt.Sprintf("I don't have route information for %s to %s. Please check the city names and try again.",
				titleCase(intent.Origin), titleCase(intent.Destination)),
			Routes:           []RouteAnswer{},
			SafetyAlerts:     []weather.SafetyAlert{},
			Recommendations:  []string{},
			UncertaintyNotes: &note,
		}
		a.record(ctx, intent, ans.Response)
		return ans, nil
	}

	distanceKM := *info.DistanceKM
	travelHours := routes.EstimateTravelTime(distanceKM, "")
	if info.EstimatedTimeHours != nil {
		travelHours = *info.EstimatedTimeHours
	}

	weatherRisks := a.weather.RouteRisk(ctx, intent.Origin, intent.Destination)
	assessment := safety.Score(info.Region, weatherRisks, intent.TimeOfDay, req.Profile)
	advice := safety.Advice(assessment.RiskLevel, req.Profile)

	alerts, err := a.weather.ActiveAlerts(ctx, info.Region)
	if err != nil {
		a.log.Warn("alert lookup failed", zap.Error(err))
		alerts = nil
	}

	conversationContext := ""
	if intent.IsFollowUp {
		conversationContext = formatHistory(req.History)
	}

	input := ai.AdviceInput{
		Query:               intent.Query,
		Origin:              intent.Origin,
		Destination:         intent.Destination,
		TravelDate:          intent.TravelDate,
		ProfileSummary:      profileSummary(req.Profile, intent.GroupType, intent.Query),
		DistanceKM:          distanceKM,
		TravelHours:         travelHours,
		RiskLevel:           humanizeRiskLevel(assessment.RiskLevel),
		WeatherRisks:        formatWeatherRisks(weatherRisks),
		TransportOptions:    formatTransportOptions(info.TransportOptions),
		SafetyAlerts:        formatAlerts(alerts),
		ConversationContext: conversationContext,
		IsFollowUp:          intent.IsFollowUp,
	}

	response, err := a.llm.TravelAdvice(ctx, input)
	if err != nil {
		a.log.Error("model call failed, using fallback response", zap.Error(err))
		response = fallbackResponse(intent.Origin, intent.Destination, distanceKM, travelHours,
			info.TransportOptions, assessment.RiskLevel, intent.GroupType)
	}

	a.log.Info("query answered",
		zap.String("origin", intent.Origin),
		zap.String("destination", intent.Destination),
		zap.Bool("follow_up", intent.IsFollowUp))

	ans := &Answer{
		Query:    intent.Query,
		Response: response,
		Routes: []RouteAnswer{{
			RouteName:          fmt.Sprintf("%s to %s", titleCase(intent.Origin), titleCase(intent.Destination)),
			DistanceKM:         distanceKM,
			EstimatedTimeHours: travelHours,
			SafetyScore:        assessment.Score,
			RiskLevel:          assessment.RiskLevel,
			TransportOptions:   info.TransportOptions,
			Warnings:           weatherRisks.Warnings,
			Alternatives:       []string{},
		}},
		SafetyAlerts:     alerts,
		CostEstimate:     costEstimate(info.TransportOptions),
		Recommendations:  advice,
		UncertaintyNotes: uncertaintyNotes(weatherRisks),
	}
	if ans.SafetyAlerts == nil {
		ans.SafetyAlerts = []weather.SafetyAlert{}
	}
	a.record(ctx, intent, response)
	return ans, nil
}

func (a *Advisor) record(ctx context.Context, intent interpret.Intent, response string) {
	if a.history == nil {
		return
	}
	q := &queries.TravelQuery{
		QueryText:   intent.Query,
		Origin:      intent.Origin,
		Destination: intent.Destination,
		Response:    response,
		CreatedAt:   a.now(),
	}
	if intent.TravelDate != "" {
		if t, err := time.Parse("2006-01-02", intent.TravelDate); err == nil {
			q.TravelDate = &t
		}
	}
	if err := a.history.SaveQuery(ctx, q); err != nil {
		a.log.Warn("query history save failed", zap.Error(err))
	}
}

var riskDescriptions = map[string]string{
	"low":         "Generally safe and recommended for travel",
	"medium":      "Safe with some precautions needed",
	"high":        "Extra caution advised - check conditions before traveling",
	"critical":    "Travel not recommended at this time",
	"recommended": "Great conditions for travel",
	"caution":     "Proceed with awareness of current conditions",
	"avoid":       "Consider postponing or alternative routes",
}

func humanizeRiskLevel(riskLevel string) string {
	if d, ok := riskDescriptions[strings.ToLower(riskLevel)]; ok {
		return d
	}
	return riskLevel
}

var groupDescriptions = map[interpret.GroupType]string{
	interpret.GroupFemale:         "Female group travelers - provide safety tips specific to women traveling in Pakistan",
	interpret.GroupFemaleTraveler: "Female solo traveler - provide extra safety considerations",
	interpret.GroupFamily:         "Family with children - recommend family-friendly options and shorter travel segments",
	interpret.GroupCouple:         "Couple traveling together",
	interpret.GroupSolo:           "Solo traveler",
	interpret.GroupFriends:        "Group of friends/colleagues",
	interpret.GroupGeneral:        "General travelers",
}

var headcountPattern = regexp.MustCompile(`(\d+)\s*(girls?|boys?|people|friends?|members?|persons?)`)

// profileSummary flattens the detected group type plus any caller profile
// into the one-line traveler description the prompt interpolates.
func profileSummary(profile *interpret.Profile, group interpret.GroupType, query string) string {
	desc, ok := groupDescriptions[group]
	if !ok {
		desc = groupDescriptions[interpret.GroupGeneral]
	}
	parts := []string{"Group Type: " + desc}

	if m := headcountPattern.FindStringSubmatch(strings.ToLower(query)); m != nil {
		parts = append(parts, "Number of people: "+m[1])
	}

	if profile != nil {
		if profile.Gender != "" {
			parts = append(parts, "Gender: "+profile.Gender)
		}
		if profile.TravelGroup != "" {
			parts = append(parts, "Travel style: "+profile.TravelGroup)
		}
		if profile.Budget != "" {
			parts = append(parts, "Budget preference: "+profile.Budget)
		}
		if profile.HomeCity != "" {
			parts = append(parts, "Home city: "+profile.HomeCity)
		}
	}

	return strings.Join(parts, " | ")
}

func formatTransportOptions(options []routes.TransportOption) string {
	if len(options) == 0 {
		return "No transport options available"
	}
	lines := make([]string, 0, len(options))
	for _, o := range options {
		lines = append(lines, fmt.Sprintf("- %s: PKR %.0f (Time: %.1fh, Risk: %s)",
			strings.ToUpper(o.Mode), o.EstimatedFarePKR, o.EstimatedTimeHours, o.RiskLevel))
	}
	return strings.Join(lines, "\n")
}

func formatWeatherRisks(risks weather.RiskAssessment) string {
	if risks.RiskLevel == weather.RiskUnknown {
		return "Weather data not available"
	}
	if len(risks.Warnings) == 0 {
		return "No significant weather risks"
	}
	lines := make([]string, 0, len(risks.Warnings))
	for _, w := range risks.Warnings {
		lines = append(lines, "- "+w)
	}
	return strings.Join(lines, "\n")
}

func formatAlerts(alerts []weather.SafetyAlert) string {
	if len(alerts) == 0 {
		return "No active alerts"
	}
	lines := make([]string, 0, len(alerts))
	for _, al := range alerts {
		lines = append(lines, fmt.Sprintf("- %s in %s (%s): %s",
			al.AlertType, titleCase(al.Region), al.Severity, al.Description))
	}
	return strings.Join(lines, "\n")
}

// formatHistory renders the last four exchanges for follow-up prompts. Long
// messages are truncated so one verbose answer cannot crowd out the rest.
func formatHistory(history []interpret.Turn) string {
	if len(history) == 0 {
		return ""
	}
	recent := history
	if len(recent) > 8 {
		recent = recent[len(recent)-8:]
	}
	var b strings.Builder
	b.WriteString("PREVIOUS CONVERSATION:\n")
	for _, turn := range recent {
		role := "Assistant"
		if turn.Role == interpret.RoleUser {
			role = "User"
		}
		fmt.Fprintf(&b, "%s: %s\n\n", role, truncate(turn.Content, 300))
	}
	return b.String()
}

func costEstimate(options []routes.TransportOption) *CostEstimate {
	if len(options) == 0 {
		return nil
	}
	est := CostEstimate{Cheapest: options[0].EstimatedFarePKR, MostExpensive: options[0].EstimatedFarePKR}
	var sum float64
	for _, o := range options {
		if o.EstimatedFarePKR < est.Cheapest {
			est.Cheapest = o.EstimatedFarePKR
		}
		if o.EstimatedFarePKR > est.MostExpensive {
			est.MostExpensive = o.EstimatedFarePKR
		}
		sum += o.EstimatedFarePKR
	}
	est.Average = sum / float64(len(options))
	return &est
}

func uncertaintyNotes(weatherRisks weather.RiskAssessment) *string {
	if weatherRisks.RiskLevel == weather.RiskUnknown {
		note := "Note: Weather data may not be available for all locations"
		return &note
	}
	return nil
}

// fallbackResponse builds a deterministic markdown answer from the gathered
// data when the model is unavailable.
func fallbackResponse(origin, destination string, distanceKM, travelHours float64,
	options []routes.TransportOption, riskLevel string, group interpret.GroupType) string {

	var b strings.Builder
	fmt.Fprintf(&b, "## 🧭 Trip from %s to %s\n\n", titleCase(origin), titleCase(destination))

	fmt.Fprintf(&b, "### 📍 Quick Overview\n- **Distance**: %.0f km\n- **Travel Time**: ~%.1f hours\n- **Conditions**: %s\n\n",
		distanceKM, travelHours, humanizeRiskLevel(riskLevel))

	b.WriteString("### 🚗 Getting There\n")
	if len(options) == 0 {
		b.WriteString("- Check local transport options when you arrive\n")
	} else {
		shown := options
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for _, o := range shown {
			fmt.Fprintf(&b, "- **%s**: PKR %.0f (~%.1fh)\n", titleCase(o.Mode), o.EstimatedFarePKR, o.EstimatedTimeHours)
		}
	}

	b.WriteString("\n### 💰 Budget Tips\n- Carry cash as ATMs are limited in remote areas\n- Book accommodations in advance during peak season\n")
	if cheapest := cheapestOption(options); cheapest != nil {
		fmt.Fprintf(&b, "- Budget-friendly option: %s at PKR %.0f\n", titleCase(cheapest.Mode), cheapest.EstimatedFarePKR)
	} else {
		b.WriteString("- Compare prices at local transport stands\n")
	}

	b.WriteString("\n### 🛡️ Safety Tips\n")
	switch group {
	case interpret.GroupFemale, interpret.GroupFemaleTraveler:
		b.WriteString("- Travel during daylight hours only\n" +
			"- Stay at well-reviewed, family-friendly hotels\n" +
			"- Dress conservatively in northern areas\n" +
			"- Keep emergency contacts saved offline\n" +
			"- Share your live location with family\n")
	case interpret.GroupFamily:
		b.WriteString("- Plan shorter travel segments for children\n" +
			"- Carry snacks and entertainment for the journey\n" +
			"- Book family rooms in advance\n" +
			"- Allow extra time for rest stops\n" +
			"- Keep children's medications handy\n")
	default:
		b.WriteString("- Avoid night travel on mountain roads\n" +
			"- Keep your phone charged and save emergency numbers\n" +
			"- Register with tourism police if required\n" +
			"- Share your travel plan with family\n" +
			"- Carry a first aid kit\n")
	}

	b.WriteString("\n### ✅ Before You Go\n" +
		"- Download offline maps\n" +
		"- Save emergency contacts (Rescue 1122)\n" +
		"- Carry CNIC/ID for checkpoints\n" +
		"- Check weather conditions\n" +
		"- Pack appropriate clothing for the destination\n")

	return b.String()
}

func cheapestOption(options []routes.TransportOption) *routes.TransportOption {
	if len(options) == 0 {
		return nil
	}
	best := &options[0]
	for i := range options[1:] {
		if options[i+1].EstimatedFarePKR < best.EstimatedFarePKR {
			best = &options[i+1]
		}
	}
	return best
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
