package ai

// AdviceInput carries everything the advice prompt interpolates: the resolved
// query plus the enrichment data gathered by the advisor service.
type AdviceInput struct {
	Query          string
	Origin         string
	Destination    string
	TravelDate     string
	ProfileSummary string

	DistanceKM  float64
	TravelHours float64
	RiskLevel   string

	WeatherRisks     string
	TransportOptions string
	SafetyAlerts     string

	ConversationContext string
	IsFollowUp          bool
}

// ItineraryInput carries the parameters for full trip-plan generation.
type ItineraryInput struct {
	Destination         string
	DurationDays        int
	TravelType          string
	NumPeople           int
	BudgetPKR           int
	TravelStyle         string
	OriginCity          string
	StartDate           string
	SpecialRequirements []string

	RouteData        string
	WeatherData      string
	SafetyAlerts     string
	TransportOptions string

	CurrentDate string
}

// TripRequest captures the structured output of the quick-parse prompt.
type TripRequest struct {
	// Destination is the main destination city/region.
	Destination string `json:"destination"`

	// DurationDays defaults to 5 when the user never states a length.
	DurationDays int `json:"duration_days"`

	// TravelType is one of "solo", "family", "group", "couple".
	TravelType string `json:"travel_type"`

	NumPeople int `json:"num_people"`

	// BudgetPKR is the total budget in rupees ("100k" style inputs are
	// expanded by the model).
	BudgetPKR int `json:"budget_pkr"`

	// TravelStyle is one of "budget", "comfort", "adventure", "luxury".
	TravelStyle string `json:"travel_style"`

	OriginCity string `json:"origin_city"`

	// StartDate is YYYY-MM-DD, empty when the dates are flexible.
	StartDate string `json:"start_date"`

	SpecialRequirements []string `json:"special_requirements,omitempty"`

	// GroupComposition is "female_only", "male_only", "mixed" or "family".
	GroupComposition string `json:"group_composition,omitempty"`
}
