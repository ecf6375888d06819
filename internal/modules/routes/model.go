// README: Route and transport option models.
package routes

// Route is a persisted origin/destination road link.
type Route struct {
	Origin             string  `json:"origin"`
	Destination        string  `json:"destination"`
	RouteName          string  `json:"route_name"`
	DistanceKM         float64 `json:"distance_km"`
	EstimatedTimeHours float64 `json:"estimated_time_hours"`
	SafetyScore        int     `json:"safety_score"`
	RiskLevel          string  `json:"risk_level"`
}

// FareRange bounds a fare estimate in PKR.
type FareRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// TransportOption describes one way of covering a route.
type TransportOption struct {
	Mode               string    `json:"mode"`
	EstimatedFarePKR   float64   `json:"estimated_fare_pkr"`
	FareRange          FareRange `json:"fare_range_pkr"`
	EstimatedTimeHours float64   `json:"estimated_time_hours"`
	Availability       string    `json:"availability"`
	SafetyNotes        string    `json:"safety_notes"`
	RiskLevel          string    `json:"risk_level"`
	OvercrowdingRisk   string    `json:"overcrowding_risk,omitempty"`
}

// RouteInfo is the assembled route answer: distance, timing, safety data and
// the available transport options.
type RouteInfo struct {
	Origin             string            `json:"origin"`
	Destination        string            `json:"destination"`
	DistanceKM         *float64          `json:"distance_km"`
	EstimatedTimeHours *float64          `json:"estimated_time_hours"`
	SafetyScore        int               `json:"safety_score"`
	RiskLevel          string            `json:"risk_level"`
	TransportOptions   []TransportOption `json:"transport_options"`
	Region             string            `json:"region"`
}
