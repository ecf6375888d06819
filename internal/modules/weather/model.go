// README: Weather condition, risk and alert models.
package weather

import "time"

// Conditions is the normalized current-weather observation for one city.
type Conditions struct {
	Condition     string  `json:"condition"`
	Description   string  `json:"description"`
	TempC         float64 `json:"temperature"`
	Humidity      int     `json:"humidity"`
	WindSpeedMS   float64 `json:"wind_speed"`
	RainMMPerHour float64 `json:"rain_mm_per_hour"`
}

// RiskAssessment grades travel risk derived from current conditions.
type RiskAssessment struct {
	RiskLevel   string   `json:"risk_level"`
	Risks       []string `json:"risks"`
	Warnings    []string `json:"warnings"`
	Condition   string   `json:"weather_condition,omitempty"`
	Description string   `json:"description,omitempty"`
	TempC       *float64 `json:"temperature,omitempty"`
	Humidity    *int     `json:"humidity,omitempty"`
}

const (
	RiskUnknown = "unknown"
	RiskLow     = "low"
	RiskMedium  = "medium"
	RiskHigh    = "high"
)

// SafetyAlert is a persisted weather hazard for a region.
type SafetyAlert struct {
	ID          int64      `json:"id"`
	AlertType   string     `json:"alert_type"`
	Region      string     `json:"region"`
	Severity    string     `json:"severity"`
	Description string     `json:"description"`
	Lat         *float64   `json:"lat,omitempty"`
	Lon         *float64   `json:"lon,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	IsActive    bool       `json:"is_active"`
}
