// README: Route safety scoring and personalized advice.
package safety

import (
	"strconv"
	"strings"

	"safar/internal/interpret"
	"safar/internal/modules/weather"
)

const (
	LevelRecommended = "recommended"
	LevelCaution     = "caution"
	LevelAvoid       = "avoid"
)

// Assessment is the graded safety answer for one route.
type Assessment struct {
	Score     float64  `json:"safety_score"`
	RiskLevel string   `json:"risk_level"`
	Factors   []string `json:"factors"`
}

var northernRegions = []string{"gilgit", "hunza", "skardu", "chitral", "swat", "northern"}

// Score computes a 0-100 safety score for a route. Higher is safer.
// The base assumption is moderate safety (70) adjusted for weather,
// time of day, traveler profile and region.
func Score(region string, weatherRisks weather.RiskAssessment, timeOfDay string, profile *interpret.Profile) Assessment {
	score := 70.0

	switch weatherRisks.RiskLevel {
	case weather.RiskHigh:
		score -= 30
	case weather.RiskMedium:
		score -= 15
	case weather.RiskLow:
		score += 10
	}

	if hour, ok := parseHour(timeOfDay); ok {
		switch {
		case hour >= 20 || hour < 6:
			score -= 20
		case hour < 9:
			score += 5
		case hour < 18:
			score += 10
		}
	}

	if profile != nil {
		gender := strings.ToLower(profile.Gender)
		group := strings.ToLower(profile.TravelGroup)
		if gender == "female" && group == "solo" {
			score -= 15
		} else if group == "family" {
			score += 5
		}
	}

	// Mountain regions add landslide exposure whenever weather carries
	// any risk at all.
	regionLower := strings.ToLower(region)
	for _, area := range northernRegions {
		if strings.Contains(regionLower, area) {
			if len(weatherRisks.Risks) > 0 {
				score -= 10
			}
			break
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Assessment{
		Score:     score,
		RiskLevel: level(score),
		Factors:   factors(weatherRisks, timeOfDay, profile),
	}
}

func level(score float64) string {
	switch {
	case score >= 75:
		return LevelRecommended
	case score >= 50:
		return LevelCaution
	default:
		return LevelAvoid
	}
}

// parseHour extracts an hour (0-23) from time-of-day hints: "14:30", "9",
// or period words like "morning" and "night".
func parseHour(timeOfDay string) (int, bool) {
	if timeOfDay == "" {
		return 0, false
	}

	if idx := strings.Index(timeOfDay, ":"); idx > 0 {
		if h, err := strconv.Atoi(timeOfDay[:idx]); err == nil {
			return h, true
		}
	}
	if h, err := strconv.Atoi(timeOfDay); err == nil {
		return h, true
	}

	lower := strings.ToLower(timeOfDay)
	switch {
	case strings.Contains(lower, "morning"), strings.Contains(lower, "am"):
		return 9, true
	case strings.Contains(lower, "afternoon"):
		return 14, true
	case strings.Contains(lower, "evening"), strings.Contains(lower, "pm"):
		return 18, true
	case strings.Contains(lower, "night"):
		return 22, true
	}
	return 0, false
}

func factors(weatherRisks weather.RiskAssessment, timeOfDay string, profile *interpret.Profile) []string {
	var out []string

	switch weatherRisks.RiskLevel {
	case weather.RiskHigh:
		out = append(out, "Severe weather conditions")
	case weather.RiskMedium:
		out = append(out, "Moderate weather risks")
	}

	if hour, ok := parseHour(timeOfDay); ok && (hour >= 20 || hour < 6) {
		out = append(out, "Night travel")
	}

	if profile != nil && strings.EqualFold(profile.Gender, "female") &&
		strings.EqualFold(profile.TravelGroup, "solo") {
		out = append(out, "Solo female traveler")
	}

	return out
}

// Advice returns personalized safety guidance for a graded route.
func Advice(riskLevel string, profile *interpret.Profile) []string {
	var advice []string

	switch riskLevel {
	case LevelAvoid:
		advice = append(advice,
			"⚠️ Consider postponing this trip or finding alternative routes",
			"Check weather conditions and road closures before traveling")
	case LevelCaution:
		advice = append(advice,
			"⚠️ Travel with caution - monitor conditions closely",
			"Inform someone about your travel plans")
	default:
		advice = append(advice, "✅ Route appears safe, but always stay alert")
	}

	if profile != nil {
		gender := strings.ToLower(profile.Gender)
		group := strings.ToLower(profile.TravelGroup)

		if gender == "female" && group == "solo" {
			advice = append(advice,
				"💡 For solo female travelers: Share live location with trusted contacts",
				"💡 Prefer daytime travel and well-lit routes",
				"💡 Use reputable transport services")
		}
		if group == "family" {
			advice = append(advice, "💡 For families: Plan rest stops and keep emergency contacts ready")
		}
	}

	return advice
}
