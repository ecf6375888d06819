// README: Pure weather risk assessment.
package weather

import "strings"

// Assess grades travel risk from current conditions. A nil observation
// yields an unknown assessment rather than an error.
func Assess(c *Conditions) RiskAssessment {
	if c == nil {
		return RiskAssessment{RiskLevel: RiskUnknown, Risks: []string{}, Warnings: []string{}}
	}

	out := RiskAssessment{
		RiskLevel:   RiskLow,
		Risks:       []string{},
		Warnings:    []string{},
		Condition:   c.Condition,
		Description: c.Description,
		TempC:       &c.TempC,
		Humidity:    &c.Humidity,
	}
	if out.Condition == "" {
		out.Condition = "Unknown"
	}

	if c.Condition == "Rain" {
		switch {
		case c.RainMMPerHour > 10:
			out.Risks = append(out.Risks, "flood")
			out.Warnings = append(out.Warnings, "Heavy rainfall - flood risk")
			out.RiskLevel = RiskHigh
		case c.RainMMPerHour > 5:
			out.Risks = append(out.Risks, "flood")
			out.Warnings = append(out.Warnings, "Moderate rainfall - possible flooding")
			out.RiskLevel = RiskMedium
		}
	}

	if c.Condition == "Fog" || strings.Contains(strings.ToLower(c.Description), "fog") {
		out.Risks = append(out.Risks, "fog")
		out.Warnings = append(out.Warnings, "Foggy conditions - reduced visibility")
		if out.RiskLevel == RiskLow {
			out.RiskLevel = RiskMedium
		}
	}

	// Snow implies landslide exposure on mountain roads.
	if c.Condition == "Snow" {
		out.Risks = append(out.Risks, "landslide")
		out.Warnings = append(out.Warnings, "Snow conditions - possible landslides in mountainous areas")
		out.RiskLevel = RiskHigh
	}

	if c.WindSpeedMS > 20 {
		out.Risks = append(out.Risks, "wind")
		out.Warnings = append(out.Warnings, "Strong winds - travel caution advised")
		if out.RiskLevel == RiskLow {
			out.RiskLevel = RiskMedium
		}
	}

	return out
}

// alertType maps a warning back to its alert category.
func alertType(warning string) string {
	lower := strings.ToLower(warning)
	switch {
	case strings.Contains(lower, "flood"):
		return "flood"
	case strings.Contains(lower, "fog"):
		return "fog"
	case strings.Contains(lower, "snow"), strings.Contains(lower, "landslide"):
		return "landslide"
	case strings.Contains(lower, "wind"):
		return "wind"
	default:
		return "weather"
	}
}
