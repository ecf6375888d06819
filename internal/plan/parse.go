// README: Heuristic trip-request parsing used when the LLM parse fails.
package plan

import (
	"regexp"
	"strconv"
	"strings"

	"safar/internal/ai"
)

var (
	durationPattern   = regexp.MustCompile(`(\d+)\s*(?:day|days)`)
	budgetKPattern    = regexp.MustCompile(`(\d+)\s*k\b`)
	budgetLakhPattern = regexp.MustCompile(`(\d+)\s*lakh`)
	budgetRawPattern  = regexp.MustCompile(`(\d{5,})`)
)

// knownDestinations is scanned in order for fallback destination extraction.
var knownDestinations = []string{
	"hunza", "skardu", "swat", "gilgit", "chitral", "naran", "murree",
	"kaghan", "kalam", "malam jabba", "fairy meadows", "attabad",
	"khunjerab", "ayubia", "nathia gali", "shogran", "balakot",
	"mingora", "bahrain", "madyan", "kumrat", "neelum", "azad kashmir",
	"lahore", "karachi", "peshawar", "quetta", "multan", "faisalabad",
}

// parseFallback derives a trip request from the raw query with keyword and
// regex heuristics.
func parseFallback(query string) *ai.TripRequest {
	req := &ai.TripRequest{
		Destination:  extractDestination(query),
		DurationDays: extractDuration(query),
		TravelType:   extractTravelType(query),
		NumPeople:    4,
		BudgetPKR:    extractBudget(query),
		TravelStyle:  "comfort",
		OriginCity:   "Islamabad",
	}
	applyDefaults(req)
	return req
}

// applyDefaults fills any unset trip request fields.
func applyDefaults(req *ai.TripRequest) {
	if req.Destination == "" {
		req.Destination = "Hunza"
	}
	if req.DurationDays <= 0 {
		req.DurationDays = 5
	}
	if req.TravelType == "" {
		req.TravelType = "family"
	}
	if req.NumPeople <= 0 {
		req.NumPeople = 4
	}
	if req.BudgetPKR <= 0 {
		req.BudgetPKR = 150000
	}
	if req.TravelStyle == "" {
		req.TravelStyle = "comfort"
	}
	if req.OriginCity == "" {
		req.OriginCity = "Islamabad"
	}
}

func extractDestination(query string) string {
	lower := strings.ToLower(query)
	for _, dest := range knownDestinations {
		if strings.Contains(lower, dest) {
			return titleCase(dest)
		}
	}
	return ""
}

func extractDuration(query string) int {
	if m := durationPattern.FindStringSubmatch(strings.ToLower(query)); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			return days
		}
	}
	return 5
}

func extractTravelType(query string) string {
	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "family"):
		return "family"
	case strings.Contains(lower, "group"):
		return "group"
	case strings.Contains(lower, "solo"):
		return "solo"
	case strings.Contains(lower, "couple"):
		return "couple"
	default:
		return "family"
	}
}

func extractBudget(query string) int {
	lower := strings.ToLower(query)
	if m := budgetKPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n * 1000
		}
	}
	if m := budgetLakhPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n * 100000
		}
	}
	if m := budgetRawPattern.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 150000
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
