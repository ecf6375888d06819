// README: Heuristic origin/destination/time-of-day extraction from one utterance.
package interpret

import (
	"regexp"
	"strings"

	"safar/internal/lexicon"
)

var (
	fromToPattern = regexp.MustCompile(`from\s+(\w+)\s+to\s+(\w+)`)
	toPattern     = regexp.MustCompile(`(\w+)\s+to\s+(\w+)`)
)

// Extract pulls travel entities out of a single utterance. Rules run in
// strict precedence order: an earlier positional match suppresses the
// free-scan fallback. The time-of-day hint is independent and always runs.
// Extract never fails; missing entities come back as empty strings.
func Extract(utterance string) Entities {
	lower := strings.ToLower(utterance)
	var e Entities

	if m := fromToPattern.FindStringSubmatch(lower); m != nil && lexicon.IsPlace(m[1]) && lexicon.IsPlace(m[2]) {
		e.Origin = m[1]
		e.Destination = m[2]
	} else if m := toPattern.FindStringSubmatch(lower); m != nil && lexicon.IsPlace(m[1]) && lexicon.IsPlace(m[2]) {
		e.Origin = m[1]
		e.Destination = m[2]
	} else {
		found := lexicon.PlacesIn(lower)
		switch {
		case len(found) == 1 && e.Origin == "" && e.Destination == "":
			e.Destination = found[0]
		case len(found) >= 2 && e.Origin == "" && e.Destination == "":
			e.Origin = found[0]
			e.Destination = found[1]
		case e.Destination == "" && len(found) > 0:
			// Guard against assigning the same place to both roles.
			for _, p := range found {
				if p != e.Origin {
					e.Destination = p
					break
				}
			}
		}
	}

	e.TimeOfDay = timeOfDay(lower)
	return e
}

func timeOfDay(lower string) string {
	switch {
	case strings.Contains(lower, "night") || strings.Contains(lower, "evening"):
		return "night"
	case strings.Contains(lower, "morning"):
		return "morning"
	case strings.Contains(lower, "afternoon"):
		return "afternoon"
	}
	return ""
}

// extractDestinationOnly is the looser fallback pass used by the resolver
// when positional extraction found nothing: a plain substring scan over the
// lexicon, first hit wins.
func extractDestinationOnly(utterance string) string {
	lower := strings.ToLower(utterance)
	for _, place := range lexicon.Places {
		if strings.Contains(lower, place) {
			return place
		}
	}
	return ""
}
