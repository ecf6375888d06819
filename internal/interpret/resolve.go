// README: Resolution orchestrator combining extraction, classification and context.
package interpret

import (
	"fmt"
	"strings"

	"safar/internal/lexicon"
)

const (
	// DefaultHomeCity is substituted when no origin is determinable.
	DefaultHomeCity = "islamabad"
	// DefaultPopularDestination backs comprehensive requests that never
	// name a destination.
	DefaultPopularDestination = "murree"
)

// Request is the caller's view of one interpretation pass. Explicit Origin
// and Destination take precedence over anything extracted from the query.
type Request struct {
	Query       string
	Origin      string
	Destination string
	TravelDate  string
	Profile     *Profile
	History     []Turn
}

// Resolver turns a free-form utterance plus optional history into a resolved
// travel intent. It holds no state between calls and is safe for concurrent
// use.
type Resolver struct {
	HomeCity           string
	PopularDestination string
}

// NewResolver returns a Resolver with the standard defaults.
func NewResolver() *Resolver {
	return &Resolver{
		HomeCity:           DefaultHomeCity,
		PopularDestination: DefaultPopularDestination,
	}
}

// Resolve runs the full interpretation pipeline. It never returns an error:
// absent information degrades to a default or to a canned short-circuit
// response.
func (r *Resolver) Resolve(req Request) Intent {
	extracted := Extract(req.Query)

	intent := Intent{
		Query:           req.Query,
		Origin:          firstNonEmpty(lexicon.Normalize(req.Origin), extracted.Origin),
		Destination:     firstNonEmpty(lexicon.Normalize(req.Destination), extracted.Destination),
		TravelDate:      req.TravelDate,
		TimeOfDay:       extracted.TimeOfDay,
		IsComprehensive: IsComprehensive(req.Query),
		GroupType:       ClassifyGroup(req.Query, req.Profile),
	}

	if len(req.History) > 0 && IsFollowUp(req.Query, req.History) {
		intent.IsFollowUp = true
		if intent.Destination == "" {
			if lexicon.ContainsAny(req.Query, lexicon.HardOverrideCities) {
				// A literal city mention always opens a fresh topic, even
				// when the follow-up waterfall said otherwise.
				intent.IsFollowUp = false
			} else {
				ctx := ExtractContext(req.History)
				if ctx.Destination != "" {
					intent.Destination = ctx.Destination
				}
				if intent.Origin == "" && ctx.Origin != "" {
					intent.Origin = ctx.Origin
				}
			}
		}
	}

	r.applyDefaults(&intent)
	return intent
}

// applyDefaults runs the defaulting cascade in its fixed order. Steps may
// terminate the pipeline by attaching a canned response.
func (r *Resolver) applyDefaults(intent *Intent) {
	if intent.Destination != "" && intent.Origin == "" {
		intent.Origin = r.HomeCity
	}

	if intent.IsComprehensive && intent.Destination == "" {
		if dest := extractDestinationOnly(intent.Query); dest != "" {
			intent.Destination = dest
			if intent.Origin == "" {
				intent.Origin = r.HomeCity
			}
		}
	}

	if intent.Origin != "" && intent.Destination == "" {
		if intent.IsComprehensive {
			intent.Destination = r.PopularDestination
			return
		}
		intent.Response = popularDestinationsResponse(intent.Origin)
		intent.Recommendations = popularDestinationsRecommendations
		return
	}

	if intent.Origin == "" && intent.Destination == "" {
		if intent.IsComprehensive || IsGeneralTravelQuestion(intent.Query) {
			if dest := extractDestinationOnly(intent.Query); dest != "" {
				intent.Destination = dest
				intent.Origin = r.HomeCity
				return
			}
		}
		intent.Response = onboardingResponse
	}
}

var popularDestinationsRecommendations = []string{
	"Consider Hunza for breathtaking views",
	"Swat is great for families",
	"Murree is closest to Islamabad",
}

func popularDestinationsResponse(origin string) string {
	return fmt.Sprintf("I'd love to help you plan your trip from %s! Here are some popular destinations:\n\n"+
		"🏔️ **Northern Areas**: Hunza, Skardu, Gilgit, Chitral\n"+
		"🌲 **KPK**: Swat, Naran, Kaghan\n"+
		"⛰️ **Hill Stations**: Murree, Ayubia\n\n"+
		"Just tell me your destination and I'll give you complete guidance!", titleCase(origin))
}

const onboardingResponse = "I'm your AI travel consultant for Pakistan! 🧭\n\n" +
	"I can help you with:\n" +
	"- **Complete trip planning** - just tell me where you want to go\n" +
	"- **Route guidance** - best ways to reach any destination\n" +
	"- **Budget planning** - realistic costs for your trip\n" +
	"- **Safety advice** - especially for families and female travelers\n\n" +
	"Try asking something like:\n" +
	"- 'Tell me everything about going to Hunza'\n" +
	"- '4 girls going to Murree - what do we need to know?'\n" +
	"- 'Family trip to Swat - complete guide'\n"

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
