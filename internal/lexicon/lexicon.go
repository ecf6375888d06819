// README: Static lexicon of Pakistani places and travel-intent keyword sets.
package lexicon

import (
	"regexp"
	"strings"
)

// Places is the fixed set of recognized cities and tourist destinations.
// Slice order is meaningful: extraction and context scans report matches in
// lexicon order, not textual order.
var Places = []string{
	"islamabad",
	"karachi",
	"lahore",
	"peshawar",
	"quetta",
	"swat",
	"murree",
	"gilgit",
	"hunza",
	"skardu",
	"chitral",
	"multan",
	"faisalabad",
	"rawalpindi",
	"naran",
	"kaghan",
	"kalam",
	"fairy meadows",
	"attabad",
	"khunjerab",
	"babusar",
	"ayubia",
	"nathia gali",
	"shogran",
	"balakot",
	"mingora",
	"malam jabba",
	"neelum",
	"azad kashmir",
	"kumrat",
	"bahrain",
	"madyan",
	"abbottabad",
	"muzaffarabad",
	"rawalakot",
	"hyderabad",
	"sialkot",
}

var placeSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Places))
	for _, p := range Places {
		m[p] = struct{}{}
	}
	return m
}()

// HardOverrideCities is a conservative safety net used during context
// inheritance: a literal mention of any of these always indicates a fresh
// topic, regardless of the follow-up verdict. Deliberately smaller than
// Places.
var HardOverrideCities = []string{
	"hunza", "skardu", "swat", "murree", "naran", "kaghan", "gilgit",
	"chitral", "lahore", "karachi", "peshawar", "islamabad", "kalam",
}

// IsPlace reports whether name (already normalized) is a known place.
func IsPlace(name string) bool {
	_, ok := placeSet[Normalize(name)]
	return ok
}

// Normalize lowercases and trims a candidate place name.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// PlacesIn scans text for known place mentions and returns them in lexicon
// order. Matching is word-boundary aware so "swat" does not fire inside
// "swatch"; multi-word places match as consecutive tokens.
func PlacesIn(text string) []string {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	var found []string
	for _, place := range Places {
		if containsTokens(tokens, strings.Fields(place)) {
			found = append(found, place)
		}
	}
	return found
}

// Tokenize splits text into lowercase word tokens, stripping punctuation.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}

func containsTokens(tokens, want []string) bool {
	if len(want) == 0 || len(want) > len(tokens) {
		return false
	}
	for i := 0; i+len(want) <= len(tokens); i++ {
		match := true
		for j, w := range want {
			if tokens[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// ContainsAny reports whether the normalized text contains any of the given
// phrases as a literal substring. Phrase checks (unlike place checks) are
// plain substring matches: "girl" is meant to fire inside "girls".
func ContainsAny(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// Group-type indicator sets, checked in waterfall order by the classifier.
var (
	FemaleKeywords = []string{"girls", "girl", "female", "women", "ladies", "lady", "gal", "gals"}
	FamilyKeywords = []string{"family", "families", "kids", "children", "baby", "parents", "elders"}
	CoupleKeywords = []string{"couple", "honeymoon", "romantic", "two of us", "me and my wife", "me and my husband"}
	SoloKeywords   = []string{"solo", "alone", "myself", "by myself", "single"}
	GroupKeywords  = []string{"group", "friends", "team", "colleagues", "gang", "squad"}
)

// ComprehensiveKeywords signal a request for complete guidance rather than a
// narrow question.
var ComprehensiveKeywords = []string{
	"everything", "complete", "full guide", "all info", "tell me about",
	"what do i need", "what should i", "plan my", "help me plan",
	"need to know", "guide me", "advise me", "everything necessary",
	"complete guide", "detailed", "all details", "comprehensive",
	"what all", "entire", "thorough", "a to z", "start to finish",
	"from scratch", "step by step", "how to go", "how can i go",
	"what's needed", "what is needed", "requirements", "checklist",
}

// ComprehensivePatterns capture group-size and travel-intent combinations
// that imply the user wants the full picture.
var ComprehensivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`going to \w+ .*(what|how|need|should)`),
	regexp.MustCompile(`trip to \w+ .*(what|tips|advice|guide)`),
	regexp.MustCompile(`\d+ (girls?|boys?|people|friends|family) .*(going|trip|travel)`),
	regexp.MustCompile(`(female|women|ladies|girls) .*(group|trip|travel)`),
	regexp.MustCompile(`family .*(trip|going|travel)`),
}

// TravelKeywords gate the general-travel-question classifier.
var TravelKeywords = []string{
	"travel", "trip", "visit", "go to", "going to", "journey",
	"vacation", "holiday", "tour", "explore", "trek", "hike",
	"safe", "safety", "cost", "budget", "cheap", "expensive",
	"best time", "when to", "how to reach", "transport",
	"hotel", "stay", "accommodation", "food", "eat",
	"pack", "bring", "weather", "road", "route",
}

// BackReferencePhrases are explicit references to the previous exchange.
var BackReferencePhrases = []string{
	"what about", "how about", "tell me more", "more about",
	"elaborate", "explain more", "what else", "anything else",
	"also tell", "and what about", "regarding that",
}

// PronounReferencePhrases are weaker follow-up signals, only trusted when
// the utterance names no place of its own.
var PronounReferencePhrases = []string{
	"about it", "for it", "is it", "was it", "the trip",
	"the route", "the hotel", "the cost", "the budget",
}

// Topic pairs a conversation topic with the keywords that mark it as
// discussed in an assistant turn.
type Topic struct {
	Name     string
	Keywords []string
}

// Topics is the fixed topic table scanned over assistant turns. Order
// determines first-detection order in extracted context.
var Topics = []Topic{
	{"budget", []string{"budget", "cost", "pkr", "price", "expense", "money"}},
	{"transport", []string{"transport", "bus", "car", "drive", "flight", "hiace"}},
	{"safety", []string{"safety", "safe", "caution", "avoid", "risk"}},
	{"packing", []string{"pack", "bring", "clothes", "essentials"}},
	{"weather", []string{"weather", "rain", "cold", "hot", "temperature"}},
	{"accommodation", []string{"hotel", "stay", "accommodation", "lodge", "guest house"}},
	{"food", []string{"food", "eat", "restaurant", "cuisine"}},
	{"route", []string{"route", "road", "highway", "kkh", "way"}},
}
