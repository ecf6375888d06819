// README: Boolean and categorical intent classifiers over a single utterance.
package interpret

import (
	"strings"

	"safar/internal/lexicon"
)

// IsComprehensive reports whether the utterance asks for complete guidance
// rather than a narrow answer. Any keyword or pattern hit is sufficient.
func IsComprehensive(utterance string) bool {
	lower := strings.ToLower(utterance)
	if lexicon.ContainsAny(lower, lexicon.ComprehensiveKeywords) {
		return true
	}
	for _, re := range lexicon.ComprehensivePatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// groupRule pairs an indicator keyword set with its resulting group type.
// The table is evaluated top to bottom, first match wins, so precedence is
// explicit: "4 girls and our family" is a female group, not a family.
var groupRules = []struct {
	keywords []string
	result   GroupType
}{
	{lexicon.FemaleKeywords, GroupFemale},
	{lexicon.FamilyKeywords, GroupFamily},
	{lexicon.CoupleKeywords, GroupCouple},
	{lexicon.SoloKeywords, GroupSolo},
	{lexicon.GroupKeywords, GroupFriends},
}

// ClassifyGroup resolves the travel-group type from the utterance, falling
// back to the caller profile and finally to "general".
func ClassifyGroup(utterance string, profile *Profile) GroupType {
	lower := strings.ToLower(utterance)
	for _, rule := range groupRules {
		if lexicon.ContainsAny(lower, rule.keywords) {
			return rule.result
		}
	}
	if profile != nil {
		if profile.TravelGroup != "" {
			return GroupType(profile.TravelGroup)
		}
		if strings.EqualFold(profile.Gender, "female") {
			return GroupFemaleTraveler
		}
	}
	return GroupGeneral
}

// IsGeneralTravelQuestion reports whether the utterance touches any broad
// travel topic. Used only as a secondary gate when no destination is found.
func IsGeneralTravelQuestion(utterance string) bool {
	return lexicon.ContainsAny(utterance, lexicon.TravelKeywords)
}
