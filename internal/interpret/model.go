// README: Types produced by the query interpretation pipeline.
package interpret

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one historical message in the conversation window. The caller owns
// the window and passes it most-recent-last.
type Turn struct {
	Role    Role
	Content string
}

// Profile carries the optional caller-supplied traveler profile.
type Profile struct {
	Gender      string
	TravelGroup string
	HomeCity    string
	Budget      string
}

// GroupType is the resolved travel-group classification.
type GroupType string

const (
	GroupFemale         GroupType = "female_group"
	GroupFemaleTraveler GroupType = "female_traveler"
	GroupFamily         GroupType = "family"
	GroupCouple         GroupType = "couple"
	GroupSolo           GroupType = "solo"
	GroupFriends        GroupType = "group"
	GroupGeneral        GroupType = "general"
)

// Entities is the result of entity extraction over a single utterance.
// Absent fields are empty strings, never errors.
type Entities struct {
	Origin      string
	Destination string
	TimeOfDay   string // "morning", "afternoon", "night" or empty
}

// Context is the inheritable state recovered from the history window. It is
// recomputed per request and never cached.
type Context struct {
	Destination     string   // primary destination (first seen in window)
	LastDestination string   // most recently mentioned destination
	Origin          string
	TopicsDiscussed []string // deduplicated, first-detection order
}

// Intent is the fully resolved travel intent. If Response is non-empty the
// request short-circuits with that canned text and no enrichment or AI call
// happens.
type Intent struct {
	Query           string
	Origin          string
	Destination     string
	TravelDate      string
	TimeOfDay       string
	IsFollowUp      bool
	IsComprehensive bool
	GroupType       GroupType
	Response        string
	Recommendations []string
}

// ShortCircuit reports whether the intent terminated with a canned response.
func (in Intent) ShortCircuit() bool {
	return in.Response != ""
}
