// README: Travel query history and user profile records.
package queries

import "time"

// TravelQuery is one answered question, kept for history and learning.
type TravelQuery struct {
	ID            int64      `json:"id"`
	QueryText     string     `json:"query_text"`
	Origin        string     `json:"origin,omitempty"`
	Destination   string     `json:"destination,omitempty"`
	TravelDate    *time.Time `json:"travel_date,omitempty"`
	UserProfileID *int64     `json:"user_profile_id,omitempty"`
	Response      string     `json:"response,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// UserProfile stores traveler attributes used for personalized advice.
type UserProfile struct {
	ID          int64             `json:"id"`
	Gender      string            `json:"gender,omitempty"`
	TravelGroup string            `json:"travel_group,omitempty"`
	Preferences map[string]string `json:"preferences,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
