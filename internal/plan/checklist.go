// README: Packing checklist and emergency info builders.
package plan

import "strings"

// ChecklistItem is one entry of a packing checklist.
type ChecklistItem struct {
	Item      string `json:"item"`
	Category  string `json:"category"`
	Essential bool   `json:"essential"`
	Notes     string `json:"notes,omitempty"`
}

var highAltitudeDestinations = map[string]bool{
	"hunza": true, "skardu": true, "gilgit": true, "chitral": true,
}

var hillStationDestinations = map[string]bool{
	"naran": true, "kaghan": true, "murree": true,
}

// BuildChecklist assembles a packing checklist for a destination, trip
// length and travel type.
func BuildChecklist(destination string, durationDays int, travelType string) []ChecklistItem {
	items := []ChecklistItem{
		{Item: "CNIC/Passport", Category: "documents", Essential: true},
		{Item: "Cash (PKR)", Category: "documents", Essential: true},
		{Item: "Phone charger", Category: "electronics", Essential: true},
		{Item: "Power bank", Category: "electronics", Essential: true},
		{Item: "First aid kit", Category: "medicine", Essential: true},
		{Item: "Personal medications", Category: "medicine", Essential: true},
		{Item: "Sunscreen", Category: "toiletries", Essential: true},
		{Item: "Toiletries bag", Category: "toiletries", Essential: true},
	}

	dest := strings.ToLower(strings.TrimSpace(destination))

	if highAltitudeDestinations[dest] {
		items = append(items,
			ChecklistItem{Item: "Warm jacket", Category: "clothing", Essential: true, Notes: "Nights are cold"},
			ChecklistItem{Item: "Altitude sickness tablets", Category: "medicine", Essential: true},
			ChecklistItem{Item: "Offline maps", Category: "electronics", Essential: true, Notes: "No internet in remote areas"},
			ChecklistItem{Item: "Flashlight", Category: "electronics", Essential: true},
			ChecklistItem{Item: "Water bottle", Category: "misc", Essential: true},
			ChecklistItem{Item: "Snacks", Category: "food", Essential: false},
			ChecklistItem{Item: "Camera", Category: "electronics", Essential: false},
			ChecklistItem{Item: "Sunglasses", Category: "accessories", Essential: true},
		)
	}

	if hillStationDestinations[dest] {
		items = append(items,
			ChecklistItem{Item: "Light jacket", Category: "clothing", Essential: true},
			ChecklistItem{Item: "Umbrella/raincoat", Category: "clothing", Essential: true},
			ChecklistItem{Item: "Comfortable walking shoes", Category: "clothing", Essential: true},
		)
	}

	if travelType == "family" {
		items = append(items,
			ChecklistItem{Item: "Kids snacks", Category: "food", Essential: true},
			ChecklistItem{Item: "Entertainment for kids", Category: "misc", Essential: false},
			ChecklistItem{Item: "Extra clothes for children", Category: "clothing", Essential: true},
		)
	}

	if durationDays > 5 {
		items = append(items,
			ChecklistItem{Item: "Laundry bag", Category: "misc", Essential: false},
			ChecklistItem{Item: "Extra batteries", Category: "electronics", Essential: true},
		)
	}

	return items
}

// EmergencyContacts maps contact labels to phone numbers for one region.
type EmergencyContacts map[string]string

// EmergencyInfo holds emergency contacts per region plus general tips.
var EmergencyInfo = map[string]EmergencyContacts{
	"general": {
		"police":           "15",
		"ambulance":        "115",
		"rescue":           "1122",
		"tourist_helpline": "1422",
	},
	"gilgit_baltistan": {
		"rescue_1122":       "1122",
		"ptdc_gilgit":       "+92-5811-920356",
		"aga_khan_hospital": "+92-5811-457204",
		"police":            "+92-5811-920333",
	},
	"kpk": {
		"rescue_1122":    "1122",
		"swat_hospital":  "+92-946-9240033",
		"tourist_police": "+92-946-9240000",
	},
	"punjab": {
		"rescue_1122":     "1122",
		"motorway_police": "130",
		"highway_patrol":  "+92-51-9250566",
	},
}

// EmergencyTips are region-independent safety reminders.
var EmergencyTips = []string{
	"Always share your live location with family",
	"Keep hotel contact saved offline",
	"Carry physical copies of important documents",
	"Know the nearest hospital location",
	"Keep emergency cash separate from wallet",
	"Register with local police if staying long",
}
