// README: Curated destination knowledge used by the trip planner.
package plan

import "strings"

// Destination is a supported tourist destination with basic info.
type Destination struct {
	Name       string   `json:"name"`
	Region     string   `json:"region"`
	AltitudeM  int      `json:"altitude_m"`
	BestSeason string   `json:"best_season"`
	Highlights []string `json:"highlights"`
	Difficulty string   `json:"difficulty"`
	MinDays    int      `json:"min_days"`
}

// Destinations lists the supported tourist destinations.
var Destinations = []Destination{
	{
		Name: "Hunza", Region: "Gilgit-Baltistan", AltitudeM: 2500,
		BestSeason: "April - October",
		Highlights: []string{"Attabad Lake", "Eagle's Nest", "Baltit Fort", "Passu Cones"},
		Difficulty: "moderate", MinDays: 5,
	},
	{
		Name: "Skardu", Region: "Gilgit-Baltistan", AltitudeM: 2228,
		BestSeason: "May - September",
		Highlights: []string{"Shangrila", "Deosai", "Upper Kachura Lake"},
		Difficulty: "challenging", MinDays: 6,
	},
	{
		Name: "Swat", Region: "KPK", AltitudeM: 980,
		BestSeason: "March - October",
		Highlights: []string{"Malam Jabba", "Kalam Valley", "Mingora"},
		Difficulty: "easy", MinDays: 3,
	},
	{
		Name: "Naran", Region: "KPK", AltitudeM: 2409,
		BestSeason: "June - September",
		Highlights: []string{"Lake Saif ul Malook", "Lulusar Lake", "Babusar Pass"},
		Difficulty: "easy", MinDays: 3,
	},
	{
		Name: "Chitral", Region: "KPK", AltitudeM: 1500,
		BestSeason: "April - October",
		Highlights: []string{"Kalash Valley", "Shandur Pass", "Chitral Fort"},
		Difficulty: "challenging", MinDays: 5,
	},
	{
		Name: "Murree", Region: "Punjab", AltitudeM: 2291,
		BestSeason: "Year round",
		Highlights: []string{"Mall Road", "Pindi Point", "Patriata"},
		Difficulty: "easy", MinDays: 2,
	},
	{
		Name: "Gilgit", Region: "Gilgit-Baltistan", AltitudeM: 1500,
		BestSeason: "April - October",
		Highlights: []string{"Naltar Valley", "Kargah Buddha", "Gilgit River"},
		Difficulty: "moderate", MinDays: 4,
	},
	{
		Name: "Kaghan", Region: "KPK", AltitudeM: 2134,
		BestSeason: "May - September",
		Highlights: []string{"Shogran", "Siri Paye", "Kaghan Valley"},
		Difficulty: "easy", MinDays: 3,
	},
}

// DestinationNotes is planner-facing knowledge about one destination.
type DestinationNotes struct {
	AltitudeM  int      `json:"altitude_m"`
	BestSeason string   `json:"best_season"`
	Highlights []string `json:"highlights"`
	Warnings   []string `json:"warnings"`
}

var destinationNotes = map[string]DestinationNotes{
	"hunza": {
		AltitudeM: 2500, BestSeason: "April to October",
		Highlights: []string{"Attabad Lake", "Eagle's Nest", "Baltit Fort", "Passu Cones"},
		Warnings:   []string{"Altitude sickness risk", "Limited ATMs", "Cold nights"},
	},
	"skardu": {
		AltitudeM: 2228, BestSeason: "May to September",
		Highlights: []string{"Shangrila Resort", "Upper Kachura Lake", "Deosai Plains"},
		Warnings:   []string{"Remote area", "Long travel time", "Weather dependent flights"},
	},
	"swat": {
		AltitudeM: 980, BestSeason: "March to October",
		Highlights: []string{"Malam Jabba", "Fizagat Park", "Swat Museum", "Kalam Valley"},
		Warnings:   []string{"Road conditions vary", "Crowded in peak season"},
	},
	"gilgit": {
		AltitudeM: 1500, BestSeason: "April to October",
		Highlights: []string{"Naltar Valley", "Kargah Buddha", "Gilgit River"},
		Warnings:   []string{"Gateway to Hunza/Skardu", "Stock up supplies here"},
	},
	"naran": {
		AltitudeM: 2409, BestSeason: "June to September",
		Highlights: []string{"Lake Saif ul Malook", "Lulusar Lake", "Babusar Pass"},
		Warnings:   []string{"Crowded in summer", "Road closures in winter"},
	},
	"murree": {
		AltitudeM: 2291, BestSeason: "Year round (snow in winter)",
		Highlights: []string{"Mall Road", "Pindi Point", "Kashmir Point"},
		Warnings:   []string{"Very crowded on weekends", "Traffic jams common"},
	},
}

// NotesFor returns destination knowledge, or a generic placeholder for
// destinations outside the curated set.
func NotesFor(destination string) DestinationNotes {
	if n, ok := destinationNotes[strings.ToLower(strings.TrimSpace(destination))]; ok {
		return n
	}
	return DestinationNotes{
		AltitudeM:  1000,
		BestSeason: "Varies",
		Highlights: []string{},
		Warnings:   []string{"Limited information available"},
	}
}

var intermediateCities = map[string][]string{
	"hunza":   {"Chilas", "Gilgit", "Karimabad"},
	"skardu":  {"Chilas", "Gilgit"},
	"gilgit":  {"Chilas"},
	"swat":    {"Mingora", "Kalam"},
	"chitral": {"Dir", "Lowari Top"},
	"naran":   {"Mansehra", "Kaghan"},
	"murree":  {"Rawalpindi"},
}

// IntermediateCities lists the usual stopover cities en route to a
// destination.
func IntermediateCities(destination string) []string {
	return intermediateCities[strings.ToLower(strings.TrimSpace(destination))]
}
