// README: Heuristic trip-request parsing tests.
package plan

import (
	"testing"
)

func TestParseFallback(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantDest     string
		wantDays     int
		wantType     string
		wantBudget   int
	}{
		{
			name:  "full request",
			query: "Plan a 5-day family trip to Hunza under 150k",
			wantDest: "Hunza", wantDays: 5, wantType: "family", wantBudget: 150000,
		},
		{
			name:  "solo with k budget",
			query: "solo budget trip skardu under 50k",
			wantDest: "Skardu", wantDays: 5, wantType: "solo", wantBudget: 50000,
		},
		{
			name:  "lakh budget",
			query: "group tour to swat, 2 lakh budget",
			wantDest: "Swat", wantDays: 5, wantType: "group", wantBudget: 200000,
		},
		{
			name:  "raw rupee amount",
			query: "couple trip murree 3 days 80000 rupees",
			wantDest: "Murree", wantDays: 3, wantType: "couple", wantBudget: 80000,
		},
		{
			name:  "all defaults",
			query: "plan something nice",
			wantDest: "Hunza", wantDays: 5, wantType: "family", wantBudget: 150000,
		},
		{
			name:  "two-word destination",
			query: "weekend at nathia gali",
			wantDest: "Nathia Gali", wantDays: 5, wantType: "family", wantBudget: 150000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFallback(tt.query)
			if got.Destination != tt.wantDest {
				t.Errorf("destination = %q, want %q", got.Destination, tt.wantDest)
			}
			if got.DurationDays != tt.wantDays {
				t.Errorf("duration = %d, want %d", got.DurationDays, tt.wantDays)
			}
			if got.TravelType != tt.wantType {
				t.Errorf("travel type = %q, want %q", got.TravelType, tt.wantType)
			}
			if got.BudgetPKR != tt.wantBudget {
				t.Errorf("budget = %d, want %d", got.BudgetPKR, tt.wantBudget)
			}
			if got.OriginCity != "Islamabad" {
				t.Errorf("origin = %q, want default Islamabad", got.OriginCity)
			}
			if got.NumPeople != 4 {
				t.Errorf("people = %d, want default 4", got.NumPeople)
			}
		})
	}
}

func TestBuildChecklist(t *testing.T) {
	t.Run("high altitude adds warm gear", func(t *testing.T) {
		items := BuildChecklist("Hunza", 5, "solo")
		if !hasItem(items, "Warm jacket") || !hasItem(items, "Altitude sickness tablets") {
			t.Errorf("missing high-altitude items: %v", itemNames(items))
		}
	})

	t.Run("hill station adds rain gear", func(t *testing.T) {
		items := BuildChecklist("murree", 3, "couple")
		if !hasItem(items, "Umbrella/raincoat") {
			t.Errorf("missing hill-station items: %v", itemNames(items))
		}
		if hasItem(items, "Altitude sickness tablets") {
			t.Error("hill station must not get altitude items")
		}
	})

	t.Run("family adds kids items", func(t *testing.T) {
		items := BuildChecklist("Swat", 3, "family")
		if !hasItem(items, "Kids snacks") {
			t.Errorf("missing family items: %v", itemNames(items))
		}
	})

	t.Run("long trips add laundry and batteries", func(t *testing.T) {
		items := BuildChecklist("Skardu", 8, "group")
		if !hasItem(items, "Laundry bag") || !hasItem(items, "Extra batteries") {
			t.Errorf("missing long-trip items: %v", itemNames(items))
		}
	})

	t.Run("base items always present", func(t *testing.T) {
		items := BuildChecklist("unknown town", 2, "solo")
		for _, want := range []string{"CNIC/Passport", "Cash (PKR)", "First aid kit"} {
			if !hasItem(items, want) {
				t.Errorf("missing base item %q", want)
			}
		}
	})
}

func TestNotesFor(t *testing.T) {
	hunza := NotesFor("Hunza")
	if hunza.AltitudeM != 2500 {
		t.Errorf("hunza altitude = %d, want 2500", hunza.AltitudeM)
	}

	unknown := NotesFor("atlantis")
	if len(unknown.Warnings) == 0 {
		t.Error("unknown destination must warn about limited information")
	}
}

func TestIntermediateCities(t *testing.T) {
	got := IntermediateCities("Hunza")
	want := []string{"Chilas", "Gilgit", "Karimabad"}
	if len(got) != len(want) {
		t.Fatalf("cities = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cities[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if cities := IntermediateCities("karachi"); cities != nil {
		t.Errorf("unexpected intermediate cities %v", cities)
	}
}

func hasItem(items []ChecklistItem, name string) bool {
	for _, it := range items {
		if it.Item == name {
			return true
		}
	}
	return false
}

func itemNames(items []ChecklistItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Item
	}
	return out
}
