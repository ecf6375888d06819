// README: Safety scoring tests.
package safety

import (
	"testing"

	"safar/internal/interpret"
	"safar/internal/modules/weather"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		region    string
		risks     weather.RiskAssessment
		timeOfDay string
		profile   *interpret.Profile
		wantScore float64
		wantLevel string
	}{
		{
			name:      "baseline unknown weather",
			region:    "general",
			risks:     weather.RiskAssessment{RiskLevel: weather.RiskUnknown},
			wantScore: 70,
			wantLevel: LevelCaution,
		},
		{
			name:      "clear daytime",
			region:    "general",
			risks:     weather.RiskAssessment{RiskLevel: weather.RiskLow},
			timeOfDay: "morning",
			wantScore: 90, // 70 +10 weather +10 daytime
			wantLevel: LevelRecommended,
		},
		{
			name:      "night travel in bad weather",
			region:    "general",
			risks:     weather.RiskAssessment{RiskLevel: weather.RiskHigh},
			timeOfDay: "night",
			wantScore: 20, // 70 -30 weather -20 night
			wantLevel: LevelAvoid,
		},
		{
			name:      "solo female traveler",
			region:    "general",
			risks:     weather.RiskAssessment{RiskLevel: weather.RiskLow},
			profile:   &interpret.Profile{Gender: "female", TravelGroup: "solo"},
			wantScore: 65, // 70 +10 weather -15 profile
			wantLevel: LevelCaution,
		},
		{
			name:      "family bonus",
			region:    "general",
			risks:     weather.RiskAssessment{RiskLevel: weather.RiskLow},
			profile:   &interpret.Profile{TravelGroup: "family"},
			wantScore: 85,
			wantLevel: LevelRecommended,
		},
		{
			name:   "northern region with weather risk",
			region: "northern_areas",
			risks: weather.RiskAssessment{
				RiskLevel: weather.RiskMedium,
				Risks:     []string{"fog"},
			},
			wantScore: 45, // 70 -15 weather -10 mountain
			wantLevel: LevelAvoid,
		},
		{
			name:      "northern region clear weather no penalty",
			region:    "northern_areas",
			risks:     weather.RiskAssessment{RiskLevel: weather.RiskLow},
			wantScore: 80,
			wantLevel: LevelRecommended,
		},
		{
			name:      "explicit early hour",
			region:    "general",
			risks:     weather.RiskAssessment{RiskLevel: weather.RiskUnknown},
			timeOfDay: "7:30",
			wantScore: 75, // 70 +5 early morning
			wantLevel: LevelRecommended,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.region, tt.risks, tt.timeOfDay, tt.profile)
			if got.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.RiskLevel != tt.wantLevel {
				t.Errorf("level = %q, want %q", got.RiskLevel, tt.wantLevel)
			}
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	risks := weather.RiskAssessment{RiskLevel: weather.RiskHigh, Risks: []string{"flood", "wind"}}
	profile := &interpret.Profile{Gender: "female", TravelGroup: "solo"}

	got := Score("hunza", risks, "night", profile)
	if got.Score < 0 {
		t.Errorf("score %v below floor", got.Score)
	}
	if got.RiskLevel != LevelAvoid {
		t.Errorf("level = %q, want avoid", got.RiskLevel)
	}
}

func TestScore_Factors(t *testing.T) {
	risks := weather.RiskAssessment{RiskLevel: weather.RiskHigh}
	profile := &interpret.Profile{Gender: "female", TravelGroup: "solo"}

	got := Score("general", risks, "night", profile)
	want := []string{"Severe weather conditions", "Night travel", "Solo female traveler"}
	if len(got.Factors) != len(want) {
		t.Fatalf("factors = %v, want %v", got.Factors, want)
	}
	for i := range want {
		if got.Factors[i] != want[i] {
			t.Errorf("factors[%d] = %q, want %q", i, got.Factors[i], want[i])
		}
	}
}

func TestAdvice(t *testing.T) {
	t.Run("avoid level leads with postpone", func(t *testing.T) {
		advice := Advice(LevelAvoid, nil)
		if len(advice) != 2 {
			t.Fatalf("advice = %v", advice)
		}
	})

	t.Run("solo female gets extra guidance", func(t *testing.T) {
		profile := &interpret.Profile{Gender: "female", TravelGroup: "solo"}
		advice := Advice(LevelCaution, profile)
		if len(advice) != 5 {
			t.Fatalf("got %d advice lines, want 5: %v", len(advice), advice)
		}
	})

	t.Run("family gets rest stop reminder", func(t *testing.T) {
		profile := &interpret.Profile{TravelGroup: "family"}
		advice := Advice(LevelRecommended, profile)
		if len(advice) != 2 {
			t.Fatalf("got %d advice lines, want 2: %v", len(advice), advice)
		}
	})
}
