// README: Risk assessment tests.
package weather

import (
	"reflect"
	"testing"
)

func TestAssess_NilConditions(t *testing.T) {
	got := Assess(nil)
	if got.RiskLevel != RiskUnknown {
		t.Errorf("risk = %q, want unknown", got.RiskLevel)
	}
	if len(got.Risks) != 0 || len(got.Warnings) != 0 {
		t.Errorf("nil observation must carry no risks, got %+v", got)
	}
}

func TestAssess(t *testing.T) {
	tests := []struct {
		name      string
		c         Conditions
		wantLevel string
		wantRisks []string
	}{
		{
			name:      "clear skies",
			c:         Conditions{Condition: "Clear", Description: "clear sky", TempC: 22},
			wantLevel: RiskLow,
			wantRisks: []string{},
		},
		{
			name:      "light rain stays low",
			c:         Conditions{Condition: "Rain", RainMMPerHour: 2},
			wantLevel: RiskLow,
			wantRisks: []string{},
		},
		{
			name:      "moderate rain",
			c:         Conditions{Condition: "Rain", RainMMPerHour: 7},
			wantLevel: RiskMedium,
			wantRisks: []string{"flood"},
		},
		{
			name:      "heavy rain",
			c:         Conditions{Condition: "Rain", RainMMPerHour: 15},
			wantLevel: RiskHigh,
			wantRisks: []string{"flood"},
		},
		{
			name:      "fog by condition",
			c:         Conditions{Condition: "Fog"},
			wantLevel: RiskMedium,
			wantRisks: []string{"fog"},
		},
		{
			name:      "fog by description",
			c:         Conditions{Condition: "Mist", Description: "fog patches"},
			wantLevel: RiskMedium,
			wantRisks: []string{"fog"},
		},
		{
			name:      "snow",
			c:         Conditions{Condition: "Snow"},
			wantLevel: RiskHigh,
			wantRisks: []string{"landslide"},
		},
		{
			name:      "strong wind",
			c:         Conditions{Condition: "Clear", WindSpeedMS: 25},
			wantLevel: RiskMedium,
			wantRisks: []string{"wind"},
		},
		{
			name:      "heavy rain with wind keeps high",
			c:         Conditions{Condition: "Rain", RainMMPerHour: 12, WindSpeedMS: 25},
			wantLevel: RiskHigh,
			wantRisks: []string{"flood", "wind"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(&tt.c)
			if got.RiskLevel != tt.wantLevel {
				t.Errorf("risk = %q, want %q", got.RiskLevel, tt.wantLevel)
			}
			if !reflect.DeepEqual(got.Risks, tt.wantRisks) {
				t.Errorf("risks = %v, want %v", got.Risks, tt.wantRisks)
			}
			if len(got.Warnings) != len(tt.wantRisks) {
				t.Errorf("warnings = %v, want one per risk", got.Warnings)
			}
		})
	}
}

func TestAlertType(t *testing.T) {
	tests := []struct{ warning, want string }{
		{"Heavy rainfall - flood risk", "flood"},
		{"Foggy conditions - reduced visibility", "fog"},
		{"Snow conditions - possible landslides in mountainous areas", "landslide"},
		{"Strong winds - travel caution advised", "wind"},
		{"Dust storm approaching", "weather"},
	}
	for _, tt := range tests {
		if got := alertType(tt.warning); got != tt.want {
			t.Errorf("alertType(%q) = %q, want %q", tt.warning, got, tt.want)
		}
	}
}
