// README: Weather service: city risk lookups and the alert refresh loop.
package weather

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// monitoredCities are checked on every alert refresh pass.
var monitoredCities = []string{
	"Islamabad", "Lahore", "Karachi", "Peshawar", "Quetta",
	"Multan", "Faisalabad", "Rawalpindi", "Hyderabad", "Swat",
	"Gilgit", "Murree", "Skardu", "Chitral", "Abbottabad",
}

// cityCoords holds approximate coordinates for alert geo-tagging.
var cityCoords = map[string][2]float64{
	"islamabad":  {33.6844, 73.0479},
	"karachi":    {24.8607, 67.0011},
	"lahore":     {31.5204, 74.3587},
	"rawalpindi": {33.5651, 73.0169},
	"faisalabad": {31.4504, 73.1350},
	"multan":     {30.1575, 71.5249},
	"peshawar":   {34.0151, 71.5249},
	"quetta":     {30.1798, 66.9750},
	"swat":       {35.2208, 72.4247},
	"murree":     {33.9072, 73.3903},
	"gilgit":     {35.9208, 74.3083},
	"hunza":      {36.3167, 74.6500},
	"skardu":     {35.2975, 75.6175},
	"chitral":    {35.8514, 71.7869},
}

// Observer provides current conditions for a city.
type Observer interface {
	Current(ctx context.Context, city string) (*Conditions, error)
}

// AlertStorage persists and lists safety alerts.
type AlertStorage interface {
	HasActiveAlert(ctx context.Context, region, description string) (bool, error)
	SaveAlert(ctx context.Context, a *SafetyAlert) error
	ActiveAlerts(ctx context.Context, region string) ([]SafetyAlert, error)
}

type Service struct {
	observer Observer
	store    AlertStorage
	log      *zap.Logger
}

// NewService wires the weather service. observer may be nil; risk lookups
// then return unknown.
func NewService(observer Observer, store AlertStorage, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{observer: observer, store: store, log: log}
}

// CityRisk fetches current conditions for a city and grades them. Fetch
// failures degrade to an unknown assessment.
func (s *Service) CityRisk(ctx context.Context, city string) RiskAssessment {
	if s.observer == nil || city == "" {
		return Assess(nil)
	}
	conditions, err := s.observer.Current(ctx, city)
	if err != nil {
		s.log.Debug("weather fetch failed", zap.String("city", city), zap.Error(err))
		return Assess(nil)
	}
	return Assess(conditions)
}

// RouteRisk grades both endpoints of a journey and keeps the worse verdict.
func (s *Service) RouteRisk(ctx context.Context, origin, destination string) RiskAssessment {
	originRisk := s.CityRisk(ctx, origin)
	destRisk := s.CityRisk(ctx, destination)

	combined := destRisk
	if riskRank(originRisk.RiskLevel) > riskRank(destRisk.RiskLevel) {
		combined.RiskLevel = originRisk.RiskLevel
	}
	combined.Risks = appendUnique(combined.Risks, originRisk.Risks)
	combined.Warnings = appendUnique(combined.Warnings, originRisk.Warnings)
	return combined
}

func riskRank(level string) int {
	switch level {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	default:
		return 0
	}
}

func appendUnique(dst []string, src []string) []string {
	for _, v := range src {
		seen := false
		for _, d := range dst {
			if d == v {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}

// RefreshAlerts fetches conditions for all monitored cities and persists
// new medium/high alerts. Existing identical alerts are not duplicated.
func (s *Service) RefreshAlerts(ctx context.Context) ([]SafetyAlert, error) {
	if s.observer == nil || s.store == nil {
		return nil, nil
	}
	s.log.Info("refreshing weather alerts", zap.Int("cities", len(monitoredCities)))

	var saved []SafetyAlert
	for _, city := range monitoredCities {
		conditions, err := s.observer.Current(ctx, city)
		if err != nil {
			s.log.Debug("no weather data", zap.String("city", city), zap.Error(err))
			continue
		}

		risks := Assess(conditions)
		if risks.RiskLevel != RiskMedium && risks.RiskLevel != RiskHigh {
			continue
		}

		for _, warning := range risks.Warnings {
			exists, err := s.store.HasActiveAlert(ctx, city, warning)
			if err != nil {
				s.log.Warn("alert lookup failed", zap.String("city", city), zap.Error(err))
				continue
			}
			if exists {
				continue
			}

			severity := RiskMedium
			if risks.RiskLevel == RiskHigh {
				severity = RiskHigh
			}
			alert := SafetyAlert{
				AlertType:   alertType(warning),
				Region:      city,
				Severity:    severity,
				Description: warning,
				StartTime:   time.Now(),
				IsActive:    true,
			}
			if coords, ok := cityCoords[normalize(city)]; ok {
				lat, lon := coords[0], coords[1]
				alert.Lat, alert.Lon = &lat, &lon
			}

			if err := s.store.SaveAlert(ctx, &alert); err != nil {
				s.log.Warn("alert save failed", zap.String("city", city), zap.Error(err))
				continue
			}
			s.log.Info("new alert", zap.String("city", city),
				zap.String("type", alert.AlertType), zap.String("severity", severity))
			saved = append(saved, alert)
		}
	}

	s.log.Info("alert refresh complete", zap.Int("new_alerts", len(saved)))
	return saved, nil
}

// ActiveAlerts lists active alerts, optionally filtered to a region.
func (s *Service) ActiveAlerts(ctx context.Context, region string) ([]SafetyAlert, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.ActiveAlerts(ctx, region)
}

func normalize(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// RunAlertRefresher periodically refreshes alerts until ctx is cancelled.
func (s *Service) RunAlertRefresher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.RefreshAlerts(ctx); err != nil {
				s.log.Warn("alert refresh failed", zap.Error(err))
			}
		}
	}
}
