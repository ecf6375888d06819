// README: Route service implements the live -> cache -> static lookup chain.
package routes

import (
	"context"
	"errors"
	"math"
	"strings"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("route not found")

// Directions is the live road-data provider.
type Directions interface {
	DrivingRoute(ctx context.Context, origin, destination string) (distanceKM, timeHours float64, err error)
}

// Storage is the persistent route store.
type Storage interface {
	GetRoute(ctx context.Context, origin, destination string) (*Route, error)
	SaveRoute(ctx context.Context, r *Route) error
	ListRoutes(ctx context.Context) ([]Route, error)
	GetTransportOptions(ctx context.Context, origin, destination string) ([]TransportOption, error)
}

// DistanceCache is the fast-path distance cache.
type DistanceCache interface {
	Get(ctx context.Context, origin, destination string) (distanceKM, timeHours float64, ok bool)
	Set(ctx context.Context, origin, destination string, distanceKM, timeHours float64)
}

type Service struct {
	store      Storage
	cache      DistanceCache
	directions Directions
	log        *zap.Logger
}

// NewService wires the lookup chain. directions and cache may be nil; the
// chain then starts at the next layer down.
func NewService(store Storage, cache DistanceCache, directions Directions, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, cache: cache, directions: directions, log: log}
}

// Distance returns the road distance in km between two cities.
//
// Priority order:
//  1. live directions API
//  2. cache (Redis, then persisted routes)
//  3. static fallback table (written through to the store)
func (s *Service) Distance(ctx context.Context, origin, destination string) (float64, error) {
	origin = normalizeCity(origin)
	destination = normalizeCity(destination)

	if s.directions != nil {
		if dist, hours, err := s.directions.DrivingRoute(ctx, origin, destination); err == nil {
			s.remember(ctx, origin, destination, dist, hours)
			s.log.Info("live route", zap.String("origin", origin),
				zap.String("destination", destination), zap.Float64("distance_km", dist))
			return dist, nil
		}
	}

	if s.cache != nil {
		if dist, _, ok := s.cache.Get(ctx, origin, destination); ok {
			return dist, nil
		}
	}
	if r, err := s.store.GetRoute(ctx, origin, destination); err == nil && r.DistanceKM > 0 {
		s.log.Debug("stored route", zap.String("origin", origin), zap.String("destination", destination))
		return r.DistanceKM, nil
	}

	if dist, ok := lookupFallback(origin, destination); ok {
		s.remember(ctx, origin, destination, dist, EstimateTravelTime(dist, "bus"))
		s.log.Info("fallback route", zap.String("origin", origin),
			zap.String("destination", destination), zap.Float64("distance_km", dist))
		return dist, nil
	}

	s.log.Warn("no route data", zap.String("origin", origin), zap.String("destination", destination))
	return 0, ErrNotFound
}

// remember writes a resolved distance into the cache and the store so the
// next lookup skips the slow path.
func (s *Service) remember(ctx context.Context, origin, destination string, distanceKM, timeHours float64) {
	if s.cache != nil {
		s.cache.Set(ctx, origin, destination, distanceKM, timeHours)
	}
	err := s.store.SaveRoute(ctx, &Route{
		Origin:             titleCase(origin),
		Destination:        titleCase(destination),
		RouteName:          titleCase(origin) + " to " + titleCase(destination),
		DistanceKM:         distanceKM,
		EstimatedTimeHours: timeHours,
		SafetyScore:        75,
		RiskLevel:          "caution",
	})
	if err != nil {
		s.log.Warn("route write-through failed", zap.Error(err))
	}
}

// modeSpeeds maps transport modes to average speeds in km/h.
var modeSpeeds = map[string]float64{
	"bus":          60,
	"daewoo":       80,
	"van":          65,
	"train":        50,
	"rickshaw":     30,
	"ride_hailing": 70,
	"flight":       600,
}

// EstimateTravelTime estimates travel time in hours for a distance and mode.
// Unknown modes use the bus speed.
func EstimateTravelTime(distanceKM float64, mode string) float64 {
	speed, ok := modeSpeeds[mode]
	if !ok {
		speed = 60
	}
	return roundTenth(distanceKM / speed)
}

// TransportOptions returns the available transport for a route: stored rows
// when present, otherwise distance-derived estimates.
func (s *Service) TransportOptions(ctx context.Context, origin, destination string, distanceKM float64) ([]TransportOption, error) {
	origin = normalizeCity(origin)
	destination = normalizeCity(destination)

	if stored, err := s.store.GetTransportOptions(ctx, origin, destination); err == nil && len(stored) > 0 {
		return stored, nil
	}

	if distanceKM <= 0 {
		d, err := s.Distance(ctx, origin, destination)
		if err != nil {
			return nil, err
		}
		distanceKM = d
	}
	return fallbackOptions(distanceKM), nil
}

func fallbackOptions(distanceKM float64) []TransportOption {
	var options []TransportOption

	if distanceKM > 20 {
		risk := "recommended"
		if distanceKM > 500 {
			risk = "caution"
		}
		options = append(options, TransportOption{
			Mode:               "bus",
			EstimatedFarePKR:   50 + distanceKM*2.5,
			FareRange:          FareRange{Min: 40 + distanceKM*2, Max: 70 + distanceKM*3},
			EstimatedTimeHours: EstimateTravelTime(distanceKM, "bus"),
			Availability:       "always",
			SafetyNotes:        "Standard bus service",
			RiskLevel:          risk,
		})
	}

	if distanceKM > 100 {
		options = append(options, TransportOption{
			Mode:               "train",
			EstimatedFarePKR:   200 + distanceKM*1.5,
			FareRange:          FareRange{Min: 150 + distanceKM, Max: 400 + distanceKM*2},
			EstimatedTimeHours: EstimateTravelTime(distanceKM, "train"),
			Availability:       "limited",
			SafetyNotes:        "Book in advance",
			RiskLevel:          "recommended",
		})
	}

	if distanceKM < 200 {
		options = append(options, TransportOption{
			Mode:               "ride_hailing",
			EstimatedFarePKR:   150 + distanceKM*25,
			FareRange:          FareRange{Min: 130 + distanceKM*20, Max: 200 + distanceKM*35},
			EstimatedTimeHours: EstimateTravelTime(distanceKM, "ride_hailing"),
			Availability:       "always",
			SafetyNotes:        "Trackable, safest option",
			RiskLevel:          "recommended",
		})
	}

	return options
}

// Info assembles the comprehensive route answer.
func (s *Service) Info(ctx context.Context, origin, destination string) (*RouteInfo, error) {
	origin = normalizeCity(origin)
	destination = normalizeCity(destination)

	info := &RouteInfo{
		Origin:      origin,
		Destination: destination,
		SafetyScore: 75,
		RiskLevel:   "caution",
		Region:      Region(origin, destination),
	}

	if dist, err := s.Distance(ctx, origin, destination); err == nil {
		hours := EstimateTravelTime(dist, "bus")
		info.DistanceKM = &dist
		info.EstimatedTimeHours = &hours
	}

	if r, err := s.store.GetRoute(ctx, origin, destination); err == nil {
		info.SafetyScore = r.SafetyScore
		info.RiskLevel = r.RiskLevel
	}

	var distance float64
	if info.DistanceKM != nil {
		distance = *info.DistanceKM
	}
	if opts, err := s.TransportOptions(ctx, origin, destination, distance); err == nil {
		info.TransportOptions = opts
	}

	return info, nil
}

// ListRoutes returns every persisted route row.
func (s *Service) ListRoutes(ctx context.Context) ([]Route, error) {
	return s.store.ListRoutes(ctx)
}

var northernCities = []string{
	"gilgit", "hunza", "skardu", "chitral", "swat", "murree", "kalam", "khunjerab",
	"naran", "kaghan", "shogran", "babusar", "mingora", "malam jabba", "bahrain",
	"karimabad", "passu", "attabad", "shigar", "deosai", "kalash", "nathia gali", "ayubia",
}

var kashmirCities = []string{"muzaffarabad", "neelum", "rawalakot", "bagh"}

// Region classifies a route by its endpoints.
func Region(origin, destination string) string {
	origin = strings.ToLower(origin)
	destination = strings.ToLower(destination)

	matches := func(cities []string) bool {
		for _, c := range cities {
			if strings.Contains(origin, c) || strings.Contains(destination, c) {
				return true
			}
		}
		return false
	}

	switch {
	case matches(northernCities):
		return "northern_areas"
	case matches(kashmirCities):
		return "azad_kashmir"
	case matches([]string{"karachi"}):
		return "sindh"
	case matches([]string{"lahore"}):
		return "punjab"
	case matches([]string{"peshawar"}):
		return "kpk"
	default:
		return "general"
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func normalizeCity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
