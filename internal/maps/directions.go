package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// DirectionsService handles interactions with Google Maps API.
type DirectionsService struct {
	client *maps.Client
}

// NewDirectionsService creates a new DirectionsService with the given API Key.
func NewDirectionsService(apiKey string) (*DirectionsService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DirectionsService{client: client}, nil
}

// unroutableAreas are remote Karakoram/valley destinations where road data is
// absent or unreliable. Requests touching them skip the API entirely so the
// caller falls through to its cache and static table.
var unroutableAreas = map[string]bool{
	"gilgit": true, "hunza": true, "karimabad": true, "passu": true,
	"attabad lake": true, "khunjerab": true,
	"skardu": true, "shigar": true, "deosai": true,
	"fairy meadows": true, "naltar": true,
	"kalash": true, "bumburet": true, "rumbur": true,
	"neelum": true, "kel": true, "arang kel": true, "taobat": true, "sharda": true,
	"mahodand": true, "ushu forest": true,
	"lulusar": true, "saiful muluk": true, "lake saiful muluk": true,
}

// ErrUnroutable reports a route endpoint outside mapped road coverage.
var ErrUnroutable = fmt.Errorf("no road data for requested area")

// DrivingRoute returns the driving distance in km and duration in hours
// between two Pakistani cities.
func (s *DirectionsService) DrivingRoute(ctx context.Context, origin, destination string) (float64, float64, error) {
	if unroutableAreas[origin] || unroutableAreas[destination] {
		return 0, 0, ErrUnroutable
	}

	r := &maps.DirectionsRequest{
		Origin:      origin + ", Pakistan",
		Destination: destination + ", Pakistan",
		Mode:        maps.TravelModeDriving,
		Region:      "PK", // Bias results to Pakistan
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return 0, 0, fmt.Errorf("maps api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, 0, fmt.Errorf("no route found")
	}

	var meters int
	var seconds float64
	for _, leg := range routes[0].Legs {
		meters += leg.Distance.Meters
		seconds += leg.Duration.Seconds()
	}
	return float64(meters) / 1000, seconds / 3600, nil
}
