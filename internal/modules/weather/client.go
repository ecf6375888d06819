// README: OpenWeatherMap client for current conditions.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// Client fetches current weather from OpenWeatherMap. The zero API key
// disables fetching; callers get ErrNoAPIKey and degrade to unknown risk.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var ErrNoAPIKey = fmt.Errorf("weather api key not configured")

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    openWeatherBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type owmResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
}

// Current returns the current conditions for a Pakistani city.
func (c *Client) Current(ctx context.Context, city string) (*Conditions, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	q := url.Values{}
	q.Set("q", city+",PK")
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api status %d", resp.StatusCode)
	}

	var body owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("weather api decode: %w", err)
	}

	out := &Conditions{
		TempC:         body.Main.Temp,
		Humidity:      body.Main.Humidity,
		WindSpeedMS:   body.Wind.Speed,
		RainMMPerHour: body.Rain.OneHour,
	}
	if len(body.Weather) > 0 {
		out.Condition = body.Weather[0].Main
		out.Description = body.Weather[0].Description
	}
	return out, nil
}
