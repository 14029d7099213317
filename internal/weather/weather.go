package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Classification is the coarse weather signal the planner consumes.
// Both flags false means moderate weather.
type Classification struct {
	IsHot  bool `json:"is_hot"`
	IsCold bool `json:"is_cold"`
}

// String returns "hot", "cold" or "moderate".
func (c Classification) String() string {
	switch {
	case c.IsHot:
		return "hot"
	case c.IsCold:
		return "cold"
	default:
		return "moderate"
	}
}

// Parse turns "hot", "cold" or "moderate" into a Classification.
func Parse(s string) (Classification, error) {
	switch s {
	case "hot":
		return Classification{IsHot: true}, nil
	case "cold":
		return Classification{IsCold: true}, nil
	case "moderate", "":
		return Classification{}, nil
	default:
		return Classification{}, fmt.Errorf("unknown weather %q: expected hot, cold or moderate", s)
	}
}

// Report is the current weather for the configured city.
type Report struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Classification
}

// Moderate is the report used when no live data is available.
func Moderate() Report {
	return Report{Temperature: 15, Description: "moderate"}
}

// Thresholds decide when a temperature counts as hot or cold.
type Thresholds struct {
	HotAbove  float64
	ColdBelow float64
}

// DefaultThresholds classifies above 20°C as hot and below 10°C as cold.
var DefaultThresholds = Thresholds{HotAbove: 20, ColdBelow: 10}

// Classify maps a temperature in °C to a Classification.
func (t Thresholds) Classify(celsius float64) Classification {
	return Classification{
		IsHot:  celsius > t.HotAbove,
		IsCold: celsius < t.ColdBelow,
	}
}

// Provider returns the current weather.
type Provider interface {
	Current(ctx context.Context) (Report, error)
}

// Static always returns the same report.
type Static Report

// Current implements Provider.
func (s Static) Current(context.Context) (Report, error) {
	return Report(s), nil
}

// Client is an OpenWeatherMap current-weather client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	city       string
	thresholds Thresholds
}

// NewClient creates a new OpenWeatherMap client.
func NewClient(baseURL, apiKey, city string, thresholds Thresholds) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		city:       city,
		thresholds: thresholds,
	}
}

type currentResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Current fetches the current temperature and classifies it.
func (c *Client) Current(ctx context.Context) (Report, error) {
	if c.apiKey == "" {
		return Report{}, fmt.Errorf("weather api key not configured")
	}

	query := url.Values{}
	query.Set("q", c.city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	endpoint := fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Report{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("weather api error: status %d", resp.StatusCode)
	}

	var body currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Report{}, fmt.Errorf("failed to decode response: %w", err)
	}

	report := Report{
		Temperature:    body.Main.Temp,
		Classification: c.thresholds.Classify(body.Main.Temp),
	}
	if len(body.Weather) > 0 {
		report.Description = body.Weather[0].Description
	}
	return report, nil
}
