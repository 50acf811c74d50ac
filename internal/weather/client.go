package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// maxResponseSize is the maximum response body size read from the API.
const maxResponseSize = 1 << 20 // 1 MiB

// Client fetches current weather conditions from Open-Meteo.
type Client struct {
	httpClient *http.Client
	baseURL    string
	latitude   float64
	longitude  float64
	logger     *slog.Logger
}

// NewClient creates a new weather Client with the given configuration.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		latitude:   cfg.Latitude,
		longitude:  cfg.Longitude,
		logger:     logger.With("component", "weather"),
	}, nil
}

// Report is the current weather at the configured location.
type Report struct {
	Temperature float64
	Code        int
}

// Summary renders the report as "<temperature>°C, <description>".
func (r Report) Summary() string {
	return fmt.Sprintf("%s°C, %s", strconv.FormatFloat(r.Temperature, 'f', -1, 64), Describe(r.Code))
}

type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// Current fetches the current weather for the configured location.
func (c *Client) Current(ctx context.Context) (Report, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(c.latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(c.longitude, 'f', -1, 64))
	q.Set("current_weather", "true")
	reqURL := c.baseURL + "/v1/forecast?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Report{}, fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("weather: fetch current weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Report{}, fmt.Errorf("weather: HTTP %d from %s", resp.StatusCode, c.baseURL)
	}

	var decoded forecastResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&decoded); err != nil {
		return Report{}, fmt.Errorf("weather: decode response: %w", err)
	}

	report := Report{
		Temperature: decoded.CurrentWeather.Temperature,
		Code:        decoded.CurrentWeather.WeatherCode,
	}
	c.logger.Debug("current weather fetched",
		"temperature", report.Temperature,
		"code", report.Code,
	)
	return report, nil
}
