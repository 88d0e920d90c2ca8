package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/weathercache/weather-cache-api/internal/config"
	"github.com/weathercache/weather-cache-api/internal/model"
)

var ErrAPIKeyMissing = errors.New("API key missing")

// Exclusion sets trim the one-call payload down to what each request kind needs.
const (
	currentWeatherExclude  = "minutely,hourly,daily,alerts"
	forecastWeatherExclude = "current,minutely,daily,alerts"
)

// Client queries the one-call endpoint. Error replies from the upstream are
// returned as decoded payloads carrying cod/message, not as errors; only
// transport and decoding failures surface as errors.
type Client struct {
	httpClient *http.Client
}

// NewClient creates an upstream client. An *http.Client can be injected for
// testing; otherwise the default client is used.
func NewClient(httpClient ...*http.Client) *Client {
	client := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &Client{httpClient: client}
}

// Fetch performs one upstream query for the given coordinates, unit and kind.
func (c *Client) Fetch(ctx context.Context, lat, lon float64, unit model.TemperatureUnit, kind model.RequestKind) (*model.APIResponse, error) {
	apiKey := config.GetOpenWeatherMapAPIKey()
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	exclude := currentWeatherExclude
	if kind == model.WeatherForecast {
		exclude = forecastWeatherExclude
	}

	query := url.Values{}
	query.Set("appid", apiKey)
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("exclude", exclude)
	query.Set("units", unit.String())

	reqURL := config.GetOpenWeatherApiUrl() + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building upstream request: %w", err)
	}

	config.GetLogger().Debugw("Querying OpenWeatherMap API", "lat", lat, "lon", lon, "kind", kind.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying upstream: %w", err)
	}
	defer resp.Body.Close()

	var payload model.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding upstream response (status %d): %w", resp.StatusCode, err)
	}
	return &payload, nil
}
