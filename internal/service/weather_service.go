package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/weathercache/weather-cache-api/internal/cache"
	"github.com/weathercache/weather-cache-api/internal/config"
	"github.com/weathercache/weather-cache-api/internal/directory"
	"github.com/weathercache/weather-cache-api/internal/model"
)

// Fetcher is the upstream boundary the service delegates cache misses to.
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon float64, unit model.TemperatureUnit, kind model.RequestKind) (*model.APIResponse, error)
}

// WeatherServiceInterface resolves a city query to a weather response,
// serving from cache when possible.
type WeatherServiceInterface interface {
	GetWeather(ctx context.Context, cityQuery string, unit model.TemperatureUnit, kind model.RequestKind) model.Response
}

type weatherService struct {
	directory *directory.Directory
	cache     *cache.ResponseCache
	fetcher   Fetcher
}

func NewWeatherService(dir *directory.Directory, respCache *cache.ResponseCache, fetcher Fetcher) WeatherServiceInterface {
	return &weatherService{
		directory: dir,
		cache:     respCache,
		fetcher:   fetcher,
	}
}

// GetWeather runs the resolve, probe, fetch, store sequence for one request.
// The upstream call happens with no cache lock held; a concurrent fill of the
// same key shows up as a cache-store failure, which is logged and ignored
// because the payload in hand is still good.
func (s *weatherService) GetWeather(ctx context.Context, cityQuery string, unit model.TemperatureUnit, kind model.RequestKind) model.Response {
	city, found := s.directory.Resolve(cityQuery)
	if !found {
		return model.BuildFailure(fmt.Sprintf("no city found for query %q", cityQuery))
	}

	key := cache.NewKey(city.ID, unit, kind)

	if s.cache.HasValidCacheFor(key) {
		if cached, ok := s.cache.GetCacheFor(key); ok {
			return model.BuildSuccess(cached)
		}
		// Expired between the probe and the lookup; treat as a miss.
	}

	payload, err := s.fetcher.Fetch(ctx, city.Lat, city.Lon, unit, kind)
	if err != nil {
		return model.BuildFailure(err.Error())
	}

	if payload.Cod != 0 && payload.Cod != http.StatusOK {
		msg := payload.Message
		if msg == "" {
			msg = fmt.Sprintf("upstream returned status %d", payload.Cod)
		}
		return model.BuildFailure(msg)
	}

	if err := s.cache.CacheResponse(key, payload); err != nil {
		config.GetLogger().Warnw("Failed to cache upstream response",
			"city_id", city.ID, "unit", unit.String(), "kind", kind.String(), "error", err)
	}

	return model.BuildSuccess(payload)
}
