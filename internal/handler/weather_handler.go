package handler

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/weathercache/weather-cache-api/internal/config"
	"github.com/weathercache/weather-cache-api/internal/model"
	"github.com/weathercache/weather-cache-api/internal/service"
)

// WeatherHandler serves the current-weather and forecast routes. Both share
// the same request surface (city_query and units query parameters) and the
// same response envelope; only the request kind differs.
type WeatherHandler struct {
	WeatherService service.WeatherServiceInterface
}

func NewWeatherHandler(svc service.WeatherServiceInterface) *WeatherHandler {
	return &WeatherHandler{
		WeatherService: svc,
	}
}

func (h *WeatherHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		config.GetLogger().Errorw("could not encode json", "error", err)
	}
}

func (h *WeatherHandler) HandleCurrentWeather(w http.ResponseWriter, r *http.Request) {
	h.handleWeather(w, r, model.CurrentWeather)
}

func (h *WeatherHandler) HandleForecast(w http.ResponseWriter, r *http.Request) {
	h.handleWeather(w, r, model.WeatherForecast)
}

func (h *WeatherHandler) handleWeather(w http.ResponseWriter, r *http.Request, kind model.RequestKind) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.writeJSONResponse(w, http.StatusMethodNotAllowed, model.BuildFailure("Method not allowed"))
		return
	}

	cityQuery := r.URL.Query().Get("city_query")
	if cityQuery == "" {
		h.writeJSONResponse(w, http.StatusBadRequest, model.BuildFailure("Missing 'city_query' query parameter"))
		return
	}

	unit, err := model.ParseTemperatureUnit(r.URL.Query().Get("units"))
	if err != nil {
		config.GetLogger().Warnw("Invalid temperature parameter supplied", "error", err)
		h.writeJSONResponse(w, http.StatusBadRequest, model.BuildFailure(err.Error()))
		return
	}

	resp := h.WeatherService.GetWeather(r.Context(), cityQuery, unit, kind)
	h.writeJSONResponse(w, http.StatusOK, resp)
}
