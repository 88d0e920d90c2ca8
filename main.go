package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/weathercache/weather-cache-api/internal/cache"
	"github.com/weathercache/weather-cache-api/internal/config"
	"github.com/weathercache/weather-cache-api/internal/directory"
	"github.com/weathercache/weather-cache-api/internal/handler"
	"github.com/weathercache/weather-cache-api/internal/middleware"
	"github.com/weathercache/weather-cache-api/internal/model"
	"github.com/weathercache/weather-cache-api/internal/service"
	"github.com/weathercache/weather-cache-api/internal/upstream"
)

func loadCityRecords(ctx context.Context) ([]model.CityRecord, error) {
	switch kind := config.GetCitySourceKind(); kind {
	case "postgres":
		return directory.LoadRecordsFromPostgres(ctx, config.GetCitySourceDSN())
	default:
		return directory.LoadRecordsFromFile(config.GetCitySourcePath())
	}
}

func serverTimeout(key string, fallback time.Duration) time.Duration {
	dur, err := time.ParseDuration(config.GetServerTimeout(key))
	if err != nil {
		return fallback
	}
	return dur
}

func main() {
	logger := config.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.GetOpenWeatherMapAPIKey() == "" {
		logger.Error("OPENWEATHERMAP_API_KEY is not set, shutting down")
		os.Exit(1)
	}

	records, err := loadCityRecords(context.Background())
	if err != nil {
		logger.Errorw("Could not load city table, shutting down", "error", err)
		os.Exit(1)
	}
	cityDirectory := directory.Build(records)
	logger.Infow("City table loaded", "source", config.GetCitySourceKind(), "cities", cityDirectory.Len())

	responseCache := cache.NewResponseCache(config.GetCacheExpiration())
	weatherService := service.NewWeatherService(cityDirectory, responseCache, upstream.NewClient())
	weatherHandler := handler.NewWeatherHandler(weatherService)

	router := mux.NewRouter()
	router.HandleFunc("/weather", weatherHandler.HandleCurrentWeather).Methods(http.MethodGet)
	router.HandleFunc("/forecast", weatherHandler.HandleForecast).Methods(http.MethodGet)
	router.Use(middleware.RequestLoggerMiddleware, middleware.RateLimitMiddleware)

	middleware.StartRateLimiterCleanup()

	port := config.GetServerPort()
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: serverTimeout("read_header_timeout", 15*time.Second),
		ReadTimeout:       serverTimeout("read_timeout", 15*time.Second),
		WriteTimeout:      serverTimeout("write_timeout", 10*time.Second),
		IdleTimeout:       serverTimeout("idle_timeout", 30*time.Second),
	}

	go func() {
		logger.Infow("Weather API server running", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("Graceful shutdown failed", "error", err)
	}
}
