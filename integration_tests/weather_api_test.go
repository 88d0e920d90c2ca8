package integrationtest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/weathercache/weather-cache-api/internal/cache"
	"github.com/weathercache/weather-cache-api/internal/config"
	"github.com/weathercache/weather-cache-api/internal/directory"
	"github.com/weathercache/weather-cache-api/internal/handler"
	"github.com/weathercache/weather-cache-api/internal/model"
	"github.com/weathercache/weather-cache-api/internal/service"
	"github.com/weathercache/weather-cache-api/internal/upstream"
)

type WeatherAPITestSuite struct {
	suite.Suite
	httpServer   *httptest.Server
	mockUpstream *httptest.Server
	upstreamHits atomic.Int64
}

func (suite *WeatherAPITestSuite) SetupSuite() {
	os.Setenv("OPENWEATHERMAP_API_KEY", "test_api_key")

	// Mock OpenWeatherMap server: coords select the canned reply.
	suite.mockUpstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.upstreamHits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("lat") {
		case "99":
			_, _ = w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
		default:
			if r.URL.Query().Get("exclude") == "current,minutely,daily,alerts" {
				_, _ = w.Write([]byte(`{"hourly": [{"dt": 1, "temp": 18.0}]}`))
			} else {
				_, _ = w.Write([]byte(`{"current": {"dt": 1, "temp": 21.5}}`))
			}
		}
	}))

	viper.Set("openweathermap.api_url", suite.mockUpstream.URL)
	config.ReloadConfigForTest()

	cityDirectory := directory.Build([]model.CityRecord{
		{ID: 1, Lat: 34.94, Lon: 36.32, Name: "Foo", Country: "BR"},
		{ID: 2, Lat: 99, Lon: 0, Name: "Broken", Country: "XX"},
	})
	responseCache := cache.NewResponseCache(config.GetCacheExpiration())
	weatherService := service.NewWeatherService(cityDirectory, responseCache, upstream.NewClient())
	weatherHandler := handler.NewWeatherHandler(weatherService)

	router := mux.NewRouter()
	router.HandleFunc("/weather", weatherHandler.HandleCurrentWeather).Methods(http.MethodGet)
	router.HandleFunc("/forecast", weatherHandler.HandleForecast).Methods(http.MethodGet)

	suite.httpServer = httptest.NewServer(router)
}

func (suite *WeatherAPITestSuite) TearDownSuite() {
	if suite.httpServer != nil {
		suite.httpServer.Close()
	}
	if suite.mockUpstream != nil {
		suite.mockUpstream.Close()
	}
	os.Unsetenv("OPENWEATHERMAP_API_KEY")
	viper.Set("openweathermap.api_url", "")
}

func TestWeatherAPITestSuite(t *testing.T) {
	suite.Run(t, new(WeatherAPITestSuite))
}

func (suite *WeatherAPITestSuite) getEnvelope(path string) (int, model.Response) {
	resp, err := http.Get(suite.httpServer.URL + path)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	suite.Require().NoError(err)

	var envelope model.Response
	suite.Require().NoError(json.Unmarshal(body, &envelope))
	return resp.StatusCode, envelope
}

func (suite *WeatherAPITestSuite) TestMissingCityQuery() {
	status, envelope := suite.getEnvelope("/weather?units=c")

	assert.Equal(suite.T(), http.StatusBadRequest, status)
	assert.False(suite.T(), envelope.Success)
	assert.Nil(suite.T(), envelope.Data)
	assert.NotEmpty(suite.T(), envelope.Msg)
}

func (suite *WeatherAPITestSuite) TestInvalidUnits() {
	status, envelope := suite.getEnvelope("/weather?city_query=Foo,BR&units=degrees")

	assert.Equal(suite.T(), http.StatusBadRequest, status)
	assert.False(suite.T(), envelope.Success)
	assert.Contains(suite.T(), envelope.Msg, "degrees")
}

func (suite *WeatherAPITestSuite) TestUnknownCity() {
	status, envelope := suite.getEnvelope("/weather?city_query=Nowhere,XX&units=c")

	assert.Equal(suite.T(), http.StatusOK, status)
	assert.False(suite.T(), envelope.Success)
	assert.Contains(suite.T(), envelope.Msg, "Nowhere,XX")
	assert.Nil(suite.T(), envelope.Data)
}

func (suite *WeatherAPITestSuite) TestCurrentWeatherIsCachedAcrossRequests() {
	before := suite.upstreamHits.Load()

	status, envelope := suite.getEnvelope("/weather?city_query=Foo,BR&units=c")
	suite.Require().Equal(http.StatusOK, status)
	suite.Require().True(envelope.Success, "first request should succeed: %s", envelope.Msg)
	suite.Require().NotNil(envelope.Data)
	suite.Require().NotNil(envelope.Data.Current)
	assert.Equal(suite.T(), 21.5, envelope.Data.Current.Temp)

	status, envelope = suite.getEnvelope("/weather?city_query=Foo,BR&units=c")
	suite.Require().Equal(http.StatusOK, status)
	suite.Require().True(envelope.Success)
	assert.Equal(suite.T(), 21.5, envelope.Data.Current.Temp)

	assert.Equal(suite.T(), before+1, suite.upstreamHits.Load(),
		"second identical request should be served from cache")
}

func (suite *WeatherAPITestSuite) TestForecastUsesOwnCacheEntry() {
	before := suite.upstreamHits.Load()

	status, envelope := suite.getEnvelope("/weather?city_query=Foo,BR&units=f")
	suite.Require().Equal(http.StatusOK, status)
	suite.Require().True(envelope.Success)
	suite.Require().NotNil(envelope.Data.Current)

	status, envelope = suite.getEnvelope("/forecast?city_query=Foo,BR&units=f")
	suite.Require().Equal(http.StatusOK, status)
	suite.Require().True(envelope.Success)
	suite.Require().NotEmpty(envelope.Data.Hourly)
	assert.Equal(suite.T(), 18.0, envelope.Data.Hourly[0].Temp)

	assert.Equal(suite.T(), before+2, suite.upstreamHits.Load(),
		"current and forecast requests should each reach upstream once")
}

func (suite *WeatherAPITestSuite) TestUpstreamReportedError() {
	status, envelope := suite.getEnvelope("/weather?city_query=Broken,XX&units=c")

	assert.Equal(suite.T(), http.StatusOK, status)
	assert.False(suite.T(), envelope.Success)
	assert.Equal(suite.T(), "Invalid API key", envelope.Msg)
	assert.Nil(suite.T(), envelope.Data)
}
