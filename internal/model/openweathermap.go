package model

// APIResponse is the one-call payload as the upstream returns it. Error
// replies reuse the same shape with only cod/message populated.
type APIResponse struct {
	Lat     *float64        `json:"lat,omitempty"`
	Lon     *float64        `json:"lon,omitempty"`
	Cod     int             `json:"cod,omitempty"`
	Message string          `json:"message,omitempty"`
	Current *WeatherCurrent `json:"current,omitempty"`
	Hourly  []WeatherHourly `json:"hourly,omitempty"`
}

// HasWeatherData reports whether the payload carries actual weather data.
// Error payloads (cod/message only) do not, and must never be cached.
func (r *APIResponse) HasWeatherData() bool {
	return r.Current != nil || len(r.Hourly) > 0
}

type WeatherCurrent struct {
	Dt         int64              `json:"dt"`
	Sunrise    int64              `json:"sunrise"`
	Sunset     int64              `json:"sunset"`
	Temp       float64            `json:"temp"`
	FeelsLike  float64            `json:"feels_like"`
	Pressure   int                `json:"pressure"`
	Humidity   int                `json:"humidity"`
	DewPoint   float64            `json:"dew_point"`
	UVI        float64            `json:"uvi"`
	Clouds     int                `json:"clouds"`
	Visibility int                `json:"visibility"`
	WindSpeed  float64            `json:"wind_speed"`
	WindDeg    int                `json:"wind_deg"`
	Conditions []WeatherCondition `json:"weather,omitempty"`
}

type WeatherHourly struct {
	Dt         int64              `json:"dt"`
	Temp       float64            `json:"temp"`
	FeelsLike  float64            `json:"feels_like"`
	Pressure   int                `json:"pressure"`
	Humidity   int                `json:"humidity"`
	DewPoint   float64            `json:"dew_point"`
	Clouds     int                `json:"clouds"`
	Visibility int                `json:"visibility"`
	WindSpeed  float64            `json:"wind_speed"`
	WindDeg    int                `json:"wind_deg"`
	Conditions []WeatherCondition `json:"weather,omitempty"`
	Pop        float64            `json:"pop"`
}

type WeatherCondition struct {
	Condition   string `json:"main"`
	Description string `json:"description"`
}
