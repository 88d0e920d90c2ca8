package cache

import "github.com/weathercache/weather-cache-api/internal/model"

// Key identifies one cached upstream response. All three fields take part in
// equality, so current and forecast responses for the same city and unit land
// under different keys.
type Key struct {
	CityID uint32
	Unit   model.TemperatureUnit
	Kind   model.RequestKind
}

func NewKey(cityID uint32, unit model.TemperatureUnit, kind model.RequestKind) Key {
	return Key{CityID: cityID, Unit: unit, Kind: kind}
}
