package model

// CityRecord is one row of the city data source. The source uses "ctry" for
// the country code.
type CityRecord struct {
	ID      uint32  `json:"id"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Name    string  `json:"name"`
	Country string  `json:"ctry"`
}
