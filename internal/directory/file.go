package directory

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/weathercache/weather-cache-api/internal/model"
)

// LoadRecordsFromFile reads the city table from a JSON array of city records.
func LoadRecordsFromFile(path string) ([]model.CityRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading city file: %w", err)
	}

	var records []model.CityRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decoding city file %s: %w", path, err)
	}
	return records, nil
}
