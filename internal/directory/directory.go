package directory

import (
	"strings"

	"github.com/weathercache/weather-cache-api/internal/model"
)

// CityEntry is the resolved identity of a city: its upstream id and coordinates.
type CityEntry struct {
	ID  uint32
	Lat float64
	Lon float64
}

type cityKey struct {
	name    string
	country string
}

// Directory maps (name, country) pairs to city entries. It is built once at
// startup and never mutated, so it is shared across requests without locking.
type Directory struct {
	entries map[cityKey]CityEntry
}

// Build consumes records into the lookup table. Duplicate (name, country)
// pairs overwrite earlier ones; the source occasionally repeats rows and the
// last one is taken as authoritative.
func Build(records []model.CityRecord) *Directory {
	entries := make(map[cityKey]CityEntry, len(records))
	for _, rec := range records {
		entries[cityKey{name: rec.Name, country: rec.Country}] = CityEntry{
			ID:  rec.ID,
			Lat: rec.Lat,
			Lon: rec.Lon,
		}
	}
	return &Directory{entries: entries}
}

// Resolve looks up a "Name,CC" query. The query must split on a comma into
// exactly two segments, matched verbatim against the stored name and country
// code; no trimming or case folding happens.
func (d *Directory) Resolve(query string) (CityEntry, bool) {
	parts := strings.Split(query, ",")
	if len(parts) != 2 {
		return CityEntry{}, false
	}
	entry, ok := d.entries[cityKey{name: parts[0], country: parts[1]}]
	return entry, ok
}

// Len returns the number of distinct (name, country) pairs loaded.
func (d *Directory) Len() int {
	return len(d.entries)
}
