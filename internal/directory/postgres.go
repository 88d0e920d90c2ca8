package directory

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx driver

	"github.com/weathercache/weather-cache-api/internal/model"
)

// LoadRecordsFromPostgres reads the city table from a Postgres database. The
// cities table mirrors the file format: id, lat, lon, name, ctry.
func LoadRecordsFromPostgres(ctx context.Context, dsn string) ([]model.CityRecord, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening city database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("connecting to city database: %w", err)
	}

	rows, err := db.QueryContext(ctx, `SELECT id, lat, lon, name, ctry FROM cities`)
	if err != nil {
		return nil, fmt.Errorf("querying cities: %w", err)
	}
	defer rows.Close()

	var records []model.CityRecord
	for rows.Next() {
		var rec model.CityRecord
		if err := rows.Scan(&rec.ID, &rec.Lat, &rec.Lon, &rec.Name, &rec.Country); err != nil {
			return nil, fmt.Errorf("scanning city row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading city rows: %w", err)
	}
	return records, nil
}
