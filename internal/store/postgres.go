package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// --- Settings ---

func (s *PostgresStore) GetSettings(ctx context.Context, userID string) (*UserSettings, error) {
	u := &UserSettings{}
	var homeName sql.NullString
	err := s.pool.QueryRow(ctx, `
		SELECT user_id, language, temperature_unit, wind_unit, default_activities,
			home_location_name, home_lat, home_lon, updated_at
		FROM baro_user_settings WHERE user_id = $1`, userID,
	).Scan(
		&u.UserID, &u.Language, &u.TemperatureUnit, &u.WindUnit, &u.DefaultActivities,
		&homeName, &u.HomeLat, &u.HomeLon, &u.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if homeName.Valid {
		u.HomeLocationName = homeName.String
	}
	return u, nil
}

func (s *PostgresStore) SaveSettings(ctx context.Context, settings *UserSettings) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO baro_user_settings (user_id, language, temperature_unit, wind_unit,
			default_activities, home_location_name, home_lat, home_lon, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (user_id) DO UPDATE SET
			language = EXCLUDED.language,
			temperature_unit = EXCLUDED.temperature_unit,
			wind_unit = EXCLUDED.wind_unit,
			default_activities = EXCLUDED.default_activities,
			home_location_name = EXCLUDED.home_location_name,
			home_lat = EXCLUDED.home_lat,
			home_lon = EXCLUDED.home_lon,
			updated_at = now()
		RETURNING updated_at`,
		settings.UserID, settings.Language, settings.TemperatureUnit, settings.WindUnit,
		settings.DefaultActivities, settings.HomeLocationName, settings.HomeLat, settings.HomeLon,
	).Scan(&settings.UpdatedAt)
}

// --- Favorites ---

func (s *PostgresStore) ListFavorites(ctx context.Context, userID string) ([]*FavoriteLocation, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, name, lat, lon, country_code, position, created_at
		FROM baro_favorite_locations
		WHERE user_id = $1
		ORDER BY position, created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*FavoriteLocation
	for rows.Next() {
		f := &FavoriteLocation{}
		var cc sql.NullString
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Lat, &f.Lon, &cc, &f.Position, &f.CreatedAt); err != nil {
			return nil, err
		}
		if cc.Valid {
			f.CountryCode = cc.String
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CreateFavorite(ctx context.Context, fav *FavoriteLocation) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO baro_favorite_locations (user_id, name, lat, lon, country_code, position)
		VALUES ($1, $2, $3, $4, $5,
			COALESCE((SELECT MAX(position) + 1 FROM baro_favorite_locations WHERE user_id = $1), 0))
		RETURNING id, position, created_at`,
		fav.UserID, fav.Name, fav.Lat, fav.Lon, fav.CountryCode,
	).Scan(&fav.ID, &fav.Position, &fav.CreatedAt)
}

func (s *PostgresStore) DeleteFavorite(ctx context.Context, userID string, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM baro_favorite_locations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// --- Reports ---

func (s *PostgresStore) CreateReport(ctx context.Context, report *Report) error {
	scoresJSON, _ := json.Marshal(report.Scores)

	return s.pool.QueryRow(ctx, `
		INSERT INTO baro_reports (user_id, location_name, lat, lon, language, model, content, scores)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		report.UserID, report.LocationName, report.Lat, report.Lon,
		report.Language, report.Model, report.Content, scoresJSON,
	).Scan(&report.ID, &report.CreatedAt)
}

func (s *PostgresStore) GetReport(ctx context.Context, id uuid.UUID) (*Report, error) {
	r := &Report{}
	var scoresJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT id, user_id, location_name, lat, lon, language, model, content, scores, created_at
		FROM baro_reports WHERE id = $1`, id,
	).Scan(&r.ID, &r.UserID, &r.LocationName, &r.Lat, &r.Lon, &r.Language, &r.Model, &r.Content, &scoresJSON, &r.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if scoresJSON != nil {
		_ = json.Unmarshal(scoresJSON, &r.Scores)
	}
	return r, nil
}

func (s *PostgresStore) ListReports(ctx context.Context, filter ReportFilter) ([]*Report, error) {
	query := `SELECT id, user_id, location_name, lat, lon, language, model, content, scores, created_at
		FROM baro_reports WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.UserID != "" {
		n++
		query += fmt.Sprintf(" AND user_id = $%d", n)
		args = append(args, filter.UserID)
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		n++
		query += fmt.Sprintf(" LIMIT $%d", n)
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Report
	for rows.Next() {
		r := &Report{}
		var scoresJSON []byte
		if err := rows.Scan(&r.ID, &r.UserID, &r.LocationName, &r.Lat, &r.Lon,
			&r.Language, &r.Model, &r.Content, &scoresJSON, &r.CreatedAt); err != nil {
			return nil, err
		}
		if scoresJSON != nil {
			_ = json.Unmarshal(scoresJSON, &r.Scores)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
