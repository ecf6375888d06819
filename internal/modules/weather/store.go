// README: Safety alert store backed by PostgreSQL.
package weather

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// HasActiveAlert reports whether an identical active alert already exists
// for the region.
func (s *Store) HasActiveAlert(ctx context.Context, region, description string) (bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM safety_alerts
			WHERE region = $1 AND description = $2 AND is_active
		)`, region, description,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *Store) SaveAlert(ctx context.Context, a *SafetyAlert) error {
	row := s.db.QueryRow(ctx, `
		INSERT INTO safety_alerts (alert_type, region, severity, description, lat, lon, start_time, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		a.AlertType, a.Region, a.Severity, a.Description,
		a.Lat, a.Lon, a.StartTime, a.IsActive,
	)
	return row.Scan(&a.ID)
}

// ActiveAlerts lists active alerts, optionally filtered to a region.
func (s *Store) ActiveAlerts(ctx context.Context, region string) ([]SafetyAlert, error) {
	query := `
		SELECT id, alert_type, region, severity, description, lat, lon, start_time, end_time, is_active
		FROM safety_alerts
		WHERE is_active`
	args := []any{}
	if region != "" {
		query += ` AND region ILIKE '%' || $1 || '%'`
		args = append(args, region)
	}
	query += ` ORDER BY start_time DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SafetyAlert
	for rows.Next() {
		var a SafetyAlert
		if err := rows.Scan(&a.ID, &a.AlertType, &a.Region, &a.Severity, &a.Description,
			&a.Lat, &a.Lon, &a.StartTime, &a.EndTime, &a.IsActive); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
