// README: Route store backed by PostgreSQL.
package routes

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) GetRoute(ctx context.Context, origin, destination string) (*Route, error) {
	row := s.db.QueryRow(ctx, `
		SELECT origin, destination, route_name, distance_km, estimated_time_hours, safety_score, risk_level
		FROM routes
		WHERE origin ILIKE $1 AND destination ILIKE $2`,
		origin, destination,
	)

	var r Route
	err := row.Scan(&r.Origin, &r.Destination, &r.RouteName,
		&r.DistanceKM, &r.EstimatedTimeHours, &r.SafetyScore, &r.RiskLevel)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// SaveRoute inserts a route row unless the pair already exists.
func (s *Store) SaveRoute(ctx context.Context, r *Route) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO routes (origin, destination, route_name, distance_km, estimated_time_hours, safety_score, risk_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (origin, destination) DO NOTHING`,
		r.Origin, r.Destination, r.RouteName,
		r.DistanceKM, r.EstimatedTimeHours, r.SafetyScore, r.RiskLevel,
	)
	return err
}

func (s *Store) ListRoutes(ctx context.Context) ([]Route, error) {
	rows, err := s.db.Query(ctx, `
		SELECT origin, destination, route_name, distance_km, estimated_time_hours, safety_score, risk_level
		FROM routes
		ORDER BY origin, destination`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Route
	for rows.Next() {
		var r Route
		if err := rows.Scan(&r.Origin, &r.Destination, &r.RouteName,
			&r.DistanceKM, &r.EstimatedTimeHours, &r.SafetyScore, &r.RiskLevel); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetTransportOptions(ctx context.Context, origin, destination string) ([]TransportOption, error) {
	rows, err := s.db.Query(ctx, `
		SELECT mode, typical_fare_pkr, fare_range_pkr, estimated_time_hours,
		       availability, safety_notes, night_travel_safe, overcrowding_risk
		FROM transport_options
		WHERE origin ILIKE $1 AND destination ILIKE $2`,
		origin, destination,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TransportOption
	for rows.Next() {
		var (
			o             TransportOption
			fareRangeJSON []byte
			nightSafe     bool
		)
		if err := rows.Scan(&o.Mode, &o.EstimatedFarePKR, &fareRangeJSON, &o.EstimatedTimeHours,
			&o.Availability, &o.SafetyNotes, &nightSafe, &o.OvercrowdingRisk); err != nil {
			return nil, err
		}

		if len(fareRangeJSON) > 0 {
			_ = json.Unmarshal(fareRangeJSON, &o.FareRange)
		}
		if o.FareRange == (FareRange{}) {
			o.FareRange = FareRange{Min: o.EstimatedFarePKR * 0.8, Max: o.EstimatedFarePKR * 1.2}
		}

		o.RiskLevel = "caution"
		if nightSafe {
			o.RiskLevel = "recommended"
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
