// README: Query history store backed by PostgreSQL.
package queries

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("profile not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) SaveQuery(ctx context.Context, q *TravelQuery) error {
	row := s.db.QueryRow(ctx, `
		INSERT INTO travel_queries (query_text, origin, destination, travel_date, user_profile_id, response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		q.QueryText, q.Origin, q.Destination, q.TravelDate, q.UserProfileID, q.Response, q.CreatedAt,
	)
	return row.Scan(&q.ID)
}

// RecentQueries returns the newest query rows, most recent first.
func (s *Store) RecentQueries(ctx context.Context, limit int) ([]TravelQuery, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(ctx, `
		SELECT id, query_text, origin, destination, travel_date, user_profile_id, response, created_at
		FROM travel_queries
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TravelQuery
	for rows.Next() {
		var q TravelQuery
		if err := rows.Scan(&q.ID, &q.QueryText, &q.Origin, &q.Destination,
			&q.TravelDate, &q.UserProfileID, &q.Response, &q.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *Store) SaveProfile(ctx context.Context, p *UserProfile) error {
	prefs, err := json.Marshal(p.Preferences)
	if err != nil {
		return err
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO user_profiles (gender, travel_group, preferences, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		p.Gender, p.TravelGroup, prefs, p.CreatedAt,
	)
	return row.Scan(&p.ID)
}

func (s *Store) GetProfile(ctx context.Context, id int64) (*UserProfile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, gender, travel_group, preferences, created_at
		FROM user_profiles
		WHERE id = $1`, id)

	var (
		p     UserProfile
		prefs []byte
	)
	err := row.Scan(&p.ID, &p.Gender, &p.TravelGroup, &prefs, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(prefs) > 0 {
		_ = json.Unmarshal(prefs, &p.Preferences)
	}
	return &p, nil
}
