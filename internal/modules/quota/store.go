// README: AI query quota persistence (monthly allowance with lazy reset).
package quota

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles ai_query_quota persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Consume atomically checks the monthly quota and deducts one query.
// It resets the counter to DefaultQueries when last_reset_month is behind the
// current month. Returns ErrQuotaExhausted when 0 rows are updated (quota
// exhausted or user absent).
func (s *Store) Consume(ctx context.Context, uid string) error {
	now := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE ai_query_quota SET
			queries_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE queries_remaining - 1 END,
			last_reset_month = $1
		WHERE uid = $3 AND (last_reset_month < $1 OR queries_remaining > 0)
	`, now, DefaultQueries, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// EnsureUser inserts a new quota row for uid with the default allowance.
// If the row already exists the insert is silently skipped.
func (s *Store) EnsureUser(ctx context.Context, uid string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO ai_query_quota (uid, queries_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, DefaultQueries, time.Now().Format("2006-01"))
	return err
}
