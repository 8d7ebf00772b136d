package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UsageRepository tracks per-client request counts in the iplimiter table.
// Rows are never deleted here; any expiry (e.g. a 24h reset) is the
// operator's concern, outside this service.
type UsageRepository struct {
	pool *pgxpool.Pool
}

func NewUsageRepository(pool *pgxpool.Pool) (*UsageRepository, error) {
	r := &UsageRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *UsageRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS iplimiter (
	ip TEXT PRIMARY KEY,
	times_used INT NOT NULL DEFAULT 0
);
`)
	return err
}

// TimesUsed returns the stored counter for ip. A missing row is a valid
// "never used" state and reads as zero; only a failing lookup is an error.
func (r *UsageRepository) TimesUsed(ctx context.Context, ip string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
SELECT times_used FROM iplimiter WHERE ip = $1
`, ip).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("select times_used: %w", err)
	}
	return n, nil
}

// Increment reads the current counter and writes back existing+1, inserting at
// 1 when no row exists. Deliberately two statements with no transaction:
// concurrent increments for one ip may race.
func (r *UsageRepository) Increment(ctx context.Context, ip string) error {
	var n int
	err := r.pool.QueryRow(ctx, `
SELECT times_used FROM iplimiter WHERE ip = $1
`, ip).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		_, err = r.pool.Exec(ctx, `
INSERT INTO iplimiter (ip, times_used) VALUES ($1, 1)
`, ip)
		if err != nil {
			return fmt.Errorf("insert iplimiter: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("select for increment: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
UPDATE iplimiter SET times_used = $2 WHERE ip = $1
`, ip, n+1)
	if err != nil {
		return fmt.Errorf("update times_used: %w", err)
	}
	return nil
}
