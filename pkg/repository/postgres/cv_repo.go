package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danielgpm/linkedin-cv/pkg/cvstore"
)

// CVRepository stores validated extraction results keyed by client IP.
type CVRepository struct {
	pool *pgxpool.Pool
}

func NewCVRepository(pool *pgxpool.Pool) (*CVRepository, error) {
	r := &CVRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CVRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS parsed_cvs (
	id UUID PRIMARY KEY,
	ip TEXT NOT NULL,
	payload JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS parsed_cvs_ip_created_idx ON parsed_cvs (ip, created_at DESC);
`)
	return err
}

func (r *CVRepository) Save(ctx context.Context, rec cvstore.Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO parsed_cvs (id, ip, payload, created_at)
VALUES ($1, $2, $3, $4)
`, rec.ID, rec.IP, rec.Payload, rec.CreatedAt)
	return err
}

func (r *CVRepository) Latest(ctx context.Context, ip string) (cvstore.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, ip, payload, created_at
FROM parsed_cvs WHERE ip = $1
ORDER BY created_at DESC
LIMIT 1
`, ip)
	var rec cvstore.Record
	var created time.Time
	if err := row.Scan(&rec.ID, &rec.IP, &rec.Payload, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cvstore.Record{}, cvstore.ErrNotFound
		}
		return cvstore.Record{}, err
	}
	rec.CreatedAt = created.UTC()
	return rec, nil
}

func (r *CVRepository) ListByIP(ctx context.Context, ip string, limit, offset int) ([]cvstore.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, ip, payload, created_at
FROM parsed_cvs WHERE ip = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var recs []cvstore.Record
	for rows.Next() {
		var rec cvstore.Record
		var created time.Time
		if err := rows.Scan(&rec.ID, &rec.IP, &rec.Payload, &created); err != nil {
			return nil, err
		}
		rec.CreatedAt = created.UTC()
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}
