package cvstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/danielgpm/linkedin-cv/pkg/resume"
)

// ErrNotFound is returned when no stored CV exists for a client, including
// when the stored payload no longer passes schema validation.
var ErrNotFound = errors.New("no stored cv")

// Record is a persisted extraction result, payload kept as the raw CV JSON so
// it can be re-validated on read.
type Record struct {
	ID        uuid.UUID
	IP        string
	Payload   []byte
	CreatedAt time.Time
}

// Repository is the port for saved CVs.
type Repository interface {
	Save(ctx context.Context, rec Record) error
	Latest(ctx context.Context, ip string) (Record, error)
	ListByIP(ctx context.Context, ip string, limit, offset int) ([]Record, error)
}

// Entry is a stored extraction served back to the client.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	CV        resume.CV `json:"data"`
}

// Service caches validated CVs per client and re-validates them on the way
// out, discarding rows that no longer satisfy the schema.
type Service interface {
	Save(ctx context.Context, ip string, cv resume.CV) error
	Latest(ctx context.Context, ip string) (Entry, error)
	History(ctx context.Context, ip string, limit, offset int) ([]Entry, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Save(ctx context.Context, ip string, cv resume.CV) error {
	payload, err := json.Marshal(cv)
	if err != nil {
		return err
	}
	return s.repo.Save(ctx, Record{
		ID:        uuid.New(),
		IP:        ip,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	})
}

// Latest returns the most recent stored CV for ip. A row that fails schema
// re-validation is discarded silently and reported as not found.
func (s *service) Latest(ctx context.Context, ip string) (Entry, error) {
	rec, err := s.repo.Latest(ctx, ip)
	if err != nil {
		return Entry{}, err
	}
	cv, err := resume.ParseCV(string(rec.Payload))
	if err != nil {
		return Entry{}, ErrNotFound
	}
	return Entry{ID: rec.ID, CreatedAt: rec.CreatedAt, CV: cv}, nil
}

// History lists recent extractions for ip, newest first, skipping rows that
// fail re-validation.
func (s *service) History(ctx context.Context, ip string, limit, offset int) ([]Entry, error) {
	recs, err := s.repo.ListByIP(ctx, ip, limit, offset)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(recs))
	for _, rec := range recs {
		cv, err := resume.ParseCV(string(rec.Payload))
		if err != nil {
			continue
		}
		entries = append(entries, Entry{ID: rec.ID, CreatedAt: rec.CreatedAt, CV: cv})
	}
	return entries, nil
}
