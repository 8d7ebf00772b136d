package ratelimit

import (
	"context"
	"log"
)

// Repository is the port to the per-client usage table. TimesUsed treats a
// missing record as zero and returns an error only when the lookup itself
// fails.
type Repository interface {
	TimesUsed(ctx context.Context, ip string) (int, error)
	Increment(ctx context.Context, ip string) error
}

// Limiter gates requests against a fixed per-client quota. The check and the
// increment are separate store calls, so concurrent requests from one client
// can both pass the check before either increments; the quota is best-effort.
type Limiter interface {
	Usage(ctx context.Context, ip string) (int, error)
	Increment(ctx context.Context, ip string)
	Limit() int
}

type service struct {
	repo  Repository
	limit int
}

func NewService(repo Repository, limit int) Limiter {
	if limit <= 0 {
		limit = 3
	}
	return &service{repo: repo, limit: limit}
}

func (s *service) Limit() int { return s.limit }

func (s *service) Usage(ctx context.Context, ip string) (int, error) {
	return s.repo.TimesUsed(ctx, ip)
}

// Increment bumps the counter for ip. Best-effort: store errors are logged and
// swallowed, never aborting the request.
func (s *service) Increment(ctx context.Context, ip string) {
	if err := s.repo.Increment(ctx, ip); err != nil {
		log.Printf("ratelimit: increment %s: %v", ip, err)
	}
}
