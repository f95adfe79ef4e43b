// README: Job search service; clamps paging and logs search shapes for operators.
package jobs

import (
	"context"
	"log/slog"

	"ankago/internal/types"
)

const (
	defaultLimit = 5
	maxLimit     = 20
)

type Service struct {
	store *Store
	log   *slog.Logger
}

func NewService(store *Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Search runs a filtered job query. Results arrive deduplicated by the
// posting pipeline; this layer does not deduplicate.
func (s *Service) Search(ctx context.Context, p SearchParams) (SearchResult, error) {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	res, err := s.store.Search(ctx, p)
	if err != nil {
		s.log.Error("job search failed", "origin", p.Origin, "destination", p.Destination, "err", err)
		return SearchResult{}, err
	}
	s.log.Info("job search",
		"origin", p.Origin, "destination", p.Destination,
		"offset", p.Offset, "returned", len(res.Jobs), "total", res.TotalCount)
	return res, nil
}

func (s *Service) GetByID(ctx context.Context, id types.ID) (*Job, error) {
	return s.store.GetByID(ctx, id)
}
