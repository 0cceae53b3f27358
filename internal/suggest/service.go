package suggest

import (
	"context"
	"errors"
	"fmt"

	"suggestbox/internal/catalog"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest picks one random item from the category, skipping excludeIDs.
// When the exclusion set covers the whole universe the exclusions are
// dropped for this call only; the caller restarts its own tracking from
// the returned item. The response carries no reset indicator, matching
// the behavior clients already depend on.
func (s *Service) Suggest(ctx context.Context, category, genre string, excludeIDs []string) (Result, error) {
	if !catalog.ValidCategory(category) {
		return Result{}, catalog.ErrUnknownCategory
	}

	total, err := s.repo.Count(ctx, category, genre)
	if err != nil {
		return Result{}, fmt.Errorf("count universe: %w", err)
	}
	if total == 0 {
		return Result{}, ErrNoSuggestions
	}

	item, err := s.repo.PickRandom(ctx, category, genre, excludeIDs)
	if errors.Is(err, ErrNoneAvailable) && len(excludeIDs) > 0 {
		// Exhausted: reset the exclusion set and pick from the full universe.
		item, err = s.repo.PickRandom(ctx, category, genre, nil)
	}
	if err != nil {
		if errors.Is(err, ErrNoneAvailable) {
			return Result{}, ErrNoSuggestions
		}
		return Result{}, fmt.Errorf("pick random item: %w", err)
	}

	return Result{
		Suggestion:      catalog.Decorate(item),
		TotalInCategory: total,
	}, nil
}
