package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Seed inserts the dataset items for every category whose collection is
// empty. Idempotent across restarts because only the zero-count check
// gates insertion; a partially seeded category is left as is.
func (s *Service) Seed(ctx context.Context, ds Dataset) error {
	for _, category := range Categories {
		count, err := s.repo.CountItems(ctx, category)
		if err != nil {
			return fmt.Errorf("count %s: %w", category, err)
		}
		if count > 0 {
			continue
		}

		items := ds.Items(category)
		if len(items) == 0 {
			continue
		}
		if err := s.repo.BulkInsert(ctx, items); err != nil {
			return fmt.Errorf("seed %s: %w", category, err)
		}
		s.log.Info("seeded category",
			zap.String("category", category),
			zap.Int("items", len(items)),
			zap.Int("dataset_version", ds.Version),
		)
	}
	return nil
}

func (s *Service) Categories(ctx context.Context) ([]CategorySummary, error) {
	summaries := make([]CategorySummary, 0, len(Categories))
	for _, category := range Categories {
		count, err := s.repo.CountItems(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", category, err)
		}
		summaries = append(summaries, CategorySummary{
			ID:     category,
			Name:   category,
			NameAr: LocalizedName(category),
			Count:  count,
		})
	}
	return summaries, nil
}

func (s *Service) Genres(ctx context.Context, category string) ([]string, error) {
	if !ValidCategory(category) {
		return nil, ErrUnknownCategory
	}
	return s.repo.ListGenres(ctx, category)
}

func (s *Service) Items(ctx context.Context, category string, skip, limit int) ([]ItemWithURL, int, error) {
	if !ValidCategory(category) {
		return nil, 0, ErrUnknownCategory
	}
	items, total, err := s.repo.ListItems(ctx, category, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	decorated := make([]ItemWithURL, 0, len(items))
	for _, it := range items {
		decorated = append(decorated, Decorate(it))
	}
	return decorated, total, nil
}

func (s *Service) GetItem(ctx context.Context, category, id string) (Item, error) {
	if !ValidCategory(category) {
		return Item{}, ErrUnknownCategory
	}
	return s.repo.GetItem(ctx, category, id)
}
