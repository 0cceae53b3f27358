package favorites

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"suggestbox/internal/catalog"
)

type Service struct {
	repo  Repository
	items ItemSource
}

func NewService(repo Repository, items ItemSource) *Service {
	return &Service{repo: repo, items: items}
}

// Add snapshots the referenced catalog item into a new favorite.
// Check-then-insert: two concurrent adds of the same item can both pass
// the existence check and produce a duplicate. Clients tolerate that
// race, so there is no uniqueness constraint backing it.
func (s *Service) Add(ctx context.Context, itemID, category string) (Favorite, error) {
	exists, err := s.repo.ExistsByItemID(ctx, itemID)
	if err != nil {
		return Favorite{}, fmt.Errorf("check favorite: %w", err)
	}
	if exists {
		return Favorite{}, ErrDuplicate
	}

	item, err := s.items.GetItem(ctx, category, itemID)
	if err != nil {
		return Favorite{}, err
	}

	fav := Favorite{
		ID:          uuid.New().String(),
		ItemID:      item.ID,
		Category:    category,
		Name:        item.Name,
		NameAr:      item.NameAr,
		Year:        item.Year,
		Genre:       item.Genre,
		ExternalURL: catalog.SearchURL(item.Name, category),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, fav); err != nil {
		return Favorite{}, fmt.Errorf("insert favorite: %w", err)
	}
	return fav, nil
}

func (s *Service) Remove(ctx context.Context, itemID string) error {
	return s.repo.DeleteByItemID(ctx, itemID)
}

// List returns favorites newest first, capped at ListLimit.
func (s *Service) List(ctx context.Context) ([]Favorite, error) {
	return s.repo.List(ctx, ListLimit)
}

// Exists never errors on absence; it drives the heart-icon UI state.
func (s *Service) Exists(ctx context.Context, itemID string) (bool, error) {
	return s.repo.ExistsByItemID(ctx, itemID)
}
