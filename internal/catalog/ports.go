package catalog

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks/repository.go -package=mocks

// Repository defines the contract for catalog item storage.
type Repository interface {
	CountItems(ctx context.Context, category string) (int, error)
	BulkInsert(ctx context.Context, items []Item) error
	ListGenres(ctx context.Context, category string) ([]string, error)
	ListItems(ctx context.Context, category string, skip, limit int) ([]Item, int, error)
	GetItem(ctx context.Context, category, id string) (Item, error)
}
