package favorites

import (
	"context"

	"suggestbox/internal/catalog"
)

//go:generate mockgen -source=ports.go -destination=mocks/ports.go -package=mocks

// Repository defines the contract for favorite storage. There is at
// most one favorite per item_id; the service enforces that with an
// existence check before Insert.
type Repository interface {
	Insert(ctx context.Context, f Favorite) error
	DeleteByItemID(ctx context.Context, itemID string) error
	List(ctx context.Context, limit int) ([]Favorite, error)
	ExistsByItemID(ctx context.Context, itemID string) (bool, error)
}

// ItemSource resolves the catalog item a favorite snapshots.
type ItemSource interface {
	GetItem(ctx context.Context, category, id string) (catalog.Item, error)
}
