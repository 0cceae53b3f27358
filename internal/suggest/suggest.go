// Package suggest implements the random-suggestion selector: one
// uniformly random item from a category, minus the caller's exclusion
// set, with a transparent reset once the caller has seen everything.
package suggest

import (
	"context"
	"errors"

	"suggestbox/internal/catalog"
)

// ErrNoSuggestions means the (possibly genre-filtered) universe is
// empty, so not even the reset path can produce an item.
var ErrNoSuggestions = errors.New("no suggestions available")

// ErrNoneAvailable is returned by Repository.PickRandom when every item
// of the universe is excluded. The service treats it as the exhaustion
// signal, not as a caller-facing error.
var ErrNoneAvailable = errors.New("no items available")

//go:generate mockgen -source=suggest.go -destination=mocks/repository.go -package=mocks

// Repository selects from the catalog items of one category. An empty
// genre means no genre filter.
type Repository interface {
	Count(ctx context.Context, category, genre string) (int, error)
	PickRandom(ctx context.Context, category, genre string, excludeIDs []string) (catalog.Item, error)
}

// Result is the suggestion response body. TotalInCategory counts the
// genre-filtered universe before exclusions, for "item X of N" display.
type Result struct {
	Suggestion      catalog.ItemWithURL `json:"suggestion"`
	TotalInCategory int                 `json:"total_in_category"`
}
