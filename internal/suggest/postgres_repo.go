package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"suggestbox/internal/catalog"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func buildFilter(category, genre string, excludeIDs []string) (string, []any) {
	clauses := []string{"category = $1"}
	args := []any{category}
	argn := 2

	if genre != "" {
		clauses = append(clauses, fmt.Sprintf("genre = $%d", argn))
		args = append(args, genre)
		argn++
	}
	if len(excludeIDs) > 0 {
		clauses = append(clauses, fmt.Sprintf("id <> ALL($%d::text[])", argn))
		args = append(args, excludeIDs)
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func (r *PostgresRepo) Count(ctx context.Context, category, genre string) (int, error) {
	where, args := buildFilter(category, genre, nil)
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM catalog_items "+where, args...).Scan(&count)
	return count, err
}

// PickRandom selects one row uniformly at random from the filtered set.
// ORDER BY random() is fine at catalog scale; every candidate row gets
// equal probability.
func (r *PostgresRepo) PickRandom(ctx context.Context, category, genre string, excludeIDs []string) (catalog.Item, error) {
	where, args := buildFilter(category, genre, excludeIDs)
	query := fmt.Sprintf(`
		SELECT id, name, name_ar, category, year, genre
		FROM catalog_items
		%s
		ORDER BY random()
		LIMIT 1`, where)

	var it catalog.Item
	err := r.db.QueryRow(ctx, query, args...).Scan(&it.ID, &it.Name, &it.NameAr, &it.Category, &it.Year, &it.Genre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Item{}, ErrNoneAvailable
		}
		return catalog.Item{}, err
	}
	return it, nil
}
