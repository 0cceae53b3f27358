package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) CountItems(ctx context.Context, category string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM catalog_items WHERE category = $1", category).Scan(&count)
	return count, err
}

func (r *PostgresRepo) BulkInsert(ctx context.Context, items []Item) error {
	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{it.ID, it.Name, it.NameAr, it.Category, it.Year, it.Genre})
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"catalog_items"},
		[]string{"id", "name", "name_ar", "category", "year", "genre"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("bulk insert items: %w", err)
	}
	return nil
}

func (r *PostgresRepo) ListGenres(ctx context.Context, category string) ([]string, error) {
	const query = `
		SELECT DISTINCT genre
		FROM catalog_items
		WHERE category = $1 AND genre IS NOT NULL AND genre <> ''
		ORDER BY genre ASC`

	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []string{}
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *PostgresRepo) ListItems(ctx context.Context, category string, skip, limit int) ([]Item, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM catalog_items WHERE category = $1", category).Scan(&total); err != nil {
		return nil, 0, err
	}

	const dataSQL = `
		SELECT id, name, name_ar, category, year, genre
		FROM catalog_items
		WHERE category = $1
		ORDER BY id ASC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, dataSQL, category, limit, skip)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.NameAr, &it.Category, &it.Year, &it.Genre); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	return items, total, rows.Err()
}

func (r *PostgresRepo) GetItem(ctx context.Context, category, id string) (Item, error) {
	const query = `
		SELECT id, name, name_ar, category, year, genre
		FROM catalog_items
		WHERE category = $1 AND id = $2`

	var it Item
	err := r.db.QueryRow(ctx, query, category, id).Scan(&it.ID, &it.Name, &it.NameAr, &it.Category, &it.Year, &it.Genre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, ErrItemNotFound
		}
		return Item{}, err
	}
	return it, nil
}
