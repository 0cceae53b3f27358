package favorites

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Insert(ctx context.Context, f Favorite) error {
	const insertSQL = `
		INSERT INTO favorites (id, item_id, category, name, name_ar, year, genre, external_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, insertSQL,
		f.ID, f.ItemID, f.Category, f.Name, f.NameAr, f.Year, f.Genre, f.ExternalURL, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

func (r *PostgresRepo) DeleteByItemID(ctx context.Context, itemID string) error {
	commandTag, err := r.db.Exec(ctx, "DELETE FROM favorites WHERE item_id = $1", itemID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context, limit int) ([]Favorite, error) {
	const query = `
		SELECT id, item_id, category, name, name_ar, year, genre, external_url, created_at
		FROM favorites
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favs []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(
			&f.ID, &f.ItemID, &f.Category, &f.Name, &f.NameAr,
			&f.Year, &f.Genre, &f.ExternalURL, &f.CreatedAt,
		); err != nil {
			return nil, err
		}
		favs = append(favs, f)
	}
	return favs, rows.Err()
}

func (r *PostgresRepo) ExistsByItemID(ctx context.Context, itemID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM favorites WHERE item_id = $1)", itemID).Scan(&exists)
	return exists, err
}
