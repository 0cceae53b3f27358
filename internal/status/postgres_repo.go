package status

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Insert(ctx context.Context, c Check) error {
	const insertSQL = `
		INSERT INTO status_checks (id, client_name, timestamp)
		VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, insertSQL, c.ID, c.ClientName, c.Timestamp)
	return err
}

func (r *PostgresRepo) List(ctx context.Context, limit int) ([]Check, error) {
	const query = `
		SELECT id, client_name, timestamp
		FROM status_checks
		ORDER BY timestamp DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []Check
	for rows.Next() {
		var c Check
		if err := rows.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}
