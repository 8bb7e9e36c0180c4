package brewer

import (
	"context"
	"errors"

	"beerhall/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetAll(ctx context.Context) ([]domain.Brewer, error) {
	const q = `
SELECT id, name, COALESCE(description, ''), COALESCE(postal_code, ''), created_at
FROM brewers
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Brewer
	for rows.Next() {
		var b domain.Brewer
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.PostalCode, &b.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Brewer, error) {
	const q = `
SELECT id, name, COALESCE(description, ''), COALESCE(postal_code, ''), created_at
FROM brewers
WHERE id = $1
`
	var b domain.Brewer
	err := r.pool.QueryRow(ctx, q, id).Scan(&b.ID, &b.Name, &b.Description, &b.PostalCode, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}
