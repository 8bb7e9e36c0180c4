package location

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

func (r *postgresRepo) GetAll(ctx context.Context) ([]domain.Location, error) {
	const q = `
SELECT postal_code, name
FROM locations
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.PostalCode, &l.Name); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByPostalCode(ctx context.Context, postalCode string) (*domain.Location, error) {
	const q = `
SELECT postal_code, name
FROM locations
WHERE postal_code = $1
`
	var l domain.Location
	err := r.pool.QueryRow(ctx, q, postalCode).Scan(&l.PostalCode, &l.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}
