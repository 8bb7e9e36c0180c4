package beer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"beerhall/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) GetAll(ctx context.Context) ([]domain.Beer, error) {
	const q = `
SELECT id, brewer_id, name, COALESCE(description, ''), price::text, alcohol_percent::text, created_at
FROM beers
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("beer repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Beer
	for rows.Next() {
		b, err := scanBeer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("beer repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Beer, error) {
	const q = `
SELECT id, brewer_id, name, COALESCE(description, ''), price::text, alcohol_percent::text, created_at
FROM beers
WHERE id = $1
`
	b, err := scanBeer(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("beer repo: get id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("beer repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &b, nil
}

type row interface {
	Scan(dest ...any) error
}

func scanBeer(r row) (domain.Beer, error) {
	var b domain.Beer
	var price, alcohol string
	if err := r.Scan(&b.ID, &b.BrewerID, &b.Name, &b.Description, &price, &alcohol, &b.CreatedAt); err != nil {
		return b, err
	}
	var err error
	if b.Price, err = decimal.NewFromString(price); err != nil {
		return b, fmt.Errorf("parse price %q: %w", price, err)
	}
	if b.AlcoholPercent, err = decimal.NewFromString(alcohol); err != nil {
		return b, fmt.Errorf("parse alcohol_percent %q: %w", alcohol, err)
	}
	return b, nil
}
