package customer

import (
	"context"
	"errors"
	"io"
	"log"

	"beerhall/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
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

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `
SELECT c.id, c.email, c.name, c.first_name, COALESCE(c.street, ''), c.created_at,
       l.postal_code, l.name
FROM customers c
LEFT JOIN locations l ON l.postal_code = c.postal_code
WHERE c.email = $1
`
	var c domain.Customer
	var locPostal, locName *string
	err := r.pool.QueryRow(ctx, q, email).Scan(
		&c.ID,
		&c.Email,
		&c.Name,
		&c.FirstName,
		&c.Street,
		&c.CreatedAt,
		&locPostal,
		&locName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("customer repo: get email=%s not found", email)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("customer repo: get email=%s error=%v", email, err)
		return nil, err
	}
	if locPostal != nil && locName != nil {
		c.Location = &domain.Location{PostalCode: *locPostal, Name: *locName}
	}
	return &c, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (email, name, first_name, street, postal_code)
VALUES ($1, $2, $3, NULLIF($4, ''), $5)
RETURNING id, created_at
`
	c := domain.Customer{
		Email:     in.Email,
		Name:      in.Name,
		FirstName: in.FirstName,
		Street:    in.Street,
	}
	err := r.pool.QueryRow(ctx, q, in.Email, in.Name, in.FirstName, in.Street, in.PostalCode).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		r.logger.Printf("customer repo: create email=%s error=%v", in.Email, err)
		return nil, err
	}
	r.logger.Printf("customer repo: created email=%s id=%d", c.Email, c.ID)
	return &c, nil
}
