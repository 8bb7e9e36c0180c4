package order

import (
	"context"
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

func (r *postgresRepo) Insert(ctx context.Context, customerID int64, o *domain.Order) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var orderID int64
	err = tx.QueryRow(ctx, `
INSERT INTO orders (customer_id, order_date, delivery_date, giftwrapping, street, postal_code)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`, customerID, o.OrderDate(), o.DeliveryDate(), o.Giftwrapping(), o.Street(), o.Location().PostalCode).Scan(&orderID)
	if err != nil {
		r.logger.Printf("order repo: insert customer_id=%d error=%v", customerID, err)
		return 0, err
	}

	for _, line := range o.Lines() {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_lines (order_id, beer_id, unit_price, quantity)
VALUES ($1, $2, $3, $4)
`, orderID, line.ProductID, line.UnitPrice.String(), line.Quantity); err != nil {
			r.logger.Printf("order repo: insert line order_id=%d beer_id=%d error=%v", orderID, line.ProductID, err)
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	r.logger.Printf("order repo: inserted order id=%d customer_id=%d lines=%d", orderID, customerID, len(o.Lines()))
	return orderID, nil
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int64) ([]PlacedOrder, error) {
	const ordersQuery = `
SELECT o.id, o.order_date, o.delivery_date, o.giftwrapping, o.street, l.postal_code, l.name
FROM orders o
JOIN locations l ON l.postal_code = o.postal_code
WHERE o.customer_id = $1
ORDER BY o.order_date DESC, o.id DESC
`
	rows, err := r.pool.Query(ctx, ordersQuery, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PlacedOrder
	for rows.Next() {
		var po PlacedOrder
		if err := rows.Scan(
			&po.ID,
			&po.OrderDate,
			&po.DeliveryDate,
			&po.Giftwrapping,
			&po.Street,
			&po.Location.PostalCode,
			&po.Location.Name,
		); err != nil {
			return nil, err
		}
		result = append(result, po)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		lines, err := r.orderLines(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Lines = lines
	}
	return result, nil
}

func (r *postgresRepo) orderLines(ctx context.Context, orderID int64) ([]domain.OrderLine, error) {
	const q = `
SELECT ol.beer_id, b.name, ol.unit_price::text, ol.quantity
FROM order_lines ol
JOIN beers b ON b.id = ol.beer_id
WHERE ol.order_id = $1
ORDER BY ol.beer_id ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var l domain.OrderLine
		var price string
		if err := rows.Scan(&l.ProductID, &l.ProductName, &price, &l.Quantity); err != nil {
			return nil, err
		}
		if l.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("parse unit_price %q: %w", price, err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
