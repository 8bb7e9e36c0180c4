package order

import (
	"context"
	"time"

	"beerhall/internal/domain"
)

// Repository persists orders under their owning customer. Insert is the
// commit capability of checkout: the order and all its lines are written in
// one transaction, or not at all.
type Repository interface {
	Insert(ctx context.Context, customerID int64, o *domain.Order) (int64, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]PlacedOrder, error)
}

// PlacedOrder is the read model of a persisted order. Orders are immutable,
// so this is a plain snapshot rather than the domain aggregate.
type PlacedOrder struct {
	ID           int64              `json:"id"`
	OrderDate    time.Time          `json:"orderDate"`
	DeliveryDate *time.Time         `json:"deliveryDate,omitempty"`
	Giftwrapping bool               `json:"giftwrapping"`
	Street       string             `json:"street"`
	Location     domain.Location    `json:"location"`
	Lines        []domain.OrderLine `json:"lines"`
}
