package location

import (
	"context"

	"beerhall/internal/domain"
)

// Repository exposes the shipping-location reference data.
type Repository interface {
	GetAll(ctx context.Context) ([]domain.Location, error)
	GetByPostalCode(ctx context.Context, postalCode string) (*domain.Location, error)
}
